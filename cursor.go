package kvns

import "encoding/base64"

func encodeCursor(key string) string {
	if key == "" {
		return ""
	}

	return base64.StdEncoding.EncodeToString([]byte(key))
}

func decodeCursor(cursor string) (string, error) {
	if cursor == "" {
		return "", nil
	}

	key, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return "", errValidation("cursor", err.Error())
	}

	return string(key), nil
}
