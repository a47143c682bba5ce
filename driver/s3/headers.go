package s3

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tarantool/go-kvns/kv"
)

// User-defined object header names, sent as x-amz-meta-<name>.
const (
	HeaderExpiration = "expiration"
	HeaderMetadata   = "metadata"
)

type headerValues struct {
	Expiration int64
	Metadata   json.RawMessage
}

// encodeHeaders renders expiration and metadata as object headers.
// Metadata JSON is escaped to ASCII since header values must be.
func encodeHeaders(expiration int64, metadata json.RawMessage) map[string]string {
	headers := map[string]string{
		HeaderExpiration: strconv.FormatInt(expiration, 10),
	}

	if metadata == nil {
		headers[HeaderMetadata] = "null"
	} else {
		headers[HeaderMetadata] = asciiJSON(metadata)
	}

	return headers
}

// decodeHeaders parses object headers. Absent or unparsable values fall back
// to no expiration and no metadata.
func decodeHeaders(headers map[string]string) headerValues {
	out := headerValues{Expiration: kv.NoExpiration, Metadata: nil}

	if raw, ok := lookup(headers, HeaderExpiration); ok {
		if parsed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			out.Expiration = parsed
		}
	}

	if raw, ok := lookup(headers, HeaderMetadata); ok {
		if raw != "null" && json.Valid([]byte(raw)) {
			out.Metadata = json.RawMessage(raw)
		}
	}

	return out
}

func lookup(headers map[string]string, name string) (string, bool) {
	if value, ok := headers[name]; ok {
		return value, true
	}

	for key, value := range headers {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}

	return "", false
}

// asciiJSON escapes every non-ASCII rune of a valid JSON document as \uXXXX.
// Non-ASCII runes can only occur inside strings, so the result stays valid.
func asciiJSON(raw []byte) string {
	var b strings.Builder

	b.Grow(len(raw))

	for _, r := range string(raw) {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}

	return b.String()
}
