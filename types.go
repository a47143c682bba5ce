package kvns

// Type selects how Get presents a stored value.
type Type string

const (
	// TypeText returns the value as a string. It is the default.
	TypeText Type = "text"
	// TypeJSON parses the value as JSON.
	TypeJSON Type = "json"
	// TypeArrayBuffer returns the raw bytes.
	TypeArrayBuffer Type = "arrayBuffer"
	// TypeStream is recognized but not supported.
	TypeStream Type = "stream"
)

// ValueWithMetadata is the result of GetWithMetadata.
// Both fields are nil when the key is missing or expired.
type ValueWithMetadata struct {
	Value    any `json:"value"`
	Metadata any `json:"metadata"`
}

// ListKey describes one key returned by List.
type ListKey struct {
	Name       string `json:"name"`
	Expiration *int64 `json:"expiration,omitempty"`
	Metadata   any    `json:"metadata,omitempty"`
}

// ListResult is one page of List.
type ListResult struct {
	Keys         []ListKey `json:"keys"`
	ListComplete bool      `json:"list_complete"`
	Cursor       string    `json:"cursor"`
}
