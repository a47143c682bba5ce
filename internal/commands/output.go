package commands

import (
	"fmt"
	"io"

	"github.com/tarantool/go-kvns/marshaller"
)

// writeJSON writes v as a single line of JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := marshaller.NewJSONMarshaller().Marshal(v)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
