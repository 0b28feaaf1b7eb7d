// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"vfit/pkg/api"
)

// WriteJSON emits the component rows as an indented JSON list.
func WriteJSON(w io.Writer, rows []api.ComponentRowV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
