package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// PrintJSON marshals v and prints it with indentation.
func PrintJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintRawJSON re-indents an already-encoded JSON document and prints it,
// preserving the original field order and values.
func PrintRawJSON(raw string) error {
	if raw == "" {
		fmt.Println("{}")
		return nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return err
	}
	fmt.Println(buf.String())
	return nil
}
