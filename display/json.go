package display

import "encoding/json"

// MarshalJSON pretty-prints v for terminal output.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
