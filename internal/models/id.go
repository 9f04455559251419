package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque backend identifier. The backend sends integers today but
// nothing on this side depends on that.
type ID string

// UnmarshalJSON accepts a JSON string, number or null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as text
func (id ID) String() string {
	return string(id)
}
