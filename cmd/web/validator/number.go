package validator

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Int64 accepts a JSON integer or a decimal string, since link parameters are
// often forwarded straight from a URL query. Set stays false for absent or null.
type Int64 struct {
	Value int64
	Set   bool
}

func (n *Int64) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = Int64{}
		return nil
	}
	var raw json.Number
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return ErrInvalidJSON
		}
		raw = json.Number(strings.TrimSpace(s))
	} else {
		raw = json.Number(b)
	}
	v, err := strconv.ParseInt(raw.String(), 10, 64)
	if err != nil {
		return ErrInvalidJSON
	}
	*n = Int64{Value: v, Set: true}
	return nil
}

// Ptr returns nil when the value was not supplied.
func (n Int64) Ptr() *int64 {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}
