package sway

import "encoding/json"

// convert re-decodes a go-sway value into the matching local type. Both
// follow the IPC JSON field names.
func convert(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
