package hub

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// flexInt decodes a JSON number that hubs sometimes send as a quoted string.
// Null and the empty string decode to zero.
type flexInt int

// Int returns the plain value.
func (f flexInt) Int() int {
	return int(f)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)

	n, err := strconv.Atoi(s)
	if err != nil {
		// Some firmware versions report versions as floats.
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return zerr.With(zerr.Wrap(err, "invalid numeric field"), "value", s)
		}
		n = int(fl)
	}

	*f = flexInt(n)
	return nil
}

type typeEntryDTO struct {
	ID   flexInt `json:"id"`
	Name string  `json:"name"`
}

type codeRevisionDTO struct {
	Version flexInt `json:"version"`
	Source  string  `json:"source"`
}

type savePayloadDTO struct {
	ID      int    `json:"id"`
	Version int    `json:"version"`
	Source  string `json:"source"`
}

type saveResponseDTO struct {
	Success bool            `json:"success"`
	Version *flexInt        `json:"version"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}
