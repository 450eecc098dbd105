// Package nulls holds JSON-friendly optional values for request payloads.
package nulls

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var null = []byte("null")

// String is an optional text value. Mobile clients send some text columns
// (cook time, servings) as numbers, so numeric JSON is accepted and kept in
// its literal form.
type String struct {
	Value string
	Valid bool
}

// MarshalJSON implements the json.Marshaler interface
func (s String) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return null, nil
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *String) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) {
		*s = String{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s.Value); err != nil {
			return err
		}
		s.Valid = true
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("expected a string or a number")
	}
	s.Value = n.String()
	s.Valid = true
	return nil
}

// Ptr returns nil for an absent or empty value.
func (s String) Ptr() *string {
	if !s.Valid || s.Value == "" {
		return nil
	}
	v := s.Value
	return &v
}

// Flag is a 0/1 integer flag that also accepts JSON booleans.
type Flag struct {
	Value int
	Valid bool
}

// MarshalJSON implements the json.Marshaler interface
func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return null, nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "null":
		*f = Flag{}
	case "0", "false":
		*f = Flag{Value: 0, Valid: true}
	case "1", "true":
		*f = Flag{Value: 1, Valid: true}
	default:
		return errors.New("expected 0, 1, true or false")
	}
	return nil
}

// Bool reports whether the flag is set.
func (f Flag) Bool() bool {
	return f.Valid && f.Value != 0
}
