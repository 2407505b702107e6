// Package name represents a required display name in the system.
package name

import (
	"errors"
	"strings"
)

// ErrBlank is returned when the value is empty once trimmed.
var ErrBlank = errors.New("name is required")

// Name represents a trimmed, non-blank name.
type Name struct {
	value string
}

// String returns the value of the name.
func (n Name) String() string {
	return n.value
}

// Equal provides support for the go-cmp package and testing.
func (n Name) Equal(n2 Name) bool {
	return n.value == n2.value
}

// MarshalText provides support for logging and any marshal needs.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// Parse trims the value and returns a name if anything is left.
func Parse(value string) (Name, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Name{}, ErrBlank
	}

	return Name{value}, nil
}

// MustParse parses the string value and returns a name. If an error occurs
// the function panics.
func MustParse(value string) Name {
	n, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return n
}
