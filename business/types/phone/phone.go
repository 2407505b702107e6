// Package phone represents a phone number in the system.
package phone

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Phone represents a phone number in the system.
type Phone struct {
	value string
}

// String returns the value of the phone number.
func (p Phone) String() string {
	return p.value
}

// Equal provides support for the go-cmp package and testing.
func (p Phone) Equal(p2 Phone) bool {
	return p.value == p2.value
}

// MarshalText provides support for logging and any marshal needs.
func (p Phone) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// =============================================================================

// MaxLength is the longest phone number accepted, in characters.
const MaxLength = 64

// Parse parses the string value and returns a phone number. Phone numbers
// are free text (extensions, notes like "ask for Ana"), so only surrounding
// space is removed and the length is capped.
func Parse(value string) (Phone, error) {
	value = strings.TrimSpace(value)

	switch n := utf8.RuneCountInString(value); {
	case n == 0:
		return Phone{}, fmt.Errorf("phone is empty")
	case n > MaxLength:
		return Phone{}, fmt.Errorf("phone is longer than %d characters", MaxLength)
	}

	return Phone{value}, nil
}

// MustParse parses the string value and returns a phone number if the value
// complies with the rules for a phone number. If an error occurs the function panics.
func MustParse(value string) Phone {
	phone, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return phone
}

// =============================================================================

// Null represents a phone number in the system that can be empty.
type Null struct {
	value string
	valid bool
}

// Ptr returns the phone number or nil when it is empty.
func (n Null) Ptr() *string {
	if !n.valid {
		return nil
	}

	v := n.value
	return &v
}

// String returns the value of the phone number.
func (n Null) String() string {
	if !n.valid {
		return "NULL"
	}

	return n.value
}

// Equal provides support for the go-cmp package and testing.
func (n Null) Equal(n2 Null) bool {
	return n.value == n2.value && n.valid == n2.valid
}

// MarshalText provides support for logging and any marshal needs.
func (n Null) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// =============================================================================

// ParseNull parses the string value and returns a phone number if the value
// complies with the rules for a phone number. A blank value is a valid empty
// phone number.
func ParseNull(value string) (Null, error) {
	if strings.TrimSpace(value) == "" {
		return Null{}, nil
	}

	p, err := Parse(value)
	if err != nil {
		return Null{}, err
	}

	return Null{p.value, true}, nil
}

// MustParseNull parses the string value and returns a phone number if the value
// complies with the rules for a phone number. If an error occurs the function panics.
func MustParseNull(value string) Null {
	phone, err := ParseNull(value)
	if err != nil {
		panic(err)
	}

	return phone
}
