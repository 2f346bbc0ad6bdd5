package name

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Gender classifies a name. The order Male < Female < Unisex is only used for
// stable sorting and carries no meaning.
type Gender int

const (
	Male Gender = iota
	Female
	Unisex
)

// ErrInvalidGender is returned when text does not name a known gender.
var ErrInvalidGender = errors.New("gender must be one of: male, female, unisex")

// GenderNames lists the accepted gender values in order.
var GenderNames = []string{"male", "female", "unisex"}

// String returns the serialized form: "male", "female" or "unisex".
func (g Gender) String() string {
	if g < Male || g > Unisex {
		return fmt.Sprintf("Gender(%d)", int(g))
	}
	return GenderNames[g]
}

// Label returns the human-readable label used in reports.
func (g Gender) Label() string {
	switch g {
	case Male:
		return "Masculine"
	case Female:
		return "Feminine"
	default:
		return "Unisex"
	}
}

// ParseGender parses a gender name case-insensitively.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	case "unisex":
		return Unisex, nil
	}
	return Unisex, fmt.Errorf("%w: got %q", ErrInvalidGender, s)
}

// MarshalJSON encodes the gender as its lowercase name.
func (g Gender) MarshalJSON() ([]byte, error) {
	if g < Male || g > Unisex {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGender, int(g))
	}
	return json.Marshal(g.String())
}

// UnmarshalJSON accepts any casing of the gender name. null leaves the value unchanged.
func (g *Gender) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGender, data)
	}
	parsed, err := ParseGender(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Set implements pflag.Value so a Gender can be bound directly to a flag.
func (g *Gender) Set(s string) error {
	parsed, err := ParseGender(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Type implements pflag.Value.
func (g *Gender) Type() string {
	return "male|female|unisex"
}
