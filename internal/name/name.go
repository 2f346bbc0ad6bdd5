// Package name defines the core domain types for name notes.
package name

import (
	"encoding/json"
	"errors"
	"strings"
)

// Record is one noted name with what is known about it.
type Record struct {
	Name      string `json:"name"`               // Required, never empty once persisted
	Language  string `json:"language,omitempty"` // Optional, language of origin
	Meaning   string `json:"meaning,omitempty"`  // Optional, free-form meaning or etymology
	Gender    Gender `json:"gender"`             // Defaults to Unisex
	Fictional bool   `json:"fictional"`
}

// Collection is the full ordered set of records, oldest first.
// Duplicate names are allowed.
type Collection []Record

// Validation errors.
var (
	ErrEmptyName = errors.New("name is required")
)

// Option sets an optional attribute on a new record.
type Option func(*Record)

// WithLanguage sets the language of origin.
func WithLanguage(language string) Option {
	return func(r *Record) { r.Language = strings.TrimSpace(language) }
}

// WithMeaning sets the meaning.
func WithMeaning(meaning string) Option {
	return func(r *Record) { r.Meaning = strings.TrimSpace(meaning) }
}

// WithGender sets the gender.
func WithGender(g Gender) Option {
	return func(r *Record) { r.Gender = g }
}

// WithFictional marks the name as fictional.
func WithFictional(fictional bool) Option {
	return func(r *Record) { r.Fictional = fictional }
}

// New builds a record. Gender defaults to Unisex and text fields are trimmed.
func New(n string, opts ...Option) (Record, error) {
	r := Record{
		Name:   strings.TrimSpace(n),
		Gender: Unisex,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate checks the fields required for persistence.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// UnmarshalJSON decodes a record, defaulting a missing or null gender to Unisex.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	p := plain{Gender: Unisex}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Record(p)
	return nil
}

// Len returns the number of records.
func (c Collection) Len() int {
	return len(c)
}

// Names returns the names in collection order.
func (c Collection) Names() []string {
	names := make([]string, len(c))
	for i, r := range c {
		names[i] = r.Name
	}
	return names
}

// Append returns a new collection with r added at the end. The existing
// collection is never modified; a nil collection is treated as empty.
func Append(existing Collection, r Record) Collection {
	out := make(Collection, 0, len(existing)+1)
	out = append(out, existing...)
	return append(out, r)
}
