// Package query selects name records matching a set of optional constraints.
package query

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/matsen/namenotes/internal/name"
)

// Spec holds the optional constraints of a read. A nil field leaves that
// dimension unconstrained; Fictional only constrains when true.
type Spec struct {
	Name     *string
	Language *string
	// Meaning matches as a substring of the record's meaning.
	Meaning *string
	Gender  *name.Gender
	// Length is the exact rune count of the name.
	Length *int
	// Contains and ContainsLetter match within the name.
	Contains       *string
	ContainsLetter *rune
	Fictional      bool
}

// outcome is the result of one dimension: set is false when the spec does
// not constrain it.
type outcome struct {
	set bool
	ok  bool
}

func unset() outcome         { return outcome{} }
func result(ok bool) outcome { return outcome{set: true, ok: ok} }

// dimension evaluates one constraint of s against r.
type dimension func(s *Spec, r *name.Record) outcome

// dimensions lists every constraint. Adding a filter means adding an entry here.
var dimensions = []dimension{
	func(s *Spec, r *name.Record) outcome {
		if s.Name == nil {
			return unset()
		}
		return result(r.Name == *s.Name)
	},
	func(s *Spec, r *name.Record) outcome {
		if s.ContainsLetter == nil {
			return unset()
		}
		return result(strings.ContainsRune(r.Name, *s.ContainsLetter))
	},
	func(s *Spec, r *name.Record) outcome {
		if s.Contains == nil {
			return unset()
		}
		return result(strings.Contains(r.Name, *s.Contains))
	},
	func(s *Spec, r *name.Record) outcome {
		if s.Language == nil {
			return unset()
		}
		return result(r.Language != "" && r.Language == *s.Language)
	},
	func(s *Spec, r *name.Record) outcome {
		if s.Meaning == nil {
			return unset()
		}
		return result(r.Meaning != "" && strings.Contains(r.Meaning, *s.Meaning))
	},
	func(s *Spec, r *name.Record) outcome {
		if s.Gender == nil {
			return unset()
		}
		return result(GenderCompatible(r.Gender, *s.Gender))
	},
	func(s *Spec, r *name.Record) outcome {
		if s.Length == nil {
			return unset()
		}
		return result(utf8.RuneCountInString(r.Name) == *s.Length)
	},
	func(s *Spec, r *name.Record) outcome {
		if !s.Fictional {
			return unset()
		}
		return result(r.Fictional)
	},
}

// GenderCompatible reports whether a stored gender satisfies a requested one.
// Unisex records satisfy any request; a gendered record only satisfies a
// request for the same gender.
func GenderCompatible(stored, requested name.Gender) bool {
	return stored == requested || stored == name.Unisex
}

// Matches reports whether r satisfies every constrained dimension of s.
// A spec with no constraints matches everything.
func (s *Spec) Matches(r *name.Record) bool {
	var outcomes []bool
	for _, d := range dimensions {
		if o := d(s, r); o.set {
			outcomes = append(outcomes, o.ok)
		}
	}
	for _, ok := range outcomes {
		if !ok {
			return false
		}
	}
	return true
}

// IsEmpty reports whether s constrains nothing.
func (s *Spec) IsEmpty() bool {
	return s.Name == nil && s.Language == nil && s.Meaning == nil &&
		s.Gender == nil && s.Length == nil && s.Contains == nil &&
		s.ContainsLetter == nil && !s.Fictional
}

// Describe returns the active constraints as "key=value" pairs, for report headers.
func (s *Spec) Describe() string {
	var parts []string
	if s.Name != nil {
		parts = append(parts, fmt.Sprintf("name=%q", *s.Name))
	}
	if s.Language != nil {
		parts = append(parts, fmt.Sprintf("language=%q", *s.Language))
	}
	if s.Meaning != nil {
		parts = append(parts, fmt.Sprintf("meaning~%q", *s.Meaning))
	}
	if s.Gender != nil {
		parts = append(parts, "gender="+s.Gender.String())
	}
	if s.Length != nil {
		parts = append(parts, fmt.Sprintf("length=%d", *s.Length))
	}
	if s.Contains != nil {
		parts = append(parts, fmt.Sprintf("contains=%q", *s.Contains))
	}
	if s.ContainsLetter != nil {
		parts = append(parts, fmt.Sprintf("contains-letter=%q", *s.ContainsLetter))
	}
	if s.Fictional {
		parts = append(parts, "fictional")
	}
	return strings.Join(parts, ", ")
}

// Filter returns the records of c matching s, in their original order.
// The result is empty, not nil, when nothing matches.
func Filter(c name.Collection, s Spec) name.Collection {
	out := make(name.Collection, 0, len(c))
	for i := range c {
		if s.Matches(&c[i]) {
			out = append(out, c[i])
		}
	}
	return out
}
