package main

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/matsen/namenotes/internal/config"
	"github.com/matsen/namenotes/internal/name"
	"github.com/matsen/namenotes/internal/query"
	"github.com/matsen/namenotes/internal/storage"
)

// changedSet returns a Changed func reporting the given flags as set.
func changedSet(flags ...string) func(string) bool {
	set := make(map[string]bool)
	for _, f := range flags {
		set[f] = true
	}
	return func(f string) bool { return set[f] }
}

// captureStderr redirects warnings for the duration of a test.
func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = orig })
	return &buf
}

func TestReadOptionsSpec_OnlyChangedFlags(t *testing.T) {
	o := readOptions{name: "ignored", language: "Latin", length: 3}

	spec, err := o.spec(changedSet("language"))
	if err != nil {
		t.Fatalf("spec() error = %v", err)
	}
	if spec.Name != nil || spec.Length != nil {
		t.Errorf("unset flags constrained the spec: %s", spec.Describe())
	}
	if spec.Language == nil || *spec.Language != "Latin" {
		t.Errorf("Language = %v, want Latin", spec.Language)
	}

	empty, err := o.spec(changedSet())
	if err != nil {
		t.Fatalf("spec() error = %v", err)
	}
	if !empty.IsEmpty() {
		t.Errorf("spec with no flags = %s, want empty", empty.Describe())
	}
}

func TestReadOptionsSpec_ExplicitEmptyValue(t *testing.T) {
	// --language "" is a constraint that no record satisfies
	o := readOptions{}
	spec, err := o.spec(changedSet("language"))
	if err != nil {
		t.Fatalf("spec() error = %v", err)
	}
	r := name.Record{Name: "Kim", Gender: name.Unisex}
	if spec.Matches(&r) {
		t.Error("empty --language matched a record without language")
	}
}

func TestReadOptionsSpec_Gender(t *testing.T) {
	o := readOptions{gender: "Female"}
	spec, err := o.spec(changedSet("gender"))
	if err != nil {
		t.Fatalf("spec() error = %v", err)
	}
	if spec.Gender == nil || *spec.Gender != name.Female {
		t.Errorf("Gender = %v, want female", spec.Gender)
	}

	o.gender = "robot"
	if _, err := o.spec(changedSet("gender")); !errors.Is(err, name.ErrInvalidGender) {
		t.Errorf("spec() error = %v, want ErrInvalidGender", err)
	}
}

func TestReadOptionsSpec_ContainsLetter(t *testing.T) {
	tests := []struct {
		input   string
		want    rune
		wantErr bool
	}{
		{"x", 'x', false},
		{"Æ", 'Æ', false},
		{"", 0, true},
		{"xy", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			o := readOptions{containsLetter: tt.input}
			spec, err := o.spec(changedSet("contains-letter"))
			if tt.wantErr {
				if !errors.Is(err, errLetterNotSingle) {
					t.Fatalf("spec() error = %v, want errLetterNotSingle", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("spec() error = %v", err)
			}
			if spec.ContainsLetter == nil || *spec.ContainsLetter != tt.want {
				t.Errorf("ContainsLetter = %v, want %q", spec.ContainsLetter, tt.want)
			}
		})
	}
}

func TestReadOptionsSpec_Length(t *testing.T) {
	o := readOptions{length: -1}
	if _, err := o.spec(changedSet("length")); !errors.Is(err, errNegativeLength) {
		t.Errorf("spec() error = %v, want errNegativeLength", err)
	}

	o.length = 0
	spec, err := o.spec(changedSet("length"))
	if err != nil {
		t.Fatalf("spec() error = %v", err)
	}
	if spec.Length == nil || *spec.Length != 0 {
		t.Errorf("Length = %v, want 0", spec.Length)
	}
}

func TestWriteOptionsRecord(t *testing.T) {
	o := writeOptions{name: " Alice ", gender: name.Female}
	r, err := o.record()
	if err != nil {
		t.Fatalf("record() error = %v", err)
	}
	want := name.Record{Name: "Alice", Gender: name.Female}
	if r != want {
		t.Errorf("record() = %+v, want %+v", r, want)
	}

	o.name = ""
	if _, err := o.record(); !errors.Is(err, name.ErrEmptyName) {
		t.Errorf("record() error = %v, want ErrEmptyName", err)
	}
}

func TestScenario_AliceGender(t *testing.T) {
	s := &storage.MemStore{}

	alice, err := (&writeOptions{name: "Alice", gender: name.Female}).record()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := appendRecord(s, "mem", alice); err != nil {
		t.Fatalf("appendRecord() error = %v", err)
	}

	all, err := loadNames(s, "mem")
	if err != nil {
		t.Fatalf("loadNames() error = %v", err)
	}

	tests := []struct {
		gender string
		want   []string
	}{
		{"unisex", []string{}},
		{"female", []string{"Alice"}},
	}
	for _, tt := range tests {
		spec, err := (&readOptions{gender: tt.gender}).spec(changedSet("gender"))
		if err != nil {
			t.Fatal(err)
		}
		got := query.Filter(all, spec).Names()
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("read --gender %s = %v, want %v", tt.gender, got, tt.want)
		}
	}

	if got := query.Filter(all, query.Spec{}).Names(); !reflect.DeepEqual(got, []string{"Alice"}) {
		t.Errorf("read = %v, want [Alice]", got)
	}
}

func TestScenario_MaxMaxine(t *testing.T) {
	s := &storage.MemStore{}
	for _, n := range []string{"Max", "Maxine"} {
		r, err := (&writeOptions{name: n, gender: name.Unisex}).record()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := appendRecord(s, "mem", r); err != nil {
			t.Fatalf("appendRecord(%s) error = %v", n, err)
		}
	}

	all, err := loadNames(s, "mem")
	if err != nil {
		t.Fatal(err)
	}
	spec, err := (&readOptions{containsLetter: "x"}).spec(changedSet("contains-letter"))
	if err != nil {
		t.Fatal(err)
	}
	got := query.Filter(all, spec).Names()
	if want := []string{"Max", "Maxine"}; !reflect.DeepEqual(got, want) {
		t.Errorf("read --contains-letter x = %v, want %v", got, want)
	}
}

func TestAppendRecord_TruncatedStoreStartsFresh(t *testing.T) {
	warnings := captureStderr(t)
	s := &storage.MemStore{Data: []byte(`[{"name":"Lost"`)}

	r := name.Record{Name: "Fresh", Gender: name.Unisex}
	all, err := appendRecord(s, "mem", r)
	if err != nil {
		t.Fatalf("appendRecord() error = %v", err)
	}
	if got := all.Names(); !reflect.DeepEqual(got, []string{"Fresh"}) {
		t.Errorf("collection = %v, want [Fresh]", got)
	}
	if !strings.Contains(warnings.String(), "truncated") {
		t.Errorf("expected truncation warning, got %q", warnings.String())
	}
}

func TestAppendRecord_MalformedStoreIsFatal(t *testing.T) {
	original := []byte(`{"not": "a list"}`)
	s := &storage.MemStore{Data: original}

	_, err := appendRecord(s, "mem", name.Record{Name: "New", Gender: name.Unisex})
	if err == nil {
		t.Fatal("appendRecord() expected error for malformed store")
	}
	if code := exitCodeFor(err); code != ExitDataError {
		t.Errorf("exit code = %d, want %d", code, ExitDataError)
	}
	if s.Saves != 0 || !bytes.Equal(s.Data, original) {
		t.Errorf("malformed store was overwritten: %q", s.Data)
	}
}

type failingStore struct {
	storage.MemStore
}

func (f *failingStore) Save([]byte) error {
	return errors.New("disk full")
}

func TestAppendRecord_SaveFailure(t *testing.T) {
	s := &failingStore{}
	_, err := appendRecord(s, "mem", name.Record{Name: "New", Gender: name.Unisex})
	if err == nil {
		t.Fatal("appendRecord() expected error")
	}
	if code := exitCodeFor(err); code != ExitIOError {
		t.Errorf("exit code = %d, want %d", code, ExitIOError)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("error %q does not carry the cause", err)
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain", errors.New("boom"), ExitError},
		{"coded", withCode(ExitIOError, errors.New("io")), ExitIOError},
		{"no home", fmt.Errorf("resolving: %w", config.ErrNoHomeDir), ExitConfigError},
		{"malformed", fmt.Errorf("x: %w", storage.ErrMalformed), ExitDataError},
		{"empty name", name.ErrEmptyName, ExitDataError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWithCodeNil(t *testing.T) {
	if withCode(ExitError, nil) != nil {
		t.Error("withCode(nil) should be nil")
	}
}

func TestPluralNames(t *testing.T) {
	if got := pluralNames(1); got != "1 name" {
		t.Errorf("pluralNames(1) = %q", got)
	}
	if got := pluralNames(3); got != "3 names" {
		t.Errorf("pluralNames(3) = %q", got)
	}
}
