package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/matsen/namenotes/internal/name"
)

// Decode errors.
var (
	// ErrTruncated means the document ended in the middle of a value.
	ErrTruncated = errors.New("store content is truncated")
	// ErrMalformed means the document is not a valid name collection.
	ErrMalformed = errors.New("store content is malformed")
)

// Encode serializes a collection as an indented JSON array with a trailing newline.
func Encode(c name.Collection) ([]byte, error) {
	if c == nil {
		c = name.Collection{}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding names: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a JSON array of records.
//
// Empty or whitespace-only input is an empty collection. Input that ends
// mid-value returns ErrTruncated. Anything else that fails to parse, or a
// record without a name, returns ErrMalformed.
func Decode(data []byte) (name.Collection, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return name.Collection{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var c name.Collection
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after names list", ErrMalformed)
	}

	for i := range c {
		if err := c[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, i+1, err)
		}
	}

	if c == nil {
		c = name.Collection{}
	}
	return c, nil
}

// LoadCollection loads and decodes the collection held by s.
//
// Truncated content yields an empty collection together with ErrTruncated so
// that the caller can warn and carry on; the next save replaces it.
// Malformed content is returned as an error and must not be overwritten.
func LoadCollection(s Store) (name.Collection, error) {
	data, err := s.Load()
	if err != nil {
		return nil, err
	}

	c, err := Decode(data)
	if errors.Is(err, ErrTruncated) {
		return name.Collection{}, err
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SaveCollection encodes c in full before handing it to s.
func SaveCollection(s Store, c name.Collection) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := s.Save(data); err != nil {
		return fmt.Errorf("saving names: %w", err)
	}
	return nil
}
