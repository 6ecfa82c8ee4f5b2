package identity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalid is returned by Parse for malformed IDs.
var ErrInvalid = errors.New("invalid asset id")

// ID is an opaque unique asset identifier. It is comparable and can be used as a map key.
type ID uuid.UUID

// Generate returns a fresh random ID. IDs are never recycled.
func Generate() ID {
	return ID(uuid.New())
}

// None returns the sentinel ID.
func None() ID {
	return ID(uuid.Nil)
}

// Parse decodes the textual form produced by String.
func Parse(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return None(), fmt.Errorf("%w %q: %v", ErrInvalid, s, err)
	}
	return ID(u), nil
}

// IsValid reports whether id is anything other than None.
func (id ID) IsValid() bool {
	return uuid.UUID(id) != uuid.Nil
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
