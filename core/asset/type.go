package asset

import (
	"fmt"
	"strings"
)

// Type is the closed set of asset types. The declaration order is the primary
// sort key of the sorted view.
type Type int

const (
	// TypeNone marks an unclassified asset or a type mismatch.
	TypeNone Type = iota
	// TypeDirectory is a folder of the project tree.
	TypeDirectory
	// TypeModel is a 3D model file.
	TypeModel
	// TypeMesh is a mesh embedded in a model file.
	TypeMesh
	// TypeTexture is an image file.
	TypeTexture
)

var typeNames = [...]string{
	TypeNone:      "none",
	TypeDirectory: "directory",
	TypeModel:     "model",
	TypeMesh:      "mesh",
	TypeTexture:   "texture",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType converts a type name back into a Type.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(name, s) {
			return Type(i), nil
		}
	}
	return TypeNone, fmt.Errorf("unknown asset type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
