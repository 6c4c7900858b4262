package space

import (
	"fmt"
	"strings"
)

// Kind identifies a concrete variant of animated object.
// The set is closed: every switch over Kind lists each member, and adding a kind
// means adding a constant here, its default profile and its switch arms.
type Kind uint8

const (
	KindAsteroid Kind = iota + 1
	KindAstronaut
)

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindAsteroid, KindAstronaut}
}

func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindAstronaut:
		return "astronaut"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is a member of the closed set.
func (k Kind) Valid() bool {
	switch k {
	case KindAsteroid, KindAstronaut:
		return true
	default:
		return false
	}
}

// ParseKind maps a configuration name onto a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "asteroid":
		return KindAsteroid, nil
	case "astronaut":
		return KindAstronaut, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Marker tags an entity as animated by the core so the host can query for it
// separately from static scenery.
type Marker uint8

const (
	MarkerNone Marker = iota
	MarkerAnimated
)
