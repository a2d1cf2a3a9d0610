package tilemap

import "fmt"

// Kind represents the type of a tile
type Kind int

const (
	KindDecor Kind = iota
	KindGrass
	KindLargeDecor
	KindStone
	KindSpawner
)

var kindNames = [...]string{
	KindDecor:      "decor",
	KindGrass:      "grass",
	KindLargeDecor: "large_decor",
	KindStone:      "stone",
	KindSpawner:    "spawners",
}

// String returns the level-document name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind converts a level-document name into a Kind
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown tile kind %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown tile kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Kinds returns every known kind in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// DefaultSolidKinds is the collidable subset used when a level document
// does not name its own.
func DefaultSolidKinds() []Kind {
	return []Kind{KindStone, KindGrass, KindLargeDecor}
}
