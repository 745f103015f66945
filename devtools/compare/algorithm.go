package compare

import (
	"fmt"

	"znkr.io/diff"
)

// Algorithm selects how lines of the two inputs are paired up.
type Algorithm int

const (
	// Aligned pairs lines by their position.
	Aligned Algorithm = iota
	// Myers pairs lines by content using a minimal edit script.
	Myers
)

// Algorithms lists all algorithms by name.
var Algorithms = map[string]Algorithm{
	"aligned": Aligned,
	"myers":   Myers,
}

func (a Algorithm) String() string {
	for name, algo := range Algorithms {
		if algo == a {
			return name
		}
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm returns the algorithm with the given name. The empty name selects Aligned.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		return Aligned, nil
	}
	algo, ok := Algorithms[name]
	if !ok {
		return 0, fmt.Errorf("unknown diff algorithm %q", name)
	}
	return algo, nil
}

func myers(x, y []string) []Edit {
	edits := diff.Edits(x, y)
	ret := make([]Edit, 0, len(edits))
	for _, e := range edits {
		switch e.Op {
		case diff.Match:
			ret = append(ret, Edit{Equal, e.X})
		case diff.Delete:
			ret = append(ret, Edit{Removed, e.X})
		case diff.Insert:
			ret = append(ret, Edit{Added, e.Y})
		}
	}
	return ret
}
