package include

import (
	"fmt"

	"template-validator/internal/document"
)

// Source supplies include fragments by name.
type Source interface {
	Fragment(name string) (*document.Node, error)
}

// Keyer is implemented by sources that tell apart markers sharing a name.
// Without it a marker is looked up by its name alone.
type Keyer interface {
	Key(marker *document.Node) string
}

// Table is an in-memory Source.
type Table map[string]*document.Node

// Fragment implements Source.
func (t Table) Fragment(name string) (*document.Node, error) {
	n, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFragmentNotFound, name)
	}

	return n, nil
}
