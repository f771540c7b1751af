package include

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"template-validator/internal/diagnostic"
	"template-validator/internal/document"
)

// Resolver expands named include markers using a Source. It holds no
// per-call state and is safe for concurrent use.
type Resolver struct {
	source Source
	log    *zap.SugaredLogger
}

// NewResolver returns a Resolver. A nil source resolves nothing: every
// marker becomes an UnresolvedIncludeError. A nil logger discards logs.
func NewResolver(source Source, log *zap.SugaredLogger) *Resolver {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Resolver{source: source, log: log}
}

// resolution is the state of one Resolve call.
type resolution struct {
	*Resolver
	seen  map[string]string
	stack []string
	out   []document.Entry
}

// Resolve returns collection with every named include marker expanded.
// collection is either a mapping or a marker standing for the whole
// mapping; path is where it sits in the document. The input is never
// modified. Already resolved input comes back unchanged in content.
func (r *Resolver) Resolve(collection *document.Node, path diagnostic.Path) (*document.Node, error) {
	if collection == nil {
		return nil, fmt.Errorf("cannot resolve includes in a nil collection")
	}

	res := &resolution{Resolver: r, seen: map[string]string{}}

	switch {
	case collection.Kind == document.KindInclude && collection.Include.Named():
		if err := res.expand(collection, path); err != nil {
			return nil, err
		}
	case collection.Kind == document.KindMapping:
		if err := res.entries(collection, path, "inline"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("cannot resolve includes in a %s", collection.Describe())
	}

	return &document.Node{
		Kind:    document.KindMapping,
		Entries: res.out,
		Line:    collection.Line,
		Column:  collection.Column,
	}, nil
}

func (res *resolution) entries(m *document.Node, path diagnostic.Path, origin string) error {
	for _, e := range m.Entries {
		if e.Value != nil && e.Value.Kind == document.KindInclude && e.Value.Include.Named() {
			res.log.Debugw("expanding include", "path", path.Key(e.Key).String(), "include", e.Value.String())

			if err := res.expand(e.Value, path); err != nil {
				return err
			}

			continue
		}

		if first, dup := res.seen[e.Key]; dup {
			return &DuplicateKeyError{Path: path.Key(e.Key), Key: e.Key, First: first, Second: origin}
		}

		res.seen[e.Key] = origin
		res.out = append(res.out, e)
	}

	return nil
}

func (res *resolution) expand(marker *document.Node, path diagnostic.Path) error {
	name := marker.Value
	if k, ok := res.source.(Keyer); ok {
		name = k.Key(marker)
	}

	if slices.Contains(res.stack, name) {
		return &CircularIncludeError{Path: path, Chain: append(slices.Clone(res.stack), name)}
	}

	if res.source == nil {
		return &UnresolvedIncludeError{Path: path, Name: name, Reason: "no include source configured"}
	}

	fragment, err := res.source.Fragment(name)
	if err != nil {
		return &UnresolvedIncludeError{Path: path, Name: name, Err: err}
	}

	switch {
	case fragment == nil || fragment.Kind == document.KindNull:
		// An empty included file contributes nothing.
		return nil
	case fragment.Kind == document.KindInclude && fragment.Include.Named():
		res.stack = append(res.stack, name)
		err = res.expand(fragment, path)
	case fragment.Kind == document.KindMapping:
		res.stack = append(res.stack, name)
		err = res.entries(fragment, path, fmt.Sprintf("include %q", name))
	default:
		return &UnresolvedIncludeError{
			Path:   path,
			Name:   name,
			Reason: fmt.Sprintf("fragment is a %s, expected a mapping of named entries", fragment.Describe()),
		}
	}

	res.stack = res.stack[:len(res.stack)-1]

	return err
}
