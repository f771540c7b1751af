package diagnostic

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: either a mapping key or a sequence index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path locates a node in a configuration document.
// The zero value is the document root.
type Path []Segment

// Key returns a new path extended by a mapping key. The receiver is never
// modified, so sibling paths built from the same parent don't alias.
func (p Path) Key(k string) Path {
	return append(p.clone(1), Segment{Key: k})
}

// Index returns a new path extended by a sequence index.
func (p Path) Index(i int) Path {
	return append(p.clone(1), Segment{Index: i, IsIndex: true})
}

func (p Path) clone(extra int) Path {
	out := make(Path, len(p), len(p)+extra)
	copy(out, p)

	return out
}

// String renders the path as "sensors.kitchen_heat.value_template"; indices
// render as "[0]". Keys that would be ambiguous in dotted form are quoted.
func (p Path) String() string {
	var b strings.Builder

	for i, seg := range p {
		switch {
		case seg.IsIndex:
			b.WriteString("[" + strconv.Itoa(seg.Index) + "]")
		case seg.Key == "" || strings.ContainsAny(seg.Key, ".[] "):
			b.WriteString("[" + strconv.Quote(seg.Key) + "]")
		default:
			if i > 0 {
				b.WriteByte('.')
			}

			b.WriteString(seg.Key)
		}
	}

	return b.String()
}
