package document

import (
	"fmt"

	"template-validator/internal/diagnostic"
)

// Document is one platform block to validate.
type Document struct {
	// Domain is the integration the block was declared under: "sensor",
	// "binary_sensor" or "alarm_control_panel". The template platform uses
	// the same platform literal for all of them, so the domain is what
	// selects the schema.
	Domain string
	// Base locates Root inside the file it came from, e.g. "sensor[1]".
	// Violation paths are reported relative to it.
	Base diagnostic.Path
	// Source names the file, for messages. Optional.
	Source string
	Root   *Node
}

// New wraps a decoded block for validation.
func New(domain string, root *Node) *Document {
	return &Document{Domain: domain, Root: root}
}

// Blocks extracts the platform blocks declared under the given domains of a
// full configuration file. A domain value may be a single block or a list of
// blocks, the two styles Home Assistant accepts:
//
//	sensor:
//	  - platform: template
//	    sensors: ...
//	binary_sensor:
//	  platform: template
//	  sensors: ...
//
// Blocks come out in file order. Domains missing from root are skipped.
func Blocks(root *Node, domains ...string) ([]*Document, error) {
	if root == nil || root.Kind != KindMapping {
		return nil, fmt.Errorf("configuration root must be a mapping, got %s", root.Describe())
	}

	wanted := map[string]struct{}{}
	for _, d := range domains {
		wanted[d] = struct{}{}
	}

	var out []*Document

	for _, e := range root.Entries {
		if _, ok := wanted[e.Key]; !ok {
			continue
		}

		base := diagnostic.Path{}.Key(e.Key)

		switch e.Value.Kind {
		case KindSequence:
			for i, item := range e.Value.Items {
				out = append(out, &Document{Domain: e.Key, Base: base.Index(i), Root: item})
			}
		case KindNull:
		default:
			out = append(out, &Document{Domain: e.Key, Base: base, Root: e.Value})
		}
	}

	return out, nil
}
