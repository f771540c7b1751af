package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when the source holds no document.
var ErrEmpty = errors.New("empty document")

// opaqueTags are substituted by Home Assistant at load time; to validation
// they are plain strings.
var opaqueTags = map[string]struct{}{
	"!secret":  {},
	"!env_var": {},
	"!input":   {},
}

// LoadFile reads and decodes a configuration file. Files ending in .json or
// .jsonc are decoded as JSONC, anything else as YAML.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var n *Node

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		n, err = ParseJSONC(data)
	default:
		n, err = Parse(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// Parse decodes the first YAML document in data.
func Parse(data []byte) (*Node, error) {
	var root yaml.Node

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if root.Kind == 0 {
		return nil, ErrEmpty
	}

	return newConverter().convert(&root)
}

// ParseJSONC strips comments and trailing commas from data and decodes the
// remaining JSON. JSON is a subset of YAML, so the YAML decoder keeps key
// order and positions for us.
func ParseJSONC(data []byte) (*Node, error) {
	stripped := jsonc.ToJSON(data)

	var root yaml.Node

	if err := yaml.Unmarshal(stripped, &root); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if root.Kind == 0 {
		return nil, ErrEmpty
	}

	return newConverter().convert(&root)
}

// converter turns yaml.v3 nodes into Nodes. active holds the anchors being
// expanded, so an alias that refers to its own ancestor is an error.
type converter struct {
	active map[*yaml.Node]struct{}
}

func newConverter() *converter {
	return &converter{active: map[*yaml.Node]struct{}{}}
}

func (c *converter) convert(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return nil, ErrEmpty
		}

		return c.convert(y.Content[0])

	case yaml.AliasNode:
		if y.Alias == nil {
			return nil, fmt.Errorf("line %d: dangling alias %q", y.Line, y.Value)
		}

		if _, loop := c.active[y.Alias]; loop {
			return nil, fmt.Errorf("line %d: alias %q refers to itself", y.Line, y.Value)
		}

		c.active[y.Alias] = struct{}{}
		defer delete(c.active, y.Alias)

		return c.convert(y.Alias)

	case yaml.ScalarNode:
		return convertScalar(y)

	case yaml.SequenceNode:
		if isLocalTag(y.Tag) {
			return nil, fmt.Errorf("line %d: tag %s is not allowed on a sequence", y.Line, y.Tag)
		}

		n := &Node{Kind: KindSequence, Items: make([]*Node, 0, len(y.Content)), Line: y.Line, Column: y.Column}

		for _, item := range y.Content {
			child, err := c.convert(item)
			if err != nil {
				return nil, err
			}

			n.Items = append(n.Items, child)
		}

		return n, nil

	case yaml.MappingNode:
		if isLocalTag(y.Tag) {
			return nil, fmt.Errorf("line %d: tag %s is not allowed on a mapping", y.Line, y.Tag)
		}

		return c.convertMapping(y)

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %v", y.Line, y.Kind)
	}
}

func convertScalar(y *yaml.Node) (*Node, error) {
	n := &Node{Kind: KindScalar, Value: y.Value, Line: y.Line, Column: y.Column}

	tag := y.ShortTag()

	if kind, ok := includeTags[tag]; ok {
		n.Kind = KindInclude
		n.Include = kind
		n.Tag = tag

		return n, nil
	}

	if _, ok := opaqueTags[tag]; ok {
		n.Scalar = ScalarString
		n.Tag = tag

		return n, nil
	}

	switch tag {
	case "!!null":
		n.Kind = KindNull
	case "!!bool":
		n.Scalar = ScalarBool
	case "!!int":
		n.Scalar = ScalarInt
	case "!!float":
		n.Scalar = ScalarFloat
	case "!!str", "!!timestamp", "!!binary":
		n.Scalar = ScalarString
	default:
		return nil, fmt.Errorf("line %d: unknown tag %s", y.Line, tag)
	}

	return n, nil
}

// convertMapping keeps entries in order and expands YAML merge keys ("<<").
// Explicit keys win over merged ones, matching YAML merge semantics.
func (c *converter) convertMapping(y *yaml.Node) (*Node, error) {
	n := &Node{Kind: KindMapping, Entries: []Entry{}, Line: y.Line, Column: y.Column}

	explicit := map[string]struct{}{}

	for i := 0; i+1 < len(y.Content); i += 2 {
		k := y.Content[i]
		if k.Kind == yaml.ScalarNode && k.ShortTag() != "!!merge" {
			explicit[k.Value] = struct{}{}
		}
	}

	for i := 0; i+1 < len(y.Content); i += 2 {
		k, v := y.Content[i], y.Content[i+1]

		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}

		if k.ShortTag() == "!!merge" {
			merged, err := c.mergeSources(v)
			if err != nil {
				return nil, err
			}

			for _, m := range merged {
				if _, ok := explicit[m.Key]; ok {
					continue
				}

				explicit[m.Key] = struct{}{}
				n.Entries = append(n.Entries, m)
			}

			continue
		}

		value, err := c.convert(v)
		if err != nil {
			return nil, err
		}

		n.Entries = append(n.Entries, Entry{Key: k.Value, Value: value, Line: k.Line, Column: k.Column})
	}

	return n, nil
}

func (c *converter) mergeSources(v *yaml.Node) ([]Entry, error) {
	var sources []*yaml.Node

	if v.Kind == yaml.SequenceNode {
		sources = v.Content
	} else {
		sources = []*yaml.Node{v}
	}

	var out []Entry

	for _, src := range sources {
		m, err := c.convert(src)
		if err != nil {
			return nil, err
		}

		if m.Kind != KindMapping {
			return nil, fmt.Errorf("line %d: merge key needs a mapping, got %s", src.Line, m.Describe())
		}

		out = append(out, m.Entries...)
	}

	return out, nil
}

func isLocalTag(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}
