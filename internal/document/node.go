package document

import (
	"fmt"
	"strconv"
	"strings"

	"template-validator/internal/common"
)

// Kind is the shape of a Node.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindMapping
	KindSequence
	KindInclude
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindInclude:
		return "include"
	default:
		return common.UnknownStr
	}
}

// ScalarType is the resolved YAML core-schema type of a scalar.
type ScalarType int

const (
	ScalarString ScalarType = iota
	ScalarBool
	ScalarInt
	ScalarFloat
)

// String returns a human-readable scalar type name.
func (s ScalarType) String() string {
	switch s {
	case ScalarString:
		return "string"
	case ScalarBool:
		return "boolean"
	case ScalarInt:
		return "integer"
	case ScalarFloat:
		return "float"
	default:
		return common.UnknownStr
	}
}

// IncludeKind distinguishes the include tags.
type IncludeKind int

const (
	// IncludeFile is !include: a single file whose content replaces the node.
	IncludeFile IncludeKind = iota
	// IncludeDirNamed is !include_dir_named: one entry per file, keyed by file name.
	IncludeDirNamed
	// IncludeDirMergeNamed is !include_dir_merge_named: files are mappings merged together.
	IncludeDirMergeNamed
	// IncludeDirList is !include_dir_list: one sequence item per file.
	IncludeDirList
	// IncludeDirMergeList is !include_dir_merge_list: files are sequences concatenated.
	IncludeDirMergeList
)

var includeTags = map[string]IncludeKind{
	"!include":                 IncludeFile,
	"!include_dir_named":       IncludeDirNamed,
	"!include_dir_merge_named": IncludeDirMergeNamed,
	"!include_dir_list":        IncludeDirList,
	"!include_dir_merge_list":  IncludeDirMergeList,
}

// Tag returns the YAML tag for the include kind.
func (k IncludeKind) Tag() string {
	for tag, kind := range includeTags {
		if kind == k {
			return tag
		}
	}

	return common.UnknownStr
}

// Named reports whether the include stands for a set of named entries
// (a mapping). !include may stand for anything and counts as both.
func (k IncludeKind) Named() bool {
	return k == IncludeFile || k == IncludeDirNamed || k == IncludeDirMergeNamed
}

// List reports whether the include stands for a sequence.
func (k IncludeKind) List() bool {
	return k == IncludeFile || k == IncludeDirList || k == IncludeDirMergeList
}

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   string
	Value *Node
	// Position of the key in the source, zero when unknown.
	Line   int
	Column int
}

// Node is one value of a configuration document.
type Node struct {
	Kind Kind

	// Scalar fields.
	Scalar ScalarType
	// Value is the raw scalar text, or the referenced name for includes.
	Value string
	// Tag is the explicit local tag (e.g. "!secret"), empty for plain values.
	Tag string

	// Entries holds mapping content in source order. Duplicate keys are kept.
	Entries []Entry
	// Items holds sequence content.
	Items []*Node

	Include IncludeKind

	Line   int
	Column int
}

// Get returns the value of the first entry named key.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMapping {
		return nil, false
	}

	for i := range n.Entries {
		if n.Entries[i].Key == key {
			return n.Entries[i].Value, true
		}
	}

	return nil, false
}

// Keys returns the mapping keys in source order.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != KindMapping {
		return nil
	}

	keys := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		keys[i] = e.Key
	}

	return keys
}

// IsString reports whether n is a string scalar.
func (n *Node) IsString() bool {
	return n != nil && n.Kind == KindScalar && n.Scalar == ScalarString
}

// IsNumber reports whether n is an integer or float scalar.
func (n *Node) IsNumber() bool {
	return n != nil && n.Kind == KindScalar && (n.Scalar == ScalarInt || n.Scalar == ScalarFloat)
}

// Bool returns the boolean value of a bool scalar.
func (n *Node) Bool() (bool, bool) {
	if n == nil || n.Kind != KindScalar || n.Scalar != ScalarBool {
		return false, false
	}

	switch strings.ToLower(n.Value) {
	case "true", "yes", "on", "y":
		return true, true
	default:
		return false, true
	}
}

// Float returns the numeric value of an integer or float scalar.
func (n *Node) Float() (float64, bool) {
	if !n.IsNumber() {
		return 0, false
	}

	text := strings.ReplaceAll(n.Value, "_", "")

	if n.Scalar == ScalarInt {
		i, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return 0, false
		}

		return float64(i), true
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// Describe names the shape of n for type-mismatch messages: "string",
// "boolean", "integer", "float", "mapping", "sequence", "null" or "include".
func (n *Node) Describe() string {
	if n == nil {
		return KindNull.String()
	}

	if n.Kind == KindScalar {
		return n.Scalar.String()
	}

	return n.Kind.String()
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	out := *n

	if n.Entries != nil {
		out.Entries = make([]Entry, len(n.Entries))
		for i, e := range n.Entries {
			e.Value = e.Value.Clone()
			out.Entries[i] = e
		}
	}

	if n.Items != nil {
		out.Items = make([]*Node, len(n.Items))
		for i, item := range n.Items {
			out.Items[i] = item.Clone()
		}
	}

	return &out
}

// String renders n compactly, mainly for logs and test failure output.
func (n *Node) String() string {
	if n == nil {
		return "null"
	}

	switch n.Kind {
	case KindScalar:
		if n.Scalar == ScalarString {
			return strconv.Quote(n.Value)
		}

		return n.Value
	case KindMapping:
		parts := make([]string, len(n.Entries))
		for i, e := range n.Entries {
			parts[i] = e.Key + ": " + e.Value.String()
		}

		return "{" + strings.Join(parts, ", ") + "}"
	case KindSequence:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			parts[i] = item.String()
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case KindInclude:
		return fmt.Sprintf("%s %s", n.Include.Tag(), n.Value)
	default:
		return "null"
	}
}
