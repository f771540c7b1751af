package document

import "strconv"

// String builds a string scalar.
func String(s string) *Node {
	return &Node{Kind: KindScalar, Scalar: ScalarString, Value: s}
}

// Bool builds a boolean scalar.
func Bool(b bool) *Node {
	return &Node{Kind: KindScalar, Scalar: ScalarBool, Value: strconv.FormatBool(b)}
}

// Int builds an integer scalar.
func Int(i int64) *Node {
	return &Node{Kind: KindScalar, Scalar: ScalarInt, Value: strconv.FormatInt(i, 10)}
}

// Float builds a float scalar.
func Float(f float64) *Node {
	return &Node{Kind: KindScalar, Scalar: ScalarFloat, Value: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Null builds a null node.
func Null() *Node {
	return &Node{Kind: KindNull}
}

// Map builds a mapping from alternating key, value arguments:
//
//	document.Map("value_template", document.String("{{ true }}"))
func Map(kv ...any) *Node {
	n := &Node{Kind: KindMapping, Entries: []Entry{}}

	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		value, _ := kv[i+1].(*Node)
		n.Entries = append(n.Entries, Entry{Key: key, Value: value})
	}

	return n
}

// Seq builds a sequence.
func Seq(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: append([]*Node{}, items...)}
}

// Include builds an include marker referencing name.
func Include(kind IncludeKind, name string) *Node {
	return &Node{Kind: KindInclude, Include: kind, Value: name}
}
