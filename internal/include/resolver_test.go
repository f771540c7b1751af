package include

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"template-validator/internal/diagnostic"
	"template-validator/internal/document"
)

var sensorsPath = diagnostic.Path{}.Key("sensors")

func item(tmpl string) *document.Node {
	return document.Map("value_template", document.String(tmpl))
}

func TestResolve_NoMarkers(t *testing.T) {
	collection := document.Map("a", item("1"), "b", item("2"))

	out, err := NewResolver(Table{}, nil).Resolve(collection, sensorsPath)
	require.NoError(t, err)
	assert.Equal(t, collection.Entries, out.Entries)
}

func TestResolve_SplicesInPlace(t *testing.T) {
	collection := document.Map(
		"a", item("1"),
		"upstairs", document.Include(document.IncludeDirNamed, "sensors/upstairs"),
		"z", item("26"),
	)
	table := Table{"sensors/upstairs": document.Map("b", item("2"), "c", item("3"))}

	out, err := NewResolver(table, nil).Resolve(collection, sensorsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "z"}, out.Keys())

	// the input is untouched
	assert.Equal(t, []string{"a", "upstairs", "z"}, collection.Keys())
}

func TestResolve_WholeCollectionMarker(t *testing.T) {
	table := Table{"sensors": document.Map("b", item("2"), "c", item("3"))}

	out, err := NewResolver(table, nil).Resolve(document.Include(document.IncludeDirMergeNamed, "sensors"), sensorsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, out.Keys())
}

func TestResolve_Nested(t *testing.T) {
	table := Table{
		"outer": document.Map("b", item("2"), "more", document.Include(document.IncludeFile, "inner")),
		"inner": document.Map("c", item("3")),
	}

	out, err := NewResolver(table, nil).Resolve(document.Map("x", document.Include(document.IncludeFile, "outer")), sensorsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, out.Keys())
}

func TestResolve_Idempotent(t *testing.T) {
	collection := document.Map("a", item("1"), "more", document.Include(document.IncludeDirNamed, "more"))
	r := NewResolver(Table{"more": document.Map("b", item("2"))}, nil)

	once, err := r.Resolve(collection, sensorsPath)
	require.NoError(t, err)

	twice, err := r.Resolve(once, sensorsPath)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestResolve_DuplicateAcrossFragments(t *testing.T) {
	collection := document.Map(
		"first", document.Include(document.IncludeFile, "a"),
		"second", document.Include(document.IncludeFile, "b"),
	)
	table := Table{
		"a": document.Map("kitchen_heat", item("1")),
		"b": document.Map("kitchen_heat", document.Map()),
	}

	_, err := NewResolver(table, nil).Resolve(collection, sensorsPath)
	require.Error(t, err)

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "sensors.kitchen_heat", dup.Path.String())
	assert.Equal(t, `key "kitchen_heat" is defined twice (include "a" and include "b")`, err.Error())
}

func TestResolve_DuplicateInlineAndFragment(t *testing.T) {
	collection := document.Map("kitchen_heat", item("1"), "more", document.Include(document.IncludeFile, "a"))

	_, err := NewResolver(Table{"a": document.Map("kitchen_heat", item("2"))}, nil).Resolve(collection, sensorsPath)

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "inline", dup.First)
	assert.Equal(t, `include "a"`, dup.Second)
}

func TestResolve_DuplicateLiteralKeys(t *testing.T) {
	collection := document.Map("a", item("1"), "a", item("2"))

	_, err := NewResolver(nil, nil).Resolve(collection, sensorsPath)

	var dup *DuplicateKeyError
	assert.True(t, errors.As(err, &dup))
}

func TestResolve_Circular(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		chain []string
	}{
		{
			name:  "self",
			table: Table{"a": document.Map("x", document.Include(document.IncludeFile, "a"))},
			chain: []string{"a", "a"},
		},
		{
			name: "transitive",
			table: Table{
				"a": document.Map("x", document.Include(document.IncludeFile, "b")),
				"b": document.Map("y", document.Include(document.IncludeDirNamed, "a")),
			},
			chain: []string{"a", "b", "a"},
		},
		{
			name:  "fragment is itself a marker",
			table: Table{"a": document.Include(document.IncludeFile, "a")},
			chain: []string{"a", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collection := document.Map("root", document.Include(document.IncludeFile, "a"))

			_, err := NewResolver(tt.table, nil).Resolve(collection, sensorsPath)

			var circular *CircularIncludeError
			require.True(t, errors.As(err, &circular), "got %v", err)
			assert.Equal(t, tt.chain, circular.Chain)
		})
	}
}

func TestResolve_Unresolved(t *testing.T) {
	collection := document.Map("x", document.Include(document.IncludeDirNamed, "missing"))

	_, err := NewResolver(Table{}, nil).Resolve(collection, sensorsPath)

	var missing *UnresolvedIncludeError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "missing", missing.Name)
	assert.True(t, errors.Is(err, ErrFragmentNotFound))

	_, err = NewResolver(nil, nil).Resolve(collection, sensorsPath)
	require.True(t, errors.As(err, &missing))
	assert.Contains(t, err.Error(), "no include source configured")
}

func TestResolve_FragmentNotAMapping(t *testing.T) {
	collection := document.Map("x", document.Include(document.IncludeFile, "list"))

	_, err := NewResolver(Table{"list": document.Seq(item("1"))}, nil).Resolve(collection, sensorsPath)

	var missing *UnresolvedIncludeError
	require.True(t, errors.As(err, &missing))
	assert.Contains(t, err.Error(), "fragment is a sequence")
}

func TestResolve_EmptyFragment(t *testing.T) {
	collection := document.Map("a", item("1"), "x", document.Include(document.IncludeFile, "empty"))

	out, err := NewResolver(Table{"empty": document.Null()}, nil).Resolve(collection, sensorsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, out.Keys())
}

func TestResolve_ListMarkerLeftInPlace(t *testing.T) {
	collection := document.Map("a", document.Include(document.IncludeDirList, "scripts"))

	out, err := NewResolver(Table{}, nil).Resolve(collection, sensorsPath)
	require.NoError(t, err)

	a, ok := out.Get("a")
	require.True(t, ok)
	assert.Equal(t, document.KindInclude, a.Kind)
}

func TestResolve_NotACollection(t *testing.T) {
	_, err := NewResolver(Table{}, nil).Resolve(document.String("x"), sensorsPath)
	assert.Error(t, err)

	_, err = NewResolver(Table{}, nil).Resolve(nil, sensorsPath)
	assert.Error(t, err)

	_, ok := Violation(err)
	assert.False(t, ok)
}

func TestViolation(t *testing.T) {
	tests := []struct {
		err  error
		code diagnostic.Code
	}{
		{&DuplicateKeyError{Path: sensorsPath.Key("a"), Key: "a", First: "inline", Second: "inline"}, diagnostic.DuplicateKey},
		{&CircularIncludeError{Path: sensorsPath, Chain: []string{"a", "a"}}, diagnostic.CircularInclude},
		{&UnresolvedIncludeError{Path: sensorsPath, Name: "a", Err: ErrFragmentNotFound}, diagnostic.UnresolvedInclude},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			v, ok := Violation(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.code, v.Code)
			assert.Equal(t, diagnostic.SeverityFatal, v.Severity)
			assert.Equal(t, tt.err.Error(), v.Message)
		})
	}
}
