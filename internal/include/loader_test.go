package include

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"template-validator/internal/document"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func fragment(t *testing.T, f *Fragments, key string) *document.Node {
	t.Helper()

	n, err := f.Fragment(key)
	require.NoError(t, err, "loaded: %v", f.Names())

	return n
}

func TestLoader_Preload(t *testing.T) {
	base := t.TempDir()

	writeFile(t, filepath.Join(base, "sensors", "kitchen_heat.yaml"), "value_template: \"{{ true }}\"\n")
	writeFile(t, filepath.Join(base, "sensors", "garage.yaml"), "value_template: \"{{ false }}\"\n")
	writeFile(t, filepath.Join(base, "sensors", ".hidden.yaml"), "value_template: x\n")
	writeFile(t, filepath.Join(base, "sensors", "notes.txt"), "not yaml")
	writeFile(t, filepath.Join(base, "merged", "a.yaml"), "x:\n  value_template: \"1\"\n")
	writeFile(t, filepath.Join(base, "merged", "b.jsonc"), `{"y": {"value_template": "2"} // from the hallway
}`)
	writeFile(t, filepath.Join(base, "outer.yaml"), "inner: !include inner.yaml\n")
	writeFile(t, filepath.Join(base, "inner.yaml"), "z:\n  value_template: \"3\"\n")
	writeFile(t, filepath.Join(base, "scripts", "01.yaml"), "- service: light.turn_on\n")
	writeFile(t, filepath.Join(base, "scripts", "02.yaml"), "- service: light.turn_off\n")

	root, err := document.Parse([]byte(`
sensors:
  up: !include_dir_named sensors
  more: !include_dir_merge_named merged
  nested: !include outer.yaml
  gone: !include missing.yaml
panels:
  house:
    arm_away: !include_dir_merge_list scripts
`))
	require.NoError(t, err)

	frags, err := (&Loader{BaseDir: base}).Preload(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"!include inner.yaml",
		"!include outer.yaml",
		"!include_dir_merge_list scripts",
		"!include_dir_merge_named merged",
		"!include_dir_named sensors",
	}, frags.Names())

	assert.Equal(t, []string{"garage", "kitchen_heat"}, fragment(t, frags, "!include_dir_named sensors").Keys())
	assert.Equal(t, []string{"x", "y"}, fragment(t, frags, "!include_dir_merge_named merged").Keys())
	assert.Equal(t, []string{"z"}, fragment(t, frags, "!include inner.yaml").Keys())
	assert.Len(t, fragment(t, frags, "!include_dir_merge_list scripts").Items, 2)

	_, err = frags.Fragment("!include missing.yaml")
	require.ErrorIs(t, err, ErrFragmentNotFound)

	sensors, _ := root.Get("sensors")
	_, err = NewResolver(frags, nil).Resolve(sensors, sensorsPath)

	var missing *UnresolvedIncludeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "!include missing.yaml", missing.Name)
}

func TestLoader_PreloadResolvesCleanly(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "sensors", "a.yaml"), "value_template: \"1\"\n")
	writeFile(t, filepath.Join(base, "sensors", "b.yaml"), "value_template: \"2\"\n")

	root, err := document.Parse([]byte("kitchen:\n  value_template: \"0\"\nrest: !include_dir_named sensors\n"))
	require.NoError(t, err)

	frags, err := (&Loader{BaseDir: base}).Preload(root)
	require.NoError(t, err)

	out, err := NewResolver(frags, nil).Resolve(root, sensorsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"kitchen", "a", "b"}, out.Keys())
}

func TestLoader_NestedIncludesAreRelativeToTheirFile(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "sensors", "a.yaml"), "a: !include b.yaml\n")
	writeFile(t, filepath.Join(base, "sensors", "b.yaml"), "from_sensors:\n  value_template: \"1\"\n")
	writeFile(t, filepath.Join(base, "b.yaml"), "from_root:\n  value_template: \"2\"\n")

	root := document.Map(
		"x", document.Include(document.IncludeFile, "sensors/a.yaml"),
		"y", document.Include(document.IncludeFile, "b.yaml"),
	)

	frags, err := (&Loader{BaseDir: base}).Preload(root)
	require.NoError(t, err)

	out, err := NewResolver(frags, nil).Resolve(root, sensorsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"from_sensors", "from_root"}, out.Keys())
}

func TestLoader_SameNameDifferentTags(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "s", "a.yaml"), "k:\n  value_template: \"1\"\n")

	root := document.Map(
		"x", document.Include(document.IncludeDirNamed, "s"),
		"y", document.Include(document.IncludeDirMergeNamed, "s"),
	)

	frags, err := (&Loader{BaseDir: base}).Preload(root)
	require.NoError(t, err)

	out, err := NewResolver(frags, nil).Resolve(root, sensorsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "k"}, out.Keys())
}

func TestLoader_SameNameDifferentDirectories(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "up", "a.yaml"), "a: !include common.yaml\n")
	writeFile(t, filepath.Join(base, "up", "common.yaml"), "upstairs:\n  value_template: \"1\"\n")
	writeFile(t, filepath.Join(base, "down", "b.yaml"), "b: !include common.yaml\n")
	writeFile(t, filepath.Join(base, "down", "common.yaml"), "downstairs:\n  value_template: \"2\"\n")

	root := document.Map(
		"x", document.Include(document.IncludeFile, "up/a.yaml"),
		"y", document.Include(document.IncludeFile, "down/b.yaml"),
	)

	frags, err := (&Loader{BaseDir: base}).Preload(root)
	require.NoError(t, err)

	out, err := NewResolver(frags, nil).Resolve(root, sensorsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"upstairs", "downstairs"}, out.Keys())
}

func TestLoader_CircularFilesTerminate(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "a.yaml"), "b: !include b.yaml\n")
	writeFile(t, filepath.Join(base, "b.yaml"), "a: !include a.yaml\n")

	root := document.Map("x", document.Include(document.IncludeFile, "a.yaml"))

	frags, err := (&Loader{BaseDir: base}).Preload(root)
	require.NoError(t, err)

	_, err = NewResolver(frags, nil).Resolve(root, sensorsPath)

	var circular *CircularIncludeError
	require.ErrorAs(t, err, &circular)
	assert.Equal(t, []string{"!include a.yaml", "!include b.yaml", "!include a.yaml"}, circular.Chain)
}

func TestLoader_EmptyFiles(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "empty.yaml"), "")
	writeFile(t, filepath.Join(base, "merged", "a.yaml"), "x:\n  value_template: \"1\"\n")
	writeFile(t, filepath.Join(base, "merged", "b.yaml"), "# nothing here yet\n")
	writeFile(t, filepath.Join(base, "named", "c.yaml"), "")

	root := document.Map(
		"e", document.Include(document.IncludeFile, "empty.yaml"),
		"m", document.Include(document.IncludeDirMergeNamed, "merged"),
		"n", document.Include(document.IncludeDirNamed, "named"),
	)

	frags, err := (&Loader{BaseDir: base}).Preload(root)
	require.NoError(t, err)

	assert.Equal(t, document.KindNull, fragment(t, frags, "!include empty.yaml").Kind)
	assert.Equal(t, []string{"x"}, fragment(t, frags, "!include_dir_merge_named merged").Keys())

	named := fragment(t, frags, "!include_dir_named named")
	c, ok := named.Get("c")
	require.True(t, ok)
	assert.Equal(t, document.KindNull, c.Kind)
}

func TestLoader_BadFragment(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "broken.yaml"), "a: [1, 2\n")

	root := document.Map("x", document.Include(document.IncludeFile, "broken.yaml"))

	_, err := (&Loader{BaseDir: base}).Preload(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLoader_MergeNamedNeedsMappings(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "merged", "a.yaml"), "- 1\n")

	root := document.Map("x", document.Include(document.IncludeDirMergeNamed, "merged"))

	_, err := (&Loader{BaseDir: base}).Preload(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a mapping")
}
