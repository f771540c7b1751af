package include

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"template-validator/internal/common"
	"template-validator/internal/document"
)

// Loader reads include fragments from disk, the way Home Assistant resolves
// include tags relative to the file that contains them.
type Loader struct {
	// BaseDir is the directory of the top-level configuration file.
	BaseDir string
	Logger  *zap.SugaredLogger
}

var fragmentExts = map[string]struct{}{
	".yaml":  {},
	".yml":   {},
	".json":  {},
	".jsonc": {},
}

// Fragments is the Source a Loader fills. Fragments are keyed by include tag
// and resolved path, so markers sharing a name but differing in tag or
// directory never share content.
type Fragments struct {
	nodes map[string]*document.Node
	keys  map[*document.Node]string
}

// Key implements Keyer.
func (f *Fragments) Key(marker *document.Node) string {
	if k, ok := f.keys[marker]; ok {
		return k
	}

	return marker.Value
}

// Fragment implements Source.
func (f *Fragments) Fragment(key string) (*document.Node, error) {
	n, ok := f.nodes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFragmentNotFound, key)
	}

	return n, nil
}

// Names returns the keys of the loaded fragments, sorted.
func (f *Fragments) Names() []string {
	return common.SortedKeys(f.nodes)
}

// pending is a marker waiting to be loaded, with the directory its name is
// relative to.
type pending struct {
	marker *document.Node
	dir    string
}

// Preload walks root, loads every include it references (and every include
// those fragments reference) and returns them as Fragments. Missing files are
// logged and left out so the resolver reports them against the document.
// Empty files load as null fragments.
func (l *Loader) Preload(root *document.Node) (*Fragments, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	frags := &Fragments{
		nodes: map[string]*document.Node{},
		keys:  map[*document.Node]string{},
	}
	missing := map[string]struct{}{}
	queue := markers(root, l.BaseDir, nil)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		target := filepath.Join(p.dir, filepath.FromSlash(p.marker.Value))
		key := l.key(p.marker.Include, target)
		frags.keys[p.marker] = key

		if _, done := frags.nodes[key]; done {
			continue
		}

		if _, gone := missing[key]; gone {
			continue
		}

		n, nested, err := l.load(p.marker.Include, target)
		if errors.Is(err, fs.ErrNotExist) {
			log.Warnw("include target does not exist", "include", key, "base", l.BaseDir)

			missing[key] = struct{}{}

			continue
		}

		if err != nil {
			return nil, err
		}

		log.Debugw("loaded include", "include", key)

		frags.nodes[key] = n
		queue = append(queue, nested...)
	}

	if len(frags.nodes) > 0 {
		log.Debugw("preloaded includes", "names", frags.Names())
	}

	return frags, nil
}

// key names a fragment by its tag and its path relative to BaseDir.
func (l *Loader) key(kind document.IncludeKind, target string) string {
	name := target
	if rel, err := filepath.Rel(l.BaseDir, target); err == nil {
		name = rel
	}

	return kind.Tag() + " " + filepath.ToSlash(name)
}

// load reads one include target according to its kind. It also returns the
// markers found inside, each relative to the file that holds it.
func (l *Loader) load(kind document.IncludeKind, target string) (*document.Node, []pending, error) {
	if kind == document.IncludeFile {
		n, err := loadFragment(target)
		if err != nil {
			return nil, nil, err
		}

		return n, markers(n, filepath.Dir(target), nil), nil
	}

	files, err := fragmentFiles(target)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    *document.Node
		nested []pending
	)

	if kind.Named() {
		out = document.Map()
	} else {
		out = document.Seq()
	}

	for _, f := range files {
		n, err := loadFragment(f)
		if err != nil {
			return nil, nil, err
		}

		nested = markers(n, filepath.Dir(f), nested)

		switch kind {
		case document.IncludeDirNamed:
			out.Entries = append(out.Entries, document.Entry{Key: fragmentName(f), Value: n})

		case document.IncludeDirMergeNamed:
			if n.Kind == document.KindNull {
				continue
			}

			if n.Kind != document.KindMapping {
				return nil, nil, fmt.Errorf("%s: merged named include must be a mapping, got %s", f, n.Describe())
			}

			out.Entries = append(out.Entries, n.Entries...)

		case document.IncludeDirList:
			out.Items = append(out.Items, n)

		case document.IncludeDirMergeList:
			switch n.Kind {
			case document.KindNull:
			case document.KindSequence:
				out.Items = append(out.Items, n.Items...)
			default:
				out.Items = append(out.Items, n)
			}

		default:
			return nil, nil, fmt.Errorf("unsupported include %s %s", kind.Tag(), target)
		}
	}

	return out, nested, nil
}

// loadFragment reads one fragment file. An empty file is a null fragment.
func loadFragment(path string) (*document.Node, error) {
	n, err := document.LoadFile(path)
	if errors.Is(err, document.ErrEmpty) {
		return document.Null(), nil
	}

	return n, err
}

// fragmentFiles lists the fragment files under dir, recursively, in lexical
// order. Hidden files and directories are skipped.
func fragmentFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			return nil
		}

		if _, ok := fragmentExts[strings.ToLower(filepath.Ext(path))]; ok {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read include directory %s: %w", dir, err)
	}

	return files, nil
}

func fragmentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// markers appends every include marker found in n to acc, in document
// order, each relative to dir.
func markers(n *document.Node, dir string, acc []pending) []pending {
	if n == nil {
		return acc
	}

	switch n.Kind {
	case document.KindInclude:
		acc = append(acc, pending{marker: n, dir: dir})
	case document.KindMapping:
		for _, e := range n.Entries {
			acc = markers(e.Value, dir, acc)
		}
	case document.KindSequence:
		for _, item := range n.Items {
			acc = markers(item, dir, acc)
		}
	}

	return acc
}
