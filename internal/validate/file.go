package validate

import (
	"fmt"
	"path/filepath"
	"slices"

	"template-validator/internal/diagnostic"
	"template-validator/internal/document"
	"template-validator/internal/include"
	"template-validator/internal/schema"
)

// File validates the registered platform blocks of a configuration file.
// Blocks using other platforms are skipped. When cfg has no include source,
// the includes the file references are loaded from disk relative to it
// before validation starts.
func File(path string, cfg Config) (*diagnostic.Report, error) {
	root, err := document.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if cfg.Registry == nil {
		cfg.Registry = schema.Default()
	}

	if cfg.Includes == nil {
		loader := &include.Loader{BaseDir: filepath.Dir(path), Logger: cfg.Logger}

		frags, err := loader.Preload(root)
		if err != nil {
			return nil, fmt.Errorf("failed to load includes of %s: %w", path, err)
		}

		cfg.Includes = frags
	}

	docs, err := document.Blocks(root, cfg.Registry.Domains()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	v := New(cfg)
	report := &diagnostic.Report{}

	for _, doc := range docs {
		if !registered(cfg.Registry, doc) {
			v.log.Debugw("skipping block", "source", path, "base", doc.Base.String())
			continue
		}

		doc.Source = path

		r, err := v.Validate(doc)
		if err != nil {
			return nil, err
		}

		report.Merge(*r)
	}

	return report, nil
}

func registered(r *schema.Registry, doc *document.Document) bool {
	platform, ok := doc.Root.Get(schema.PlatformField)
	if !ok || !platform.IsString() {
		return false
	}

	return slices.Contains(r.Platforms(doc.Domain), platform.Value)
}
