package validate

import (
	"errors"

	"go.uber.org/zap"

	"template-validator/internal/diagnostic"
	"template-validator/internal/document"
	"template-validator/internal/include"
	"template-validator/internal/match"
	"template-validator/internal/schema"
)

// ErrNilDocument is returned when Validate is called without a document.
var ErrNilDocument = errors.New("nil document")

// maxSuggestions caps the "did you mean" candidates per violation.
const maxSuggestions = 3

// Config configures a Validator.
type Config struct {
	// Registry defaults to schema.Default().
	Registry *schema.Registry
	// Includes supplies include fragments. Without it every include marker
	// in a collection is reported as unresolved.
	Includes include.Source
	// Logger defaults to a no-op logger.
	Logger *zap.SugaredLogger
	// WarningsAsFatal reports UnknownField and DeprecatedFieldUsed with fatal
	// severity. They still never stop validation early.
	WarningsAsFatal bool
}

// Validator is immutable and safe for concurrent use; independent documents
// may be validated in parallel without coordination.
type Validator struct {
	registry *schema.Registry
	resolver *include.Resolver
	log      *zap.SugaredLogger
	strict   bool
}

// New returns a Validator for cfg.
func New(cfg Config) *Validator {
	registry := cfg.Registry
	if registry == nil {
		registry = schema.Default()
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Validator{
		registry: registry,
		resolver: include.NewResolver(cfg.Includes, log.Named("include")),
		log:      log,
		strict:   cfg.WarningsAsFatal,
	}
}

// Validate checks doc and returns every violation found.
func (v *Validator) Validate(doc *document.Document) (*diagnostic.Report, error) {
	if doc == nil || doc.Root == nil {
		return nil, ErrNilDocument
	}

	w := &walker{Validator: v, report: &diagnostic.Report{}}
	w.document(doc)

	if v.strict {
		for i := range w.report.Violations {
			w.report.Violations[i].Severity = diagnostic.SeverityFatal
		}
	}

	v.log.Debugw("validated document",
		"source", doc.Source,
		"domain", doc.Domain,
		"base", doc.Base.String(),
		"violations", w.report.Len(),
		"warnings", len(w.report.Warnings()),
		"codes", w.report.Codes(),
		"aborted", w.report.Aborted(),
	)

	return w.report, nil
}

// walker carries the state of one Validate call.
type walker struct {
	*Validator
	report  *diagnostic.Report
	aborted bool
}

func (w *walker) add(n *document.Node, code diagnostic.Code, path diagnostic.Path, format string, args ...any) {
	viol := diagnostic.New(code, path, format, args...)
	if n != nil {
		viol = viol.At(n.Line, n.Column)
	}

	w.report.Add(viol)

	if code.Aborts() {
		w.aborted = true
	}
}

func (w *walker) document(doc *document.Document) {
	root := doc.Root
	base := doc.Base

	if root.Kind != document.KindMapping {
		w.add(root, diagnostic.TypeMismatch, base, "expected a platform block mapping, got %s", root.Describe())
		return
	}

	if w.duplicateFields(root, base) {
		return
	}

	ps := w.platform(doc)
	if ps == nil {
		return
	}

	for _, f := range ps.Object.Fields() {
		value, present := root.Get(f.Name)
		path := base.Key(f.Name)

		switch {
		case f.Name == schema.PlatformField:
			// Already matched by lookup.
		case !present:
			if f.Required {
				w.add(root, diagnostic.MissingRequiredField, path, "required field %q is missing", f.Name)
			}
		case f.AllowNamedInclude:
			w.collection(f, value, path)
		default:
			w.field(f, value, path)
		}

		if w.aborted {
			return
		}
	}

	w.unknownFields(ps.Object, root, base)
}

// platform resolves the block's schema, reporting SchemaNotFound on failure.
func (w *walker) platform(doc *document.Document) *schema.PlatformSchema {
	path := doc.Base.Key(schema.PlatformField)

	value, ok := doc.Root.Get(schema.PlatformField)
	if !ok {
		w.add(doc.Root, diagnostic.SchemaNotFound, path, "platform block under %q has no platform field", doc.Domain)
		return nil
	}

	if !value.IsString() {
		w.add(value, diagnostic.SchemaNotFound, path, "platform must be a string, got %s", value.Describe())
		return nil
	}

	ps, err := w.registry.Lookup(doc.Domain, value.Value)
	if err != nil {
		viol := diagnostic.New(diagnostic.SchemaNotFound, path, "%s", err.Error()).
			At(value.Line, value.Column).
			WithSuggestions(match.Suggest(value.Value, w.registry.Platforms(doc.Domain), maxSuggestions)...)
		w.report.Add(viol)
		w.aborted = true

		return nil
	}

	return ps
}

// collection expands includes in a platform's collection field and checks
// every entry in document order.
func (w *walker) collection(f schema.FieldDescriptor, value *document.Node, path diagnostic.Path) {
	if value.Kind != document.KindMapping && !(value.Kind == document.KindInclude && value.Include.Named()) {
		w.add(value, diagnostic.TypeMismatch, path, "expected %s, got %s", f.TypeName(), value.Describe())
		return
	}

	resolved, err := w.resolver.Resolve(value, path)
	if err != nil {
		if viol, ok := include.Violation(err); ok {
			w.report.Add(viol.At(value.Line, value.Column))
			w.aborted = true

			return
		}

		w.add(value, diagnostic.TypeMismatch, path, "%s", err.Error())

		return
	}

	for _, e := range resolved.Entries {
		w.field(*f.Values, e.Value, path.Key(e.Key))

		if w.aborted {
			return
		}
	}
}
