package validate

import (
	"strings"

	"template-validator/internal/diagnostic"
	"template-validator/internal/document"
	"template-validator/internal/match"
	"template-validator/internal/schema"
)

// object checks a mapping against an ObjectSchema: declared fields in schema
// order, then unknown keys in document order.
func (w *walker) object(o *schema.ObjectSchema, n *document.Node, path diagnostic.Path) {
	if n.Kind != document.KindMapping {
		w.add(n, diagnostic.TypeMismatch, path, "expected %s, got %s", o.Name, describe(n))
		return
	}

	if w.duplicateFields(n, path) {
		return
	}

	for _, f := range o.Fields() {
		value, present := n.Get(f.Name)
		if !present {
			if !f.Required {
				continue
			}

			if f.ValueDefining {
				w.add(n, diagnostic.MissingRequiredField, path.Key(f.Name), "%s", o.MissingValueMessage(f.Name))
			} else {
				w.add(n, diagnostic.MissingRequiredField, path.Key(f.Name), "required field %q is missing", f.Name)
			}

			continue
		}

		w.field(f, value, path.Key(f.Name))

		if w.aborted {
			return
		}
	}

	if shadowed := o.Shadowed(n.Keys()); len(shadowed) > 0 {
		w.log.Debugw("fields overridden by their template variant", "path", path.String(), "fields", shadowed)
	}

	w.unknownFields(o, n, path)
}

func (w *walker) duplicateFields(n *document.Node, path diagnostic.Path) bool {
	seen := make(map[string]struct{}, len(n.Entries))

	for _, e := range n.Entries {
		if _, dup := seen[e.Key]; dup {
			viol := diagnostic.New(diagnostic.DuplicateKey, path.Key(e.Key), "key %q is defined twice", e.Key).
				At(e.Line, e.Column)
			w.report.Add(viol)
			w.aborted = true

			return true
		}

		seen[e.Key] = struct{}{}
	}

	return false
}

func (w *walker) unknownFields(o *schema.ObjectSchema, n *document.Node, path diagnostic.Path) {
	for _, e := range n.Entries {
		if _, known := o.Field(e.Key); known {
			continue
		}

		viol := diagnostic.New(diagnostic.UnknownField, path.Key(e.Key), "unknown field %q in %s", e.Key, o.Name).
			At(e.Line, e.Column).
			WithSuggestions(match.Suggest(e.Key, o.Names(), maxSuggestions)...)
		w.report.Add(viol)
	}
}

// field checks one present value against its descriptor.
func (w *walker) field(f schema.FieldDescriptor, n *document.Node, path diagnostic.Path) {
	if f.Kind == schema.KindDeprecated {
		w.deprecated(f, n, path)
		return
	}

	if n.Kind == document.KindInclude {
		if f.Kind == schema.KindActionList && n.Include.List() {
			return
		}

		w.mismatch(f, n, path)

		return
	}

	switch f.Kind {
	case schema.KindString, schema.KindTemplate:
		if !n.IsString() {
			w.mismatch(f, n, path)
		}

	case schema.KindBoolean:
		if _, ok := n.Bool(); !ok {
			w.mismatch(f, n, path)
		}

	case schema.KindTimePeriod:
		if _, err := schema.ParseTimePeriod(n); err != nil {
			w.add(n, diagnostic.TypeMismatch, path, "expected %s, got %s: %v", f.TypeName(), describe(n), err)
		}

	case schema.KindEnum:
		w.enum(f, n, path)

	case schema.KindActionList:
		w.actions(f, n, path)

	case schema.KindMapping:
		if n.Kind != document.KindMapping {
			w.mismatch(f, n, path)
			return
		}

		if w.duplicateFields(n, path) {
			return
		}

		for _, e := range n.Entries {
			w.field(*f.Values, e.Value, path.Key(e.Key))

			if w.aborted {
				return
			}
		}

	case schema.KindObject:
		w.object(f.Object, n, path)
	}
}

func (w *walker) mismatch(f schema.FieldDescriptor, n *document.Node, path diagnostic.Path) {
	w.add(n, diagnostic.TypeMismatch, path, "expected %s, got %s", f.TypeName(), describe(n))
}

func (w *walker) enum(f schema.FieldDescriptor, n *document.Node, path diagnostic.Path) {
	if !n.IsString() {
		w.mismatch(f, n, path)
		return
	}

	if f.Enum.Contains(n.Value) {
		return
	}

	allowed := f.Enum.Values()
	viol := diagnostic.New(diagnostic.InvalidEnumValue, path, "value %q is not one of %s: %s",
		n.Value, f.Enum.Name, strings.Join(allowed, ", ")).
		At(n.Line, n.Column).
		WithSuggestions(match.Suggest(n.Value, allowed, maxSuggestions)...)
	w.report.Add(viol)
}

// actions accepts a single action mapping, a list of them, or a list include.
// Action bodies belong to the actions schema and are not inspected.
func (w *walker) actions(f schema.FieldDescriptor, n *document.Node, path diagnostic.Path) {
	switch n.Kind {
	case document.KindMapping:
	case document.KindSequence:
		for i, item := range n.Items {
			if item.Kind == document.KindMapping {
				continue
			}

			if item.Kind == document.KindInclude && item.Include == document.IncludeFile {
				continue
			}

			w.add(item, diagnostic.TypeMismatch, path.Index(i), "expected action mapping, got %s", describe(item))
		}
	default:
		w.mismatch(f, n, path)
	}
}

func (w *walker) deprecated(f schema.FieldDescriptor, n *document.Node, path diagnostic.Path) {
	msg := "field %q is deprecated and has no effect"
	args := []any{f.Name}

	if f.DeprecatedSince != "" {
		msg = "field %q is deprecated since %s and has no effect"
		args = append(args, f.DeprecatedSince)
	}

	w.add(n, diagnostic.DeprecatedFieldUsed, path, msg, args...)
}

// describe names a value's shape, spelling out include markers.
func describe(n *document.Node) string {
	if n != nil && n.Kind == document.KindInclude {
		return "include (" + n.String() + ")"
	}

	return n.Describe()
}
