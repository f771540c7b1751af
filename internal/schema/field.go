package schema

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"template-validator/internal/common"
)

// EnumSet is a named, closed set of allowed strings.
type EnumSet struct {
	Name   string
	values []string
	set    map[string]struct{}
}

// NewEnumSet builds an EnumSet. Values keep their declaration order.
func NewEnumSet(name string, values ...string) *EnumSet {
	return &EnumSet{
		Name:   name,
		values: slices.Clone(values),
		set:    common.Set(values...),
	}
}

// Contains reports case-sensitive membership.
func (e *EnumSet) Contains(v string) bool {
	_, ok := e.set[v]
	return ok
}

// Values returns the allowed strings in declaration order.
func (e *EnumSet) Values() []string {
	return slices.Clone(e.values)
}

// String lists the set, e.g. "DeviceClassesBinarySensor{battery, cold, ...}".
func (e *EnumSet) String() string {
	return e.Name + "{" + strings.Join(e.values, ", ") + "}"
}

// FieldDescriptor describes one field of an ObjectSchema.
type FieldDescriptor struct {
	Name     string
	Required bool
	Kind     FieldKind

	// Enum is the allowed set for KindEnum.
	Enum *EnumSet
	// Values describes every value of a KindMapping field.
	Values *FieldDescriptor
	// Object is the nested schema of a KindObject field.
	Object *ObjectSchema
	// AllowNamedInclude lets a KindMapping collection hold include markers
	// standing for named siblings. The resolver expands them before the
	// values are checked.
	AllowNamedInclude bool

	// ValueDefining marks the field that gives the entity its state.
	// At most one per ObjectSchema.
	ValueDefining bool
	// Overrides names a sibling field this one takes precedence over when
	// both are present.
	Overrides string
	// DeprecatedSince is the release that deprecated a KindDeprecated field.
	DeprecatedSince string

	Description string
	DocURL      string
}

// Optional returns whether the field may be absent.
func (f FieldDescriptor) Optional() bool {
	return !f.Required
}

// TypeName names the accepted shape for messages, e.g. "template" or
// "enum DeviceClassesSensor".
func (f FieldDescriptor) TypeName() string {
	switch f.Kind {
	case KindEnum:
		if f.Enum != nil {
			return "enum " + f.Enum.Name
		}
	case KindMapping:
		if f.Values != nil {
			return "mapping of " + f.Values.TypeName()
		}
	case KindObject:
		if f.Object != nil {
			return f.Object.Name
		}
	}

	return f.Kind.String()
}

func (f FieldDescriptor) check() error {
	if f.Name == "" {
		return errors.New("field has no name")
	}

	switch f.Kind {
	case KindEnum:
		if f.Enum == nil {
			return fmt.Errorf("enum field %q has no value set", f.Name)
		}
	case KindMapping:
		if f.Values == nil {
			return fmt.Errorf("mapping field %q has no value descriptor", f.Name)
		}
	case KindObject:
		if f.Object == nil {
			return fmt.Errorf("object field %q has no schema", f.Name)
		}
	}

	if f.AllowNamedInclude && f.Kind != KindMapping {
		return fmt.Errorf("field %q: named includes are only allowed in mappings", f.Name)
	}

	return nil
}
