package schema

import (
	"fmt"
	"slices"
)

// ObjectSpec is the input to NewObjectSchema.
type ObjectSpec struct {
	// Name identifies the object kind in messages, e.g. "binary sensor item".
	Name        string
	Description string
	// MissingValue is reported when a required value-defining field is
	// absent. %s is replaced by the field name.
	MissingValue string
	Fields       []FieldDescriptor
}

// ObjectSchema is an ordered set of uniquely named field descriptors
// describing one configuration object kind.
type ObjectSchema struct {
	Name         string
	Description  string
	missingValue string
	fields       []FieldDescriptor
	index        map[string]int
	valueField   int
}

// NewObjectSchema validates spec and builds an immutable ObjectSchema.
func NewObjectSchema(spec ObjectSpec) (*ObjectSchema, error) {
	o := &ObjectSchema{
		Name:         spec.Name,
		Description:  spec.Description,
		missingValue: spec.MissingValue,
		fields:       slices.Clone(spec.Fields),
		index:        make(map[string]int, len(spec.Fields)),
		valueField:   -1,
	}

	for i, f := range o.fields {
		if err := f.check(); err != nil {
			return nil, fmt.Errorf("%s: %w", spec.Name, err)
		}

		if _, dup := o.index[f.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate field %q", spec.Name, f.Name)
		}

		o.index[f.Name] = i

		if f.ValueDefining {
			if o.valueField >= 0 {
				return nil, fmt.Errorf("%s: fields %q and %q are both value-defining",
					spec.Name, o.fields[o.valueField].Name, f.Name)
			}

			o.valueField = i
		}
	}

	for _, f := range o.fields {
		if f.Overrides == "" {
			continue
		}

		if _, ok := o.index[f.Overrides]; !ok || f.Overrides == f.Name {
			return nil, fmt.Errorf("%s: field %q overrides unknown field %q", spec.Name, f.Name, f.Overrides)
		}
	}

	return o, nil
}

// MustObjectSchema is NewObjectSchema for static definitions; it panics on error.
func MustObjectSchema(spec ObjectSpec) *ObjectSchema {
	o, err := NewObjectSchema(spec)
	if err != nil {
		panic(err)
	}

	return o
}

// Compose merges base and ext by key into a new schema named name. Fields
// from ext replace same-named base fields in place; new ext fields follow
// the base fields in declaration order.
func Compose(name string, base, ext *ObjectSchema) (*ObjectSchema, error) {
	fields := base.Fields()

	for _, f := range ext.fields {
		if i, ok := base.index[f.Name]; ok {
			fields[i] = f
			continue
		}

		fields = append(fields, f)
	}

	missing := ext.missingValue
	if missing == "" {
		missing = base.missingValue
	}

	description := ext.Description
	if description == "" {
		description = base.Description
	}

	return NewObjectSchema(ObjectSpec{
		Name:         name,
		Description:  description,
		MissingValue: missing,
		Fields:       fields,
	})
}

// Fields returns the descriptors in declaration order.
func (o *ObjectSchema) Fields() []FieldDescriptor {
	return slices.Clone(o.fields)
}

// Field looks up a descriptor by name.
func (o *ObjectSchema) Field(name string) (FieldDescriptor, bool) {
	i, ok := o.index[name]
	if !ok {
		return FieldDescriptor{}, false
	}

	return o.fields[i], true
}

// Names returns the field names in declaration order.
func (o *ObjectSchema) Names() []string {
	names := make([]string, len(o.fields))
	for i, f := range o.fields {
		names[i] = f.Name
	}

	return names
}

// ValueField returns the value-defining field, if the schema has one.
func (o *ObjectSchema) ValueField() (FieldDescriptor, bool) {
	if o.valueField < 0 {
		return FieldDescriptor{}, false
	}

	return o.fields[o.valueField], true
}

// MissingValueMessage returns the message for an absent value-defining field.
func (o *ObjectSchema) MissingValueMessage(field string) string {
	if o.missingValue == "" {
		return fmt.Sprintf("required field %q is missing: a %s without it has no state", field, o.Name)
	}

	return fmt.Sprintf(o.missingValue, field)
}

// Shadowed returns the fields that are present but overridden by another
// present field, in declaration order. With both friendly_name and
// friendly_name_template set, friendly_name is shadowed.
func (o *ObjectSchema) Shadowed(present []string) []string {
	var out []string

	for _, f := range o.fields {
		if f.Overrides == "" {
			continue
		}

		if slices.Contains(present, f.Name) && slices.Contains(present, f.Overrides) {
			out = append(out, f.Overrides)
		}
	}

	return out
}
