package schema

import "fmt"

// PlatformField is the field every platform block carries.
const PlatformField = "platform"

// basePlatform is the record shared by every platform block.
var basePlatform = MustObjectSchema(ObjectSpec{
	Name: "platform",
	Fields: []FieldDescriptor{
		{
			Name:        PlatformField,
			Required:    true,
			Kind:        KindString,
			Description: "Platform implementing this block.",
		},
	},
})

// PlatformSpec is the input to NewPlatformSchema.
type PlatformSpec struct {
	Domain   string
	Platform string
	// Collection names the field holding the user-keyed items, e.g. "sensors".
	Collection  string
	Item        *ObjectSchema
	Description string
	DocURL      string
	// CollectionDescription and CollectionDocURL document the collection field.
	CollectionDescription string
	CollectionDocURL      string
}

// PlatformSchema is the schema of one platform block of one integration
// domain, e.g. the template platform of binary_sensor.
type PlatformSchema struct {
	Domain      string
	Platform    string
	Collection  string
	Item        *ObjectSchema
	Description string
	DocURL      string

	// Object is the block's top-level schema: the base platform record
	// composed with the collection field.
	Object *ObjectSchema
}

// NewPlatformSchema composes the top-level object schema for spec.
func NewPlatformSchema(spec PlatformSpec) (*PlatformSchema, error) {
	if spec.Domain == "" || spec.Platform == "" {
		return nil, fmt.Errorf("platform schema needs a domain and a platform, got %q/%q", spec.Domain, spec.Platform)
	}

	if spec.Collection == "" || spec.Item == nil {
		return nil, fmt.Errorf("%s.%s: platform schema needs a collection field and an item schema", spec.Domain, spec.Platform)
	}

	specific, err := NewObjectSchema(ObjectSpec{
		Name:        spec.Domain + " platform",
		Description: spec.Description,
		Fields: []FieldDescriptor{
			{
				Name:        PlatformField,
				Required:    true,
				Kind:        KindString,
				Description: spec.Description,
				DocURL:      spec.DocURL,
			},
			{
				Name:              spec.Collection,
				Required:          true,
				Kind:              KindMapping,
				AllowNamedInclude: true,
				Values:            &FieldDescriptor{Name: spec.Collection, Kind: KindObject, Object: spec.Item},
				Description:       spec.CollectionDescription,
				DocURL:            spec.CollectionDocURL,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	object, err := Compose(fmt.Sprintf("%s.%s platform", spec.Domain, spec.Platform), basePlatform, specific)
	if err != nil {
		return nil, err
	}

	return &PlatformSchema{
		Domain:      spec.Domain,
		Platform:    spec.Platform,
		Collection:  spec.Collection,
		Item:        spec.Item,
		Description: spec.Description,
		DocURL:      spec.DocURL,
		Object:      object,
	}, nil
}

// MustPlatformSchema is NewPlatformSchema for static definitions; it panics on error.
func MustPlatformSchema(spec PlatformSpec) *PlatformSchema {
	p, err := NewPlatformSchema(spec)
	if err != nil {
		panic(err)
	}

	return p
}

// Key returns the registry key of the schema.
func (p *PlatformSchema) Key() Key {
	return Key{Domain: p.Domain, Platform: p.Platform}
}
