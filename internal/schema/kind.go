package schema

import "template-validator/internal/common"

// FieldKind fully determines which value shapes a field accepts.
type FieldKind int

const (
	// KindString accepts a string scalar.
	KindString FieldKind = iota
	// KindBoolean accepts a boolean scalar.
	KindBoolean
	// KindTemplate accepts a string scalar holding a template expression.
	// The expression itself is opaque here.
	KindTemplate
	// KindTimePeriod accepts seconds, "HH:MM:SS" or a {hours, minutes, seconds} mapping.
	KindTimePeriod
	// KindEnum accepts a string from a closed, case-sensitive set.
	KindEnum
	// KindActionList accepts an action mapping, a list of them, or a list include.
	KindActionList
	// KindMapping accepts a mapping whose values all match the Values descriptor.
	KindMapping
	// KindDeprecated accepts anything but is reported when present.
	KindDeprecated
	// KindObject accepts a mapping validated against a nested ObjectSchema.
	// Platform collections are mappings of objects.
	KindObject
)

// String returns the kind name used in messages.
func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindTemplate:
		return "template"
	case KindTimePeriod:
		return "time period"
	case KindEnum:
		return "enum"
	case KindActionList:
		return "action list"
	case KindMapping:
		return "mapping"
	case KindDeprecated:
		return "deprecated"
	case KindObject:
		return "object"
	default:
		return common.UnknownStr
	}
}
