package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"template-validator/internal/common"
)

// Code identifies the kind of violation.
type Code string

const (
	// SchemaNotFound: the document's platform matches no registered schema.
	SchemaNotFound Code = "SchemaNotFound"
	// DuplicateKey: two collection entries share a key after include expansion.
	DuplicateKey Code = "DuplicateKey"
	// CircularInclude: an include fragment re-includes itself.
	CircularInclude Code = "CircularInclude"
	// UnresolvedInclude: an include names a fragment the lookup table lacks.
	UnresolvedInclude Code = "UnresolvedInclude"

	MissingRequiredField Code = "MissingRequiredField"
	TypeMismatch         Code = "TypeMismatch"
	InvalidEnumValue     Code = "InvalidEnumValue"

	UnknownField        Code = "UnknownField"
	DeprecatedFieldUsed Code = "DeprecatedFieldUsed"
)

// Severity is either fatal or warning.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityFatal
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityFatal:
		return "fatal"
	default:
		return common.UnknownStr
	}
}

// Severity returns the severity attached to every violation of this code.
func (c Code) Severity() Severity {
	switch c {
	case UnknownField, DeprecatedFieldUsed:
		return SeverityWarning
	default:
		return SeverityFatal
	}
}

// Aborts reports whether a violation of this code stops validation of the
// rest of the document.
func (c Code) Aborts() bool {
	switch c {
	case SchemaNotFound, DuplicateKey, CircularInclude, UnresolvedInclude:
		return true
	default:
		return false
	}
}

// Violation is a single validation finding.
type Violation struct {
	Code     Code
	Severity Severity
	// Path locates the offending node.
	Path Path
	// Message is the human-readable description.
	Message string
	// Line and Column point into the source file; zero when unknown.
	Line   int
	Column int
	// Suggestions are candidate fixes, closest first.
	Suggestions []string
}

// New builds a violation whose severity follows from code.
func New(code Code, path Path, format string, args ...any) Violation {
	return Violation{
		Code:     code,
		Severity: code.Severity(),
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	}
}

// At returns a copy of v positioned at line:column.
func (v Violation) At(line, column int) Violation {
	v.Line, v.Column = line, column
	return v
}

// WithSuggestions returns a copy of v carrying suggestions.
func (v Violation) WithSuggestions(s ...string) Violation {
	if len(s) > 0 {
		v.Suggestions = s
	}

	return v
}

// String returns a formatted violation, e.g.
// "sensors.kitchen_heat.value_template: [MissingRequiredField] ...".
func (v Violation) String() string {
	msg := fmt.Sprintf("[%s] %s", v.Code, v.Message)
	if len(v.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(v.Suggestions, ", "))
	}

	var prefix []string
	if v.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("%d:%d", v.Line, v.Column))
	}

	if len(v.Path) > 0 {
		prefix = append(prefix, v.Path.String())
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Report is the ordered list of violations produced by one validation run.
// The caller owns it.
type Report struct {
	Violations []Violation
}

// Add appends violations in order.
func (r *Report) Add(v ...Violation) {
	r.Violations = append(r.Violations, v...)
}

// Merge appends all violations of other.
func (r *Report) Merge(other Report) {
	r.Violations = append(r.Violations, other.Violations...)
}

// Len returns the number of violations.
func (r *Report) Len() int {
	return len(r.Violations)
}

// HasFatal returns true if any violation is fatal.
func (r *Report) HasFatal() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityFatal {
			return true
		}
	}

	return false
}

// Aborted returns true if validation stopped early on an aborting violation.
func (r *Report) Aborted() bool {
	for _, v := range r.Violations {
		if v.Code.Aborts() {
			return true
		}
	}

	return false
}

// Fatal returns the fatal violations in order.
func (r *Report) Fatal() []Violation {
	return r.filter(SeverityFatal)
}

// Warnings returns the warnings in order.
func (r *Report) Warnings() []Violation {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(s Severity) []Violation {
	var out []Violation

	for _, v := range r.Violations {
		if v.Severity == s {
			out = append(out, v)
		}
	}

	return out
}

// Codes returns the code of each violation in order.
func (r *Report) Codes() []Code {
	out := make([]Code, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.Code
	}

	return out
}

// Err returns a combined error from all fatal violations, or nil if there are none.
func (r *Report) Err() error {
	fatal := r.Fatal()
	if len(fatal) == 0 {
		return nil
	}

	parts := make([]string, len(fatal))
	for i, v := range fatal {
		parts[i] = v.String()
	}

	return errors.New(strings.Join(parts, "; "))
}

// String renders one violation per line.
func (r *Report) String() string {
	var b strings.Builder

	for _, v := range r.Violations {
		b.WriteString(v.Severity.String())
		b.WriteString(" ")
		b.WriteString(v.String())
		b.WriteByte('\n')
	}

	return b.String()
}
