package schema

import (
	"fmt"
	"strings"
)

// HelpText renders the descriptive metadata of a platform schema for IDE
// completion and documentation front ends.
func HelpText(p *PlatformSchema) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (platform: %s)\n", p.Domain, p.Platform)

	if p.Description != "" {
		fmt.Fprintf(&b, "  %s\n", p.Description)
	}

	if p.DocURL != "" {
		fmt.Fprintf(&b, "  %s\n", p.DocURL)
	}

	fmt.Fprintf(&b, "\n%s: mapping of %s\n", p.Collection, p.Item.Name)

	for _, f := range p.Item.fields {
		writeFieldHelp(&b, f)
	}

	if vf, ok := p.Item.ValueField(); ok {
		fmt.Fprintf(&b, "\nThe entity state comes from %s.\n", vf.Name)
	}

	return b.String()
}

func writeFieldHelp(b *strings.Builder, f FieldDescriptor) {
	presence := "required"
	if f.Optional() {
		presence = "optional"
	}

	fmt.Fprintf(b, "  %s (%s, %s)\n", f.Name, f.TypeName(), presence)

	if f.Description != "" {
		fmt.Fprintf(b, "      %s\n", f.Description)
	}

	if f.Kind == KindEnum && f.Enum != nil {
		fmt.Fprintf(b, "      one of: %s\n", strings.Join(f.Enum.Values(), ", "))
	}

	if f.Overrides != "" {
		fmt.Fprintf(b, "      takes precedence over %s\n", f.Overrides)
	}

	if f.DeprecatedSince != "" {
		fmt.Fprintf(b, "      deprecated since %s\n", f.DeprecatedSince)
	}

	if f.DocURL != "" {
		fmt.Fprintf(b, "      %s\n", f.DocURL)
	}
}
