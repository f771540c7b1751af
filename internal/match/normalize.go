package match

import (
	"strings"
	"unicode"
)

// NormalizeKey folds a configuration key for fuzzy comparison: everything is
// lowercased and the separators _, - and space are dropped. "valueTemplate", "Value-Template" and "value_template" all
// normalise to "valuetemplate".
func NormalizeKey(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
