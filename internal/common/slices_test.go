package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]int{"delay_on": 1, "attribute_templates": 2, "icon_template": 3})
	assert.Equal(t, []string{"attribute_templates", "delay_on", "icon_template"}, keys)
	assert.Empty(t, SortedKeys(map[string]int{}))
}

func TestSet(t *testing.T) {
	s := Set("on", "off", "on")
	assert.Len(t, s, 2)
	assert.Contains(t, s, "off")
}
