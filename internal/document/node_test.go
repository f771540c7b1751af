package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeBuildersAndString(t *testing.T) {
	n := Map(
		"platform", String("template"),
		"sensors", Map(
			"kitchen_heat", Map("value_template", String("{{ true }}"), "delay_on", Int(5)),
			"garage", Include(IncludeDirNamed, "garage"),
		),
		"flags", Seq(Bool(true), Float(1.5), Null()),
	)

	assert.Equal(t,
		`{platform: "template", sensors: {kitchen_heat: {value_template: "{{ true }}", delay_on: 5}, garage: !include_dir_named garage}, flags: [true, 1.5, null]}`,
		n.String())
}

func TestNodeClone(t *testing.T) {
	orig := Map("sensors", Map("a", Map("value_template", String("x"))))
	cp := orig.Clone()
	require.Equal(t, orig, cp)

	sensors, _ := cp.Get("sensors")
	sensors.Entries[0].Key = "b"

	origSensors, _ := orig.Get("sensors")
	assert.Equal(t, []string{"a"}, origSensors.Keys())
	assert.Nil(t, (*Node)(nil).Clone())
}

func TestNodeAccessorsOnWrongKinds(t *testing.T) {
	s := String("x")
	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Nil(t, s.Keys())

	_, ok = s.Bool()
	assert.False(t, ok)

	_, ok = s.Float()
	assert.False(t, ok)

	var nilNode *Node
	assert.Equal(t, "null", nilNode.Describe())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "string", String("a").Describe())
	assert.Equal(t, "boolean", Bool(true).Describe())
	assert.Equal(t, "integer", Int(1).Describe())
	assert.Equal(t, "float", Float(1.5).Describe())
	assert.Equal(t, "mapping", Map().Describe())
	assert.Equal(t, "sequence", Seq().Describe())
	assert.Equal(t, "null", Null().Describe())
	assert.Equal(t, "include", Include(IncludeFile, "x").Describe())
}
