package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type color int

const (
	red color = iota + 1
	blue
)

func (c color) EnumValue() string {
	switch c {
	case red:
		return "RED"
	case blue:
		return "BLUE"
	}
	return ""
}

func (c color) IsValid() bool {
	return c == red || c == blue
}

// label has no validity check.
type label string

func (l label) EnumValue() string {
	return "L-" + string(l)
}

type inner struct {
	Color  color   `json:"color"`
	Colors []color `json:"colors"`
}

type Base struct {
	ID string `json:"id"`
}

type outer struct {
	Base
	Name     string            `json:"name"`
	Inner    inner             `json:"inner"`
	Ptr      *inner            `json:"ptr"`
	ByName   map[string]color  `json:"byName"`
	ByColor  map[color]int     `json:"byColor"`
	Skipped  string            `json:"-"`
	Optional string            `json:"optional,omitempty"`
	When     time.Time         `json:"when"`
	Raw      []byte            `json:"raw"`
	Tags     map[string]string `json:"tags"`
	NoTag    int
	hidden   int
}

func sample() outer {
	return outer{
		Base:    Base{ID: "x1"},
		Name:    "ROC NG",
		Inner:   inner{Color: red, Colors: []color{red, blue}},
		Ptr:     &inner{Color: blue},
		ByName:  map[string]color{"a": blue},
		ByColor: map[color]int{red: 1},
		Skipped: "never",
		When:    time.Date(2024, 7, 21, 0, 0, 0, 0, time.UTC),
		Raw:     []byte("ok"),
		NoTag:   3,
		hidden:  9,
	}
}

func TestValue_Scalars(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "nil", in: nil, want: nil},
		{name: "string", in: "abc", want: "abc"},
		{name: "int", in: 4, want: 4},
		{name: "bool", in: true, want: true},
		{name: "float", in: 1.5, want: 1.5},
		{name: "time", in: now, want: now},
		{name: "enum", in: red, want: "RED"},
		{name: "enum pointer", in: func() *color { c := blue; return &c }(), want: "BLUE"},
		{name: "invalid enum kept", in: color(0), want: color(0)},
		{name: "enum without check", in: label("x"), want: "L-x"},
		{name: "nil slice", in: []color(nil), want: nil},
		{name: "nil map", in: map[string]color(nil), want: nil},
		{name: "nil pointer", in: (*inner)(nil), want: nil},
		{name: "bytes", in: []byte("raw"), want: []byte("raw")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Value(tt.in))
		})
	}
}

func TestValue_Record(t *testing.T) {
	t.Parallel()

	got, ok := Value(sample()).(*OrderedMap)
	require.True(t, ok)

	assert.Equal(t, []string{"id", "name", "inner", "ptr", "byName", "byColor", "when", "raw", "tags", "NoTag"}, got.Keys())

	innerMap, _ := got.Get("inner")
	c, _ := innerMap.(*OrderedMap).Get("color")
	assert.Equal(t, "RED", c)
	colors, _ := innerMap.(*OrderedMap).Get("colors")
	assert.Equal(t, []any{"RED", "BLUE"}, colors)

	ptr, _ := got.Get("ptr")
	ptrColor, _ := ptr.(*OrderedMap).Get("color")
	assert.Equal(t, "BLUE", ptrColor)

	byName, _ := got.Get("byName")
	assert.Equal(t, map[string]any{"a": "BLUE"}, byName)

	// keys are left untouched
	byColor, _ := got.Get("byColor")
	assert.Equal(t, map[any]any{red: 1}, byColor)

	when, _ := got.Get("when")
	assert.IsType(t, time.Time{}, when)

	tags, ok := got.Get("tags")
	assert.True(t, ok)
	assert.Nil(t, tags)
}

func TestValue_Sequences(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{"RED", "BLUE"}, Value([2]color{red, blue}))
	assert.Equal(t, []any{[]any{"RED"}, []any{}}, Value([][]color{{red}, {}}))
	assert.Nil(t, Value([]color(nil)))
	assert.Equal(t, []any{}, Value([]color{}))
	assert.Equal(t, []any{"a", nil}, Value([]any{"a", nil}))
}

func TestValue_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []any{
		sample(),
		[]color{red, blue},
		[]color{red, 0},
		[]color(nil),
		map[string][]color{"k": {blue}},
		"plain",
		nil,
	}

	for _, in := range inputs {
		once := Value(in)
		assert.Equal(t, once, Value(once))
	}
}

func TestOrderedMap_YAMLPreservesOrder(t *testing.T) {
	t.Parallel()

	m := NewOrderedMap(3)
	m.Set("statut", "UP")
	m.Set("infoSi", map[string]any{"nom": "ROC NG"})
	m.Set("services", []any{"base de donnée"})
	m.Set("statut", "DOWN")

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "statut: DOWN\ninfoSi:\n    nom: ROC NG\nservices:\n    - base de donnée\n", string(out))
}

func TestOrderedMap_JSON(t *testing.T) {
	t.Parallel()

	m := NewOrderedMap(2)
	m.Set("z", 1)
	m.Set("a", []any{"x"})

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":1,"a":["x"]}`, string(out))
	assert.Equal(t, `{"z":1,"a":["x"]}`, string(out))

	var nilMap *OrderedMap
	out, err = json.Marshal(nilMap)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestValue_YAMLMatchesJSONShape(t *testing.T) {
	t.Parallel()

	v := struct {
		Color color   `json:"color"`
		List  []color `json:"list"`
		N     int     `json:"n"`
	}{Color: blue, List: []color{red}, N: 4}

	out, err := yaml.Marshal(Value(v))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, map[string]any{"color": "BLUE", "list": []any{"RED"}, "n": 4}, decoded)
}

func TestValue_NilCollectionsEncodeAsNull(t *testing.T) {
	t.Parallel()

	v := struct {
		List []color        `json:"list"`
		Map  map[string]int `json:"map"`
		Set  []color        `json:"set"`
	}{Set: []color{}}

	jsonOut, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"list":null,"map":null,"set":[]}`, string(jsonOut))

	yamlOut, err := yaml.Marshal(Value(v))
	require.NoError(t, err)
	assert.Equal(t, "list: null\nmap: null\nset: []\n", string(yamlOut))
}
