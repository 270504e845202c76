package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertiesScalarCoercion(t *testing.T) {
	props := Properties{
		"name":    "heading",
		"level":   float64(3), // JSON numbers decode to float64
		"size":    "18",
		"ratio":   0.5,
		"striped": true,
	}

	assert.Equal(t, "heading", props.String("name", ""))
	assert.Equal(t, "x", props.String("missing", "x"))
	assert.Equal(t, "x", props.String("level", "x"), "non-string degrades to fallback")

	assert.Equal(t, 3, props.Int("level", 0))
	assert.Equal(t, 18, props.Int("size", 0))
	assert.Equal(t, 7, props.Int("name", 7))

	assert.Equal(t, 0.5, props.Float("ratio", 0))
	assert.Equal(t, 3.0, props.Float("level", 0))

	assert.True(t, props.Bool("striped", false))
	assert.False(t, props.Bool("name", false))
}

func TestPropertiesCollectionCoercion(t *testing.T) {
	props := Properties{
		"items":     []interface{}{"a", 42, "b"},
		"badItems":  "nope",
		"links":     []interface{}{map[string]interface{}{"platform": "X", "url": "https://x.com", "icon": "x"}, "garbage"},
		"rows":      []interface{}{[]interface{}{"a", "b"}, "garbage", []string{"c"}},
		"badRows":   map[string]interface{}{},
		"typedRows": [][]string{{"x"}},
	}

	assert.Equal(t, []string{"a", "b"}, props.Strings("items"), "non-string entries skipped")
	assert.Empty(t, props.Strings("badItems"))
	assert.Empty(t, props.Strings("missing"))

	links := props.Links("links")
	assert.Len(t, links, 1)
	assert.Equal(t, "X", links[0].Platform)

	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, props.Rows("rows"))
	assert.Empty(t, props.Rows("badRows"))
	assert.Equal(t, [][]string{{"x"}}, props.Rows("typedRows"))
}

func TestPropertiesNilReceiver(t *testing.T) {
	var props Properties

	assert.Equal(t, "d", props.String("k", "d"))
	assert.Equal(t, 1, props.Int("k", 1))
	assert.Empty(t, props.Strings("k"))
	assert.Empty(t, props.Links("k"))
	assert.Empty(t, props.Rows("k"))
}

func TestPropertiesCloneIsDeep(t *testing.T) {
	original := Properties{
		"items": []string{"a"},
		"rows":  [][]string{{"x"}},
		"meta":  map[string]interface{}{"nested": []interface{}{"v"}},
	}

	clone := original.Clone()
	clone["items"].([]string)[0] = "mutated"
	clone["rows"].([][]string)[0][0] = "mutated"
	clone["meta"].(map[string]interface{})["nested"].([]interface{})[0] = "mutated"

	assert.Equal(t, "a", original["items"].([]string)[0])
	assert.Equal(t, "x", original["rows"].([][]string)[0][0])
	assert.Equal(t, "v", original["meta"].(map[string]interface{})["nested"].([]interface{})[0])
}
