package visitor

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAnyMapVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		input       interface{}
		expectKeys  []interface{}
		expectElems []interface{}
	}{
		{
			description: "string keys",
			input:       map[string]bool{"def": false, "abc": true},
			expectKeys:  []interface{}{"abc", "def"},
			expectElems: []interface{}{true, false},
		},
		{
			description: "int keys ordered numerically",
			input:       map[int]string{10: "ten", 2: "two", -1: "minus"},
			expectKeys:  []interface{}{-1, 2, 10},
			expectElems: []interface{}{"minus", "two", "ten"},
		},
		{
			description: "float keys",
			input:       map[float64]float64{1.5: 1, 0.5: 2},
			expectKeys:  []interface{}{0.5, 1.5},
			expectElems: []interface{}{2.0, 1.0},
		},
		{
			description: "nil elements",
			input:       map[string]interface{}{"b": nil, "a": 1},
			expectKeys:  []interface{}{"a", "b"},
			expectElems: []interface{}{1, nil},
		},
		{
			description: "mixed interface keys grouped by type",
			input:       map[interface{}]int{"x": 1, 3: 2, 1: 3},
			expectKeys:  []interface{}{1, 3, "x"},
			expectElems: []interface{}{3, 2, 1},
		},
	}

	for _, testCase := range testCases {
		visit, err := AnyMapVisitorOf(testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var keys, elems []interface{}
		err = visit(func(key any, element any) (bool, error) {
			keys = append(keys, key)
			elems = append(elems, element)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expectKeys, keys, testCase.description)
		assert.EqualValues(t, testCase.expectElems, elems, testCase.description)
	}
}

func TestAnyMapVisitorOf_Stop(t *testing.T) {
	visit, err := AnyMapVisitorOf(map[string]int{"a": 1, "b": 2, "c": 3})
	assert.Nil(t, err)
	count := 0
	err = visit(func(key any, element any) (bool, error) {
		count++
		return false, nil
	})
	assert.Nil(t, err)
	assert.Equal(t, 1, count)
}

func TestAnyMapVisitorOf_NotMap(t *testing.T) {
	_, err := AnyMapVisitorOf([]int{1})
	assert.NotNil(t, err)
}
