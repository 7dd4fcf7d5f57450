package structdump

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_String(t *testing.T) {
	assert.Equal(t, "", Identity{}.String())
	assert.True(t, Identity{}.IsZero())
	assert.Equal(t, "github.com/viant/structdump.item;@ff", Identity{TypeName: ownedPrefix + "item", Hash: 255}.String())
}

func TestTraversal_IdentityOf(t *testing.T) {
	aTraversal := newTraversal()
	anItem := &item{ID: 1}

	first, err := aTraversal.identityOf(reflect.ValueOf(anItem))
	assert.Nil(t, err)
	second, err := aTraversal.identityOf(reflect.ValueOf(anItem))
	assert.Nil(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, ownedPrefix+"item", first.TypeName)

	one, _ := aTraversal.identityOf(reflect.ValueOf(1))
	another, _ := aTraversal.identityOf(reflect.ValueOf(1))
	assert.Equal(t, "int", one.TypeName)
	assert.NotEqual(t, one, another)

	aSlice := []int{1, 2, 3}
	whole, _ := aTraversal.identityOf(reflect.ValueOf(aSlice))
	head, _ := aTraversal.identityOf(reflect.ValueOf(aSlice[:1]))
	assert.NotEqual(t, whole, head)

	aMap := map[string]int{}
	mapID, _ := aTraversal.identityOf(reflect.ValueOf(aMap))
	sameMapID, _ := aTraversal.identityOf(reflect.ValueOf(aMap))
	assert.Equal(t, mapID, sameMapID)
}

func TestTraversal_Visit(t *testing.T) {
	aTraversal := newTraversal()
	id := Identity{TypeName: "int", Hash: 1}
	assert.True(t, aTraversal.visit(id))
	assert.False(t, aTraversal.visit(id))
	assert.True(t, aTraversal.visit(Identity{TypeName: "int", Hash: 2}))
}

func TestTypeName(t *testing.T) {
	var testCases = []struct {
		input  interface{}
		expect string
	}{
		{input: item{}, expect: ownedPrefix + "item"},
		{input: []int{}, expect: "[]int"},
		{input: 1, expect: "int"},
		{input: map[string]interface{}{}, expect: "map[string]interface {}"},
		{input: color(1), expect: ownedPrefix + "color"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, typeName(reflect.TypeOf(testCase.input)))
	}
}

func TestIsNil(t *testing.T) {
	var nilItem *item
	var nilMap map[string]int
	assert.True(t, isNil(nil))
	assert.True(t, isNil(nilItem))
	assert.True(t, isNil(&nilItem))
	assert.True(t, isNil(nilMap))
	assert.False(t, isNil(0))
	assert.False(t, isNil(""))
	assert.False(t, isNil(&item{}))
	assert.False(t, isNil([]int{}))
}
