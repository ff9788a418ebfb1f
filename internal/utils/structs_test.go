package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedStruct struct {
	ID        string `db:"id"`
	FirstName string `db:"first_name"`
	Skipped   string `db:"-"`
	NoTag     string
	hidden    string `db:"hidden"`
}

func TestStructTagValues(t *testing.T) {
	values := StructTagValues(taggedStruct{})
	assert.Equal(t, []string{"id", "first_name"}, values)

	pointerValues := StructTagValues(&taggedStruct{})
	assert.Equal(t, values, pointerValues)
}

func TestStructTagValuesPanicsOnNonStruct(t *testing.T) {
	assert.Panics(t, func() {
		StructTagValues("not a struct")
	})
}

func TestStructToMap(t *testing.T) {
	input := &taggedStruct{
		ID:        "abc",
		FirstName: "Sarah",
		Skipped:   "nope",
		NoTag:     "nope",
		hidden:    "nope",
	}

	m := StructToMap(input)
	require.Len(t, m, 2)
	assert.Equal(t, "abc", m["id"])
	assert.Equal(t, "Sarah", m["first_name"])
}

func TestErrorWrapOrNil(t *testing.T) {
	assert.NoError(t, ErrorWrapOrNil(nil, "context"))

	base := errors.New("boom")
	wrapped := ErrorWrapOrNil(base, "failed to do thing")
	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "failed to do thing: boom", wrapped.Error())

	assert.Equal(t, base, ErrorWrapOrNil(base, ""))
}

func TestPrefixSliceOfStrings(t *testing.T) {
	out := PrefixSliceOfStrings("e", []string{"id", "title", "created_by_id"}, "created_by_id")
	assert.Equal(t, []string{"e.id", "e.title"}, out)
}

func TestNanoID(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		id := NanoID()
		require.Len(t, id, 32)
		require.False(t, seen[id])
		seen[id] = true
	}
}
