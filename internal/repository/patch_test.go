package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSetOrdersColumns(t *testing.T) {
	cols := map[string]any{
		"email":      "ada@example.test",
		"first_name": "Ada",
		"phone":      "+44",
	}
	set, args := buildSet(cols, userPatchOrder)

	// Map iteration order must not leak into the statement.
	assert.Equal(t, "first_name = ?, email = ?, phone = ?", set)
	assert.Equal(t, []any{"Ada", "ada@example.test", "+44"}, args)
}

func TestBuildSetSkipsUnknownColumns(t *testing.T) {
	set, args := buildSet(map[string]any{"role": "admin"}, userPatchOrder)
	assert.Empty(t, set)
	assert.Empty(t, args)
}

func TestBuildSetEmptyPatch(t *testing.T) {
	set, args := buildSet(map[string]any{}, userPatchOrder)
	assert.Empty(t, set)
	assert.Empty(t, args)
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, isDuplicate(errDuplicateKey))
	assert.False(t, isDuplicate(nil))
	assert.False(t, isDuplicate(assert.AnError))
}
