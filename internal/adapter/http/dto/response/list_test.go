package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewList(t *testing.T) {
	body, err := json.Marshal(NewList[int](nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"total":0}`, string(body))

	assert.Equal(t, 2, NewList([]string{"a", "b"}).Total)
}

func TestNewValuesValidation(t *testing.T) {
	assert.True(t, NewValuesValidation(nil).Valid)

	got := NewValuesValidation(map[string]string{"deductible": "Deductible is required"})
	assert.False(t, got.Valid)
	assert.Contains(t, got.Errors, "deductible")
}
