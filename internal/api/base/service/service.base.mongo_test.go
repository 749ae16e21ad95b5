// Package basesvc - Test ToUpdateData: wrap $set, pass-through operator, pass-through UpdateData.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUpdateData_WrapsPlainMapInSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"status": "fechado",
		"valor":  12.5,
	})
	require.NoError(t, err)
	require.NotNil(t, update)

	assert.Equal(t, "fechado", update.Set["status"])
	assert.Equal(t, 12.5, update.Set["valor"])
	assert.Nil(t, update.Unset)
	assert.Nil(t, update.SetOnInsert)
}

func TestToUpdateData_PreservesExistingOperators(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"$set":         map[string]interface{}{"status": "aberto"},
		"$setOnInsert": map[string]interface{}{"createdAt": int64(1)},
		"$unset":       map[string]interface{}{"dataFechamento": ""},
	})
	require.NoError(t, err)

	assert.Equal(t, "aberto", update.Set["status"])
	assert.Equal(t, int64(1), update.SetOnInsert["createdAt"])
	assert.Contains(t, update.Unset, "dataFechamento")
}

func TestToUpdateData_PassThroughUpdateData(t *testing.T) {
	src := &UpdateData{Set: map[string]interface{}{"a": 1}}

	update, err := ToUpdateData(src)
	require.NoError(t, err)
	assert.Same(t, src, update)

	byValue, err := ToUpdateData(UpdateData{Set: map[string]interface{}{"b": 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, byValue.Set["b"])
}
