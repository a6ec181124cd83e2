package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTableBounds(t *testing.T) {
	assert.NoError(t, ValidateTableBounds(128, 4, 16, 256, "function table"))
	assert.NoError(t, ValidateTableBounds(128, 0, 16, 128, "empty table"))
	assert.Error(t, ValidateTableBounds(128, 9, 16, 256, "function table"))
	assert.Error(t, ValidateTableBounds(300, 1, 16, 256, "offset past end"))
	assert.Error(t, ValidateTableBounds(0, ^uint64(0), 16, 256, "count overflow"))
}

func TestValidateSliceBounds(t *testing.T) {
	assert.NoError(t, ValidateSliceBounds(0, 10, 10, "storage"))
	assert.NoError(t, ValidateSliceBounds(10, 0, 10, "empty tail"))
	assert.Error(t, ValidateSliceBounds(8, 4, 10, "storage"))
	assert.Error(t, ValidateSliceBounds(11, 0, 10, "offset past end"))
}
