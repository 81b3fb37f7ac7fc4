package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range ApplicationStatuses {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus("Pending"))
}
