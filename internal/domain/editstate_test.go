package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditMode_String(t *testing.T) {
	tests := []struct {
		mode EditMode
		want string
	}{
		{EditIdle, "idle"},
		{EditComposing, "composing"},
		{EditEditing, "editing"},
		{EditMode(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.String())
	}
}

func TestEditState_Active(t *testing.T) {
	assert.False(t, EditState{}.Active())
	assert.True(t, EditState{Mode: EditComposing}.Active())
	assert.True(t, EditState{Mode: EditEditing, TaskID: 1}.Active())
}
