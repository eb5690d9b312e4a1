package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/scaffold/compiler/editor"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
	"github.com/syssam/scaffold/schema/field"
)

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("workers", -1, "workers cannot be negative")

		assert.Contains(t, err.Error(), "scaffold: config error")
		assert.Contains(t, err.Error(), "workers")
		assert.Contains(t, err.Error(), "-1")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("paths.models", nil, "path cannot be empty")

		assert.NotContains(t, err.Error(), "value:")
		assert.Contains(t, err.Error(), "path cannot be empty")
	})

	t.Run("Is matches ErrInvalidConfig", func(t *testing.T) {
		err := NewConfigError("x", nil, "bad")
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.True(t, IsConfigError(fmt.Errorf("wrap: %w", err)))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestRequestError(t *testing.T) {
	cause := errors.New("root cause")
	err := NewRequestError("Post", "bad request", cause)

	assert.Equal(t, "scaffold: request error for Post: bad request: root cause", err.Error())
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsRequestError(err))
	assert.Equal(t, "scaffold: request error: empty", NewRequestError("", "empty", nil).Error())
}

func TestGenerationError(t *testing.T) {
	cause := &stub.NotFoundError{Name: "model"}
	err := NewGenerationError(KindModel, "Post", "", cause)

	assert.Contains(t, err.Error(), "generation error in model for Post")
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.True(t, IsGenerationError(err))
	assert.NotContains(t, NewGenerationError(NoKind, "", "x", nil).Error(), " in ")
}

func TestIsStructural(t *testing.T) {
	_, parseErr := field.Parse("title, title")
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"parse", parseErr, true},
		{"template", NewGenerationError(KindModel, "Post", "", &stub.NotFoundError{Name: "model"}), true},
		{"config", NewConfigError("x", nil, "bad"), true},
		{"request", NewRequestError("", "bad", nil), true},
		{"conflict", &writer.PathError{Op: "write", Path: "a", Err: writer.ErrWriteConflict}, false},
		{"merge target", writer.ErrMergeTargetMissing, false},
		{"patch", &editor.PatchError{Anchor: "run", Message: "method not found"}, false},
		{"other", errors.New("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStructural(tt.err))
		})
	}
	assert.True(t, IsFieldError(parseErr))
}
