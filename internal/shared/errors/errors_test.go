package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"validation", Validationf("field %s out of range", "belt_density"), ErrorTypeValidation},
		{"invariant", Invariantf("dangling parent %q", "x"), ErrorTypeInvariant},
		{"not found", NotFoundf("preset %s", "x"), ErrorTypeNotFound},
		{"wrapped app error", fmt.Errorf("outer: %w", Validation("bad")), ErrorTypeValidation},
		{"plain error", stderrors.New("boom"), ErrorTypeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetType(tt.err))
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("root cause")
	err := WrapInvariant("assembly failed", cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "assembly failed: root cause", err.Error())
	assert.True(t, IsType(err, ErrorTypeInvariant))
	assert.False(t, IsType(nil, ErrorTypeInvariant))
}
