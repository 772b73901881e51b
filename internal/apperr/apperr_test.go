package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesKindSentinel(t *testing.T) {
	errTitleTaken := New(KindDuplicate, "title taken")
	wrapped := fmt.Errorf("insert book: %w", errTitleTaken)

	assert.True(t, errors.Is(wrapped, ErrDuplicate))
	assert.True(t, errors.Is(wrapped, errTitleTaken))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, New(KindDuplicate, "other")))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", New(KindValidation, "bad"), KindValidation},
		{"wrapped not found", fmt.Errorf("lookup: %w", New(KindNotFound, "missing")), KindNotFound},
		{"plain error", errors.New("boom"), KindUnexpected},
		{"nil", nil, KindUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindUnexpected, "could not save", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "could not save", MessageOf(err, "fallback"))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestMessageOf_Fallback(t *testing.T) {
	assert.Equal(t, "fallback", MessageOf(errors.New("raw"), "fallback"))
	assert.Equal(t, "fallback", MessageOf(ErrNotFound, "fallback"))
}
