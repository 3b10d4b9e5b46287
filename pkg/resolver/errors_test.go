package resolver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathNotFoundError(t *testing.T) {
	t.Run("message embeds the name", func(t *testing.T) {
		err := &PathNotFoundError{Name: "users.show"}
		assert.Equal(t, `Cannot resolve path "users.show" from path list`, err.Error())
	})

	t.Run("matches sentinel", func(t *testing.T) {
		err := &PathNotFoundError{Name: "x"}
		assert.True(t, errors.Is(err, ErrPathNotFound))
		assert.False(t, errors.Is(err, errors.New("path not found")))
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("building link: %w", &PathNotFoundError{Name: "x"})
		assert.ErrorIs(t, wrapped, ErrPathNotFound)

		var notFound *PathNotFoundError
		assert.ErrorAs(t, wrapped, &notFound)
		assert.Equal(t, "x", notFound.Name)
	})
}

func TestPathNotFoundError_NameIsNotEscaped(t *testing.T) {
	err := &PathNotFoundError{Name: `a"b\c`}
	assert.Equal(t, `Cannot resolve path "a"b\c" from path list`, err.Error())
}
