package validation

import (
	"testing"

	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct(t *testing.T) {
	type story struct {
		Title string `validate:"required"`
		Url   string `validate:"required,http_url"`
	}

	require.NoError(t, Struct(story{Title: "T", Url: "http://x.com"}))

	err := Struct(story{Url: "not a url"})
	require.Error(t, err)
	assert.ErrorIs(t, err, internal_errors.ErrValidation)
	assert.Contains(t, err.Error(), `Title failed on "required"`)
	assert.Contains(t, err.Error(), `Url failed on "http_url"`)
}

func TestStructNonStruct(t *testing.T) {
	err := Struct("plain string")
	assert.ErrorIs(t, err, internal_errors.ErrValidation)
}
