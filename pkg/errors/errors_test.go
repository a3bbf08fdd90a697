package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "message"))
	assert.Nil(t, WrapWithCode(nil, CodeParse, "message"))
}

func TestCodes(t *testing.T) {
	base := fmt.Errorf("disk full")
	inner := WrapWithCode(base, CodeWriteFile, "write document")
	outer := Wrap(fmt.Errorf("post 1: %w", inner), "import")

	assert.Equal(t, "", GetCode(outer))
	assert.True(t, HasCode(outer, CodeWriteFile))
	assert.False(t, HasCode(outer, CodeLedger))
	assert.Equal(t, CodeWriteFile, GetCode(inner))
	assert.ErrorIs(t, outer, base)
	assert.Equal(t, "write document: disk full", inner.Error())
}

func TestAborted(t *testing.T) {
	err := Wrap(ErrAborted, "token check")
	assert.True(t, IsAborted(err))
	assert.False(t, IsAborted(ErrInvalidInput))
}
