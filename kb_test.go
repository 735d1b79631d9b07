package kb_test

import (
	"testing"

	"github.com/docsmith/kb"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := kb.Errorf(kb.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, kb.ENOTFOUND, kb.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", kb.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, kb.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, kb.EINTERNAL, kb.ErrorCode(assert.AnError))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, kb.ErrorMessage(nil))
}
