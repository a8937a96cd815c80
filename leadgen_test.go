package leadgen_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/leadgen"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := leadgen.Errorf(leadgen.EINVALID, "limit %d out of range", 20)

	assert.Equal(t, leadgen.EINVALID, leadgen.ErrorCode(err))
	assert.Equal(t, "limit 20 out of range", leadgen.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, leadgen.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, leadgen.EINTERNAL, leadgen.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, leadgen.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", leadgen.ErrorMessage(errors.New("boom")))
}

func TestSourceResult_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		r := &leadgen.SourceResult{}
		err := r.Validate()
		assert.Equal(t, leadgen.EINVALID, leadgen.ErrorCode(err))
	})

	t.Run("accepts empty interactions", func(t *testing.T) {
		t.Parallel()

		r := &leadgen.SourceResult{URL: "https://www.quora.com/some-thread"}
		assert.NoError(t, r.Validate())
	})
}
