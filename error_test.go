package slidedoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/slidedoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := slidedoc.Errorf(slidedoc.ESOURCENOTFOUND, "source %q not found", "deck.html")

	assert.Equal(t, slidedoc.ESOURCENOTFOUND, slidedoc.ErrorCode(err))
	assert.Equal(t, "source \"deck.html\" not found", slidedoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, slidedoc.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, slidedoc.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("converting: %w", slidedoc.Errorf(slidedoc.ECONVERTER, "pandoc exited 1"))

	assert.Equal(t, slidedoc.ECONVERTER, slidedoc.ErrorCode(err))
	assert.Equal(t, "pandoc exited 1", slidedoc.ErrorMessage(err))
}

func TestErrorCode_OtherError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, slidedoc.EINTERNAL, slidedoc.ErrorCode(err))
	assert.Equal(t, "Internal error", slidedoc.ErrorMessage(err))
}

func TestBatchError(t *testing.T) {
	t.Parallel()

	missing := slidedoc.Errorf(slidedoc.ESOURCENOTFOUND, "overview.html not found")
	noTitle := slidedoc.Errorf(slidedoc.ENOTITLESLIDE, "no title slide")
	err := &slidedoc.BatchError{Failures: []*slidedoc.Failure{
		{Spec: &slidedoc.DocumentSpec{Source: "overview.html"}, Err: missing},
		{Spec: &slidedoc.DocumentSpec{Source: "uppaal.html"}, Err: noTitle},
	}}

	t.Run("lists every failure", func(t *testing.T) {
		t.Parallel()

		msg := err.Error()
		assert.Contains(t, msg, "2 document(s) failed")
		assert.Contains(t, msg, "overview.html")
		assert.Contains(t, msg, "uppaal.html")
	})

	t.Run("unwraps to individual failures", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, err, missing)
		require.ErrorIs(t, err, noTitle)
		assert.Equal(t, slidedoc.ESOURCENOTFOUND, slidedoc.ErrorCode(err))
	})
}
