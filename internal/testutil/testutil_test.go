package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintrc/lintrc/internal/logging"
)

func TestNewTestContextCapturesOutput(t *testing.T) {
	t.Parallel()

	ctx, getLogOutput := NewTestContext(t)

	logging.Get(ctx).Debug().Msg("captured")

	assert.Contains(t, getLogOutput(), "captured")
}

func TestVerifyNoLeaks(t *testing.T) {
	require.NotPanics(t, func() {
		VerifyNoLeaks(t)
	})
}
