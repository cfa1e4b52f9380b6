package correlation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsure(t *testing.T) {
	t.Run("keeps existing id", func(t *testing.T) {
		ctx := WithID(context.Background(), "corr-1")

		got := Ensure(ctx, "corr-2")

		assert.Equal(t, "corr-1", FromContext(got))
	})

	t.Run("uses candidate when missing", func(t *testing.T) {
		got := Ensure(context.Background(), "req-abc")

		assert.Equal(t, "req-abc", FromContext(got))
	})

	t.Run("generates uuid when candidate is empty", func(t *testing.T) {
		got := Ensure(context.Background(), "")

		_, err := uuid.Parse(FromContext(got))
		require.NoError(t, err)
	})
}

func TestFromContext_Empty(t *testing.T) {
	assert.Equal(t, "", FromContext(context.Background()))
}
