package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("returns logger stored in ctx", func(t *testing.T) {
		l := New()
		ctx := AddToContext(context.Background(), l)
		require.Same(t, l, FromContext(ctx))
	})

	t.Run("creates logger when ctx has none", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
