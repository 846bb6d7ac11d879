package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	t.Run("starting a span ends the previous one", func(t *testing.T) {
		profile, endProfile := NewProfile()
		first, _ := profile.StartNewSpan("parse csv")
		require.Nil(t, first.Elapsed)

		_, endSecond := profile.StartNewSpan("replace investors")
		require.NotNil(t, first.Elapsed)
		endSecond()
		endProfile()

		spans := profile.Spans()
		require.Len(t, spans, 2)
		require.Equal(t, "parse csv", spans[0].Name)
		require.Equal(t, "replace investors", spans[1].Name)
		require.NotNil(t, spans[1].Elapsed)
		require.NotNil(t, profile.TotalMs)
	})

	t.Run("ending twice keeps the first duration", func(t *testing.T) {
		profile, _ := NewProfile()
		span, endSpan := profile.StartNewSpan("load investors")
		endSpan()
		elapsed := *span.Elapsed
		endSpan()
		require.Equal(t, elapsed, *span.Elapsed)
	})

	t.Run("context round trip", func(t *testing.T) {
		profile, _ := NewProfile()
		ctx := NewContextWithProfile(context.Background(), profile)
		require.Same(t, profile, GetProfile(ctx))
	})

	t.Run("missing profile is detached", func(t *testing.T) {
		profile := GetProfile(context.Background())
		require.NotNil(t, profile)
		profile.StartNewSpan("unused")
		require.Len(t, GetProfile(context.Background()).Spans(), 0)
	})
}
