package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("parser", func(t *testing.T) {
		cfg := Default()
		require.False(t, cfg.Parser.Strict)
		require.Positive(t, cfg.Parser.HeadersPrealloc)
	})

	t.Run("serializer", func(t *testing.T) {
		cfg := Default()
		require.Positive(t, cfg.Serializer.BufferPrealloc)
		require.Equal(t, "HTTP/1.1", cfg.Serializer.DefaultProto)
	})

	t.Run("net", func(t *testing.T) {
		cfg := Default()
		require.Positive(t, cfg.NET.ReadBufferSize)
		require.Positive(t, int64(cfg.NET.ReadTimeout))
	})

	t.Run("fresh instance", func(t *testing.T) {
		cfg := Default()
		cfg.Serializer.DefaultProto = "HTTP/2.0"
		cfg.Parser.Strict = true
		require.NotSame(t, cfg, Default())
		require.Equal(t, "HTTP/1.1", Default().Serializer.DefaultProto)
		require.False(t, Default().Parser.Strict)
	})
}
