package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(s *Storage) (pairs []Pair) {
	for key, value := range s.Pairs() {
		pairs = append(pairs, Pair{key, value})
	}

	return pairs
}

func TestStorage(t *testing.T) {
	getHeaders := func() *Storage {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("Hello", "Pavlo")
	}

	t.Run("case sensitive", func(t *testing.T) {
		kv := getHeaders()
		require.True(t, kv.Has("Hello"))
		require.False(t, kv.Has("hello"))
		require.Empty(t, kv.Value("HELLO"))
	})

	t.Run("get", func(t *testing.T) {
		kv := getHeaders()
		value, found := kv.Get("Hello")
		require.True(t, found)
		require.Equal(t, "World", value)

		value, found = kv.Get("Random")
		require.False(t, found)
		require.Empty(t, value)
		require.Equal(t, "default", kv.ValueOr("Random", "default"))
	})

	t.Run("pairs keep insertion order", func(t *testing.T) {
		want := []Pair{
			{"Foo", "bar"},
			{"Hello", "World"},
			{"Lorem", "ipsum"},
			{"Hello", "Pavlo"},
		}

		require.Equal(t, want, collect(getHeaders()))
		require.Equal(t, len(want), getHeaders().Len())
	})

	t.Run("pairs stop early", func(t *testing.T) {
		var keys []string
		for key := range getHeaders().Pairs() {
			keys = append(keys, key)
			if len(keys) == 2 {
				break
			}
		}

		require.Equal(t, []string{"Foo", "Hello"}, keys)
	})

	t.Run("set", func(t *testing.T) {
		kv := getHeaders().Set("Hello", "no more Pavlo")

		want := []Pair{
			{"Foo", "bar"},
			{"Hello", "no more Pavlo"},
			{"Lorem", "ipsum"},
		}

		require.Equal(t, want, collect(kv))
	})

	t.Run("set new key", func(t *testing.T) {
		kv := New().
			Add("Pavlo", "the best").
			Set("Glory to", "Ukraine")

		want := []Pair{
			{"Pavlo", "the best"},
			{"Glory to", "Ukraine"},
		}

		require.Equal(t, want, collect(kv))
	})

	t.Run("empty", func(t *testing.T) {
		kv := NewPrealloc(4)
		require.Zero(t, kv.Len())
		require.Nil(t, collect(kv))
	})
}
