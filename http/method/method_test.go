package method

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkParse(b *testing.B) {
	var parsed Method

	for i := Unknown; i <= Count; i++ {
		b.Run(i.String(), func(b *testing.B) {
			m := i.String()
			b.SetBytes(int64(len(m)))
			b.ResetTimer()

			for j := 0; j < b.N; j++ {
				parsed = Parse(m)
			}
		})
	}

	keepalive(parsed)
}

func keepalive(Method) {}

func TestParse(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		for _, method := range List {
			require.Equal(t, method, Parse(method.String()))
		}
	})

	t.Run("unknown", func(t *testing.T) {
		for _, token := range []string{
			"", "G", "get", "GETS", "GE", "PO", "POSTT", "UNKNOWN", "BREW", "CONNECTED",
		} {
			require.Equal(t, Unknown, Parse(token), token)
		}
	})

	t.Run("string", func(t *testing.T) {
		require.Equal(t, "GET", GET.String())
		require.Equal(t, "UNKNOWN", Unknown.String())
		require.Equal(t, "UNKNOWN", Method(200).String())
	})
}
