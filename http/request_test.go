package http

import (
	"testing"

	"github.com/indigo-web/minihttp/http/method"
	"github.com/indigo-web/minihttp/http/proto"
	"github.com/indigo-web/minihttp/kv"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	request := NewRequest(kv.New())
	require.Equal(t, method.Unknown, request.Method)
	require.Equal(t, proto.HTTP11, request.Proto)
	require.Equal(t, Resource{Path: ""}, request.Resource)
	require.False(t, request.HasRequestLine())
	require.Empty(t, request.Body)

	request.MethodToken, request.Method = "GET", method.GET
	require.True(t, request.HasRequestLine())
	require.True(t, request.MethodRecognized())
	require.True(t, request.ProtoRecognized())
	require.Equal(t, "/x", Resource{Path: "/x"}.String())
}
