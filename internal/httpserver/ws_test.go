package httpserver

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func TestEchoSocket_EchoesWithPrefix(t *testing.T) {
	e := echo.New()
	e.GET("/ws", EchoSocket)

	srv := httptest.NewServer(e)
	defer srv.Close()

	wsURL := strings.Replace(srv.URL, "http://", "ws://", 1) + "/ws"
	conn, err := websocket.Dial(wsURL, "", srv.URL)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, websocket.Message.Send(conn, "hello"))

	var reply string
	require.NoError(t, websocket.Message.Receive(conn, &reply))
	require.Equal(t, "Echo: hello", reply)

	require.NoError(t, websocket.Message.Send(conn, "vankayalu"))
	require.NoError(t, websocket.Message.Receive(conn, &reply))
	require.Equal(t, "Echo: vankayalu", reply)
}
