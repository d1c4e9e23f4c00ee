package httpserver

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/net/websocket"

	"github.com/farmtotable/storefront/internal/logging"
)

const echoPrefix = "Echo: "

// EchoSocket is the experimental bidirectional channel: every received
// message is sent straight back with a fixed prefix. No auth, no
// structured framing, no reconnection semantics.
func EchoSocket(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "ws.echo")

	websocket.Handler(func(ws *websocket.Conn) {
		defer ws.Close()
		for {
			var msg string
			if err := websocket.Message.Receive(ws, &msg); err != nil {
				l.Info("socket_closed", "error", err)
				return
			}
			if err := websocket.Message.Send(ws, echoPrefix+msg); err != nil {
				l.Warn("socket_send_failed", "error", err)
				return
			}
		}
	}).ServeHTTP(c.Response(), c.Request())

	return nil
}
