package network

import (
	"fmt"

	"nhooyr.io/websocket"
)

// ErrNotConnected is returned when sending without an open connection.
type ErrNotConnected struct{}

func (e *ErrNotConnected) Error() string {
	return "not connected"
}

// ErrConnectionClosedByServer is reported when the server ends the connection.
type ErrConnectionClosedByServer struct {
	Status websocket.StatusCode
	Reason string
}

func (e *ErrConnectionClosedByServer) Error() string {
	return fmt.Sprintf("connection closed by server: %v %s", e.Status, e.Reason)
}

func IsNotConnected(err error) bool {
	_, ok := err.(*ErrNotConnected)
	return ok
}
