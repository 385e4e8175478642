package network

// Frame is a raw inbound text message tagged with the generation of the
// connection that received it. A frame with a non-nil Err is the last one for
// its generation.
type Frame struct {
	Generation   uint64
	ConnectionID string
	Data         []byte
	Err          error
}

// Transport owns at most one connection to the server at a time.
type Transport interface {
	// Connect replaces any prior connection and returns the new generation.
	// Dialing happens in the background; failures arrive as a Frame with Err.
	Connect() uint64
	// Disconnect closes the active connection.
	Disconnect()
	// Send writes a text message on the current connection. Without an open
	// connection it logs a warning and returns ErrNotConnected.
	Send(b []byte) error
	// Frames delivers inbound frames from every generation in arrival order.
	Frames() <-chan Frame
}

// FrameRecorder receives every inbound text frame. Implementations must be
// safe for concurrent use.
type FrameRecorder interface {
	Record(frame Frame) error
}
