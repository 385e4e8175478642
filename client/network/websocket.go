package network

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cbodonnell/bomberman/pkg/log"
	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

const (
	DefaultServerURL      = "ws://localhost:8765"
	DefaultDialTimeout    = 10 * time.Second
	DefaultWriteTimeout   = 3 * time.Second
	DefaultReconnectDelay = 300 * time.Millisecond
	DefaultReadLimit      = 1 << 20
	// FrameChannelSize represents the size of the inbound frame channel
	FrameChannelSize = 256
)

// WSClient is a Transport over a WebSocket connection.
type WSClient struct {
	serverURL      string
	recorder       FrameRecorder
	dialTimeout    time.Duration
	writeTimeout   time.Duration
	reconnectDelay time.Duration
	readLimit      int64
	frames         chan Frame

	lock        sync.Mutex
	generation  uint64
	current     *connection
	tearingDown int
}

type NewWSClientOptions struct {
	ServerURL string
	// Recorder is optional.
	Recorder       FrameRecorder
	DialTimeout    time.Duration
	WriteTimeout   time.Duration
	ReconnectDelay time.Duration
	ReadLimit      int64
}

// NewWSClient creates a new WebSocket client. Zero options use the defaults.
func NewWSClient(opts NewWSClientOptions) *WSClient {
	c := &WSClient{
		serverURL:      opts.ServerURL,
		recorder:       opts.Recorder,
		dialTimeout:    opts.DialTimeout,
		writeTimeout:   opts.WriteTimeout,
		reconnectDelay: opts.ReconnectDelay,
		readLimit:      opts.ReadLimit,
		frames:         make(chan Frame, FrameChannelSize),
	}
	if c.serverURL == "" {
		c.serverURL = DefaultServerURL
	}
	if c.dialTimeout <= 0 {
		c.dialTimeout = DefaultDialTimeout
	}
	if c.writeTimeout <= 0 {
		c.writeTimeout = DefaultWriteTimeout
	}
	if c.reconnectDelay <= 0 {
		c.reconnectDelay = DefaultReconnectDelay
	}
	if c.readLimit <= 0 {
		c.readLimit = DefaultReadLimit
	}
	return c
}

// connection is one dial/read lifecycle.
type connection struct {
	generation uint64
	id         string
	ctx        context.Context
	cancel     context.CancelFunc
	ws         *websocket.Conn
	logger     *log.Logger
	// closing is set once the client starts closing the connection
	closing atomic.Bool
}

func (c *WSClient) Connect() uint64 {
	c.lock.Lock()
	c.generation++
	ctx, cancel := context.WithCancel(context.Background())
	conn := &connection{
		generation: c.generation,
		id:         uuid.NewString(),
		ctx:        ctx,
		cancel:     cancel,
	}
	conn.logger = log.With("generation", conn.generation).With("connection", conn.id)
	prev := c.current
	c.current = conn
	var delay time.Duration
	if prev != nil || c.tearingDown > 0 {
		// let the previous connection finish closing before dialing again
		delay = c.reconnectDelay
	}
	c.tearingDown++
	c.lock.Unlock()

	if prev != nil {
		prev.logger.Info("Closing previous connection before reconnecting")
		go c.close(prev)
	}
	go c.run(conn, delay)

	return conn.generation
}

func (c *WSClient) Disconnect() {
	c.lock.Lock()
	conn := c.current
	c.current = nil
	c.lock.Unlock()

	if conn == nil {
		log.Warn("WebSocket connection is already closed")
		return
	}
	conn.logger.Info("Disconnecting from %s", c.serverURL)
	go c.close(conn)
}

// close sends a going away close frame on an open socket, waits for the
// close handshake and then cancels the connection.
func (c *WSClient) close(conn *connection) {
	conn.closing.Store(true)
	c.lock.Lock()
	ws := conn.ws
	c.lock.Unlock()

	if ws != nil {
		if err := ws.Close(websocket.StatusGoingAway, ""); err != nil {
			conn.logger.Debug("Close handshake did not complete: %v", err)
		}
	}
	conn.cancel()
}

func (c *WSClient) Frames() <-chan Frame {
	return c.frames
}

// Generation returns the generation of the current connection, or 0.
func (c *WSClient) Generation() uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.current == nil {
		return 0
	}
	return c.current.generation
}

func (c *WSClient) Send(b []byte) error {
	c.lock.Lock()
	conn := c.current
	var ws *websocket.Conn
	if conn != nil {
		ws = conn.ws
	}
	c.lock.Unlock()

	if ws == nil {
		log.Warn("Cannot send message: WebSocket is not connected")
		return &ErrNotConnected{}
	}

	ctx, cancel := context.WithTimeout(conn.ctx, c.writeTimeout)
	defer cancel()
	if err := ws.Write(ctx, websocket.MessageText, b); err != nil {
		conn.logger.Warn("Failed to send message: %v", err)
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}
	conn.logger.Trace("Sent %s", b)

	return nil
}

// run dials and then reads until the connection fails or is cancelled.
func (c *WSClient) run(conn *connection, delay time.Duration) {
	defer func() {
		c.lock.Lock()
		c.tearingDown--
		c.lock.Unlock()
	}()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-conn.ctx.Done():
			return
		}
	}

	conn.logger.Info("Connecting to WebSocket server at %s", c.serverURL)
	dialCtx, cancelDial := context.WithTimeout(conn.ctx, c.dialTimeout)
	ws, _, err := websocket.Dial(dialCtx, c.serverURL, nil)
	cancelDial()
	if err != nil {
		if conn.ctx.Err() != nil {
			return
		}
		conn.logger.Error("Failed to connect to server: %v", err)
		c.emit(conn, Frame{Err: fmt.Errorf("failed to connect to server: %v", err)})
		return
	}
	defer ws.Close(websocket.StatusGoingAway, "")
	ws.SetReadLimit(c.readLimit)

	c.lock.Lock()
	if c.current != conn {
		c.lock.Unlock()
		conn.logger.Debug("Discarding connection superseded while dialing")
		return
	}
	conn.ws = ws
	c.lock.Unlock()
	conn.logger.Info("Connected to WebSocket server")

	c.readLoop(conn, ws)
}

func (c *WSClient) readLoop(conn *connection, ws *websocket.Conn) {
	for {
		messageType, data, err := ws.Read(conn.ctx)
		if err != nil {
			if conn.ctx.Err() != nil || conn.closing.Load() {
				conn.logger.Debug("Connection closed by client")
				return
			}
			var closeErr websocket.CloseError
			if errors.As(err, &closeErr) {
				conn.logger.Info("Connection closed by server: %v", closeErr)
				c.emit(conn, Frame{Err: &ErrConnectionClosedByServer{Status: closeErr.Code, Reason: closeErr.Reason}})
				return
			}
			conn.logger.Error("Error reading WebSocket message: %v", err)
			c.emit(conn, Frame{Err: fmt.Errorf("failed to read message: %v", err)})
			return
		}

		if messageType != websocket.MessageText {
			conn.logger.Debug("Ignoring binary message of %d bytes", len(data))
			continue
		}
		conn.logger.Trace("Received %s", data)

		frame := Frame{Data: data}
		if c.recorder != nil {
			frame.Generation = conn.generation
			frame.ConnectionID = conn.id
			if err := c.recorder.Record(frame); err != nil {
				conn.logger.Warn("Failed to record frame: %v", err)
			}
		}
		c.emit(conn, frame)
	}
}

// emit delivers a frame unless the connection is closing or cancelled.
func (c *WSClient) emit(conn *connection, frame Frame) {
	if conn.ctx.Err() != nil || conn.closing.Load() {
		return
	}
	frame.Generation = conn.generation
	frame.ConnectionID = conn.id
	select {
	case c.frames <- frame:
	case <-conn.ctx.Done():
	}
}
