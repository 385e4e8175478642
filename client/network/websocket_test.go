package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

// testServer accepts WebSocket connections and hands them to the test.
type testServer struct {
	*httptest.Server
	conns chan *websocket.Conn
}

func newTestServer(t *testing.T) *testServer {
	s := &testServer{conns: make(chan *websocket.Conn, 8)}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			t.Errorf("failed to accept: %v", err)
			return
		}
		// the connection is hijacked, so it outlives this handler
		s.conns <- conn
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *testServer) wsURL() string {
	return "ws" + strings.TrimPrefix(s.URL, "http")
}

func (s *testServer) accept(t *testing.T) *websocket.Conn {
	select {
	case conn := <-s.conns:
		return conn
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for connection")
		return nil
	}
}

func nextFrame(t *testing.T, c *WSClient) Frame {
	select {
	case f := <-c.Frames():
		return f
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for frame")
		return Frame{}
	}
}

type memoryRecorder struct {
	lock   sync.Mutex
	frames []Frame
}

func (r *memoryRecorder) Record(frame Frame) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.frames = append(r.frames, frame)
	return nil
}

func TestWSClient_ReceiveAndSend(t *testing.T) {
	server := newTestServer(t)
	recorder := &memoryRecorder{}
	client := NewWSClient(NewWSClientOptions{ServerURL: server.wsURL(), Recorder: recorder})

	gen := client.Connect()
	assert.Equal(t, uint64(1), gen)
	serverConn := server.accept(t)

	ctx := context.Background()
	require.NoError(t, serverConn.Write(ctx, websocket.MessageBinary, []byte{0x1}))
	require.NoError(t, serverConn.Write(ctx, websocket.MessageText, []byte(`{"type":"assign_id","payload":"p1"}`)))

	frame := nextFrame(t, client)
	assert.Equal(t, gen, frame.Generation)
	assert.NotEmpty(t, frame.ConnectionID)
	assert.NoError(t, frame.Err)
	assert.Equal(t, `{"type":"assign_id","payload":"p1"}`, string(frame.Data))

	recorder.lock.Lock()
	require.Len(t, recorder.frames, 1)
	assert.Equal(t, frame.Data, recorder.frames[0].Data)
	recorder.lock.Unlock()

	assert.Eventually(t, func() bool {
		return client.Send([]byte(`{"type":"ready"}`)) == nil
	}, 5*time.Second, 10*time.Millisecond)

	readCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, data, err := serverConn.Read(readCtx)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"ready"}`, string(data))

	client.Disconnect()
	assert.Equal(t, uint64(0), client.Generation())
	assert.True(t, IsNotConnected(client.Send([]byte(`{"type":"ready"}`))))
}

func TestWSClient_SendWithoutConnection(t *testing.T) {
	client := NewWSClient(NewWSClientOptions{ServerURL: "ws://127.0.0.1:1"})
	err := client.Send([]byte(`{"type":"ready"}`))
	assert.True(t, IsNotConnected(err))
}

func TestWSClient_ServerCloseIsReported(t *testing.T) {
	server := newTestServer(t)
	client := NewWSClient(NewWSClientOptions{ServerURL: server.wsURL()})

	gen := client.Connect()
	serverConn := server.accept(t)
	require.NoError(t, serverConn.Close(websocket.StatusNormalClosure, "bye"))

	frame := nextFrame(t, client)
	assert.Equal(t, gen, frame.Generation)
	require.Error(t, frame.Err)
	closedErr, ok := frame.Err.(*ErrConnectionClosedByServer)
	require.True(t, ok)
	assert.Equal(t, websocket.StatusNormalClosure, closedErr.Status)
}

func TestWSClient_DialFailureIsReported(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	client := NewWSClient(NewWSClientOptions{ServerURL: "ws" + strings.TrimPrefix(server.URL, "http")})

	gen := client.Connect()
	frame := nextFrame(t, client)
	assert.Equal(t, gen, frame.Generation)
	assert.ErrorContains(t, frame.Err, "failed to connect to server")
}

func TestWSClient_DisconnectSendsGoingAway(t *testing.T) {
	server := newTestServer(t)
	client := NewWSClient(NewWSClientOptions{ServerURL: server.wsURL()})

	client.Connect()
	serverConn := server.accept(t)
	assert.Eventually(t, func() bool {
		client.lock.Lock()
		defer client.lock.Unlock()
		return client.current != nil && client.current.ws != nil
	}, 5*time.Second, 10*time.Millisecond)

	client.Disconnect()

	readCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := serverConn.Read(readCtx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))

	select {
	case frame := <-client.Frames():
		t.Fatalf("unexpected frame after disconnect: %+v", frame)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWSClient_ReconnectBumpsGeneration(t *testing.T) {
	const reconnectDelay = 200 * time.Millisecond
	server := newTestServer(t)
	client := NewWSClient(NewWSClientOptions{
		ServerURL:      server.wsURL(),
		ReconnectDelay: reconnectDelay,
	})

	first := client.Connect()
	firstConn := server.accept(t)
	assert.Eventually(t, func() bool {
		client.lock.Lock()
		defer client.lock.Unlock()
		return client.current.ws != nil
	}, 5*time.Second, 10*time.Millisecond)

	start := time.Now()
	second := client.Connect()
	assert.Greater(t, second, first)
	assert.Equal(t, second, client.Generation())

	// the superseded connection is closed with a close frame
	ctx := context.Background()
	readCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, _, err := firstConn.Read(readCtx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))

	secondConn := server.accept(t)
	assert.GreaterOrEqual(t, time.Since(start), reconnectDelay)
	require.NoError(t, secondConn.Write(ctx, websocket.MessageText, []byte(`"second"`)))

	frame := nextFrame(t, client)
	assert.Equal(t, second, frame.Generation)
	require.NoError(t, frame.Err)
	assert.Equal(t, `"second"`, string(frame.Data))
}
