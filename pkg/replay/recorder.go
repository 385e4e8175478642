package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/cbodonnell/bomberman/client/network"
	"github.com/klauspost/compress/zstd"
)

// Recorder writes received frames to a zstd compressed JSON lines stream.
// It is safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	out        io.WriteCloser
	compWriter *zstd.Encoder
	encoder    *json.Encoder
	now        func() time.Time

	started    bool
	connection string
	startedAt  time.Time
	frames     int
}

// NewRecorder takes ownership of out and closes it on Close.
func NewRecorder(out io.WriteCloser) (*Recorder, error) {
	compWriter, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	return &Recorder{
		out:        out,
		compWriter: compWriter,
		encoder:    json.NewEncoder(compWriter),
		now:        time.Now,
	}, nil
}

// CreateRecorder creates (or truncates) the recording at path.
func CreateRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording: %v", err)
	}
	r, err := NewRecorder(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

var _ network.FrameRecorder = (*Recorder)(nil)

// Record appends a frame. Error frames are not recorded.
func (r *Recorder) Record(frame network.Frame) error {
	if frame.Err != nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if !r.started || frame.ConnectionID != r.connection {
		r.started = true
		r.connection = frame.ConnectionID
		r.startedAt = now
		startedAt := now.UTC()
		if err := r.write(Entry{Kind: EntryKindConnection, Connection: frame.ConnectionID, StartedAt: &startedAt}); err != nil {
			return err
		}
	}

	r.frames++
	return r.write(Entry{
		Kind: EntryKindFrame,
		AtMS: now.Sub(r.startedAt).Milliseconds(),
		Data: string(frame.Data),
	})
}

func (r *Recorder) write(entry Entry) error {
	if r.encoder == nil {
		return fmt.Errorf("recorder is closed")
	}
	if err := r.encoder.Encode(entry); err != nil {
		return fmt.Errorf("failed to write recording entry: %v", err)
	}
	return nil
}

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.encoder == nil {
		return nil
	}
	r.encoder = nil
	if err := r.compWriter.Close(); err != nil {
		r.out.Close()
		return fmt.Errorf("failed to close zstd writer: %v", err)
	}
	return r.out.Close()
}
