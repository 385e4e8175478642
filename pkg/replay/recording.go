package replay

import (
	"time"
)

const (
	EntryKindConnection = "connection"
	EntryKindFrame      = "frame"
)

// Entry is one line of a recording. A connection entry starts each
// connection's segment and frame entries follow it in arrival order.
type Entry struct {
	Kind       string     `json:"kind"`
	Connection string     `json:"connection,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	// AtMS is the offset from the start of the connection
	AtMS int64  `json:"at_ms"`
	Data string `json:"data,omitempty"`
}

// Segment is the frames received on one connection.
type Segment struct {
	Connection string
	StartedAt  time.Time
	Frames     []Entry
}

// Segments groups entries by connection. Frames recorded before any
// connection entry are placed in an anonymous first segment.
func Segments(entries []Entry) []Segment {
	segments := []Segment{}
	for _, entry := range entries {
		switch entry.Kind {
		case EntryKindConnection:
			segment := Segment{Connection: entry.Connection, Frames: []Entry{}}
			if entry.StartedAt != nil {
				segment.StartedAt = *entry.StartedAt
			}
			segments = append(segments, segment)
		case EntryKindFrame:
			if len(segments) == 0 {
				segments = append(segments, Segment{Frames: []Entry{}})
			}
			last := &segments[len(segments)-1]
			last.Frames = append(last.Frames, entry)
		}
	}
	return segments
}
