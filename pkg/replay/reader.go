package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// ReadEntries decodes every entry of a recording.
func ReadEntries(in io.Reader) ([]Entry, error) {
	compReader, err := zstd.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	decoder := json.NewDecoder(compReader)
	entries := []Entry{}
	for {
		entry := Entry{}
		if err := decoder.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				return entries, nil
			}
			return nil, fmt.Errorf("failed to read recording entry %d: %v", len(entries)+1, err)
		}
		entries = append(entries, entry)
	}
}

// Load reads the recording at path.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording: %v", err)
	}
	defer f.Close()
	return ReadEntries(f)
}
