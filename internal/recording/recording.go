// Package recording reads JSONL frame recordings: one JSON object per line
// with a millisecond timestamp and exactly 33 landmarks. Files ending in .gz
// are transparently decompressed. Recordings are the offline stand-in for the
// live pose detector, so the decoder enforces the same frame contract the
// engine assumes.
package recording

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/pose"
)

// maxLineBytes bounds a single recording line. A 33-landmark frame is well
// under 4 KiB; the limit just guards against unbounded reads on junk input.
const maxLineBytes = 1 << 20

type rawFrame struct {
	T         int64           `json:"t"`
	Landmarks []pose.Landmark `json:"landmarks"`
}

// Read decodes frames from r until EOF. Blank lines are skipped. A line with
// a landmark count other than 33 fails with pose.ErrInvalidFrame context:
// that is a recorder bug, not a runtime condition, and must surface loudly.
func Read(r io.Reader) ([]*pose.Frame, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var frames []*pose.Frame
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var raw rawFrame
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(raw.Landmarks) != pose.NumLandmarks {
			return nil, fmt.Errorf("line %d: got %d landmarks: %w", lineNo, len(raw.Landmarks), pose.ErrInvalidFrame)
		}

		f := &pose.Frame{TimestampMS: raw.T}
		copy(f.Landmarks[:], raw.Landmarks)
		frames = append(frames, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}
	return frames, nil
}

// ReadFile decodes the recording at path. Files with a .gz suffix are
// gunzipped on the fly.
func ReadFile(path string) ([]*pose.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recording: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	frames, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return frames, nil
}

// Write encodes frames to w in the JSONL recording format, one frame per
// line. Useful for capturing fixtures and for round-trip tests.
func Write(w io.Writer, frames []*pose.Frame) error {
	enc := json.NewEncoder(w)
	for i, f := range frames {
		raw := rawFrame{T: f.TimestampMS, Landmarks: f.Landmarks[:]}
		if err := enc.Encode(raw); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}
