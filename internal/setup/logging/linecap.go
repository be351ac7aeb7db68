package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LineCapWriter wraps a log file and keeps it from growing past a fixed
// number of lines. It buffers the most recent maxLines lines and rewrites the
// file with just those once twice the cap has passed through.
type LineCapWriter struct {
	writer   io.Writer
	filePath string
	mutex    sync.Mutex

	lines     []string
	capacity  int
	head      int
	size      int
	totalSeen int
}

// NewLineCapWriter creates a writer keeping at most maxLines lines in the
// file at filePath.
func NewLineCapWriter(writer io.Writer, maxLines int, filePath string) *LineCapWriter {
	return &LineCapWriter{
		writer:   writer,
		filePath: filePath,
		lines:    make([]string, maxLines),
		capacity: maxLines,
	}
}

// Write implements io.Writer.
func (w *LineCapWriter) Write(p []byte) (n int, err error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	n, err = w.writer.Write(p)
	if err != nil {
		return n, err
	}

	for line := range strings.SplitSeq(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}

		w.push(line)

		if w.totalSeen == w.capacity*2 {
			if err := w.rewrite(); err != nil {
				return n, fmt.Errorf("failed to rewrite log file: %w", err)
			}

			w.totalSeen = w.size
		}
	}

	return n, nil
}

// push appends a line to the ring of retained lines.
func (w *LineCapWriter) push(line string) {
	w.lines[w.head] = line

	w.head = (w.head + 1) % w.capacity
	if w.size < w.capacity {
		w.size++
	}

	w.totalSeen++
}

// retained returns the buffered lines in chronological order.
func (w *LineCapWriter) retained() []string {
	if w.size == 0 {
		return nil
	}

	result := make([]string, w.size)
	start := (w.head - w.size + w.capacity) % w.capacity

	for i := range w.size {
		result[i] = w.lines[(start+i)%w.capacity]
	}

	return result
}

// rewrite replaces the file on disk with just the retained lines.
func (w *LineCapWriter) rewrite() error {
	lines := w.retained()
	if len(lines) == 0 {
		return nil
	}

	temp, err := os.CreateTemp(filepath.Dir(w.filePath), "temp-log-")
	if err != nil {
		return err
	}

	tempPath := temp.Name()

	if _, err := temp.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		temp.Close()
		os.Remove(tempPath)

		return err
	}

	if err := temp.Sync(); err != nil {
		temp.Close()
		os.Remove(tempPath)

		return err
	}

	temp.Close()

	if closer, ok := w.writer.(io.Closer); ok {
		closer.Close()
	}

	// On Windows the destination must not exist before the rename
	os.Remove(w.filePath)

	if err := os.Rename(tempPath, w.filePath); err != nil {
		return err
	}

	newFile, err := os.OpenFile(w.filePath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	w.writer = newFile

	return nil
}
