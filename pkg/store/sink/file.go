package sink

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

const filePerm = 0o644

// FileSink truncates and rewrites a single file.
type FileSink struct {
	fs   afero.Fs
	path string
}

func NewFileSink(fs afero.Fs, path string) *FileSink {
	return &FileSink{fs: fs, path: path}
}

func (s *FileSink) Write(_ context.Context, doc []byte) error {
	if err := afero.WriteFile(s.fs, s.path, doc, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileSink) String() string {
	return "file://" + s.path
}

// StdoutSink prints the document instead of storing it.
type StdoutSink struct {
	writer io.Writer
}

func NewStdoutSink(w io.Writer) *StdoutSink {
	return &StdoutSink{writer: w}
}

func (s *StdoutSink) Write(_ context.Context, doc []byte) error {
	if _, err := s.writer.Write(doc); err != nil {
		return fmt.Errorf("failed to print document: %w", err)
	}
	return nil
}

func (s *StdoutSink) String() string {
	return "stdout"
}
