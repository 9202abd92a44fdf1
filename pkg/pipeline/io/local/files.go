package local

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// FileError reports an input or output file that could not be opened.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e == nil {
		return "file error"
	}
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("File %s not found!", e.Path)
	}
	return fmt.Sprintf("File %s cannot be opened: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// OpenInput opens path for reading.
func OpenInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return f, nil
}

// CreateOutput creates or truncates path for writing.
func CreateOutput(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return f, nil
}
