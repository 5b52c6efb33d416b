package filesource

import (
	"bytes"
	"fmt"
	"io"
)

// Memory is an in-memory source, used for piped input
type Memory struct {
	name string
	data []byte
}

func NewMemory(name string, data []byte) *Memory {
	return &Memory{name: name, data: data}
}

func (m *Memory) Name() string {
	return m.name
}

func (m *Memory) Size() int64 {
	return int64(len(m.data))
}

func (m *Memory) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

// FromReader buffers r entirely and names the result name
func FromReader(name string, r io.Reader) (*Memory, error) {
	if name == "" {
		return nil, fmt.Errorf("a file name is required for piped input")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return NewMemory(name, data), nil
}
