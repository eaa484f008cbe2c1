package store

import (
	"context"
	"slices"
)

// Memory keeps the collection in process. It is used for dry runs and tests.
type Memory struct {
	data []byte
	// SaveErr, when set, is returned by every call to Save
	SaveErr error
}

// NewMemory returns a Memory store seeded with data. A nil data means
// nothing has been saved.
func NewMemory(data []byte) *Memory {
	return &Memory{data: slices.Clone(data)}
}

func (m *Memory) Save(_ context.Context, data []byte) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}

	m.data = slices.Clone(data)

	return nil
}

func (m *Memory) Load(_ context.Context) ([]byte, error) {
	if m.data == nil {
		return nil, ErrNoData
	}

	return slices.Clone(m.data), nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.data = nil
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
