package kb

import "sync"

// Memory is an in-memory Store used in tests and dry runs. It enforces the
// same entry format contract as the production store.
type Memory struct {
	mu        sync.Mutex
	checksums map[string]string
	entries   map[string][]string
}

func NewMemory() *Memory {
	return &Memory{
		checksums: map[string]string{},
		entries:   map[string][]string{},
	}
}

func (m *Memory) FileChecksum(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checksums[path], nil
}

// SetFileChecksum records the expected digest for a file, as the feed sync
// would have done.
func (m *Memory) SetFileChecksum(path, checksum string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checksums[path] = checksum
}

func (m *Memory) PutAdvisory(key string, fields []string) error {
	if len(fields) != EntryFieldCount {
		return &FormatError{Key: key, Fields: len(fields)}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = append([]string(nil), fields...)
	return nil
}

// Advisory returns the stored entry for key, or nil.
func (m *Memory) Advisory(key string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	if !ok {
		return nil
	}
	return append([]string(nil), entry...)
}

// Len returns the number of stored advisory entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
