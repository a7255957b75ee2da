package hardware

import (
	"context"
	"sync"

	"golang.org/x/sys/unix"
)

// WriteOp records one write observed by the mock writer.
type WriteOp struct {
	Path  string
	Value int
}

// Mock is a thread-safe in-memory Writer for testing and development.
type Mock struct {
	mu   sync.Mutex
	ops  []WriteOp
	fail map[string]unix.Errno
}

// NewMock creates a mock writer that accepts every path.
func NewMock() *Mock {
	return &Mock{fail: make(map[string]unix.Errno)}
}

func (m *Mock) Name() string { return "mock" }

// SetFailPath makes writes to path fail with errno, simulating a
// missing or rejecting device node.
func (m *Mock) SetFailPath(path string, errno unix.Errno) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail[path] = errno
}

// ClearFail removes a configured failure for path.
func (m *Mock) ClearFail(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.fail, path)
}

func (m *Mock) WriteInt(ctx context.Context, path string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if errno, ok := m.fail[path]; ok {
		return &WriteError{Op: "open", Path: path, Errno: errno}
	}
	m.ops = append(m.ops, WriteOp{Path: path, Value: value})
	return nil
}

// Writes returns every value written to path, in order.
func (m *Mock) Writes(path string) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var vals []int
	for _, op := range m.ops {
		if op.Path == path {
			vals = append(vals, op.Value)
		}
	}
	return vals
}

// Last returns the most recent value written to path.
func (m *Mock) Last(path string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.ops) - 1; i >= 0; i-- {
		if m.ops[i].Path == path {
			return m.ops[i].Value, true
		}
	}
	return 0, false
}

// All returns every recorded write in order.
func (m *Mock) All() []WriteOp {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]WriteOp, len(m.ops))
	copy(out, m.ops)
	return out
}

// Reset clears recorded writes but keeps configured failures.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = nil
}
