package mocks

import (
	"strings"

	"github.com/mcoot/edgeguard/internal/dependencies/random"
)

// MockRandom returns queued strings in order
type MockRandom struct {
	queue []string
	calls int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with the given queued results
func NewMockRandom(values ...string) *MockRandom {
	return &MockRandom{queue: values}
}

// String returns the next queued value. Once the queue is empty it returns
// a deterministic filler of the requested length.
func (r *MockRandom) String(length int, alphabet string) string {
	r.calls++
	if len(r.queue) == 0 {
		if alphabet == "" {
			return ""
		}
		return strings.Repeat(alphabet[:1], length)
	}
	v := r.queue[0]
	r.queue = r.queue[1:]
	return v
}

// Queue appends values to the result queue
func (r *MockRandom) Queue(values ...string) {
	r.queue = append(r.queue, values...)
}

// Calls returns how many times String was called
func (r *MockRandom) Calls() int {
	return r.calls
}
