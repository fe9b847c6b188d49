package stream

import (
	"sync"
)

// Stream is an unbounded FIFO. Any number of goroutines may Push; Pull is
// meant for a single consumer, which receives elements in push order.
type Stream[T any] struct {
	name     string
	elements []T
	closed   bool
	*sync.Cond
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

// Name identifies the stream in log lines.
func (s *Stream[T]) Name() string {
	return s.name
}

// Push appends msg. It reports false if the stream is already closed.
func (s *Stream[T]) Push(msg T) bool {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	if s.closed {
		return false
	}
	s.elements = append(s.elements, msg)
	s.Cond.Signal()
	return true
}

// Pull blocks until an element is available. After Close it drains what is
// left and then returns false.
func (s *Stream[T]) Pull() (T, bool) {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	for len(s.elements) == 0 && !s.closed {
		s.Cond.Wait()
	}
	var msg T
	if len(s.elements) == 0 {
		return msg, false
	}
	msg = s.elements[0]
	s.elements = s.elements[1:]
	return msg, true
}

func (s *Stream[T]) Close() {
	s.Cond.L.Lock()
	s.closed = true
	s.Cond.Broadcast()
	s.Cond.L.Unlock()
}
