package utils

import (
	"math/rand"
	"sync"
)

// CodeSequence hands out event/guest codes. It starts from a random
// four-digit base and increments, so codes never repeat within one process.
// The sequence is not persisted: a restarted process draws a new base and
// may eventually collide with codes already stored. Accepted risk.
type CodeSequence struct {
	mu   sync.Mutex
	next int64
}

func NewCodeSequence() *CodeSequence {
	return &CodeSequence{next: int64(1000 + rand.Intn(9000))}
}

// Next returns the next code in the sequence.
func (s *CodeSequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := s.next
	s.next++
	return code
}
