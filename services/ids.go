package services

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for cart lines, orders, products and users.
type IDGenerator interface {
	NewID(prefix string) string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(prefix string) string {
	return prefix + uuid.NewString()
}

// SequenceGenerator counts up from start with one counter per prefix, so the
// first id for "c" is c<start+1>.
type SequenceGenerator struct {
	mu    sync.Mutex
	start int
	next  map[string]int
}

func NewSequenceGenerator(start int) *SequenceGenerator {
	return &SequenceGenerator{start: start, next: make(map[string]int)}
}

func (g *SequenceGenerator) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next[prefix]++
	return fmt.Sprintf("%s%d", prefix, g.start+g.next[prefix])
}

// ReceiptGenerator proposes short receipt codes. Uniqueness is checked by the
// order service, which asks again on collision.
type ReceiptGenerator interface {
	NextReceipt() string
}

type RandomReceipts struct{}

func (RandomReceipts) NextReceipt() string {
	return fmt.Sprintf("%06d", rand.IntN(1_000_000))
}

type SequenceReceipts struct {
	mu   sync.Mutex
	next int
}

func NewSequenceReceipts(start int) *SequenceReceipts {
	return &SequenceReceipts{next: start}
}

func (s *SequenceReceipts) NextReceipt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := fmt.Sprintf("%06d", s.next%1_000_000)
	s.next++
	return code
}

// FixedReceipts replays the given codes in order, then repeats the last one.
type FixedReceipts struct {
	mu    sync.Mutex
	codes []string
}

func NewFixedReceipts(codes ...string) *FixedReceipts {
	return &FixedReceipts{codes: codes}
}

func (f *FixedReceipts) NextReceipt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	code := f.codes[0]
	if len(f.codes) > 1 {
		f.codes = f.codes[1:]
	}
	return code
}
