package utils

import (
	"sync"
	"time"
)

type Blacklist struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

func NewBlacklist() *Blacklist {
	return &Blacklist{tokens: make(map[string]time.Time)}
}

func (b *Blacklist) Add(token string, until time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens[token] = until
}

func (b *Blacklist) Contains(token string, now time.Time) bool {
	b.mu.RLock()
	expiry, exists := b.tokens[token]
	b.mu.RUnlock()
	if !exists {
		return false
	}
	if now.Before(expiry) {
		return true
	}

	// expired entries are dropped lazily
	b.mu.Lock()
	delete(b.tokens, token)
	b.mu.Unlock()
	return false
}

// Purge removes every entry that expired before now.
func (b *Blacklist) Purge(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	removed := 0
	for token, expiry := range b.tokens {
		if now.After(expiry) {
			delete(b.tokens, token)
			removed++
		}
	}
	return removed
}
