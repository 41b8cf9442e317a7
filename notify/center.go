package notify

import (
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a transient message shown to one user.
type Notification struct {
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Center keeps the latest notification of every user until it expires. A new
// message replaces the previous one, like a toast.
type Center struct {
	TTL time.Duration
	Now func() time.Time

	mu    sync.Mutex
	items map[string]Notification
	stop  chan struct{}
	once  sync.Once
}

func NewCenter(ttl time.Duration) *Center {
	return &Center{
		TTL:   ttl,
		Now:   time.Now,
		items: make(map[string]Notification),
		stop:  make(chan struct{}),
	}
}

func (c *Center) Push(userID string, level Level, message string) Notification {
	now := c.Now()
	n := Notification{
		Message:   message,
		Level:     level,
		CreatedAt: now,
		ExpiresAt: now.Add(c.TTL),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[userID] = n
	return n
}

func (c *Center) Success(userID, message string) Notification {
	return c.Push(userID, LevelSuccess, message)
}

func (c *Center) Error(userID, message string) Notification {
	return c.Push(userID, LevelError, message)
}

func (c *Center) Info(userID, message string) Notification {
	return c.Push(userID, LevelInfo, message)
}

// Current returns the user's notification if it has not expired yet.
func (c *Center) Current(userID string) (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[userID]
	if !ok {
		return Notification{}, false
	}
	if !c.Now().Before(n.ExpiresAt) {
		delete(c.items, userID)
		return Notification{}, false
	}
	return n, true
}

func (c *Center) Dismiss(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, userID)
}

// Sweep drops expired notifications and returns how many were removed.
func (c *Center) Sweep() int {
	now := c.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for userID, n := range c.items {
		if !now.Before(n.ExpiresAt) {
			delete(c.items, userID)
			removed++
		}
	}
	return removed
}

// Start sweeps expired entries every interval until Stop is called.
func (c *Center) Start(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.Sweep()
			case <-c.stop:
				return
			}
		}
	}()
}

func (c *Center) Stop() {
	c.once.Do(func() { close(c.stop) })
}
