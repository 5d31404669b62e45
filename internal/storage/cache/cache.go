// Package cache holds per-session practice state in memory. Nothing here
// survives a restart; that is the intended lifecycle.
package cache

import (
	"sync"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
)

type Cache struct {
	mu        sync.Mutex
	sessions  map[string]models.SessionState
	exercises map[string]models.Exercise
}

func NewCache() *Cache {
	return &Cache{
		sessions:  make(map[string]models.SessionState),
		exercises: make(map[string]models.Exercise),
	}
}

func (c *Cache) SetSession(id string, s models.SessionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[id] = s
}

func (c *Cache) GetSession(id string) (models.SessionState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[id]
	return s, exists
}

func (c *Cache) DeleteSession(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
	delete(c.exercises, id)
}

func (c *Cache) SetExercise(id string, ex models.Exercise) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exercises[id] = ex
}

func (c *Cache) GetExercise(id string) (models.Exercise, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ex, exists := c.exercises[id]
	return ex, exists
}

func (c *Cache) DeleteExercise(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.exercises, id)
}
