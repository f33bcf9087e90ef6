package store

import (
	"errors"
	"sync"
	"time"

	"postsdb/pkg/models"
)

// ErrNotFound signals that a post is absent or soft-deleted. Callers should
// test with errors.Is; the response writer maps it to 404.
var ErrNotFound = errors.New("post not found")

// Store owns the ordered post collection and the id counter. All access
// serializes on a single mutex so at most one mutation is in flight.
type Store struct {
	mu     sync.Mutex
	nextID int64
	// posts is ordered most recent first; edit/delete mutate in place
	// without reordering
	posts []*models.Post
}

// Stats is a compact snapshot of store counters for readyz and reporting.
type Stats struct {
	Total   int   `json:"total"`
	Active  int   `json:"active"`
	Removed int   `json:"removed"`
	NextID  int64 `json:"next_id"`
}

// New returns an empty store. Ids start at 1 and are never reused.
func New() *Store {
	return &Store{nextID: 1}
}

// ListActive returns all posts whose removed flag is false, in store order.
func (s *Store) ListActive() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if !p.Removed {
			out = append(out, *p)
		}
	}
	return out
}

// Create allocates the next id, builds the post and inserts it at the front
// of the order.
func (s *Store) Create(content string) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &models.Post{
		ID:      s.nextID,
		Content: content,
		Created: time.Now().UnixMilli(),
	}
	s.nextID++
	s.posts = append([]*models.Post{p}, s.posts...)
	postsCreated.Inc()
	postsActive.Inc()
	return *p
}

// Get returns the visible post with the given id.
func (s *Store) Get(id float64) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.resolveVisible(id)
	if err != nil {
		return models.Post{}, err
	}
	return *p, nil
}

// Edit replaces the content of the visible post with the given id in place.
func (s *Store) Edit(id float64, content string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.resolveVisible(id)
	if err != nil {
		return models.Post{}, err
	}
	p.Content = content
	postsEdited.Inc()
	return *p, nil
}

// Delete soft-deletes the visible post with the given id and returns it with
// the removed flag set. The post stays in storage and its id is never
// reassigned; a second delete of the same id reports ErrNotFound.
func (s *Store) Delete(id float64) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.resolveVisible(id)
	if err != nil {
		return models.Post{}, err
	}
	p.Removed = true
	postsDeleted.Inc()
	postsActive.Dec()
	return *p, nil
}

// Stats returns a snapshot of store counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Total: len(s.posts), NextID: s.nextID}
	for _, p := range s.posts {
		if p.Removed {
			st.Removed++
		} else {
			st.Active++
		}
	}
	return st
}

// resolveVisible is the single resolver shared by Get, Edit and Delete:
// existence and visibility are checked together so soft-deleted posts are
// indistinguishable from ids that were never created. Caller holds s.mu.
func (s *Store) resolveVisible(id float64) (*models.Post, error) {
	i := s.findIndex(id)
	if i < 0 || s.posts[i].Removed {
		return nil, ErrNotFound
	}
	return s.posts[i], nil
}

// findIndex locates a post by id without filtering on the removed flag.
// Ids arrive as parsed floats; fractional values never match a stored id.
func (s *Store) findIndex(id float64) int {
	for i, p := range s.posts {
		if float64(p.ID) == id {
			return i
		}
	}
	return -1
}
