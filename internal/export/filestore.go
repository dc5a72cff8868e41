package export

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxFiles bounds the number of rendered files kept in memory.
const DefaultMaxFiles = 100

// FileHandle describes a rendered file.
type FileHandle struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int       `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`

	// Owner is the session the file was rendered for.
	Owner string `json:"-"`
}

// File is a handle with its content.
type File struct {
	FileHandle
	Data []byte
}

// FileStore keeps the most recent files in memory, evicting the oldest.
type FileStore struct {
	mu    sync.RWMutex
	files map[string]File
	order []string
	max   int
	now   func() time.Time
}

// NewFileStore creates a store keeping at most maxFiles files.
func NewFileStore(maxFiles int) *FileStore {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	return &FileStore{
		files: make(map[string]File),
		max:   maxFiles,
		now:   time.Now,
	}
}

// Put stores data under a fresh id on behalf of owner.
func (s *FileStore) Put(owner, name, contentType string, data []byte) FileHandle {
	h := FileHandle{
		ID:          uuid.NewString(),
		Owner:       owner,
		Name:        name,
		ContentType: contentType,
		Size:        len(data),
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[h.ID] = File{FileHandle: h, Data: slices.Clone(data)}
	s.order = append(s.order, h.ID)
	for len(s.order) > s.max {
		delete(s.files, s.order[0])
		s.order = s.order[1:]
	}
	return h
}

// Get returns a stored file.
func (s *FileStore) Get(id string) (File, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[id]
	return f, ok
}

// GetFor returns a stored file only when it belongs to owner.
func (s *FileStore) GetFor(owner, id string) (File, bool) {
	f, ok := s.Get(id)
	if !ok || f.Owner != owner {
		return File{}, false
	}
	return f, true
}

// Len returns the number of stored files.
func (s *FileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.files)
}
