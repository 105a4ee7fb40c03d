package dialog

import "sync"

// Repo держит сессии оформления в памяти процесса, ключ — telegram id.
type Repo struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewRepo() *Repo {
	return &Repo{sessions: make(map[int64]*Session)}
}

func (r *Repo) Get(chatID int64) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[chatID]
	return s, ok
}

func (r *Repo) Set(chatID int64, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[chatID] = s
}

func (r *Repo) Delete(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, chatID)
}
