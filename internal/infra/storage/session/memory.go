package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
)

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

// MemoryStore хранилище сессий в памяти процесса (локальный запуск и тесты).
// Сессии хранятся сериализованными, чтобы вызывающий код не делил указатели с хранилищем.
type MemoryStore struct {
	mu         sync.Mutex
	ttl        time.Duration
	sessions   map[string]memoryEntry
	processing map[string]time.Time
	now        func() time.Time
}

// NewMemoryStore создает хранилище; ttl = 0 отключает истечение
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:        ttl,
		sessions:   make(map[string]memoryEntry),
		processing: make(map[string]time.Time),
		now:        time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, session *domain.BookingSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = memoryEntry{raw: raw, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.BookingSession, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok && s.expired(e.expiresAt) {
		delete(s.sessions, id)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	var session domain.BookingSession
	if err := json.Unmarshal(e.raw, &session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &session, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// AcquireProcessing ставит флаг оформления; false, если флаг уже стоит
func (s *MemoryStore) AcquireProcessing(_ context.Context, id string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if until, ok := s.processing[id]; ok && s.now().Before(until) {
		return false, nil
	}
	s.processing[id] = s.now().Add(ttl)
	return true, nil
}

// ReleaseProcessing снимает флаг оформления
func (s *MemoryStore) ReleaseProcessing(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.processing, id)
	return nil
}

func (s *MemoryStore) expired(at time.Time) bool {
	return s.ttl > 0 && s.now().After(at)
}
