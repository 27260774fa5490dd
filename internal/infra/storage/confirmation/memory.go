package confirmation

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
)

// MemoryRepository подтверждения в памяти процесса, используется без postgres
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[int64]domain.Confirmation
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]domain.Confirmation)}
}

func (r *MemoryRepository) Save(_ context.Context, c *domain.Confirmation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if prev, ok := r.items[c.ReservationID]; ok {
		c.CreatedAt = prev.CreatedAt
	} else {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	stored := *c
	stored.Stages = copyStages(c.Stages)
	r.items[c.ReservationID] = stored
	return nil
}

func (r *MemoryRepository) GetByReservationID(_ context.Context, reservationID int64) (*domain.Confirmation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[reservationID]
	if !ok {
		return nil, ErrConfirmationNotFound
	}
	c.Stages = copyStages(c.Stages)
	return &c, nil
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, reservationID int64, status domain.ReservationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[reservationID]
	if !ok {
		return ErrConfirmationNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	r.items[reservationID] = c
	return nil
}

func copyStages(in domain.StageOutcomes) domain.StageOutcomes {
	out := make(domain.StageOutcomes, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
