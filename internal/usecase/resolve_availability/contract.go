package resolve_availability

import (
	"context"
	"math/rand"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/reservationservice"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
)

// ReservationClient интерфейс клиента reservation-service
type ReservationClient interface {
	GetTableAvailability(ctx context.Context, date string) ([]reservationservice.ScheduleAvailability, error)
	GetEventShiftAvailability(ctx context.Context, date string) (*reservationservice.EventShiftAvailability, error)
}

// DraftService интерфейс сервиса черновиков
type DraftService interface {
	Load(ctx context.Context, id string) (*domain.BookingSession, error)
	ApplyAvailability(ctx context.Context, id string, snap *domain.AvailabilitySnapshot) (*models.SessionView, error)
}

// CatalogService справочники смен для событий
type CatalogService interface {
	EventCatalog() domain.EventCatalog
}

// Metrics интерфейс метрик доступности
type Metrics interface {
	ObserveAvailability(variant, source string)
}

// Random источник случайных чисел для резервной эвристики
type Random interface {
	Float64() float64
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// globalRandom общий генератор math/rand, безопасен для конкурентного использования
type globalRandom struct{}

func (globalRandom) Float64() float64 {
	return rand.Float64()
}
