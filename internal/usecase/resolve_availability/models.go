package resolve_availability

import (
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
	"github.com/m04kA/MRK-ReservationService/pkg/types"
)

// Request модель запроса доступности
type Request struct {
	SessionID string
	Date      string // YYYY-MM-DD
}

// Response сессия с новым снимком доступности
type Response = models.SessionView

// Config правила дат и параметры резервной эвристики
type Config struct {
	DaysAhead            int
	EventStartOffsetDays int
	EventClosedWeekdays  []time.Weekday
	Timeout              time.Duration // общий лимит на запрос к reservation-service
	Fallback             FallbackConfig
}

// FallbackConfig параметры локальной генерации слотов при недоступном reservation-service
type FallbackConfig struct {
	FirstSlot    types.TimeString
	LastSlot     types.TimeString
	StepMinutes  int
	WeekdayRate  float64
	WeekendRate  float64
	LargeParty   int
	LargePenalty float64
	HugeParty    int
	HugePenalty  float64
	PrimeStart   types.TimeString
	PrimeEnd     types.TimeString
	PrimePenalty float64
}

// DefaultConfig значения по умолчанию
func DefaultConfig() Config {
	return Config{
		DaysAhead:            90,
		EventStartOffsetDays: 1,
		EventClosedWeekdays:  []time.Weekday{time.Monday},
		Timeout:              5 * time.Second,
		Fallback: FallbackConfig{
			FirstSlot:    types.NewTimeString(18, 0),
			LastSlot:     types.NewTimeString(21, 30),
			StepMinutes:  30,
			WeekdayRate:  0.8,
			WeekendRate:  0.6,
			LargeParty:   6,
			LargePenalty: 0.2,
			HugeParty:    8,
			HugePenalty:  0.1,
			PrimeStart:   types.NewTimeString(19, 0),
			PrimeEnd:     types.NewTimeString(20, 30),
			PrimePenalty: 0.2,
		},
	}
}

func (c Config) dateRules(v domain.Variant) domain.DateRules {
	if v == domain.VariantEvent {
		return domain.DateRules{
			DaysAhead:       c.DaysAhead,
			StartOffsetDays: c.EventStartOffsetDays,
			ClosedWeekdays:  c.EventClosedWeekdays,
		}
	}
	return domain.DateRules{DaysAhead: c.DaysAhead}
}
