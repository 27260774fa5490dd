package resolve_availability

import (
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/pkg/types"
)

// fallbackGenerator строит правдоподобную доступность, когда reservation-service не ответил.
// Результат всегда помечается как SourceFallback.
type fallbackGenerator struct {
	cfg    FallbackConfig
	random Random
}

func (g *fallbackGenerator) tableSlots(date time.Time, guests int) []domain.AvailabilitySlot {
	slots := make([]domain.AvailabilitySlot, 0)
	if g.cfg.StepMinutes <= 0 {
		return slots
	}

	base := g.dayRate(date)
	if guests >= g.cfg.LargeParty {
		base -= g.cfg.LargePenalty
	}
	if guests >= g.cfg.HugeParty {
		base -= g.cfg.HugePenalty
	}

	for m := g.cfg.FirstSlot.Minutes(); m <= g.cfg.LastSlot.Minutes(); m += g.cfg.StepMinutes {
		t := types.NewTimeString(m/60, m%60)
		chance := base
		if t.Between(g.cfg.PrimeStart, g.cfg.PrimeEnd) {
			chance -= g.cfg.PrimePenalty
		}
		slots = append(slots, domain.AvailabilitySlot{
			Key:       t.String(),
			Label:     timeLabel(t),
			Time:      t,
			Available: g.random.Float64() < chance,
		})
	}
	return slots
}

func (g *fallbackGenerator) shiftSlots(date time.Time, shifts []domain.EventShift) []domain.AvailabilitySlot {
	chance := g.dayRate(date)
	slots := make([]domain.AvailabilitySlot, 0, len(shifts))
	for _, sh := range shifts {
		slots = append(slots, shiftSlot(sh, g.random.Float64() < chance))
	}
	return slots
}

func (g *fallbackGenerator) dayRate(date time.Time) float64 {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return g.cfg.WeekendRate
	}
	return g.cfg.WeekdayRate
}
