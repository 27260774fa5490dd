package resolve_availability

import (
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/reservationservice"
	"github.com/m04kA/MRK-ReservationService/pkg/types"
)

// tableSlotsFromSchedule слоты времени по ответу reservation-service.
// Время может прийти как "HH:MM:SS", нераспознанные записи пропускаются.
func tableSlotsFromSchedule(schedule []reservationservice.ScheduleAvailability) []domain.AvailabilitySlot {
	slots := make([]domain.AvailabilitySlot, 0, len(schedule))
	for _, s := range schedule {
		raw := s.Time
		if len(raw) > 5 {
			raw = raw[:5]
		}
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			continue
		}

		tables := make([]domain.SlotTable, 0, len(s.Tables))
		for _, tbl := range s.Tables {
			tables = append(tables, domain.SlotTable{ID: tbl.ID, Name: tbl.Name, Available: tbl.Available})
		}

		slots = append(slots, domain.AvailabilitySlot{
			Key:       t.String(),
			Label:     timeLabel(t),
			Time:      t,
			Available: s.Available,
			Tables:    tables,
		})
	}
	return slots
}

// shiftSlotsFromAvailability смены из справочника с занятостью по ответу reservation-service
func shiftSlotsFromAvailability(shifts []domain.EventShift, resp *reservationservice.EventShiftAvailability) []domain.AvailabilitySlot {
	occupied := make(map[int64]bool, len(resp.OccupiedShifts))
	for _, id := range resp.OccupiedShifts {
		occupied[id] = true
	}
	// пустой список свободных смен означает, что сервис его не прислал
	free := make(map[int64]bool, len(resp.AvailableShifts))
	for _, id := range resp.AvailableShifts {
		free[id] = true
	}

	slots := make([]domain.AvailabilitySlot, 0, len(shifts))
	for _, sh := range shifts {
		available := !occupied[sh.ID]
		if len(free) > 0 {
			available = available && free[sh.ID]
		}
		slots = append(slots, shiftSlot(sh, available))
	}
	return slots
}

func shiftSlot(sh domain.EventShift, available bool) domain.AvailabilitySlot {
	return domain.AvailabilitySlot{
		Key:       domain.ShiftKey(sh.ID),
		Label:     sh.Name + " (" + sh.TimeRange() + ")",
		ShiftID:   sh.ID,
		Available: available,
	}
}

// timeLabel время в 12-часовом формате, "06:30 PM"
func timeLabel(t types.TimeString) string {
	parsed, err := time.Parse(domain.TimeFormat, t.String())
	if err != nil {
		return t.String()
	}
	return parsed.Format("03:04 PM")
}
