package resolve_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/reservationservice"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts"
	"github.com/m04kA/MRK-ReservationService/internal/service/drafts/models"
	"github.com/m04kA/MRK-ReservationService/pkg/logger"
)

type fakeReservations struct {
	schedule    []reservationservice.ScheduleAvailability
	shifts      *reservationservice.EventShiftAvailability
	err         error
	lastDate    string
	hadDeadline bool
}

func (f *fakeReservations) GetTableAvailability(ctx context.Context, date string) ([]reservationservice.ScheduleAvailability, error) {
	f.lastDate = date
	_, f.hadDeadline = ctx.Deadline()
	return f.schedule, f.err
}

func (f *fakeReservations) GetEventShiftAvailability(ctx context.Context, date string) (*reservationservice.EventShiftAvailability, error) {
	f.lastDate = date
	_, f.hadDeadline = ctx.Deadline()
	return f.shifts, f.err
}

type fakeDrafts struct {
	sessions map[string]*domain.BookingSession
	applied  *domain.AvailabilitySnapshot
	loadErr  error
}

func (f *fakeDrafts) Load(_ context.Context, id string) (*domain.BookingSession, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, drafts.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeDrafts) ApplyAvailability(_ context.Context, id string, snap *domain.AvailabilitySnapshot) (*models.SessionView, error) {
	f.applied = snap
	return &models.SessionView{ID: id, Availability: snap, Degraded: snap.IsFallback()}, nil
}

type fakeCatalog struct{}

func (fakeCatalog) EventCatalog() domain.EventCatalog {
	return domain.DefaultEventCatalog()
}

type fakeMetrics struct {
	sources []string
}

func (m *fakeMetrics) ObserveAvailability(_, source string) {
	m.sources = append(m.sources, source)
}

type fixedRandom float64

func (r fixedRandom) Float64() float64 { return float64(r) }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	uc           *UseCase
	reservations *fakeReservations
	drafts       *fakeDrafts
	metrics      *fakeMetrics
}

// now: воскресенье 2026-10-18
func newFixture(random float64) *fixture {
	f := &fixture{
		reservations: &fakeReservations{},
		drafts: &fakeDrafts{sessions: map[string]*domain.BookingSession{
			"table": {ID: "table", Variant: domain.VariantTable, Draft: domain.NewDraft(domain.VariantTable)},
			"event": {ID: "event", Variant: domain.VariantEvent, Draft: domain.NewDraft(domain.VariantEvent)},
		}},
		metrics: &fakeMetrics{},
	}
	f.uc = NewUseCase(f.reservations, f.drafts, fakeCatalog{}, f.metrics, DefaultConfig(), logger.NewNop())
	f.uc.timeProvider = fixedTime{now: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
	f.uc.fallback.random = fixedRandom(random)
	return f
}

func availability(slots []domain.AvailabilitySlot) map[string]bool {
	out := make(map[string]bool, len(slots))
	for _, s := range slots {
		out[s.Key] = s.Available
	}
	return out
}

func TestExecute_LiveTableAvailability(t *testing.T) {
	f := newFixture(0)
	f.reservations.schedule = []reservationservice.ScheduleAvailability{
		{Time: "18:00:00", Available: false},
		{Time: "18:30", Available: true, Tables: []reservationservice.TableAvailability{
			{ID: 10, Name: "M10", Available: true},
			{ID: 11, Name: "M11", Available: false},
		}},
		{Time: "bogus", Available: true},
	}

	view, err := f.uc.Execute(context.Background(), &Request{SessionID: "table", Date: "2026-10-20"})
	require.NoError(t, err)
	assert.False(t, view.Degraded)

	snap := f.drafts.applied
	require.NotNil(t, snap)
	assert.Equal(t, domain.SourceLive, snap.Source)
	assert.Equal(t, "2026-10-20", snap.Date)
	require.Len(t, snap.Slots, 2)
	assert.Equal(t, "06:30 PM", snap.Slots[1].Label)
	assert.Len(t, snap.Slots[1].Tables, 2)
	assert.Equal(t, map[string]bool{"18:00": false, "18:30": true}, availability(snap.Slots))

	assert.Equal(t, "2026-10-20", f.reservations.lastDate)
	assert.True(t, f.reservations.hadDeadline)
	assert.Equal(t, []string{"live"}, f.metrics.sources)
}

func TestExecute_TableFallback(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		guests   int
		random   float64
		expected map[string]bool
	}{
		{
			name:   "weekday small party: prime time drops below the draw",
			date:   "2026-10-20",
			guests: 2,
			random: 0.65,
			expected: map[string]bool{
				"18:00": true, "18:30": true,
				"19:00": false, "19:30": false, "20:00": false, "20:30": false,
				"21:00": true, "21:30": true,
			},
		},
		{
			name:   "weekend large party",
			date:   "2026-10-24",
			guests: 8,
			random: 0.25,
			expected: map[string]bool{
				"18:00": true, "18:30": true,
				"19:00": false, "19:30": false, "20:00": false, "20:30": false,
				"21:00": true, "21:30": true,
			},
		},
		{
			name:   "weekend large party above the base rate",
			date:   "2026-10-25",
			guests: 6,
			random: 0.45,
			expected: map[string]bool{
				"18:00": false, "18:30": false,
				"19:00": false, "19:30": false, "20:00": false, "20:30": false,
				"21:00": false, "21:30": false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.random)
			f.reservations.err = reservationservice.ErrServiceUnavailable
			f.drafts.sessions["table"].Draft.Schedule.Guests = tt.guests

			view, err := f.uc.Execute(context.Background(), &Request{SessionID: "table", Date: tt.date})
			require.NoError(t, err)
			assert.True(t, view.Degraded)

			snap := f.drafts.applied
			assert.Equal(t, domain.SourceFallback, snap.Source)
			assert.NotEmpty(t, snap.Reason)
			assert.Equal(t, tt.expected, availability(snap.Slots))
			assert.Equal(t, []string{"fallback"}, f.metrics.sources)
		})
	}
}

func TestExecute_EmptyScheduleFallsBack(t *testing.T) {
	f := newFixture(0)
	f.reservations.schedule = []reservationservice.ScheduleAvailability{}

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "table", Date: "2026-10-20"})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFallback, f.drafts.applied.Source)
	assert.Len(t, f.drafts.applied.Slots, 8)
}

func TestExecute_EventShifts(t *testing.T) {
	t.Run("live", func(t *testing.T) {
		f := newFixture(0)
		f.reservations.shifts = &reservationservice.EventShiftAvailability{
			AvailableShifts: []int64{1, 3},
			OccupiedShifts:  []int64{2},
		}

		_, err := f.uc.Execute(context.Background(), &Request{SessionID: "event", Date: "2026-10-20"})
		require.NoError(t, err)

		snap := f.drafts.applied
		assert.Equal(t, domain.SourceLive, snap.Source)
		assert.Equal(t, map[string]bool{"1": true, "2": false, "3": true}, availability(snap.Slots))
		assert.Equal(t, int64(2), snap.Slots[1].ShiftID)
		assert.Equal(t, "Tarde (13:00 - 18:00)", snap.Slots[1].Label)
	})

	t.Run("fallback uses the day rate only", func(t *testing.T) {
		f := newFixture(0.7)
		f.reservations.err = errors.New("connection refused")
		f.drafts.sessions["event"].Draft.Schedule.Guests = 80

		_, err := f.uc.Execute(context.Background(), &Request{SessionID: "event", Date: "2026-10-20"})
		require.NoError(t, err)

		snap := f.drafts.applied
		assert.Equal(t, domain.SourceFallback, snap.Source)
		assert.Equal(t, map[string]bool{"1": true, "2": true, "3": true}, availability(snap.Slots))
	})
}

func TestExecute_DateRules(t *testing.T) {
	tests := []struct {
		name    string
		session string
		date    string
		wantErr error
	}{
		{name: "table today", session: "table", date: "2026-10-18"},
		{name: "table on monday", session: "table", date: "2026-10-19"},
		{name: "table in the past", session: "table", date: "2026-10-17", wantErr: ErrInvalidDate},
		{name: "table within 90 days", session: "table", date: "2027-01-16"},
		{name: "table beyond 90 days", session: "table", date: "2027-01-17", wantErr: ErrInvalidDate},
		{name: "event today", session: "event", date: "2026-10-18", wantErr: ErrInvalidDate},
		{name: "event on monday", session: "event", date: "2026-10-26", wantErr: ErrInvalidDate},
		{name: "event tomorrow is monday", session: "event", date: "2026-10-19", wantErr: ErrInvalidDate},
		{name: "event on tuesday", session: "event", date: "2026-10-20"},
		{name: "malformed date", session: "table", date: "20-10-2026", wantErr: ErrInvalidDate},
		{name: "missing date", session: "table", date: "", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(0)
			f.reservations.err = reservationservice.ErrServiceUnavailable

			_, err := f.uc.Execute(context.Background(), &Request{SessionID: tt.session, Date: tt.date})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, f.drafts.applied)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestExecute_SessionErrors(t *testing.T) {
	f := newFixture(0)

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "missing", Date: "2026-10-20"})
	require.ErrorIs(t, err, ErrSessionNotFound)

	f.drafts.loadErr = drafts.ErrAccessDenied
	_, err = f.uc.Execute(context.Background(), &Request{SessionID: "table", Date: "2026-10-20"})
	require.ErrorIs(t, err, ErrAccessDenied)
}
