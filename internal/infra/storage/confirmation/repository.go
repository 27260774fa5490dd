package confirmation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/pkg/money"
	"github.com/m04kA/MRK-ReservationService/pkg/psqlbuilder"
)

const table = "reservation_confirmations"

var columns = []string{
	"reservation_id",
	"reservation_code",
	"variant",
	"status",
	"customer_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"reservation_date",
	"slot",
	"guests",
	"payment_method",
	"payment_plan",
	"total_cents",
	"amount_due_cents",
	"amount_paid_cents",
	"transaction_id",
	"payment_failed",
	"payment_error",
	"status_update_failed",
	"notification_failed",
	"stages",
	"access_token",
}

// Repository репозиторий подтверждений бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подтверждений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет подтверждение; повторное сохранение того же бронирования перезаписывает запись
func (r *Repository) Save(ctx context.Context, c *domain.Confirmation) error {
	stages, err := json.Marshal(c.Stages)
	if err != nil {
		return fmt.Errorf("%w: Save - encode stages: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			c.ReservationID,
			c.ReservationCode,
			c.Variant,
			c.Status,
			c.CustomerID,
			c.CustomerName,
			c.CustomerEmail,
			c.CustomerPhone,
			c.Date,
			c.Slot,
			c.Guests,
			c.PaymentMethod,
			c.PaymentPlan,
			int64(c.Total),
			int64(c.AmountDue),
			int64(c.AmountPaid),
			c.TransactionID,
			c.PaymentFailed,
			c.PaymentError,
			c.StatusUpdateFailed,
			c.NotificationFailed,
			stages,
			c.AccessToken,
		).
		Suffix(`ON CONFLICT (reservation_id) DO UPDATE SET
			status = EXCLUDED.status,
			amount_paid_cents = EXCLUDED.amount_paid_cents,
			transaction_id = EXCLUDED.transaction_id,
			payment_failed = EXCLUDED.payment_failed,
			payment_error = EXCLUDED.payment_error,
			status_update_failed = EXCLUDED.status_update_failed,
			notification_failed = EXCLUDED.notification_failed,
			stages = EXCLUDED.stages,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return nil
}

// GetByReservationID получает подтверждение по id бронирования
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Confirmation, error) {
	query, args, err := psqlbuilder.Select(append(columns, "created_at", "updated_at")...).
		From(table).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		c                            domain.Confirmation
		total, amountDue, amountPaid int64
		stages                       []byte
		createdAt, updatedAt         sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ReservationID,
		&c.ReservationCode,
		&c.Variant,
		&c.Status,
		&c.CustomerID,
		&c.CustomerName,
		&c.CustomerEmail,
		&c.CustomerPhone,
		&c.Date,
		&c.Slot,
		&c.Guests,
		&c.PaymentMethod,
		&c.PaymentPlan,
		&total,
		&amountDue,
		&amountPaid,
		&c.TransactionID,
		&c.PaymentFailed,
		&c.PaymentError,
		&c.StatusUpdateFailed,
		&c.NotificationFailed,
		&stages,
		&c.AccessToken,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfirmationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - scan confirmation: %v", ErrScanRow, err)
	}

	c.Total = money.Amount(total)
	c.AmountDue = money.Amount(amountDue)
	c.AmountPaid = money.Amount(amountPaid)
	c.Stages, err = decodeStages(stages)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - decode stages: %v", ErrScanRow, err)
	}
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// UpdateStatus меняет статус подтверждения (отмена бронирования)
func (r *Repository) UpdateStatus(ctx context.Context, reservationID int64, status domain.ReservationStatus) error {
	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrConfirmationNotFound
	}
	return nil
}

func decodeStages(raw []byte) (domain.StageOutcomes, error) {
	stages := domain.NewStageOutcomes()
	if len(raw) == 0 {
		return stages, nil
	}
	var stored map[domain.Stage]domain.Outcome
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	for stage, outcome := range stored {
		stages[stage] = outcome
	}
	return stages, nil
}
