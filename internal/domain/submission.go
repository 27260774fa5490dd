package domain

// Stage стадия конвейера оформления бронирования
type Stage string

const (
	StageCreateReservation  Stage = "create_reservation"
	StageTokenizeCard       Stage = "tokenize_card"
	StageProcessPayment     Stage = "process_payment"
	StageUpdateStatus       Stage = "update_status"
	StageNotify             Stage = "notify"
	StageRecordConfirmation Stage = "record_confirmation"
)

// PipelineStages порядок стадий конвейера
var PipelineStages = []Stage{
	StageCreateReservation,
	StageTokenizeCard,
	StageProcessPayment,
	StageUpdateStatus,
	StageNotify,
	StageRecordConfirmation,
}

// Outcome исход стадии
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

// StageOutcomes исходы стадий одного оформления
type StageOutcomes map[Stage]Outcome

// NewStageOutcomes все стадии изначально пропущены
func NewStageOutcomes() StageOutcomes {
	outcomes := make(StageOutcomes, len(PipelineStages))
	for _, s := range PipelineStages {
		outcomes[s] = OutcomeSkipped
	}
	return outcomes
}

// Failed true, если стадия завершилась ошибкой
func (o StageOutcomes) Failed(stage Stage) bool {
	return o[stage] == OutcomeFailed
}
