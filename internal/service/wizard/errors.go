package wizard

import "errors"

var (
	// ErrStepBlocked условие текущего шага не выполнено
	ErrStepBlocked = errors.New("wizard: current step is not complete")

	// ErrNoNextStep текущий шаг последний
	ErrNoNextStep = errors.New("wizard: no next step")

	// ErrNoPreviousStep текущий шаг первый
	ErrNoPreviousStep = errors.New("wizard: no previous step")

	// ErrForwardJump переход вперёд возможен только через Next
	ErrForwardJump = errors.New("wizard: jumping forward is not allowed")

	// ErrUnknownStep шага нет в активном пути мастера
	ErrUnknownStep = errors.New("wizard: unknown step")
)
