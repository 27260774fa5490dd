package wizard

import (
	"fmt"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/pricing"
)

// Input состояние сессии, по которому проверяются условия шагов и рёбер
type Input struct {
	Session *domain.BookingSession
	Totals  pricing.Totals
	Guests  domain.GuestLimits
}

func (in Input) draft() *domain.ReservationDraft {
	return in.Session.Draft
}

// Predicate условие шага или ребра
type Predicate func(in Input) bool

// Step шаг мастера
type Step struct {
	Number int
	Label  string
	Gate   Predicate // без Gate шаг всегда можно пройти
}

// Edge переход между шагами; When == nil означает безусловный переход
type Edge struct {
	From int
	To   int
	When Predicate
}

// Graph декларативное описание шагов мастера
type Graph struct {
	variant  domain.Variant
	steps    map[int]Step
	forward  []Edge
	backward []Edge
}

// Variant вариант мастера
func (g *Graph) Variant() domain.Variant {
	return g.variant
}

// First номер первого шага
func (g *Graph) First() int {
	return 1
}

// CanProceed выполнено ли условие шага
func (g *Graph) CanProceed(step int, in Input) bool {
	s, ok := g.steps[step]
	if !ok {
		return false
	}
	return s.Gate == nil || s.Gate(in)
}

// Next следующий шаг; при невыполненном условии текущий шаг не меняется
func (g *Graph) Next(current int, in Input) (int, error) {
	if _, ok := g.steps[current]; !ok {
		return current, fmt.Errorf("%w: %d", ErrUnknownStep, current)
	}
	if !g.CanProceed(current, in) {
		return current, fmt.Errorf("%w: step %d", ErrStepBlocked, current)
	}
	if to, ok := follow(g.forward, current, in); ok {
		return to, nil
	}
	return current, ErrNoNextStep
}

// Prev предыдущий шаг по активной ветке
func (g *Graph) Prev(current int, in Input) (int, error) {
	if to, ok := follow(g.backward, current, in); ok {
		return to, nil
	}
	return current, ErrNoPreviousStep
}

// GoTo переход на уже пройденный шаг активной ветки
func (g *Graph) GoTo(current, target int, in Input) (int, error) {
	if target >= current {
		return current, fmt.Errorf("%w: %d -> %d", ErrForwardJump, current, target)
	}
	if !g.onPath(target, in) {
		return current, fmt.Errorf("%w: %d", ErrUnknownStep, target)
	}
	return target, nil
}

// IsFinal true, если из шага нет активного перехода вперёд
func (g *Graph) IsFinal(step int, in Input) bool {
	_, ok := follow(g.forward, step, in)
	return !ok
}

// Path активная последовательность шагов
func (g *Graph) Path(in Input) []int {
	path := []int{g.First()}
	seen := map[int]bool{g.First(): true}
	for cur := g.First(); ; {
		next, ok := follow(g.forward, cur, in)
		if !ok || seen[next] {
			return path
		}
		path = append(path, next)
		seen[next] = true
		cur = next
	}
}

// DisplayIndex индекс подписи шага в прогресс-баре (с нуля); -1 если шаг вне активной ветки
func (g *Graph) DisplayIndex(step int, in Input) int {
	for i, s := range g.Path(in) {
		if s == step {
			return i
		}
	}
	return -1
}

// Labels подписи шагов активной ветки
func (g *Graph) Labels(in Input) []string {
	path := g.Path(in)
	labels := make([]string, 0, len(path))
	for _, n := range path {
		labels = append(labels, g.steps[n].Label)
	}
	return labels
}

func (g *Graph) onPath(step int, in Input) bool {
	return g.DisplayIndex(step, in) >= 0
}

func follow(edges []Edge, from int, in Input) (int, bool) {
	for _, e := range edges {
		if e.From != from {
			continue
		}
		if e.When == nil || e.When(in) {
			return e.To, true
		}
	}
	return 0, false
}

func newGraph(variant domain.Variant, steps []Step, forward, backward []Edge) *Graph {
	g := &Graph{
		variant:  variant,
		steps:    make(map[int]Step, len(steps)),
		forward:  forward,
		backward: backward,
	}
	for _, s := range steps {
		g.steps[s.Number] = s
	}
	return g
}
