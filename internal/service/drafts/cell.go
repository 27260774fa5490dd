package drafts

import (
	"sync"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
)

// Listener получает копию черновика после каждого изменения
type Listener func(d *domain.ReservationDraft)

// Cell наблюдаемая ячейка с черновиком бронирования.
// Каждое изменение синхронно уведомляет подписчиков.
type Cell struct {
	mu        sync.Mutex
	draft     *domain.ReservationDraft
	listeners map[int]Listener
	nextID    int
}

func NewCell(d *domain.ReservationDraft) *Cell {
	return &Cell{
		draft:     d,
		listeners: make(map[int]Listener),
	}
}

// Get копия текущего черновика
func (c *Cell) Get() *domain.ReservationDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// Subscribe подписывает listener и сразу передаёт ему текущее состояние.
// Возвращает функцию отписки.
func (c *Cell) Subscribe(l Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	snapshot := c.draft.Clone()
	c.mu.Unlock()

	l(snapshot)

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Update применяет мутацию и уведомляет подписчиков
func (c *Cell) Update(fn func(d *domain.ReservationDraft)) {
	c.mu.Lock()
	fn(c.draft)
	snapshot, listeners := c.draft.Clone(), c.snapshotListeners()
	c.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// Reset возвращает черновик в пустое состояние
func (c *Cell) Reset() {
	c.Update(func(d *domain.ReservationDraft) { d.Reset() })
}

func (c *Cell) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(c.listeners))
	for i := 0; i < c.nextID; i++ {
		if l, ok := c.listeners[i]; ok {
			out = append(out, l)
		}
	}
	return out
}
