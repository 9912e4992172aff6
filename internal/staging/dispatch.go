package staging

import (
	"fmt"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/nikolayk812/storefront-demo/internal/store"
)

// EventBus identifies a handler by its code pointer, so handlers of two boards
// on one bus are indistinguishable to Unsubscribe. Boards register with a single
// dispatcher per bus instead.
var (
	dispatchersMu sync.Mutex
	dispatchers   = make(map[EventBus.Bus]*dispatcher)
)

type dispatcher struct {
	mu     sync.Mutex
	boards map[*Board]struct{}
}

func (d *dispatcher) onCartChanged(productID string, _ int) {
	d.mu.Lock()
	boards := make([]*Board, 0, len(d.boards))
	for b := range d.boards {
		boards = append(boards, b)
	}
	d.mu.Unlock()

	for _, b := range boards {
		b.onCartChanged(productID)
	}
}

func attach(bus EventBus.Bus, b *Board) error {
	dispatchersMu.Lock()
	defer dispatchersMu.Unlock()

	d, ok := dispatchers[bus]
	if !ok {
		d = &dispatcher{boards: make(map[*Board]struct{})}
		if err := bus.Subscribe(store.TopicCartChanged, d.onCartChanged); err != nil {
			return fmt.Errorf("bus.Subscribe: %w", err)
		}
		dispatchers[bus] = d
	}

	d.mu.Lock()
	d.boards[b] = struct{}{}
	d.mu.Unlock()

	return nil
}

// detach unsubscribes the dispatcher once its last board is gone.
func detach(bus EventBus.Bus, b *Board) error {
	dispatchersMu.Lock()
	defer dispatchersMu.Unlock()

	d, ok := dispatchers[bus]
	if !ok {
		return nil
	}

	d.mu.Lock()
	delete(d.boards, b)
	empty := len(d.boards) == 0
	d.mu.Unlock()

	if !empty {
		return nil
	}

	delete(dispatchers, bus)
	if err := bus.Unsubscribe(store.TopicCartChanged, d.onCartChanged); err != nil {
		return fmt.Errorf("bus.Unsubscribe: %w", err)
	}

	return nil
}
