package wallet

type EventKind string

const (
	EventCardAdded      EventKind = "card_added"
	EventCardSelected   EventKind = "card_selected"
	EventPaymentSettled EventKind = "payment_settled"
	EventLoaded         EventKind = "loaded"
)

// Event announces a committed mutation. The payload carries ids only;
// subscribers read current state through the manager's accessors.
type Event struct {
	Kind          EventKind
	CardID        string
	TransactionID string
}

// Subscribe registers a listener for committed mutations. The channel is
// buffered; a subscriber that falls behind misses events rather than
// blocking the manager.
func (m *Manager) Subscribe() <-chan Event {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

func (m *Manager) notify(ev Event) {
	m.mu.Lock()
	subs := make([]chan Event, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
