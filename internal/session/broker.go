package session

import (
	"sync"

	"stylist/internal/catalog"
)

const subscriberBuffer = 8

// Broker процесс-локальный pub/sub событий фильтра по имени события.
// Публикация не блокируется: медленный подписчик теряет событие.
type Broker struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]chan Event
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[int]chan Event),
	}
}

// Subscribe подписывает на событие с именем name. Возвращённая функция
// отменяет подписку и закрывает канал.
func (b *Broker) Subscribe(name string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[name] == nil {
		b.subs[name] = make(map[int]chan Event)
	}
	id := b.nextID
	b.nextID++

	ch := make(chan Event, subscriberBuffer)
	b.subs[name][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[name][id]; ok {
			delete(b.subs[name], id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish рассылает событие всем подписчикам имени name.
func (b *Broker) Publish(name string, prefs catalog.Preferences) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	event := Event{Name: name, Preferences: prefs}
	for _, ch := range b.subs[name] {
		select {
		case ch <- event:
		default:
			// Переполненный подписчик пропускает событие.
		}
	}
}
