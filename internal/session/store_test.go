package session

import (
	"path/filepath"
	"testing"

	"stylist/internal/catalog"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Get(); ok {
		t.Fatal("fresh store must be empty")
	}

	prefs := catalog.Preferences{Style: "casual", Budget: "low"}
	if err := store.Save(prefs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok := store.Get()
	if !ok || got != prefs {
		t.Fatalf("expected %+v, got %+v ok=%v", prefs, got, ok)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok := store.Get(); ok {
		t.Fatal("store must be empty after clear")
	}
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filters.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	prefs := catalog.Preferences{Occasion: "work", Size: "M"}
	if err := store.Save(prefs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Новый экземпляр читает состояние с диска.
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, ok := reopened.Get()
	if !ok || got != prefs {
		t.Fatalf("expected %+v after reopen, got %+v ok=%v", prefs, got, ok)
	}
}

func TestFileStoreClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filters.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := store.Save(catalog.Preferences{Color: "blue"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if _, ok := reopened.Get(); ok {
		t.Fatal("cleared store must stay empty after reopen")
	}

	// Повторный Clear по отсутствующему файлу не ошибка.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}

func TestBrokerPublishSubscribe(t *testing.T) {
	broker := NewBroker()

	applied, cancelApplied := broker.Subscribe(EventFiltersApplied)
	defer cancelApplied()
	reset, cancelReset := broker.Subscribe(EventFiltersReset)
	defer cancelReset()

	prefs := catalog.Preferences{Style: "trendy"}
	broker.Publish(EventFiltersApplied, prefs)

	select {
	case ev := <-applied:
		if ev.Name != EventFiltersApplied || ev.Preferences != prefs {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("expected applied event")
	}

	// Событие другого имени не попадает чужому подписчику.
	select {
	case ev := <-reset:
		t.Fatalf("reset subscriber received foreign event: %+v", ev)
	default:
	}
}

func TestBrokerCancelClosesChannel(t *testing.T) {
	broker := NewBroker()

	ch, cancel := broker.Subscribe(EventFiltersApplied)
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel after cancel")
	}

	// Публикация без подписчиков безопасна.
	broker.Publish(EventFiltersApplied, catalog.Preferences{})
}

func TestBrokerSlowSubscriberDropsEvents(t *testing.T) {
	broker := NewBroker()

	ch, cancel := broker.Subscribe(EventFiltersApplied)
	defer cancel()

	// Переполняем буфер: лишние события молча отбрасываются.
	for i := 0; i < subscriberBuffer+5; i++ {
		broker.Publish(EventFiltersApplied, catalog.Preferences{})
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	if received != subscriberBuffer {
		t.Fatalf("expected %d buffered events, got %d", subscriberBuffer, received)
	}
}
