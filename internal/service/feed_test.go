package service

import (
	"context"
	"testing"
	"time"

	"freelancedesk/internal/config"
	"freelancedesk/internal/domain/models"
)

func nextEvent(t *testing.T, ch <-chan models.ChangeEvent) models.ChangeEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("channel closed")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no change event")
	}
	return models.ChangeEvent{}
}

func TestChangeFeedPushesOnChange(t *testing.T) {
	fx := newFixture(t, config.LinkStrategyChild)
	feed := NewChangeFeed(10*time.Millisecond, testLogger())

	events, unsubscribe := feed.Subscribe("s1", models.Customers, "", fx.set.Directory)
	defer unsubscribe()

	first := nextEvent(t, events)
	if first.Directory.Count != 1 {
		t.Fatalf("initial Count = %d, want 1", first.Directory.Count)
	}

	_, err := fx.set.Customers.Create(context.Background(), &models.CustomerAttributes{CustomerName: "Initech", CustomerPhone: "42"})
	if err != nil {
		t.Fatal(err)
	}

	changed := nextEvent(t, events)
	if changed.Directory.Count != 2 || changed.Fingerprint == first.Fingerprint {
		t.Errorf("changed event = count %d fp %s", changed.Directory.Count, changed.Fingerprint)
	}
}

func TestChangeFeedSharesAndStopsWatchers(t *testing.T) {
	fx := newFixture(t, config.LinkStrategyChild)
	feed := NewChangeFeed(10*time.Millisecond, testLogger())

	a, unsubA := feed.Subscribe("s1", models.Tasks, "", fx.set.Directory)
	nextEvent(t, a)
	b, unsubB := feed.Subscribe("s1", models.Tasks, "", fx.set.Directory)

	// the late subscriber gets the latest listing replayed
	if ev := nextEvent(t, b); ev.Directory.Count != 2 {
		t.Errorf("replayed Count = %d, want 2", ev.Directory.Count)
	}
	if n := feed.Watching(); n != 1 {
		t.Errorf("Watching() = %d, want 1", n)
	}

	unsubA()
	if n := feed.Watching(); n != 1 {
		t.Errorf("Watching() after one unsubscribe = %d, want 1", n)
	}
	unsubB()
	unsubB()
	if n := feed.Watching(); n != 0 {
		t.Errorf("Watching() after all unsubscribed = %d, want 0", n)
	}
	if _, ok := <-a; ok {
		// drain a possibly buffered event, then expect close
		if _, ok := <-a; ok {
			t.Error("channel not closed after unsubscribe")
		}
	}
}

func TestChangeFeedTrimsSearch(t *testing.T) {
	fx := newFixture(t, config.LinkStrategyChild)
	feed := NewChangeFeed(10*time.Millisecond, testLogger())

	a, unsubA := feed.Subscribe("s1", models.Tasks, "wire", fx.set.Directory)
	defer unsubA()
	b, unsubB := feed.Subscribe("s1", models.Tasks, "  wire ", fx.set.Directory)
	defer unsubB()

	if n := feed.Watching(); n != 1 {
		t.Errorf("Watching() = %d, want 1", n)
	}
	if ev := nextEvent(t, a); ev.Directory.Count != 1 {
		t.Errorf("Count = %d, want 1", ev.Directory.Count)
	}
	if ev := nextEvent(t, b); ev.Directory.Search != "wire" {
		t.Errorf("Search = %q, want %q", ev.Directory.Search, "wire")
	}
}
