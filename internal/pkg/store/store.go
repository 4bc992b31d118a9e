// Package store keeps the working set of alerted events. It replaces the
// module-level dictionaries of earlier iterations with an injected handle
// so expiry and scrape bookkeeping live in one place.
package store

import (
	"sync"
	"time"

	"github.com/oddscout/oddscout/internal/pkg/models"
)

// Entry is everything the server tracks for one alerted event.
type Entry struct {
	EventID        string                   `json:"event_id"`
	Alert          models.AlertDetails      `json:"alert"`
	Pinnacle       *models.PinnacleSnapshot `json:"pinnacle,omitempty"`
	Comparison     *models.ComparisonResult `json:"comparison,omitempty"`
	AlertArrivedAt time.Time                `json:"alert_arrived_at"`
	LastRefreshAt  time.Time                `json:"last_refresh_at"`
}

// EventStore is a TTL-bounded in-memory set of active events. All methods
// are safe for concurrent use.
type EventStore struct {
	mu        sync.RWMutex
	ttl       time.Duration
	entries   map[string]*Entry
	attempted map[string]bool // events with a scrape in flight or done
	now       func() time.Time
}

func New(ttl time.Duration) *EventStore {
	return &EventStore{
		ttl:       ttl,
		entries:   make(map[string]*Entry),
		attempted: make(map[string]bool),
		now:       time.Now,
	}
}

// UpsertAlert records a fresh alert, preserving the original arrival time
// and any comparison data from earlier alerts for the same event.
func (s *EventStore) UpsertAlert(eventID string, alert models.AlertDetails, snapshot *models.PinnacleSnapshot) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[eventID]
	if !ok {
		entry = &Entry{EventID: eventID, AlertArrivedAt: now}
		s.entries[eventID] = entry
	}
	entry.Alert = alert
	entry.Pinnacle = snapshot
	entry.LastRefreshAt = now
	return copyEntry(entry)
}

// UpdateSnapshot replaces the reference snapshot for an active event.
// No-op when the event already expired or was never stored.
func (s *EventStore) UpdateSnapshot(eventID string, snapshot *models.PinnacleSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.entries[eventID]; ok {
		entry.Pinnacle = snapshot
		entry.LastRefreshAt = s.now()
	}
}

// SetComparison stores the secondary-book analysis outcome for an event.
func (s *EventStore) SetComparison(eventID string, result *models.ComparisonResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.entries[eventID]; ok {
		entry.Comparison = result
	}
}

// Get returns a copy of the entry for eventID, or nil.
func (s *EventStore) Get(eventID string) *Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[eventID]
	if !ok {
		return nil
	}
	return copyEntry(entry)
}

// ActiveIDs lists the ids of unexpired events.
func (s *EventStore) ActiveIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cutoff := s.now().Add(-s.ttl)
	ids := make([]string, 0, len(s.entries))
	for id, entry := range s.entries {
		if entry.AlertArrivedAt.After(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Sweep drops expired entries and their scrape bookkeeping; returns copies
// of the surviving entries.
func (s *EventStore) Sweep() map[string]*Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	alive := make(map[string]*Entry, len(s.entries))
	for id, entry := range s.entries {
		if entry.AlertArrivedAt.After(cutoff) {
			alive[id] = copyEntry(entry)
			continue
		}
		delete(s.entries, id)
		delete(s.attempted, id)
	}
	return alive
}

// copyEntry takes a shallow copy for handing outside the lock. Snapshot and
// comparison pointers are only ever swapped whole, never mutated in place,
// so sharing them is safe; the Entry struct itself is not.
func copyEntry(entry *Entry) *Entry {
	c := *entry
	return &c
}

// TryBeginScrape marks a scrape attempt for the event. Returns false when
// one is already in flight or already succeeded, so rapid duplicate alerts
// do not trigger concurrent scrapes.
func (s *EventStore) TryBeginScrape(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempted[eventID] {
		return false
	}
	if entry, ok := s.entries[eventID]; ok && entry.Comparison != nil && entry.Comparison.Status == models.ComparisonSuccess {
		return false
	}
	s.attempted[eventID] = true
	return true
}

// ClearScrapeAttempt lets the next alert retry after a failed scrape.
func (s *EventStore) ClearScrapeAttempt(eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempted, eventID)
}
