// Package memory implements the entity store in process memory.
//
// All collections live in one Store guarded by a single RWMutex. RunInTx
// holds the write lock for the whole callback and restores a snapshot of
// every collection if the callback fails, so a multi-step operation is
// either applied completely or not at all. Repository calls made with the
// transaction context do not lock again.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

type txKey struct{}

// Store holds every collection of the in-memory backend.
type Store struct {
	mu sync.RWMutex

	churches      map[uuid.UUID]domain.Church
	users         map[uuid.UUID]domain.User
	units         map[uuid.UUID]domain.Unit
	actionItems   map[uuid.UUID]domain.ActionItem
	reports       map[uuid.UUID]domain.Report
	firstTimers   map[uuid.UUID]domain.FirstTimer
	announcements map[uuid.UUID]domain.Announcement
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		churches:      make(map[uuid.UUID]domain.Church),
		users:         make(map[uuid.UUID]domain.User),
		units:         make(map[uuid.UUID]domain.Unit),
		actionItems:   make(map[uuid.UUID]domain.ActionItem),
		reports:       make(map[uuid.UUID]domain.Report),
		firstTimers:   make(map[uuid.UUID]domain.FirstTimer),
		announcements: make(map[uuid.UUID]domain.Announcement),
	}
}

// Repository views over the store.
func (s *Store) Churches() *ChurchRepo { return &ChurchRepo{s: s} }
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }
func (s *Store) Units() *UnitRepo { return &UnitRepo{s: s} }
func (s *Store) ActionItems() *ActionItemRepo { return &ActionItemRepo{s: s} }
func (s *Store) Reports() *ReportRepo { return &ReportRepo{s: s} }
func (s *Store) FirstTimers() *FirstTimerRepo { return &FirstTimerRepo{s: s} }
func (s *Store) Announcements() *AnnouncementRepo { return &AnnouncementRepo{s: s} }
func (s *Store) TxManager() *TxManager { return &TxManager{s: s} }

// Ping always succeeds; it lets the store stand in for a database in
// readiness checks.
func (s *Store) Ping(context.Context) error { return nil }

// TxManager runs callbacks atomically against a Store.
type TxManager struct {
	s *Store
}

// RunInTx executes fn under the store's write lock. If fn returns an error
// or panics, every collection is restored to its state before the call.
// Nested calls join the outer transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	s := m.s
	if s.inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
		if err != nil {
			s.restore(snap)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, s))
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// rlock takes the read lock unless ctx already holds the write lock.
func (s *Store) rlock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// lock takes the write lock unless ctx already holds it.
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type snapshot struct {
	churches      map[uuid.UUID]domain.Church
	users         map[uuid.UUID]domain.User
	units         map[uuid.UUID]domain.Unit
	actionItems   map[uuid.UUID]domain.ActionItem
	reports       map[uuid.UUID]domain.Report
	firstTimers   map[uuid.UUID]domain.FirstTimer
	announcements map[uuid.UUID]domain.Announcement
}

// snapshot copies every collection. Stored values are never mutated through
// shared pointers or slices (writers always assign fresh ones), so a shallow
// copy of each map is a full copy of the state.
func (s *Store) snapshot() snapshot {
	return snapshot{
		churches:      maps.Clone(s.churches),
		users:         maps.Clone(s.users),
		units:         maps.Clone(s.units),
		actionItems:   maps.Clone(s.actionItems),
		reports:       maps.Clone(s.reports),
		firstTimers:   maps.Clone(s.firstTimers),
		announcements: maps.Clone(s.announcements),
	}
}

func (s *Store) restore(snap snapshot) {
	s.churches = snap.churches
	s.users = snap.users
	s.units = snap.units
	s.actionItems = snap.actionItems
	s.reports = snap.reports
	s.firstTimers = snap.firstTimers
	s.announcements = snap.announcements
}

func cloneUUIDPtr(p *uuid.UUID) *uuid.UUID {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

func notFound(entity string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
}
