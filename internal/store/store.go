// Package store owns the canonical record collection, the single optional
// in-progress session, and the company registry. Every mutation persists
// synchronously to the injected storage backend; a failed write rolls the
// in-memory state back so memory and storage never diverge.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/mkallio/stint/internal/domain"
	"github.com/mkallio/stint/internal/storage"
)

// Store serializes all mutating calls with a mutex: update and delete are
// find-then-mutate operations and must not interleave.
type Store struct {
	mu      sync.Mutex
	backend storage.Backend
	log     *slog.Logger

	records    []domain.WorkRecord
	inProgress *domain.InProgressSession
	companies  []string

	observers []func()
}

// Open loads persisted state from the backend. An absent key means empty
// state; a corrupt blob is reset to empty and reported, never fatal.
func Open(ctx context.Context, backend storage.Backend, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{backend: backend, log: log}

	if err := s.loadRecords(ctx); err != nil {
		return nil, err
	}
	if err := s.loadInProgress(ctx); err != nil {
		return nil, err
	}
	if err := s.loadCompanies(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) loadRecords(ctx context.Context) error {
	raw, err := s.backend.Get(ctx, storage.KeyRecords)
	if err != nil {
		if errorsIsKeyNotFound(err) {
			return nil
		}
		return fmt.Errorf("loading records: %w", err)
	}
	var blobs []recordBlob
	if err := json.Unmarshal(raw, &blobs); err != nil {
		s.log.Warn("corrupt record state, resetting to empty", "error", err)
		s.records = nil
		return nil
	}
	s.records = fromBlobs(blobs)
	return nil
}

func (s *Store) loadInProgress(ctx context.Context) error {
	raw, err := s.backend.Get(ctx, storage.KeyInProgress)
	if err != nil {
		if errorsIsKeyNotFound(err) {
			return nil
		}
		return fmt.Errorf("loading in-progress session: %w", err)
	}
	var blob sessionBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		s.log.Warn("corrupt in-progress state, discarding", "error", err)
		return nil
	}
	s.inProgress = &domain.InProgressSession{StartTime: blob.StartTime, IsWorking: blob.IsWorking}
	return nil
}

func (s *Store) loadCompanies(ctx context.Context) error {
	raw, err := s.backend.Get(ctx, storage.KeyCompanies)
	if err != nil {
		if errorsIsKeyNotFound(err) {
			return nil
		}
		return fmt.Errorf("loading companies: %w", err)
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		s.log.Warn("corrupt company registry, resetting to empty", "error", err)
		return nil
	}
	s.companies = names
	return nil
}

// Add appends a record and persists. TotalHours is recomputed from the
// timestamps; the caller's value is not trusted.
func (s *Store) Add(ctx context.Context, r domain.WorkRecord) error {
	return s.mutate(func() error {
		if r.EndTime.Before(r.StartTime) {
			return fmt.Errorf("record %s: %w", r.ID, ErrInvalidRange)
		}
		r.TotalHours = domain.HoursBetween(r.StartTime, r.EndTime)

		s.records = append(s.records, r)
		if err := s.persistRecords(ctx); err != nil {
			s.records = s.records[:len(s.records)-1]
			return err
		}
		return nil
	})
}

// Update replaces the record with the given id, preserving the id and any
// stored coordinates, and recomputing TotalHours from the new timestamps.
func (s *Store) Update(ctx context.Context, id string, start, end time.Time, location, note, company string) (domain.WorkRecord, error) {
	var updated domain.WorkRecord
	err := s.mutate(func() error {
		if end.Before(start) {
			return fmt.Errorf("record %s: %w", id, ErrInvalidRange)
		}
		idx := s.indexOf(id)
		if idx < 0 {
			return fmt.Errorf("record %s: %w", id, ErrNotFound)
		}

		prev := s.records[idx]
		updated = domain.WorkRecord{
			ID:            prev.ID,
			StartTime:     start,
			EndTime:       end,
			TotalHours:    domain.HoursBetween(start, end),
			LocationLabel: location,
			Latitude:      prev.Latitude,
			Longitude:     prev.Longitude,
			Note:          note,
			CompanyName:   company,
		}
		s.records[idx] = updated
		if err := s.persistRecords(ctx); err != nil {
			s.records[idx] = prev
			return err
		}
		return nil
	})
	if err != nil {
		return domain.WorkRecord{}, err
	}
	return updated, nil
}

// Delete removes the record with the given id. Absent ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.DeleteMany(ctx, []string{id})
}

// DeleteMany removes every record whose id is in ids. Unknown ids are ignored.
func (s *Store) DeleteMany(ctx context.Context, ids []string) error {
	return s.mutate(func() error {
		drop := make(map[string]bool, len(ids))
		for _, id := range ids {
			drop[id] = true
		}

		kept := s.records[:0:0]
		for _, r := range s.records {
			if !drop[r.ID] {
				kept = append(kept, r)
			}
		}
		if len(kept) == len(s.records) {
			return nil
		}

		prev := s.records
		s.records = kept
		if err := s.persistRecords(ctx); err != nil {
			s.records = prev
			return err
		}
		return nil
	})
}

// List returns a snapshot copy of all records in insertion order.
func (s *Store) List() []domain.WorkRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WorkRecord, len(s.records))
	copy(out, s.records)
	return out
}

// SaveInProgress records the start of a session. An existing in-progress
// session is replaced, never stacked.
func (s *Store) SaveInProgress(ctx context.Context, start time.Time) error {
	return s.mutate(func() error {
		prev := s.inProgress
		s.inProgress = &domain.InProgressSession{StartTime: start, IsWorking: true}
		if err := s.persistInProgress(ctx); err != nil {
			s.inProgress = prev
			return err
		}
		return nil
	})
}

// ClearInProgress removes the in-progress session, if any.
func (s *Store) ClearInProgress(ctx context.Context) error {
	return s.mutate(func() error {
		prev := s.inProgress
		s.inProgress = nil
		if err := s.backend.Delete(ctx, storage.KeyInProgress); err != nil {
			s.inProgress = prev
			return fmt.Errorf("clearing in-progress state: %w: %w", ErrPersistence, err)
		}
		return nil
	})
}

// InProgress returns the current in-progress session, if one exists.
func (s *Store) InProgress() (domain.InProgressSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inProgress == nil {
		return domain.InProgressSession{}, false
	}
	return *s.inProgress, true
}

// AddCompany registers a company name. Already-present names are a no-op;
// matching is case-sensitive.
func (s *Store) AddCompany(ctx context.Context, name string) error {
	return s.mutate(func() error {
		for _, c := range s.companies {
			if c == name {
				return nil
			}
		}
		s.companies = append(s.companies, name)
		if err := s.persistCompanies(ctx); err != nil {
			s.companies = s.companies[:len(s.companies)-1]
			return err
		}
		return nil
	})
}

// RemoveCompany drops a name from the registry. Existing records keep their
// company field untouched. Absent names are a no-op.
func (s *Store) RemoveCompany(ctx context.Context, name string) error {
	return s.mutate(func() error {
		idx := -1
		for i, c := range s.companies {
			if c == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}

		prev := s.companies
		kept := make([]string, 0, len(prev)-1)
		kept = append(kept, prev[:idx]...)
		kept = append(kept, prev[idx+1:]...)
		s.companies = kept
		if err := s.persistCompanies(ctx); err != nil {
			s.companies = prev
			return err
		}
		return nil
	})
}

// Companies returns the registry as a sorted copy for deterministic display.
func (s *Store) Companies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.companies))
	copy(out, s.companies)
	sort.Strings(out)
	return out
}

// Subscribe registers fn to run after every successful mutation. Observers
// are invoked outside the store lock.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Flush re-persists all state. The process suspend hook calls this so an
// abrupt termination cannot lose buffered writes.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persistRecords(ctx); err != nil {
		return err
	}
	if err := s.persistCompanies(ctx); err != nil {
		return err
	}
	if s.inProgress != nil {
		return s.persistInProgress(ctx)
	}
	if err := s.backend.Delete(ctx, storage.KeyInProgress); err != nil {
		return fmt.Errorf("clearing in-progress state: %w: %w", ErrPersistence, err)
	}
	return nil
}

// mutate runs fn under the store lock and notifies observers on success.
func (s *Store) mutate(fn func() error) error {
	s.mu.Lock()
	err := fn()
	var observers []func()
	if err == nil {
		observers = append(observers, s.observers...)
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}
	for _, notify := range observers {
		notify()
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persistRecords(ctx context.Context) error {
	raw, err := json.Marshal(toBlobs(s.records))
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	if err := s.backend.Put(ctx, storage.KeyRecords, raw); err != nil {
		return fmt.Errorf("persisting records: %w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *Store) persistInProgress(ctx context.Context) error {
	if s.inProgress == nil {
		if err := s.backend.Delete(ctx, storage.KeyInProgress); err != nil {
			return fmt.Errorf("clearing in-progress state: %w: %w", ErrPersistence, err)
		}
		return nil
	}
	raw, err := json.Marshal(sessionBlob{StartTime: s.inProgress.StartTime, IsWorking: s.inProgress.IsWorking})
	if err != nil {
		return fmt.Errorf("encoding in-progress session: %w", err)
	}
	if err := s.backend.Put(ctx, storage.KeyInProgress, raw); err != nil {
		return fmt.Errorf("persisting in-progress session: %w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *Store) persistCompanies(ctx context.Context) error {
	raw, err := json.Marshal(s.companies)
	if err != nil {
		return fmt.Errorf("encoding companies: %w", err)
	}
	if err := s.backend.Put(ctx, storage.KeyCompanies, raw); err != nil {
		return fmt.Errorf("persisting companies: %w: %w", ErrPersistence, err)
	}
	return nil
}

func errorsIsKeyNotFound(err error) bool {
	return errors.Is(err, storage.ErrKeyNotFound)
}
