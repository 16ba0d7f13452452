package store

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
	"github.com/zxrxiaoha/checkInRecord/internal/timeutil"
)

// Store owns the in-memory record collection. Records are kept in
// insertion order; presentation order is always a freshly sorted view.
// Every mutation persists the whole collection synchronously before
// returning, so a crash between two operations never loses more than
// the operation in flight.
type Store struct {
	db      DB
	records []*record.Record
}

// Query filters records by an inclusive day range over the start time
// and a case-insensitive keyword over the content. A zero field matches
// everything.
type Query struct {
	From    time.Time
	To      time.Time
	Keyword string
}

// NewStore loads the persisted record set into memory.
func NewStore(db DB) (*Store, error) {
	s := &Store{db: db}

	data, err := db.LoadRecords()
	if err != nil {
		return nil, ErrPersistence.Wrap(err)
	}

	if len(data) != 0 {
		if err := json.Unmarshal(data, &s.records); err != nil {
			return nil, ErrPersistence.Wrap(err)
		}
	}

	return s, nil
}

// Create appends a new record and persists the collection. An id and
// the derived fields are filled in when absent. The interval invariant
// is enforced here; a violation leaves the collection unchanged.
func (s *Store) Create(r *record.Record) error {
	if !r.EndTime.After(r.StartTime) {
		return record.ErrInvalidInterval
	}

	if r.ID == "" {
		r.ID = record.NewID()
	}

	r.Duration = timeutil.FormatDuration(r.EndTime.Sub(r.StartTime))
	r.Date = timeutil.DayKey(r.StartTime)

	s.records = append(s.records, r)

	return s.persist()
}

// Edit replaces the content of the record with the given id. Timestamps
// are deliberately not editable after the fact; changing an interval is
// delete and recreate.
func (s *Store) Edit(id, content string) (*record.Record, error) {
	r := s.Get(id)
	if r == nil {
		return nil, ErrNotFound
	}

	r.Content = content

	if err := s.persist(); err != nil {
		return nil, err
	}

	return r, nil
}

// Delete removes the record with the given id and persists the
// collection.
func (s *Store) Delete(id string) error {
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return s.persist()
		}
	}

	return ErrNotFound
}

// Get returns the record with the given id, or nil.
func (s *Store) Get(id string) *record.Record {
	for _, r := range s.records {
		if r.ID == id {
			return r
		}
	}

	return nil
}

// All returns the collection sorted descending by start time. The
// stored insertion order is left untouched.
func (s *Store) All() []*record.Record {
	out := make([]*record.Record, len(s.records))
	copy(out, s.records)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})

	return out
}

// Search returns the subset of All matching the query. Both filters are
// optional and independently applicable.
func (s *Store) Search(q Query) []*record.Record {
	keyword := strings.ToLower(q.Keyword)

	out := make([]*record.Record, 0)

	for _, r := range s.All() {
		if !q.From.IsZero() &&
			r.StartTime.Before(timeutil.RoundToStart(q.From)) {
			continue
		}

		if !q.To.IsZero() && r.StartTime.After(timeutil.RoundToEnd(q.To)) {
			continue
		}

		if keyword != "" &&
			!strings.Contains(strings.ToLower(r.Content), keyword) {
			continue
		}

		out = append(out, r)
	}

	return out
}

// MergeImported reconciles an imported batch with the collection.
// Records are keyed by calendar day: an existing record for the same
// day is replaced whole by the imported one, anything else is appended.
// The collection is persisted once for the whole batch.
func (s *Store) MergeImported(batch []*record.Record) error {
	byDate := make(map[string]int, len(s.records))

	for i, r := range s.records {
		byDate[r.Date] = i
	}

	for _, imp := range batch {
		if i, ok := byDate[imp.Date]; ok {
			s.records[i] = imp
		} else {
			byDate[imp.Date] = len(s.records)
			s.records = append(s.records, imp)
		}
	}

	return s.persist()
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

// persist flushes the collection to the data store. On failure the
// in-memory state stays as the errored write left it; memory and
// durable state may now diverge, which is why the error must reach the
// caller.
func (s *Store) persist() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return ErrPersistence.Wrap(err)
	}

	if err := s.db.SaveRecords(data); err != nil {
		slog.Error("saving records failed", slog.Any("error", err))
		return ErrPersistence.Wrap(err)
	}

	return nil
}
