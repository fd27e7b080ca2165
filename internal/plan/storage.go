package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/colmenar/agenda/internal/util"
)

// ErrPlanNotFound is returned when a plan ID does not exist in the store.
var ErrPlanNotFound = errors.New("plan not found")

// planFile is the on-disk document.
type planFile struct {
	Plans []Plan `json:"plans"`
}

// Store keeps plans in a single JSON file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a store backed by the JSON file at path. The file does not
// need to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all plans, ordered by scheduled date. A missing file yields an
// empty list.
func (s *Store) Load() ([]Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]Plan, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Plan{}, nil
		}
		return nil, fmt.Errorf("failed to read plans file: %w", err)
	}

	var doc planFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse plans file: %w", err)
	}
	SortByDate(doc.Plans)
	return doc.Plans, nil
}

// Save atomically replaces the file contents with plans.
// Uses a temp file + rename to ensure atomic writes.
func (s *Store) Save(plans []Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked(func() error {
		return s.save(plans)
	})
}

// locked runs fn while holding the cross-process lock on the plans file.
func (s *Store) locked(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	lock := newFileLock(s.path)
	if err := lock.acquire(); err != nil {
		return err
	}
	defer lock.release()
	return fn()
}

func (s *Store) save(plans []Plan) error {
	if plans == nil {
		plans = []Plan{}
	}
	data, err := json.MarshalIndent(planFile{Plans: plans}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plans: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", s.path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Get returns the plan with the given ID.
func (s *Store) Get(id string) (Plan, error) {
	plans, err := s.Load()
	if err != nil {
		return Plan{}, err
	}
	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
}

// Upsert inserts p, or replaces the plan with the same ID. Plans without an
// ID get a generated one. The stored plan is returned.
func (s *Store) Upsert(p Plan) (Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		id, err := util.GeneratePlanID()
		if err != nil {
			return Plan{}, fmt.Errorf("failed to generate plan id: %w", err)
		}
		p.ID = id
	}

	err := s.locked(func() error {
		plans, err := s.load()
		if err != nil {
			return err
		}
		merged, err := Merge(plans, []Plan{p})
		if err != nil {
			return err
		}
		return s.save(merged)
	})
	if err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Delete removes the plan with the given ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locked(func() error {
		plans, err := s.load()
		if err != nil {
			return err
		}
		kept := make([]Plan, 0, len(plans))
		for _, p := range plans {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(plans) {
			return fmt.Errorf("%w: %s", ErrPlanNotFound, id)
		}
		return s.save(kept)
	})
}

// Merge overlays incoming plans on existing ones by ID. Incoming plans with
// no ID are assigned a fresh one. The result is sorted by scheduled date.
func Merge(existing, incoming []Plan) ([]Plan, error) {
	out := make([]Plan, len(existing), len(existing)+len(incoming))
	copy(out, existing)

	index := make(map[string]int, len(out))
	for i, p := range out {
		index[p.ID] = i
	}

	for _, p := range incoming {
		if p.ID == "" {
			id, err := util.GeneratePlanID()
			if err != nil {
				return nil, fmt.Errorf("failed to generate plan id: %w", err)
			}
			p.ID = id
		}
		if i, ok := index[p.ID]; ok {
			out[i] = p
			continue
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}

	SortByDate(out)
	return out, nil
}

// SortByDate orders plans by scheduled date, then title, then ID.
func SortByDate(plans []Plan) {
	sort.SliceStable(plans, func(i, j int) bool {
		if c := plans[i].ScheduledDate.Compare(plans[j].ScheduledDate); c != 0 {
			return c < 0
		}
		if plans[i].Title != plans[j].Title {
			return plans[i].Title < plans[j].Title
		}
		return plans[i].ID < plans[j].ID
	})
}
