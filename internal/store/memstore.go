package store

import (
	"sort"
	"sync"
)

// MemStore implements Store in memory. Safe for concurrent use.
type MemStore struct {
	mu     sync.Mutex
	runs   []*Run
	nextID int64
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) SaveRun(r *Run) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	r.ID = s.nextID
	if r.CreatedAt == "" {
		r.CreatedAt = nowUTC()
	}
	cp := *r
	s.runs = append(s.runs, &cp)
	return r.ID, nil
}

func (s *MemStore) GetRun(id int64) (*Run, error) {
	return s.find(func(r *Run) bool { return r.ID == id }), nil
}

func (s *MemStore) GetRunByCallID(callID string) (*Run, error) {
	return s.find(func(r *Run) bool { return r.CallID == callID }), nil
}

func (s *MemStore) find(pred func(*Run) bool) *Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.runs {
		if pred(r) {
			cp := *r
			return &cp
		}
	}
	return nil
}

func (s *MemStore) ListRuns(f Filter) ([]*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Run
	for i := len(s.runs) - 1; i >= 0; i-- {
		r := s.runs[i]
		if !f.match(r) {
			continue
		}
		cp := *r
		out = append(out, &cp)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (s *MemStore) ToolCounts() ([]ToolCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byTool := make(map[string]*ToolCount)
	for _, r := range s.runs {
		c, ok := byTool[r.Tool]
		if !ok {
			c = &ToolCount{Tool: r.Tool}
			byTool[r.Tool] = c
		}
		c.Runs++
		if r.Failed() {
			c.Errors++
		}
	}
	out := make([]ToolCount, 0, len(byTool))
	for _, c := range byTool {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tool < out[j].Tool })
	return out, nil
}

func (s *MemStore) Prune(keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if keep < 0 {
		keep = 0
	}
	if len(s.runs) <= keep {
		return 0, nil
	}
	removed := len(s.runs) - keep
	s.runs = append([]*Run(nil), s.runs[removed:]...)
	return int64(removed), nil
}

func (s *MemStore) Close() error { return nil }
