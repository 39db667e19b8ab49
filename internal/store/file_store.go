package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"polyroots/internal/domain"
)

const (
	polysFile = "polynomials.json" // map[string][]float64
	runsFile  = "runs.json"        // []domain.RunRecord, newest last on disk

	// maxRuns bounds the on-disk history; older records are dropped.
	maxRuns = 200
)

// FileStore keeps workspace state on disk under dir.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// ---------- Polynomials ----------

func (s *FileStore) SavePolynomial(name string, coef []float64) error {
	if name == "" {
		return fmt.Errorf("store: polynomial name required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string][]float64)
	if err := readJSON(s.path(polysFile), &m); err != nil {
		return err
	}
	m[name] = append([]float64(nil), coef...)
	return writeJSON(s.path(polysFile), m, 0o644)
}

func (s *FileStore) LoadPolynomial(name string) ([]float64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string][]float64)
	if err := readJSON(s.path(polysFile), &m); err != nil {
		return nil, false, err
	}
	coef, ok := m[name]
	if !ok {
		return nil, false, nil
	}
	return append([]float64(nil), coef...), true, nil
}

func (s *FileStore) ListPolynomials() (map[string][]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string][]float64)
	if err := readJSON(s.path(polysFile), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *FileStore) DeletePolynomial(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string][]float64)
	if err := readJSON(s.path(polysFile), &m); err != nil {
		return err
	}
	if _, ok := m[name]; !ok {
		return fmt.Errorf("store: no polynomial named %q", name)
	}
	delete(m, name)
	return writeJSON(s.path(polysFile), m, 0o644)
}

// ---------- Run history ----------

func (s *FileStore) AppendRun(rec domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var runs []domain.RunRecord
	if err := readJSON(s.path(runsFile), &runs); err != nil {
		return err
	}
	runs = append(runs, rec)
	if len(runs) > maxRuns {
		runs = runs[len(runs)-maxRuns:]
	}
	return writeJSON(s.path(runsFile), runs, 0o644)
}

// Runs returns up to limit records, newest first. limit <= 0 returns all.
func (s *FileStore) Runs(limit int) ([]domain.RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var runs []domain.RunRecord
	if err := readJSON(s.path(runsFile), &runs); err != nil {
		return nil, err
	}
	out := make([]domain.RunRecord, 0, len(runs))
	for i := len(runs) - 1; i >= 0; i-- {
		out = append(out, runs[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *FileStore) path(name string) string { return filepath.Join(s.dir, name) }

var (
	_ domain.PolynomialStore = (*FileStore)(nil)
	_ domain.RunStore        = (*FileStore)(nil)
)
