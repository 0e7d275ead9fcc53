package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AngelCh415/CAMPAIGN_GO/internal/models"
)

// Dataset es un export subido, inmutable una vez guardado. Cada ciclo de
// reporte recomputa desde Rows; no hay persistencia entre reinicios.
type Dataset struct {
	ID              string
	Name            string
	Rows            []models.RawRow
	SkuIDs          []string
	Dates           []string
	HasDate         bool
	AddSpendDerived bool
	UploadedAt      time.Time
}

type MemoryStore struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
	order    []string // más reciente al final
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{datasets: make(map[string]*Dataset)}
}

// Put registra un dataset nuevo y lo convierte en el "latest".
func (s *MemoryStore) Put(name string, rows []models.RawRow, addSpendDerived bool) *Dataset {
	ds := &Dataset{
		ID:              uuid.NewString(),
		Name:            name,
		Rows:            rows,
		AddSpendDerived: addSpendDerived,
		UploadedAt:      time.Now().UTC(),
	}
	skus := make(map[string]struct{})
	dates := make(map[string]struct{})
	for _, r := range rows {
		skus[r.SkuID] = struct{}{}
		if r.Date != "" {
			dates[r.Date] = struct{}{}
			ds.HasDate = true
		}
	}
	ds.SkuIDs = sortedKeys(skus)
	ds.Dates = sortedKeys(dates)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[ds.ID] = ds
	s.order = append(s.order, ds.ID)
	return ds
}

// Get devuelve el dataset por id; con id vacío, el más reciente.
func (s *MemoryStore) Get(id string) (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == "" {
		if len(s.order) == 0 {
			return nil, false
		}
		id = s.order[len(s.order)-1]
	}
	ds, ok := s.datasets[id]
	return ds, ok
}

// List devuelve los datasets, el más reciente primero.
func (s *MemoryStore) List() []models.DatasetInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DatasetInfo, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		ds := s.datasets[s.order[i]]
		out = append(out, models.DatasetInfo{
			ID:         ds.ID,
			Name:       ds.Name,
			Rows:       len(ds.Rows),
			UploadedAt: ds.UploadedAt,
		})
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
