package system

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// Progress is what the player has finished.
type Progress struct {
	Completed []string `json:"completed"`
	Last      string   `json:"last"`
}

// MarkCompleted records a finished level once.
func (p *Progress) MarkCompleted(name string) {
	if p == nil || name == "" {
		return
	}
	p.Last = name
	if !slices.Contains(p.Completed, name) {
		p.Completed = append(p.Completed, name)
	}
}

func (p *Progress) IsCompleted(name string) bool {
	return p != nil && slices.Contains(p.Completed, name)
}

// itemStore is the slice of gdata.Manager the store needs.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// ProgressStore persists Progress between runs.
type ProgressStore struct {
	items itemStore
}

// OpenProgressStore opens the per-user save location for appName.
func OpenProgressStore(appName string) (*ProgressStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("system: open save data: %w", err)
	}
	return &ProgressStore{items: m}, nil
}

// NewProgressStore wraps any item store.
func NewProgressStore(items itemStore) *ProgressStore {
	return &ProgressStore{items: items}
}

// Load returns the saved progress, or an empty one if nothing was saved.
func (s *ProgressStore) Load() (Progress, error) {
	var p Progress
	if s == nil || s.items == nil {
		return p, nil
	}
	data, err := s.items.LoadItem(progressKey)
	if err != nil {
		return p, fmt.Errorf("system: load progress: %w", err)
	}
	if data == nil {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Progress{}, fmt.Errorf("system: parse progress: %w", err)
	}
	return p, nil
}

func (s *ProgressStore) Save(p Progress) error {
	if s == nil || s.items == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("system: encode progress: %w", err)
	}
	if err := s.items.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("system: save progress: %w", err)
	}
	return nil
}
