package loadout

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/quasilyte/gdata"
)

const itemKey = "loadout"

// Store keeps a confirmed loadout between runs.
type Store interface {
	// Load returns nil with no error when nothing has been saved.
	Load() ([]string, error)
	Save(names []string) error
}

type savedLoadout struct {
	Abilities []string `json:"abilities"`
}

// DataStore saves the loadout in the per-user application data directory.
type DataStore struct {
	manager *gdata.Manager
}

func OpenDataStore(appName string) (*DataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open loadout store: %w", err)
	}
	return &DataStore{manager: m}, nil
}

func (s *DataStore) Load() ([]string, error) {
	data, err := s.manager.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("load loadout: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	return decode(data)
}

func (s *DataStore) Save(names []string) error {
	data, err := encode(names)
	if err != nil {
		return err
	}
	if err := s.manager.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save loadout: %w", err)
	}
	return nil
}

// MemoryStore holds the encoded loadout in memory.
type MemoryStore struct {
	data  []byte
	Saves int
}

func (s *MemoryStore) Load() ([]string, error) {
	if s.data == nil {
		return nil, nil
	}
	return decode(s.data)
}

func (s *MemoryStore) Save(names []string) error {
	data, err := encode(names)
	if err != nil {
		return err
	}
	s.data = data
	s.Saves++
	return nil
}

func encode(names []string) ([]byte, error) {
	data, err := json.Marshal(savedLoadout{Abilities: slices.Clone(names)})
	if err != nil {
		return nil, fmt.Errorf("encode loadout: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]string, error) {
	var saved savedLoadout
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse saved loadout: %w", err)
	}
	return saved.Abilities, nil
}
