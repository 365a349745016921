package progress

import (
	"sync"

	"greed-server/internal/domain"
)

// MemoryStore - хранилище в памяти для тестов и локального запуска.
// Копирует записи на входе и выходе, чтобы вызывающий код не делил
// указатели с хранилищем.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]domain.UserData
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]domain.UserData)}
}

func (s *MemoryStore) Get(username string) (*domain.UserData, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[username]
	if !ok || rec.Version != domain.UserDataVersion {
		return nil, false, nil
	}
	out := rec
	out.Unlocks = append([]string{}, rec.Unlocks...)
	return &out, true, nil
}

func (s *MemoryStore) Put(username string, data *domain.UserData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := *data
	rec.Unlocks = append([]string{}, data.Unlocks...)
	s.records[username] = rec
	return nil
}
