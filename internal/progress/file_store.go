package progress

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"greed-server/internal/domain"
	"greed-server/pkg/logger"
)

// FileStore хранит по одному JSON-документу на игрока в каталоге данных.
// Имя файла - hex от имени пользователя: имена приходят от клиента
// и не обязаны быть безопасными путями.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) path(username string) string {
	return filepath.Join(s.Dir, hex.EncodeToString([]byte(username))+".json")
}

// Get читает профиль. Отсутствие файла, битый JSON и чужая версия
// схемы - это "записи нет", а не ошибка: свежий профиль ценнее отказа.
func (s *FileStore) Get(username string) (*domain.UserData, bool, error) {
	raw, err := os.ReadFile(s.path(username))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read profile: %w", err)
	}

	var data domain.UserData
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Log.WithField("user", username).WithError(err).Warn("Corrupt profile, treating as absent")
		return nil, false, nil
	}
	if data.Version != domain.UserDataVersion {
		logger.Log.WithField("user", username).
			WithField("version", data.Version).
			Warn("Profile schema version mismatch, treating as absent")
		return nil, false, nil
	}
	if data.Unlocks == nil {
		data.Unlocks = []string{}
	}
	return &data, true, nil
}

// Put записывает профиль атомарно: во временный файл, затем rename.
func (s *FileStore) Put(username string, data *domain.UserData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	dst := s.path(username)
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("commit profile: %w", err)
	}
	return nil
}
