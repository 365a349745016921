package progress

import (
	"errors"

	"greed-server/internal/domain"
)

// Repository - синхронное key-value хранилище профилей игроков.
// Реализация подменяема: файловое хранилище в проде, память в тестах.
//
// Get возвращает (nil, false, nil), если записи нет. Битая или
// несовместимая по версии запись тоже считается отсутствующей -
// игрок просто начнет с чистого профиля, а не с ошибки.
type Repository interface {
	Get(username string) (*domain.UserData, bool, error)
	Put(username string, data *domain.UserData) error
}

// Ошибки операций мастерской.
var (
	ErrUnknownUpgrade        = errors.New("unknown permanent upgrade")
	ErrAlreadyOwned          = errors.New("upgrade already owned")
	ErrInsufficientFragments = errors.New("not enough tomb fragments")
)
