package progress

import (
	"fmt"

	"greed-server/internal/domain"
	"greed-server/pkg/logger"
)

// Service - операции над профилем игрока поверх Repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login возвращает профиль пользователя. Если профиля нет (или запись
// повреждена), создаёт новый с нулевым прогрессом и сразу сохраняет его.
func (s *Service) Login(username string) (*domain.UserData, error) {
	data, ok, err := s.repo.Get(username)
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", username, err)
	}
	if ok {
		return data, nil
	}

	data = domain.NewUserData()
	if err := s.repo.Put(username, data); err != nil {
		return nil, fmt.Errorf("create profile %q: %w", username, err)
	}
	logger.Log.WithField("username", username).Info("Создан новый профиль")
	return data, nil
}

func (s *Service) Save(username string, data *domain.UserData) error {
	if err := s.repo.Put(username, data); err != nil {
		return fmt.Errorf("save profile %q: %w", username, err)
	}
	return nil
}

// BuyUpgrade списывает фрагменты и добавляет разблокировку. Повторная
// покупка уже имеющегося апгрейда возвращает ErrAlreadyOwned и не
// трогает баланс.
func (s *Service) BuyUpgrade(data *domain.UserData, upgradeID string) (*domain.PermanentUpgrade, error) {
	up := domain.FindUpgrade(upgradeID)
	if up == nil {
		return nil, ErrUnknownUpgrade
	}
	if data.HasUnlock(up.ID) {
		return nil, ErrAlreadyOwned
	}
	if data.TombFragments < up.Cost {
		return nil, ErrInsufficientFragments
	}

	data.TombFragments -= up.Cost
	data.Unlocks = append(data.Unlocks, up.ID)
	return up, nil
}
