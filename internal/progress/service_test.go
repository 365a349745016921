package progress

import (
	"errors"
	"os"
	"testing"

	"greed-server/internal/domain"
	"greed-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestLoginCreatesProfile(t *testing.T) {
	svc := NewService(NewMemoryStore())

	data, err := svc.Login("gecko")
	if err != nil {
		t.Fatalf("Login() вернул ошибку: %v", err)
	}
	if data.BankedTreasure != 0 || data.TombFragments != 0 || data.DeepestRoom != 0 {
		t.Errorf("новый профиль должен быть нулевым, получено %+v", data)
	}
	if data.Version != domain.UserDataVersion {
		t.Errorf("Version = %d, ожидалось %d", data.Version, domain.UserDataVersion)
	}

	// Повторный вход должен вернуть уже существующий профиль.
	data.BankedTreasure = 300
	if err := svc.Save("gecko", data); err != nil {
		t.Fatalf("Save() вернул ошибку: %v", err)
	}
	again, err := svc.Login("gecko")
	if err != nil {
		t.Fatalf("Login() вернул ошибку: %v", err)
	}
	if again.BankedTreasure != 300 {
		t.Errorf("BankedTreasure = %d, ожидалось 300", again.BankedTreasure)
	}
}

func TestBuyUpgrade(t *testing.T) {
	svc := NewService(NewMemoryStore())
	data := domain.NewUserData()
	data.TombFragments = 100

	up, err := svc.BuyUpgrade(data, "unlock_shop_health_potion")
	if err != nil {
		t.Fatalf("BuyUpgrade() вернул ошибку: %v", err)
	}
	if data.TombFragments != 100-up.Cost {
		t.Errorf("TombFragments = %d, ожидалось %d", data.TombFragments, 100-up.Cost)
	}
	if !data.HasUnlock("unlock_shop_health_potion") {
		t.Error("разблокировка не записана в профиль")
	}

	// Повторная покупка не должна менять баланс.
	before := data.TombFragments
	if _, err := svc.BuyUpgrade(data, "unlock_shop_health_potion"); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("ожидалась ErrAlreadyOwned, получено %v", err)
	}
	if data.TombFragments != before {
		t.Errorf("баланс изменился при повторной покупке: %d -> %d", before, data.TombFragments)
	}
}

func TestBuyUpgradeErrors(t *testing.T) {
	svc := NewService(NewMemoryStore())
	data := domain.NewUserData()

	if _, err := svc.BuyUpgrade(data, "no_such_upgrade"); !errors.Is(err, ErrUnknownUpgrade) {
		t.Errorf("ожидалась ErrUnknownUpgrade, получено %v", err)
	}
	if _, err := svc.BuyUpgrade(data, "unlock_shop_health_potion"); !errors.Is(err, ErrInsufficientFragments) {
		t.Errorf("ожидалась ErrInsufficientFragments, получено %v", err)
	}
	if len(data.Unlocks) != 0 {
		t.Errorf("неудачная покупка не должна добавлять разблокировки: %v", data.Unlocks)
	}
}
