package engine

import (
	"errors"
	"fmt"

	"greed-server/internal/domain"
	"greed-server/internal/rooms"
	"greed-server/pkg/logger"
)

// Ошибки команд экрана ставок. Уходят клиенту как есть,
// состояние забега при любой из них не меняется.
var (
	ErrNotInBetting      = errors.New("command allowed only on the betting screen")
	ErrInvalidWager      = errors.New("wager must be between 0 and current treasure")
	ErrUnknownRisk       = errors.New("unknown risk level")
	ErrNotOffered        = errors.New("not in the current offer")
	ErrInsufficientFunds = errors.New("not enough treasure")
	ErrSlotConsumed      = errors.New("already purchased")
)

// SetWager меняет ставку на следующую комнату.
func (r *Run) SetWager(amount int) error {
	if r.Phase != domain.PhaseBetting {
		return ErrNotInBetting
	}
	if amount < 0 || amount > r.Currency {
		return ErrInvalidWager
	}
	r.Wager = amount
	return nil
}

// SelectRisk меняет уровень риска. Выбор переживает экран ставок:
// не тронул - играешь на прежнем уровне.
func (r *Run) SelectRisk(risk string) error {
	if r.Phase != domain.PhaseBetting {
		return ErrNotInBetting
	}
	parsed, ok := domain.ParseRiskLevel(risk)
	if !ok {
		return ErrUnknownRisk
	}
	r.Risk = parsed
	return nil
}

// SelectCurse выбирает проклятие из текущего предложения.
// Пустой ID снимает выбор.
func (r *Run) SelectCurse(curseID string) error {
	if r.Phase != domain.PhaseBetting {
		return ErrNotInBetting
	}
	if curseID == "" {
		r.Curse = nil
		return nil
	}
	for i := range r.OfferedCurses {
		if r.OfferedCurses[i].ID == curseID {
			r.Curse = &r.OfferedCurses[i]
			return nil
		}
	}
	return ErrNotOffered
}

// BuyShopItem покупает товар из предложения лавки за добычу забега.
// Слот одноразовый: купленный товар исчезает из предложения.
func (r *Run) BuyShopItem(itemID string) error {
	if r.Phase != domain.PhaseBetting {
		return ErrNotInBetting
	}

	idx := -1
	for i := range r.OfferedItems {
		if r.OfferedItems[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotOffered
	}
	item := r.OfferedItems[idx]

	if item.Type == domain.ShopItemInsurance && r.HasInsurance {
		return ErrSlotConsumed
	}
	if item.Cost > r.Currency {
		return ErrInsufficientFunds
	}

	r.Currency -= item.Cost
	switch item.Type {
	case domain.ShopItemInsurance:
		r.HasInsurance = true
	case domain.ShopItemHealthPotion:
		r.Player.Health += r.cfg.HealthPotionRestore
		if r.Player.Health > r.Player.MaxHealth {
			r.Player.Health = r.Player.MaxHealth
		}
	case domain.ShopItemBoon:
		r.Player.ActiveBoon = item.Boon
	}

	// Ставка не может превышать остаток после покупки.
	if r.Wager > r.Currency {
		r.Wager = r.Currency
	}

	r.OfferedItems = append(r.OfferedItems[:idx], r.OfferedItems[idx+1:]...)
	return nil
}

// Descend запускает следующую комнату. Сперва бросок на проклятие
// гробницы: маленький шанс закончить забег прямо на лестнице.
func (r *Run) Descend() error {
	if r.Phase != domain.PhaseBetting {
		return ErrNotInBetting
	}
	if r.Wager > r.Currency {
		return ErrInvalidWager
	}

	if r.rng.Float64() < r.cfg.CursedTombDeathChance {
		r.setGameOver("The tomb's curse claimed you...", "An unfortunate end.")
		return nil
	}

	r.Room++
	rooms.ResetForRoom(r.Player)
	r.Enemies = rooms.Generate(r.rng, r.cfg, r.Room, r.Risk, r.Curse, r.nextID)
	r.OfferedCurses = nil
	r.OfferedItems = nil

	r.Phase = domain.PhaseRoundStart
	r.PhaseTicks = r.cfg.RoundStartTicks

	logger.Log.WithField("run_id", r.ID).
		WithField("room", r.Room).
		WithField("risk", string(r.Risk)).
		WithField("wager", r.Wager).
		Debug("Спуск в следующую комнату")
	return nil
}

// CashOut завершает забег добровольно: вся добыча уходит в банк
// профиля, глубина и фрагменты записываются, экран - сразу GAME_OVER.
func (r *Run) CashOut() error {
	if r.Phase != domain.PhaseBetting {
		return ErrNotInBetting
	}

	winnings := r.Currency
	fragments := int(float64(winnings) * r.cfg.FragmentConversionRate)

	r.Profile.BankedTreasure += winnings
	r.Profile.TombFragments += fragments
	r.earnedFragments = fragments
	r.escaped = true
	if r.Room > r.Profile.DeepestRoom {
		r.Profile.DeepestRoom = r.Room
	}

	r.Message = "You escaped!"
	r.SubMessage = fmt.Sprintf("You banked $%d!", winnings)
	r.Phase = domain.PhaseGameOver

	logger.Log.WithField("run_id", r.ID).
		WithField("banked", winnings).
		WithField("fragments", fragments).
		Info("Забег окончен побегом")
	r.saveProfile()
	return nil
}
