package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"greed-server/internal/domain"
	"greed-server/internal/progress"
	"greed-server/internal/rooms"
	"greed-server/pkg/geom"
	"greed-server/pkg/logger"
)

// Run - полное состояние одного забега. Владеет им только горутина
// игрового цикла: никаких блокировок внутри нет и не нужно.
type Run struct {
	ID       string
	Username string

	// Profile - живая ссылка на профиль сессии. Забег дописывает в него
	// фрагменты и рекорд глубины на развязках (смерть, побег).
	Profile *domain.UserData

	Tick       int64
	Phase      domain.RunPhase
	PhaseTicks int // Обратный отсчет фаз-пауз
	Room       int

	Player            *domain.Player
	Enemies           []*domain.Enemy
	PlayerProjectiles []*domain.Projectile
	EnemyProjectiles  []*domain.Projectile
	Pickups           []*domain.Pickup
	FloatingTexts     []*domain.FloatingText
	Particles         []*domain.Particle
	Hazards           []*domain.Hazard

	Currency     int // Накопленная добыча, ею же платят в лавке
	Wager        int
	Risk         domain.RiskLevel
	Curse        *domain.Curse
	HasInsurance bool

	// PendingReward вычисляется один раз в момент зачистки комнаты
	// и зачисляется на входе в фазу ставок.
	PendingReward int

	OfferedCurses []domain.Curse
	OfferedItems  []domain.ShopItem

	Shake float64
	Flash float64

	Message    string
	SubMessage string

	// Input - последнее присланное состояние управления.
	// Пишется из игрового цикла при обработке команд, там же читается.
	Input domain.InputState

	cfg      *domain.Config
	rng      *rand.Rand
	progress *progress.Service
	seed     int64

	attackTimer  int // Кулдаун выстрела героя
	nextEntityID int64

	// Сохраненные статы для отката "стеклянной пушки" после комнаты.
	glassCannon    bool
	savedHealth    int
	savedMaxHealth int

	// profileDirty взводится, если запись профиля не удалась.
	// Игровой цикл периодически повторяет попытку.
	profileDirty bool

	// Итог забега для летописи. Заполняется на развязке,
	// ledgerLogged взводит сервис после записи.
	earnedFragments int
	escaped         bool
	ledgerLogged    bool
}

// NewRun начинает забег с первой комнаты. Вся случайность забега
// детерминирована переданным зерном.
func NewRun(username string, profile *domain.UserData, cfg *domain.Config, seed int64, svc *progress.Service) *Run {
	r := &Run{
		ID:       uuid.NewString(),
		Username: username,
		Profile:  profile,
		Room:     1,
		Risk:     domain.RiskSafe,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		progress: svc,
		seed:     seed,
	}

	maxHealth := cfg.PlayerMaxHealth
	if profile.HasUnlock("bonus_start_hp") {
		maxHealth++
	}
	r.HasInsurance = profile.HasUnlock("bonus_start_insurance")

	r.Player = &domain.Player{
		Position:         geom.Vector2D{X: cfg.CanvasWidth / 2, Y: cfg.CanvasHeight / 2},
		Health:           maxHealth,
		MaxHealth:        maxHealth,
		Size:             cfg.PlayerSize,
		DamageMultiplier: 1,
	}

	r.Currency = cfg.StartingTreasure
	r.Wager = cfg.StartingWager
	if r.Wager > r.Currency {
		r.Wager = r.Currency
	}

	r.Enemies = rooms.Generate(r.rng, cfg, r.Room, r.Risk, r.Curse, r.nextID)
	r.Phase = domain.PhaseRoundStart
	r.PhaseTicks = cfg.RoundStartTicks

	logger.Log.WithField("run_id", r.ID).
		WithField("username", username).
		WithField("seed", seed).
		Info("Забег начат")
	return r
}

func (r *Run) nextID() int64 {
	r.nextEntityID++
	return r.nextEntityID
}

// beginCombat закрывает отсчет ROUND_START. Эффекты проклятий на
// статы героя накладываются именно здесь, а не при выборе: игрок
// может передумать, пока идут ставки.
func (r *Run) beginCombat() {
	if r.Curse != nil && r.Curse.ID == domain.CurseGlassCannon {
		r.glassCannon = true
		r.savedHealth = r.Player.Health
		r.savedMaxHealth = r.Player.MaxHealth
		r.Player.Health = 1
		r.Player.MaxHealth = 1
		r.Player.DamageMultiplier = 2
	}
	r.Phase = domain.PhaseInGame
}

// roomWon фиксирует зачистку комнаты. Награда считается один раз
// здесь: изменения ставки или проклятия задним числом невозможны.
func (r *Run) roomWon() {
	mult := r.cfg.RiskMultiplier(r.Risk)
	if r.Curse != nil {
		mult *= r.Curse.Multiplier
	}
	r.PendingReward = int(math.Floor(float64(r.Wager) * mult))

	r.Phase = domain.PhaseRoomClear
	r.PhaseTicks = r.cfg.RoomClearTicks
}

// openBetting зачисляет выигрыш и открывает экран ставок.
func (r *Run) openBetting() {
	r.FloatingTexts = append(r.FloatingTexts, &domain.FloatingText{
		ID:       r.nextID(),
		Text:     fmt.Sprintf("WAGER WON! +$%d", r.PendingReward),
		Position: geom.Vector2D{X: r.cfg.CanvasWidth / 2, Y: r.cfg.CanvasHeight/2 + 40},
		Life:     180,
		Color:    "gold",
	})

	// Ставка списывается, награда зачисляется - ровно один раз.
	r.Currency = (r.Currency - r.Wager) + r.PendingReward
	r.PendingReward = 0

	if r.glassCannon {
		r.Player.Health = r.savedHealth
		r.Player.MaxHealth = r.savedMaxHealth
		r.glassCannon = false
	}

	// Благословение живет одну комнату, проклятие выбирается заново.
	r.Player.ActiveBoon = nil
	r.Curse = nil

	if r.Wager > r.Currency {
		r.Wager = r.Currency
	}

	r.OfferedCurses = geom.SampleN(r.rng, domain.UnlockedCurses(r.Profile), r.cfg.OfferedCurseCount)
	r.OfferedItems = geom.SampleN(r.rng, domain.UnlockedShopItems(r.Profile), r.cfg.OfferedItemCount)

	r.Phase = domain.PhaseBetting
	r.PhaseTicks = 0
}

// damagePlayer наносит герою урон, если тот не в окне неуязвимости.
// Возвращает фактически нанесенное значение - оно нужно вампиризму.
func (r *Run) damagePlayer(amount int) int {
	if r.Player.InvulnerabilityTimer > 0 {
		return 0
	}
	r.Player.Health -= amount
	r.Player.InvulnerabilityTimer = r.cfg.PlayerInvulnTicks
	r.Flash = r.cfg.FlashOnHit
	r.Shake = r.cfg.ShakeOnHit

	r.FloatingTexts = append(r.FloatingTexts, &domain.FloatingText{
		ID:       r.nextID(),
		Text:     fmt.Sprintf("-%d", amount),
		Position: r.Player.Position,
		Life:     r.cfg.FloatingTextLifespan,
		Color:    "red",
	})
	return amount
}

// setGameOver закрывает забег смертью. Ставка теряется, страховка
// возвращает половину, остаток конвертируется в фрагменты гробниц.
func (r *Run) setGameOver(message, subMessage string) {
	final := r.Currency - r.Wager
	if r.HasInsurance {
		final += r.Wager / 2
	}
	r.Currency = final

	fragments := int(math.Floor(float64(final) * r.cfg.FragmentConversionRate))
	r.Profile.TombFragments += fragments
	r.earnedFragments = fragments
	if r.Room > r.Profile.DeepestRoom {
		r.Profile.DeepestRoom = r.Room
	}

	r.Message = message
	r.SubMessage = subMessage + fmt.Sprintf(" You collected %d Tomb Fragments.", fragments)

	r.Phase = domain.PhaseDying
	r.PhaseTicks = r.cfg.DyingTicks

	logger.Log.WithField("run_id", r.ID).
		WithField("room", r.Room).
		WithField("fragments", fragments).
		Info("Забег окончен смертью")
	r.saveProfile()
}

// saveProfile пишет профиль в хранилище. Неудача не прерывает забег:
// взводится флаг, и цикл повторит запись позже.
func (r *Run) saveProfile() {
	if err := r.progress.Save(r.Username, r.Profile); err != nil {
		logger.Log.WithField("run_id", r.ID).WithError(err).Error("Не удалось сохранить профиль")
		r.profileDirty = true
		return
	}
	r.profileDirty = false
}
