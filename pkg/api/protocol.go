package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Snapshot это корневой объект, который сервер отправляет клиенту.
// Полный "снимок" забега глазами одного игрока, рассылается каждый тик.
// Клиент ничего не досчитывает: что пришло, то и рисуется.
type Snapshot struct {
	// Type тип сообщения. Для снимков всегда "UPDATE".
	Type string `json:"type"`

	// Tick номер тика симуляции с начала забега.
	Tick int64 `json:"tick"`

	// RunID уникальный идентификатор забега.
	RunID string `json:"runId,omitempty"`

	// Phase текущая фаза автомата забега (ROUND_START, IN_GAME, ...).
	Phase string `json:"phase"`

	// PhaseTicks сколько тиков осталось до конца фазы-паузы.
	// В боевых фазах равен нулю.
	PhaseTicks int `json:"phaseTicks,omitempty"`

	// Room номер текущей комнаты, с единицы.
	Room int `json:"room"`

	Player            *PlayerView      `json:"player,omitempty"`
	Enemies           []EnemyView      `json:"enemies,omitempty"`
	PlayerProjectiles []ProjectileView `json:"playerProjectiles,omitempty"`
	EnemyProjectiles  []ProjectileView `json:"enemyProjectiles,omitempty"`
	Pickups           []PickupView     `json:"pickups,omitempty"`
	FloatingTexts     []TextView       `json:"floatingTexts,omitempty"`
	Particles         []ParticleView   `json:"particles,omitempty"`
	Hazards           []HazardView     `json:"hazards,omitempty"`

	// Экономика забега.
	Currency        int        `json:"currency"` // Накопленная добыча
	Wager           int        `json:"wager"`
	Risk            string     `json:"risk"`
	Curse           *CurseView `json:"curse,omitempty"`
	HasInsurance    bool       `json:"hasInsurance"`
	PotentialReward int        `json:"potentialReward,omitempty"` // floor(ставка × риск × проклятие)

	// Предложения экрана ставок. Пустые вне фазы BETTING.
	OfferedCurses []CurseView    `json:"offeredCurses,omitempty"`
	OfferedItems  []ShopItemView `json:"offeredItems,omitempty"`

	// Косметика: интенсивность тряски камеры и красной вспышки.
	ShakeIntensity float64 `json:"shakeIntensity,omitempty"`
	DamageFlash    float64 `json:"damageFlash,omitempty"`

	// Profile мета-прогресс игрока. Присылается всегда: клиент
	// рисует по нему меню и мастерскую.
	Profile *ProfileView `json:"profile,omitempty"`

	// Message и SubMessage заполняются на экране GAME_OVER.
	Message    string `json:"message,omitempty"`
	SubMessage string `json:"subMessage,omitempty"`
}

// ErrorResponse отправляется клиенту при отклоненной команде.
// Снимок после нее приходит как обычно: ошибка не ломает поток.
type ErrorResponse struct {
	Type  string `json:"type"` // Всегда "ERROR"
	Error string `json:"error"`
}

// PlayerView это DTO героя.
type PlayerView struct {
	X                    float64 `json:"x"`
	Y                    float64 `json:"y"`
	Health               int     `json:"health"`
	MaxHealth            int     `json:"maxHealth"`
	Size                 float64 `json:"size"`
	InvulnerabilityTimer int     `json:"invulnerabilityTimer,omitempty"`
	ActiveBoon           string  `json:"activeBoon,omitempty"`
	ShotsFiredThisRoom   int     `json:"shotsFiredThisRoom"`
}

// EnemyView это DTO одного врага.
type EnemyView struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Size      float64 `json:"size"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"maxHealth"`
	HitTimer  int     `json:"hitTimer,omitempty"`
	IsElite   bool    `json:"isElite,omitempty"`
}

type ProjectileView struct {
	ID      int64   `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Size    float64 `json:"size"`
	Bounces int     `json:"bounces,omitempty"`
}

type PickupView struct {
	ID    int64   `json:"id"`
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Life  int     `json:"life"`
	Value int     `json:"value,omitempty"`
}

type TextView struct {
	ID    int64   `json:"id"`
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Life  int     `json:"life"`
	Color string  `json:"color"`
	Scale bool    `json:"scale,omitempty"`
}

type ParticleView struct {
	ID    int64   `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Life  int     `json:"life"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

type HazardView struct {
	ID    int64   `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	State string  `json:"state"`
}

// CurseView это DTO проклятия для экрана ставок.
type CurseView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`
}

// ShopItemView это DTO товара лавки.
type ShopItemView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Type        string `json:"type"`
}

// UpgradeView это DTO улучшения мастерской с признаком покупки.
type UpgradeView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Owned       bool   `json:"owned"`
}

// ProfileView это DTO мета-прогресса.
type ProfileView struct {
	Username       string        `json:"username"`
	BankedTreasure int           `json:"bankedTreasure"`
	DeepestRoom    int           `json:"deepestRoom"`
	TombFragments  int           `json:"tombFragments"`
	Unlocks        []string      `json:"unlocks"`
	Upgrades       []UpgradeView `json:"upgrades,omitempty"` // Каталог мастерской
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия (LOGIN, INPUT, DESCEND, ...).
	Action string `json:"action"`

	// Payload JSON-объект с данными. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// LoginPayload первое сообщение соединения.
type LoginPayload struct {
	Username string `json:"username"`
}

// InputPayload состояние управления. Клиент шлет его при каждом
// изменении; сервер просто запоминает последнее.
type InputPayload struct {
	Up    bool    `json:"up"`
	Down  bool    `json:"down"`
	Left  bool    `json:"left"`
	Right bool    `json:"right"`
	AimX  float64 `json:"aimX"`
	AimY  float64 `json:"aimY"`
	Fire  bool    `json:"fire"`
}

// WagerPayload используется для SET_WAGER.
type WagerPayload struct {
	Amount int `json:"amount"`
}

// RiskPayload используется для SELECT_RISK.
type RiskPayload struct {
	Risk string `json:"risk"` // SAFE, RISKY, CHAMPION_DUEL
}

// CursePayload используется для SELECT_CURSE.
// Пустой CurseID снимает выбранное проклятие.
type CursePayload struct {
	CurseID string `json:"curseId"`
}

// ItemPayload используется для BUY_ITEM.
type ItemPayload struct {
	ItemID string `json:"itemId"`
}

// UpgradePayload используется для BUY_UPGRADE.
type UpgradePayload struct {
	UpgradeID string `json:"upgradeId"`
}
