package domain

// RiskLevel - ставка на следующую комнату. Влияет на множитель награды,
// а дуэль чемпиона - еще и на состав врагов.
type RiskLevel string

const (
	RiskSafe         RiskLevel = "SAFE"
	RiskRisky        RiskLevel = "RISKY"
	RiskChampionDuel RiskLevel = "CHAMPION_DUEL"
)

// ParseRiskLevel конвертирует строку из JSON в RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch RiskLevel(s) {
	case RiskSafe, RiskRisky, RiskChampionDuel:
		return RiskLevel(s), true
	}
	return "", false
}

// Идентификаторы проклятий, на которые завязаны ветки правил
// в движке и генераторе. Остальные проклятия влияют только на множитель.
const (
	CurseSwarm       = "swarm"
	CurseFastEnemies = "fast_enemies"
	CurseFogOfWar    = "fog_of_war"
	CurseElitePatrol = "elite_patrol"

	CurseGlassCannon  = "glass_cannon"
	CurseEliteHunters = "elite_hunters"
	CurseVampiricFoes = "vampiric_foes"
	CurseRicochetHell = "ricochet_hell"
)

// Curse - опциональный модификатор комнаты: сложнее, но награда больше.
type Curse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`

	// IsUnlocked - базовые проклятия предлагаются всем.
	// Остальные требуют соответствующей записи в unlocks игрока.
	IsUnlocked bool `json:"isUnlocked,omitempty"`
}

// Boon - временный положительный эффект из лавки, живет одну комнату.
type Boon struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // В комнатах, -1 = до конца забега
}

const BoonHoming = "homing"

// Типы товаров лавки.
const (
	ShopItemInsurance    = "INSURANCE"
	ShopItemHealthPotion = "HEALTH_POTION"
	ShopItemBoon         = "BOON"
)

// ShopItem - товар "черного рынка" между комнатами.
// Покупается за внутриигровую валюту и применяется сразу.
type ShopItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Type        string `json:"type"`
	Boon        *Boon  `json:"boon,omitempty"`
}

// Типы постоянных улучшений мастерской.
const (
	UpgradeUnlockCurse    = "UNLOCK_CURSE"
	UpgradeUnlockShopItem = "UNLOCK_SHOP_ITEM"
	UpgradeStartingBonus  = "STARTING_BONUS"
)

// StartingBonus - стартовый бонус забега.
type StartingBonus struct {
	MaxHealth int  `json:"maxHealth,omitempty"`
	Insurance bool `json:"insurance,omitempty"`
}

// PermanentUpgrade - покупка за фрагменты гробниц. Необратима,
// после покупки ID попадает в unlocks игрока.
type PermanentUpgrade struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Cost        int            `json:"cost"` // В фрагментах гробниц
	Type        string         `json:"type"`
	UnlockID    string         `json:"unlockId,omitempty"` // ID проклятия/товара
	Bonus       *StartingBonus `json:"bonus,omitempty"`
}
