package domain

// Контент игры: пулы проклятий, товаров и улучшений.
// Значения фиксированы и читаются только на старте.

// AllCurses - полный пул проклятий. Базовые четыре доступны всем,
// остальные открываются через мастерскую.
var AllCurses = []Curse{
	{
		ID:          CurseSwarm,
		Name:        "Swarm",
		Description: "Doubles the number of enemies.",
		Multiplier:  2.5,
		IsUnlocked:  true,
	},
	{
		ID:          CurseFastEnemies,
		Name:        "Frenzy",
		Description: "All enemies are significantly faster.",
		Multiplier:  1.8,
		IsUnlocked:  true,
	},
	{
		ID:          CurseFogOfWar,
		Name:        "Fog of War",
		Description: "Your vision is severely limited.",
		Multiplier:  2.0,
		IsUnlocked:  true,
	},
	{
		ID:          CurseElitePatrol,
		Name:        "Elite Patrol",
		Description: "Enemies have more health.",
		Multiplier:  2.2,
		IsUnlocked:  true,
	},
	{
		ID:          CurseGlassCannon,
		Name:        "Glass Cannon",
		Description: "Deal +100% damage, but die in one hit.",
		Multiplier:  3.0,
	},
	{
		ID:          CurseEliteHunters,
		Name:        "Elite Hunters",
		Description: "All enemies are replaced by Elites.",
		Multiplier:  3.5,
	},
	{
		ID:          CurseVampiricFoes,
		Name:        "Vampiric Foes",
		Description: "Enemies heal when they damage you.",
		Multiplier:  2.5,
	},
	{
		ID:          CurseRicochetHell,
		Name:        "Ricochet Hell",
		Description: "All projectiles bounce off walls twice.",
		Multiplier:  2.0,
	},
}

// AllShopItems - ассортимент "черного рынка".
// Страховка доступна всегда, остальное требует разблокировки.
var AllShopItems = []ShopItem{
	{
		ID:          "insurance",
		Name:        "Buy Insurance",
		Description: "If you die, recover 50% of your wager.",
		Cost:        25,
		Type:        ShopItemInsurance,
	},
	{
		ID:          "health_potion",
		Name:        "Health Potion",
		Description: "Restore 2 lost HP before the next room.",
		Cost:        25,
		Type:        ShopItemHealthPotion,
	},
	{
		ID:          "boon_homing",
		Name:        "Boon: Homing Shots",
		Description: "Your projectiles will home in on enemies for one room.",
		Cost:        40,
		Type:        ShopItemBoon,
		Boon:        &Boon{ID: BoonHoming, Name: "Homing Shots", Duration: 1},
	},
}

// PermanentUpgrades - каталог мастерской (покупки за фрагменты гробниц).
var PermanentUpgrades = []PermanentUpgrade{
	{
		ID: "unlock_curse_glass_cannon", Name: "Unlock Curse: Glass Cannon",
		Description: "Deal +100% damage, but die in one hit. (3x)",
		Cost:        100, Type: UpgradeUnlockCurse, UnlockID: CurseGlassCannon,
	},
	{
		ID: "unlock_curse_elite_hunters", Name: "Unlock Curse: Elite Hunters",
		Description: "All enemies are replaced by Elites. (3.5x)",
		Cost:        150, Type: UpgradeUnlockCurse, UnlockID: CurseEliteHunters,
	},
	{
		ID: "unlock_curse_vampiric_foes", Name: "Unlock Curse: Vampiric Foes",
		Description: "Enemies heal when they damage you. (2.5x)",
		Cost:        120, Type: UpgradeUnlockCurse, UnlockID: CurseVampiricFoes,
	},
	{
		ID: "unlock_curse_ricochet_hell", Name: "Unlock Curse: Ricochet Hell",
		Description: "All projectiles bounce twice. (2x)",
		Cost:        80, Type: UpgradeUnlockCurse, UnlockID: CurseRicochetHell,
	},
	{
		ID: "unlock_shop_health_potion", Name: "Unlock Item: Health Potion",
		Description: "Allows Health Potions to appear in the Black Market.",
		Cost:        50, Type: UpgradeUnlockShopItem, UnlockID: "health_potion",
	},
	{
		ID: "unlock_shop_homing_boon", Name: "Unlock Item: Homing Boon",
		Description: "Allows Homing Projectile boon to appear in the Market.",
		Cost:        200, Type: UpgradeUnlockShopItem, UnlockID: "boon_homing",
	},
	{
		ID: "bonus_start_hp", Name: "Starting Bonus: +1 Max HP",
		Description: "Begin every run with an extra heart.",
		Cost:        300, Type: UpgradeStartingBonus, Bonus: &StartingBonus{MaxHealth: 1},
	},
	{
		ID: "bonus_start_insurance", Name: "Starting Bonus: Free Insurance",
		Description: "Begin every run with a free insurance policy.",
		Cost:        250, Type: UpgradeStartingBonus, Bonus: &StartingBonus{Insurance: true},
	},
}

// FindUpgrade ищет улучшение в каталоге по ID.
func FindUpgrade(id string) *PermanentUpgrade {
	for i := range PermanentUpgrades {
		if PermanentUpgrades[i].ID == id {
			return &PermanentUpgrades[i]
		}
	}
	return nil
}

// ownsUnlockFor проверяет, куплено ли улучшение, открывающее targetID.
// В профиле хранятся ID улучшений, а пулы фильтруются по ID
// проклятий/товаров, поэтому сопоставляем через UnlockID каталога.
func ownsUnlockFor(user *UserData, targetID string) bool {
	for i := range PermanentUpgrades {
		up := &PermanentUpgrades[i]
		if up.UnlockID == targetID && user.HasUnlock(up.ID) {
			return true
		}
	}
	return false
}

// UnlockedCurses возвращает проклятия, доступные данному профилю:
// базовые плюс купленные через мастерскую.
func UnlockedCurses(user *UserData) []Curse {
	var out []Curse
	for _, c := range AllCurses {
		if c.IsUnlocked || ownsUnlockFor(user, c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// UnlockedShopItems возвращает доступные товары лавки.
// Страховка в пуле всегда.
func UnlockedShopItems(user *UserData) []ShopItem {
	var out []ShopItem
	for _, it := range AllShopItems {
		if it.ID == "insurance" || ownsUnlockFor(user, it.ID) {
			out = append(out, it)
		}
	}
	return out
}
