package domain

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TicksPerSecond - частота симуляции. Все тайминги ниже заданы в тиках,
// дельта-времени нет: дизайн рассчитан на стабильный кадр.
const TicksPerSecond = 60

// Config хранит параметры запуска движка и все игровые константы.
// Читается один раз на старте, во время работы не меняется.
type Config struct {
	// Seed - мастер-зерно. Каждый забег получает Seed + порядковый номер.
	Seed int64 `yaml:"seed"`

	CanvasWidth  float64 `yaml:"canvasWidth"`
	CanvasHeight float64 `yaml:"canvasHeight"`

	PlayerMaxHealth      int     `yaml:"playerMaxHealth"`
	PlayerSize           float64 `yaml:"playerSize"`
	PlayerSpeed          float64 `yaml:"playerSpeed"`
	PlayerAttackCooldown int     `yaml:"playerAttackCooldown"` // тиков между выстрелами
	PlayerInvulnTicks    int     `yaml:"playerInvulnTicks"`

	EnemySize           float64 `yaml:"enemySize"`
	EnemySpeed          float64 `yaml:"enemySpeed"`
	EnemyAttackCooldown int     `yaml:"enemyAttackCooldown"`
	SpawnJitterTicks    int     `yaml:"spawnJitterTicks"` // Рассинхрон первого залпа, до секунды

	EliteChance          float64 `yaml:"eliteChance"`
	EliteSpeedMultiplier float64 `yaml:"eliteSpeedMultiplier"`
	EliteHealthBonus     float64 `yaml:"eliteHealthBonus"`
	EliteDamage          int     `yaml:"eliteDamage"`

	ChampionSize           float64 `yaml:"championSize"`
	ChampionSpeed          float64 `yaml:"championSpeed"`
	ChampionHealth         float64 `yaml:"championHealth"`
	ChampionAttackCooldown int     `yaml:"championAttackCooldown"`

	ProjectileSize       float64 `yaml:"projectileSize"`
	ProjectileSpeed      float64 `yaml:"projectileSpeed"`
	EnemyProjectileSize  float64 `yaml:"enemyProjectileSize"`
	EnemyProjectileSpeed float64 `yaml:"enemyProjectileSpeed"`

	FloatingTextLifespan int     `yaml:"floatingTextLifespan"`
	PickupSize           float64 `yaml:"pickupSize"`
	PickupLifespan       int     `yaml:"pickupLifespan"`
	TreasureBaseValue    int     `yaml:"treasureBaseValue"`

	CritZoneRadius float64 `yaml:"critZoneRadius"`
	CritMultiplier int     `yaml:"critMultiplier"`

	VampiricHealRadius float64 `yaml:"vampiricHealRadius"`
	RicochetBounces    int     `yaml:"ricochetBounces"`

	// Экономика
	RiskMultipliers        map[RiskLevel]float64 `yaml:"riskMultipliers"`
	FragmentConversionRate float64               `yaml:"fragmentConversionRate"`
	CursedTombDeathChance  float64               `yaml:"cursedTombDeathChance"`
	StartingTreasure       int                   `yaml:"startingTreasure"`
	StartingWager          int                   `yaml:"startingWager"`
	HealthPotionRestore    int                   `yaml:"healthPotionRestore"`
	OfferedCurseCount      int                   `yaml:"offeredCurseCount"`
	OfferedItemCount       int                   `yaml:"offeredItemCount"`

	// Тайминги фаз (в тиках)
	RoundStartTicks int `yaml:"roundStartTicks"` // Отсчет перед боем
	RoomClearTicks  int `yaml:"roomClearTicks"`  // Пауза перед экраном ставок
	DyingTicks      int `yaml:"dyingTicks"`      // Анимация смерти

	// Цикл шипастой ловушки
	HazardArmingTicks int `yaml:"hazardArmingTicks"`
	HazardActiveTicks int `yaml:"hazardActiveTicks"`
	HazardIdleTicks   int `yaml:"hazardIdleTicks"`

	// Косметика
	ShakeOnHit    float64 `yaml:"shakeOnHit"`
	ShakeDecay    float64 `yaml:"shakeDecay"`
	FlashOnHit    float64 `yaml:"flashOnHit"`
	FlashDecay    float64 `yaml:"flashDecay"`
	TextRiseSpeed float64 `yaml:"textRiseSpeed"` // Пикселей вверх за тик
}

// NewConfig создает конфиг по умолчанию (случайный сид).
// Значения повторяют оригинальный баланс игры; миллисекундные
// кулдауны переведены в тики из расчета 60 тиков на секунду.
func NewConfig() *Config {
	return &Config{
		Seed: time.Now().UnixNano(),

		CanvasWidth:  800,
		CanvasHeight: 600,

		PlayerMaxHealth:      3,
		PlayerSize:           15,
		PlayerSpeed:          4,
		PlayerAttackCooldown: 30, // 500ms
		PlayerInvulnTicks:    60, // 1 секунда

		EnemySize:           15,
		EnemySpeed:          1,
		EnemyAttackCooldown: 150, // 2500ms
		SpawnJitterTicks:    60,

		EliteChance:          0.2,
		EliteSpeedMultiplier: 1.3,
		EliteHealthBonus:     2,
		EliteDamage:          2,

		ChampionSize:           40,
		ChampionSpeed:          1.5,
		ChampionHealth:         25,
		ChampionAttackCooldown: 90, // 1500ms

		ProjectileSize:       5,
		ProjectileSpeed:      8,
		EnemyProjectileSize:  6,
		EnemyProjectileSpeed: 4,

		FloatingTextLifespan: 60,
		PickupSize:           12,
		PickupLifespan:       600,
		TreasureBaseValue:    25,

		CritZoneRadius: 5,
		CritMultiplier: 3,

		VampiricHealRadius: 200,
		RicochetBounces:    2,

		RiskMultipliers: map[RiskLevel]float64{
			RiskSafe:         1.5,
			RiskRisky:        3.0,
			RiskChampionDuel: 4.0,
		},
		FragmentConversionRate: 0.1,
		CursedTombDeathChance:  0.02,
		StartingTreasure:       50,
		StartingWager:          50,
		HealthPotionRestore:    2,
		OfferedCurseCount:      3,
		OfferedItemCount:       3,

		RoundStartTicks: 120,
		RoomClearTicks:  120,
		DyingTicks:      90,

		HazardArmingTicks: 120,
		HazardActiveTicks: 60,
		HazardIdleTicks:   180,

		ShakeOnHit:    10,
		ShakeDecay:    0.5,
		FlashOnHit:    0.4,
		FlashDecay:    0.05,
		TextRiseSpeed: 0.5,
	}
}

// LoadConfig накладывает YAML-файл поверх значений по умолчанию.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// RiskMultiplier возвращает множитель награды для уровня риска.
func (c *Config) RiskMultiplier(r RiskLevel) float64 {
	if m, ok := c.RiskMultipliers[r]; ok {
		return m
	}
	return 1
}
