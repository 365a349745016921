package rooms

import (
	"math"
	"math/rand"

	"greed-server/internal/domain"
	"greed-server/pkg/geom"
)

// Generate создает состав врагов для комнаты.
// Вся случайность идет через переданный rng, чтобы забег был
// воспроизводим от зерна.
//
// Правила:
//   - Дуэль чемпиона: ровно один CHAMPION сверху по центру,
//     здоровье растет с номером комнаты; эффекты проклятий на
//     численность игнорируются.
//   - Иначе врагов roomNumber+1; "elite_hunters" уменьшает число
//     до 75% (с округлением вниз), но делает всех элитой.
func Generate(rng *rand.Rand, cfg *domain.Config, roomNumber int, risk domain.RiskLevel, curse *domain.Curse, nextID func() int64) []*domain.Enemy {
	if risk == domain.RiskChampionDuel {
		hp := cfg.ChampionHealth * (1 + float64(roomNumber)*0.2)
		return []*domain.Enemy{{
			ID:             nextID(),
			Position:       geom.Vector2D{X: cfg.CanvasWidth / 2, Y: cfg.CanvasHeight / 4},
			Type:           domain.EnemyTypeChampion,
			Size:           cfg.ChampionSize,
			Speed:          cfg.ChampionSpeed,
			Health:         hp,
			MaxHealth:      hp,
			AttackCooldown: cfg.ChampionAttackCooldown,
			AttackTimer:    cfg.ChampionAttackCooldown,
			IsElite:        true,
		}}
	}

	enemyCount := roomNumber + 1
	allElite := curse != nil && curse.ID == domain.CurseEliteHunters
	if allElite {
		// Меньше врагов, но все элитные
		enemyCount = int(math.Floor(float64(enemyCount) * 0.75))
	}

	enemies := make([]*domain.Enemy, 0, enemyCount)
	for i := 0; i < enemyCount; i++ {
		isElite := allElite || rng.Float64() < cfg.EliteChance

		speed := cfg.EnemySpeed
		health := 1.0
		if isElite {
			speed = cfg.EnemySpeed * cfg.EliteSpeedMultiplier
			health = 1 + cfg.EliteHealthBonus
		}

		enemies = append(enemies, &domain.Enemy{
			ID:   nextID(),
			Type: domain.EnemyTypeNormal,
			// Спавн над верхней кромкой: враги заходят в комнату сверху
			Position: geom.Vector2D{
				X: rng.Float64() * cfg.CanvasWidth,
				Y: -cfg.EnemySize * 2,
			},
			Size:           cfg.EnemySize,
			Speed:          speed,
			Health:         health,
			MaxHealth:      health,
			AttackCooldown: cfg.EnemyAttackCooldown,
			// Джиттер до секунды, чтобы первый залп не шел одной волной
			AttackTimer: cfg.EnemyAttackCooldown + rng.Intn(cfg.SpawnJitterTicks+1),
			IsElite:     isElite,
		})
	}
	return enemies
}

// ResetForRoom сбрасывает состояние игрока, живущее одну комнату.
// "Стеклянная пушка" накладывает множитель заново уже после сброса,
// на выходе из отсчета ROUND_START.
func ResetForRoom(p *domain.Player) {
	p.ShotsFiredThisRoom = 0
	p.DamageMultiplier = 1
}
