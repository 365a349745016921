package systems

import (
	"greed-server/internal/domain"
)

// AdvanceEnemies двигает врагов к герою и собирает их выстрелы.
// Таймеры атак тикают здесь же: враг стреляет, когда таймер дошел
// до нуля, и снова взводится на полный кулдаун.
func AdvanceEnemies(enemies []*domain.Enemy, player *domain.Player, bounces int, cfg *domain.Config, nextID func() int64) []*domain.Projectile {
	var shots []*domain.Projectile

	for _, e := range enemies {
		if e.HitTimer > 0 {
			e.HitTimer--
		}

		dir := player.Position.Sub(e.Position)
		if mag := dir.Length(); mag > 0 {
			e.Position = e.Position.Add(dir.Scale(e.Speed / mag))
		}

		e.AttackTimer--
		if e.AttackTimer <= 0 {
			e.AttackTimer = e.AttackCooldown
			shots = append(shots, EnemyShot(e, player.Position, bounces, cfg, nextID()))
		}
	}

	return shots
}
