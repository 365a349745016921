package systems

import (
	"greed-server/internal/domain"
	"greed-server/pkg/geom"
)

// PlayerShot создает снаряд героя, летящий в точку прицела.
// Если прицел совпадает с позицией, снаряд получает нулевую скорость
// и повиснет на месте до выхода за экран - как в оригинальном балансе.
func PlayerShot(p *domain.Player, aim geom.Vector2D, bounces int, cfg *domain.Config, id int64) *domain.Projectile {
	dir := aim.Sub(p.Position)
	mag := dir.Length()
	if mag == 0 {
		mag = 1
	}

	return &domain.Projectile{
		ID:                 id,
		Position:           p.Position,
		Velocity:           dir.Scale(cfg.ProjectileSpeed / mag),
		Size:               cfg.ProjectileSize,
		IsPlayerProjectile: true,
		Bounces:            bounces,
	}
}

// EnemyShot создает вражеский снаряд в направлении героя.
func EnemyShot(e *domain.Enemy, target geom.Vector2D, bounces int, cfg *domain.Config, id int64) *domain.Projectile {
	dir := target.Sub(e.Position)
	mag := dir.Length()
	if mag == 0 {
		mag = 1
	}

	return &domain.Projectile{
		ID:       id,
		Position: e.Position,
		Velocity: dir.Scale(cfg.EnemyProjectileSpeed / mag),
		Size:     cfg.EnemyProjectileSize,
		Bounces:  bounces,
	}
}
