package systems

import (
	"greed-server/internal/domain"
)

// IntegrateProjectiles продвигает снаряды на один тик: перемещение,
// самонаведение (только снаряды героя и только при активном
// благословении), отскоки от стен и отсев улетевших за экран.
// Возвращает выживший список; порядок сохраняется.
func IntegrateProjectiles(projs []*domain.Projectile, enemies []*domain.Enemy, homing bool, cfg *domain.Config) []*domain.Projectile {
	out := projs[:0]
	for _, p := range projs {
		p.Position = p.Position.Add(p.Velocity)

		if homing && p.IsPlayerProjectile && len(enemies) > 0 {
			steerToTarget(p, enemies, cfg)
		}

		// Отскоки. Скорость отражается по оси, счетчик уменьшается
		// на каждое касание стены.
		if p.Bounces > 0 {
			if p.Position.X <= p.Size || p.Position.X >= cfg.CanvasWidth-p.Size {
				p.Velocity.X = -p.Velocity.X
				p.Bounces--
			}
		}
		if p.Bounces > 0 {
			if p.Position.Y <= p.Size || p.Position.Y >= cfg.CanvasHeight-p.Size {
				p.Velocity.Y = -p.Velocity.Y
				p.Bounces--
			}
		}

		if p.Bounces > 0 || onCanvas(p, cfg) {
			out = append(out, p)
		}
	}
	return out
}

func onCanvas(p *domain.Projectile, cfg *domain.Config) bool {
	return p.Position.X > 0 && p.Position.X < cfg.CanvasWidth &&
		p.Position.Y > 0 && p.Position.Y < cfg.CanvasHeight
}

// steerToTarget плавно доворачивает снаряд к цели. Цель - слабая
// ссылка по ID: если враг умер, берется первый живой, и захват
// перезаписывается.
func steerToTarget(p *domain.Projectile, enemies []*domain.Enemy, cfg *domain.Config) {
	target := enemies[0]
	for _, e := range enemies {
		if e.ID == p.HomingTargetID {
			target = e
			break
		}
	}
	p.HomingTargetID = target.ID

	dir := target.Position.Sub(p.Position)
	mag := dir.Length()
	if mag == 0 {
		mag = 1
	}
	desired := dir.Scale(cfg.ProjectileSpeed / mag)
	p.Velocity = p.Velocity.Scale(0.9).Add(desired.Scale(0.1))
}
