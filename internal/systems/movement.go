package systems

import (
	"greed-server/internal/domain"
	"greed-server/pkg/geom"
)

// MovePlayer применяет считанный ввод к позиции героя.
// Оси независимы (диагональ быстрее - так задумано балансом),
// позиция зажимается так, чтобы круг коллизии не выходил за холст.
func MovePlayer(p *domain.Player, in *domain.InputState, cfg *domain.Config) {
	if in.Up {
		p.Position.Y -= cfg.PlayerSpeed
	}
	if in.Down {
		p.Position.Y += cfg.PlayerSpeed
	}
	if in.Left {
		p.Position.X -= cfg.PlayerSpeed
	}
	if in.Right {
		p.Position.X += cfg.PlayerSpeed
	}

	p.Position = p.Position.Clamp(
		geom.Vector2D{X: p.Size, Y: p.Size},
		geom.Vector2D{X: cfg.CanvasWidth - p.Size, Y: cfg.CanvasHeight - p.Size},
	)
}
