package systems

import (
	"greed-server/internal/domain"
)

// Косметика стареет каждый тик независимо от фазы: всплывающие
// тексты и частицы доживают свое и на экране ставок.

// AgeFloatingTexts поднимает тексты вверх и убирает отжившие.
func AgeFloatingTexts(texts []*domain.FloatingText, cfg *domain.Config) []*domain.FloatingText {
	out := texts[:0]
	for _, t := range texts {
		t.Life--
		t.Position.Y -= cfg.TextRiseSpeed
		if t.Life > 0 {
			out = append(out, t)
		}
	}
	return out
}

// AgeParticles продвигает частицы по их скорости и убирает погасшие.
func AgeParticles(particles []*domain.Particle) []*domain.Particle {
	out := particles[:0]
	for _, p := range particles {
		p.Life--
		p.Position = p.Position.Add(p.Velocity)
		if p.Life > 0 {
			out = append(out, p)
		}
	}
	return out
}

// AgePickups уменьшает срок жизни предметов на полу. Вызывается
// после подбора, так что и свежевыпавший лут стареет с первого тика.
func AgePickups(pickups []*domain.Pickup) []*domain.Pickup {
	out := pickups[:0]
	for _, p := range pickups {
		p.Life--
		if p.Life > 0 {
			out = append(out, p)
		}
	}
	return out
}

// AgeHazards крутит цикл ловушки: взведение, активная фаза, покой.
func AgeHazards(hazards []*domain.Hazard, cfg *domain.Config) {
	for _, h := range hazards {
		if h.Timer > 0 {
			h.Timer--
			continue
		}
		switch h.State {
		case domain.HazardStateArming:
			h.State = domain.HazardStateActive
			h.Timer = cfg.HazardActiveTicks
		case domain.HazardStateActive:
			h.State = domain.HazardStateIdle
			h.Timer = cfg.HazardIdleTicks
		case domain.HazardStateIdle:
			h.State = domain.HazardStateArming
			h.Timer = cfg.HazardArmingTicks
		}
	}
}
