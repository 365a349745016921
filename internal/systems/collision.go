package systems

import (
	"fmt"

	"greed-server/internal/domain"
	"greed-server/pkg/geom"
)

// DamageFunc наносит герою урон и возвращает фактически нанесенное
// значение (0, если герой был неуязвим). Замыкание живет в движке:
// там же, где вспышка, тряска и таймер неуязвимости.
type DamageFunc func(amount int) int

func overlaps(a, b geom.Vector2D, ra, rb float64) bool {
	return geom.Distance(a, b) < ra+rb
}

// CollidePlayerProjectiles сталкивает снаряды героя с врагами.
// Снаряд тратится на первого задетого врага; один враг за тик
// принимает не больше одного снаряда, остальные пролетают насквозь
// до следующего тика. Убитый враг оставляет сокровище, ценность
// которого фиксируется в момент попадания (крит - тройная).
// Трупы здесь не убираются: их отсеет проход контактных коллизий.
func CollidePlayerProjectiles(
	projs []*domain.Projectile,
	enemies []*domain.Enemy,
	player *domain.Player,
	cfg *domain.Config,
	nextID func() int64,
) (surviving []*domain.Projectile, texts []*domain.FloatingText, loot []*domain.Pickup) {
	hit := make(map[int64]bool)

	surviving = projs[:0]
	for _, p := range projs {
		consumed := false
		for _, e := range enemies {
			if hit[e.ID] || !overlaps(p.Position, e.Position, p.Size, e.Size) {
				continue
			}
			hit[e.ID] = true
			consumed = true

			dealt := 1 * player.DamageMultiplier
			e.Health -= float64(dealt)
			e.HitTimer = 5

			isCrit := geom.Distance(p.Position, e.Position) < cfg.CritZoneRadius
			value := cfg.TreasureBaseValue
			text, color := fmt.Sprintf("%d", dealt), "white"
			if isCrit {
				value *= cfg.CritMultiplier
				text, color = "CRIT!", "orange"
			}
			texts = append(texts, &domain.FloatingText{
				ID: nextID(), Text: text, Position: e.Position,
				Life: cfg.FloatingTextLifespan, Color: color,
			})

			if e.Health <= 0 {
				loot = append(loot, &domain.Pickup{
					ID: nextID(), Type: domain.PickupTypeTreasure,
					Position: e.Position, Size: cfg.PickupSize,
					Life: cfg.PickupLifespan, Value: value,
				})
			}
			break
		}
		if !consumed {
			surviving = append(surviving, p)
		}
	}
	return surviving, texts, loot
}

// CollideEnemyProjectiles сталкивает вражеские снаряды с героем.
// Снаряд тратится при любом касании, даже если герой неуязвим и
// урона не было. Под проклятием вампиризма нанесенный урон лечит
// ближайшего врага.
func CollideEnemyProjectiles(
	projs []*domain.Projectile,
	enemies []*domain.Enemy,
	player *domain.Player,
	damage DamageFunc,
	vampiric bool,
	cfg *domain.Config,
) []*domain.Projectile {
	out := projs[:0]
	for _, p := range projs {
		if !overlaps(p.Position, player.Position, p.Size, player.Size) {
			out = append(out, p)
			continue
		}
		dealt := damage(1)
		if vampiric && dealt > 0 {
			VampiricHeal(enemies, player.Position, cfg.VampiricHealRadius, dealt)
		}
	}
	return out
}

// CollideEnemiesWithPlayer убирает трупы и разрешает контактный урон.
// Враг, коснувшийся героя, исчезает всегда - и когда нанес урон,
// и когда герой был неуязвим.
func CollideEnemiesWithPlayer(
	enemies []*domain.Enemy,
	player *domain.Player,
	damage DamageFunc,
	vampiric bool,
	cfg *domain.Config,
) []*domain.Enemy {
	out := enemies[:0]
	for _, e := range enemies {
		if e.Health <= 0 {
			continue
		}
		if overlaps(e.Position, player.Position, e.Size, player.Size) {
			dealt := damage(e.ContactDamage(cfg.EliteDamage))
			if vampiric && dealt > 0 {
				e.Health = e.Health + float64(dealt)
				if e.Health > e.MaxHealth {
					e.Health = e.MaxHealth
				}
			}
			continue
		}
		out = append(out, e)
	}
	return out
}

// VampiricHeal лечит первого врага в радиусе от точки удара.
// Грубая эвристика "кто ударил": точного автора снаряда модель
// не хранит.
func VampiricHeal(enemies []*domain.Enemy, at geom.Vector2D, radius float64, amount int) {
	for _, e := range enemies {
		if geom.Distance(e.Position, at) < radius {
			e.Health += float64(amount)
			if e.Health > e.MaxHealth {
				e.Health = e.MaxHealth
			}
			return
		}
	}
}

// CollectPickups подбирает предметы под героем. Сокровище копится
// в счетчике забега, зелье на полу лечит на единицу.
func CollectPickups(
	pickups []*domain.Pickup,
	player *domain.Player,
	cfg *domain.Config,
	nextID func() int64,
) (remaining []*domain.Pickup, treasure int, texts []*domain.FloatingText) {
	remaining = pickups[:0]
	for _, pk := range pickups {
		if !overlaps(pk.Position, player.Position, pk.Size, player.Size) {
			remaining = append(remaining, pk)
			continue
		}
		switch pk.Type {
		case domain.PickupTypeTreasure:
			if pk.Value > 0 {
				treasure += pk.Value
				texts = append(texts, &domain.FloatingText{
					ID: nextID(), Text: fmt.Sprintf("+$%d", pk.Value),
					Position: player.Position, Life: cfg.FloatingTextLifespan,
					Color: "gold", Scale: true,
				})
			}
		case domain.PickupTypeHealth:
			if player.Health < player.MaxHealth {
				player.Health++
			}
		}
	}
	return remaining, treasure, texts
}
