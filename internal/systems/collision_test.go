package systems

import (
	"testing"

	"greed-server/internal/domain"
	"greed-server/pkg/geom"
)

func idSeq() func() int64 {
	var n int64
	return func() int64 {
		n++
		return n
	}
}

func testEnemy(id int64, pos geom.Vector2D, hp float64) *domain.Enemy {
	return &domain.Enemy{
		ID: id, Position: pos, Size: 15, Type: domain.EnemyTypeNormal,
		Health: hp, MaxHealth: hp, Speed: 1,
		AttackCooldown: 150, AttackTimer: 150,
	}
}

func TestPlayerProjectileConsumedOnFirstEnemy(t *testing.T) {
	cfg := domain.NewConfig()
	p := testPlayer(cfg)
	enemies := []*domain.Enemy{
		testEnemy(1, geom.Vector2D{X: 100, Y: 100}, 5),
		testEnemy(2, geom.Vector2D{X: 100, Y: 100}, 5),
	}
	projs := []*domain.Projectile{{
		ID: 10, Position: geom.Vector2D{X: 100, Y: 100},
		Size: cfg.ProjectileSize, IsPlayerProjectile: true,
	}}

	surviving, _, _ := CollidePlayerProjectiles(projs, enemies, p, cfg, idSeq())

	if len(surviving) != 0 {
		t.Errorf("снаряд должен потратиться на первом враге, осталось %d", len(surviving))
	}
	if enemies[0].Health != 4 {
		t.Errorf("первый враг: здоровье = %v, ожидалось 4", enemies[0].Health)
	}
	if enemies[1].Health != 5 {
		t.Errorf("второй враг не должен был пострадать, здоровье = %v", enemies[1].Health)
	}
}

func TestOneProjectilePerEnemyPerTick(t *testing.T) {
	cfg := domain.NewConfig()
	p := testPlayer(cfg)
	enemies := []*domain.Enemy{testEnemy(1, geom.Vector2D{X: 100, Y: 100}, 5)}
	projs := []*domain.Projectile{
		{ID: 10, Position: geom.Vector2D{X: 100, Y: 100}, Size: cfg.ProjectileSize, IsPlayerProjectile: true},
		{ID: 11, Position: geom.Vector2D{X: 100, Y: 100}, Size: cfg.ProjectileSize, IsPlayerProjectile: true},
	}

	surviving, _, _ := CollidePlayerProjectiles(projs, enemies, p, cfg, idSeq())

	// Враг уже принял снаряд в этом тике: второй пролетает мимо.
	if enemies[0].Health != 4 {
		t.Errorf("здоровье = %v, ожидалось ровно одно попадание", enemies[0].Health)
	}
	if len(surviving) != 1 || surviving[0].ID != 11 {
		t.Errorf("второй снаряд должен выжить, осталось %v", surviving)
	}
}

func TestCritLootValue(t *testing.T) {
	cfg := domain.NewConfig()
	p := testPlayer(cfg)

	// Точное попадание в центр - крит, лут утроен.
	enemies := []*domain.Enemy{testEnemy(1, geom.Vector2D{X: 100, Y: 100}, 1)}
	projs := []*domain.Projectile{{ID: 10, Position: geom.Vector2D{X: 100, Y: 100}, Size: cfg.ProjectileSize, IsPlayerProjectile: true}}
	_, texts, loot := CollidePlayerProjectiles(projs, enemies, p, cfg, idSeq())

	if len(loot) != 1 || loot[0].Value != cfg.TreasureBaseValue*cfg.CritMultiplier {
		t.Fatalf("лут = %+v, ожидалось сокровище на %d", loot, cfg.TreasureBaseValue*cfg.CritMultiplier)
	}
	if len(texts) != 1 || texts[0].Text != "CRIT!" {
		t.Errorf("тексты = %+v, ожидался CRIT!", texts)
	}

	// Попадание краем - обычная ценность.
	enemies = []*domain.Enemy{testEnemy(2, geom.Vector2D{X: 100, Y: 100}, 1)}
	projs = []*domain.Projectile{{ID: 11, Position: geom.Vector2D{X: 110, Y: 100}, Size: cfg.ProjectileSize, IsPlayerProjectile: true}}
	_, _, loot = CollidePlayerProjectiles(projs, enemies, p, cfg, idSeq())

	if len(loot) != 1 || loot[0].Value != cfg.TreasureBaseValue {
		t.Errorf("лут = %+v, ожидалось сокровище на %d", loot, cfg.TreasureBaseValue)
	}
}

func TestEnemyProjectileConsumedWhileInvulnerable(t *testing.T) {
	cfg := domain.NewConfig()
	p := testPlayer(cfg)

	// Имитация неуязвимости: урон не проходит.
	damage := func(amount int) int { return 0 }

	projs := []*domain.Projectile{{ID: 1, Position: p.Position, Size: cfg.EnemyProjectileSize}}
	surviving := CollideEnemyProjectiles(projs, nil, p, damage, false, cfg)

	if len(surviving) != 0 {
		t.Error("вражеский снаряд должен тратиться при касании даже без урона")
	}
}

func TestEnemyConsumedOnContact(t *testing.T) {
	cfg := domain.NewConfig()
	p := testPlayer(cfg)
	enemies := []*domain.Enemy{
		testEnemy(1, p.Position, 5),
		testEnemy(2, geom.Vector2D{X: 700, Y: 500}, 3),
	}
	enemies[0].IsElite = true

	gotAmount := -1
	damage := func(amount int) int {
		gotAmount = amount
		return amount
	}

	remaining := CollideEnemiesWithPlayer(enemies, p, damage, false, cfg)

	if len(remaining) != 1 || remaining[0].ID != 2 {
		t.Errorf("коснувшийся враг должен исчезнуть, осталось %v", remaining)
	}
	if gotAmount != cfg.EliteDamage {
		t.Errorf("элитный контактный урон = %d, ожидалось %d", gotAmount, cfg.EliteDamage)
	}
}

func TestCorpsesPruned(t *testing.T) {
	cfg := domain.NewConfig()
	p := testPlayer(cfg)
	enemies := []*domain.Enemy{
		testEnemy(1, geom.Vector2D{X: 700, Y: 500}, 0),
		testEnemy(2, geom.Vector2D{X: 600, Y: 400}, 3),
	}

	remaining := CollideEnemiesWithPlayer(enemies, p, func(int) int { return 0 }, false, cfg)

	if len(remaining) != 1 || remaining[0].ID != 2 {
		t.Errorf("труп должен быть убран, осталось %v", remaining)
	}
}

func TestVampiricHealClampedToMax(t *testing.T) {
	enemies := []*domain.Enemy{testEnemy(1, geom.Vector2D{X: 150, Y: 100}, 3)}
	enemies[0].Health = 2.5

	VampiricHeal(enemies, geom.Vector2D{X: 100, Y: 100}, 200, 2)

	if enemies[0].Health != 3 {
		t.Errorf("здоровье = %v, лечение не должно превышать максимум", enemies[0].Health)
	}

	// Вне радиуса никто не лечится.
	enemies[0].Health = 1
	VampiricHeal(enemies, geom.Vector2D{X: 600, Y: 100}, 200, 2)
	if enemies[0].Health != 1 {
		t.Errorf("здоровье = %v, враг вне радиуса лечиться не должен", enemies[0].Health)
	}
}

func TestCollectPickups(t *testing.T) {
	cfg := domain.NewConfig()
	p := testPlayer(cfg)
	p.Health = 1
	pickups := []*domain.Pickup{
		{ID: 1, Type: domain.PickupTypeTreasure, Position: p.Position, Size: cfg.PickupSize, Life: 100, Value: 75},
		{ID: 2, Type: domain.PickupTypeHealth, Position: p.Position, Size: cfg.PickupSize, Life: 100},
		{ID: 3, Type: domain.PickupTypeTreasure, Position: geom.Vector2D{X: 700, Y: 500}, Size: cfg.PickupSize, Life: 100, Value: 25},
	}

	remaining, treasure, texts := CollectPickups(pickups, p, cfg, idSeq())

	if treasure != 75 {
		t.Errorf("собрано сокровищ = %d, ожидалось 75", treasure)
	}
	if p.Health != 2 {
		t.Errorf("здоровье = %d, зелье должно было вылечить на 1", p.Health)
	}
	if len(remaining) != 1 || remaining[0].ID != 3 {
		t.Errorf("далекий предмет должен остаться, осталось %v", remaining)
	}
	if len(texts) != 1 || texts[0].Text != "+$75" {
		t.Errorf("тексты = %+v", texts)
	}
}
