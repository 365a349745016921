package systems

import (
	"testing"

	"greed-server/internal/domain"
	"greed-server/pkg/geom"
)

func TestProjectileLeavesCanvas(t *testing.T) {
	cfg := domain.NewConfig()
	projs := []*domain.Projectile{{
		ID: 1, Position: geom.Vector2D{X: 2, Y: 300},
		Velocity: geom.Vector2D{X: -8}, Size: cfg.ProjectileSize,
	}}

	out := IntegrateProjectiles(projs, nil, false, cfg)
	if len(out) != 0 {
		t.Errorf("снаряд без отскоков должен исчезнуть за экраном, осталось %v", out)
	}
}

func TestProjectileBouncesOffWall(t *testing.T) {
	cfg := domain.NewConfig()
	projs := []*domain.Projectile{{
		ID: 1, Position: geom.Vector2D{X: 10, Y: 300},
		Velocity: geom.Vector2D{X: -8}, Size: cfg.ProjectileSize,
		Bounces: 2,
	}}

	out := IntegrateProjectiles(projs, nil, false, cfg)
	if len(out) != 1 {
		t.Fatalf("снаряд с отскоками должен выжить, осталось %d", len(out))
	}
	p := out[0]
	if p.Velocity.X != 8 {
		t.Errorf("скорость по X = %v, ожидалось отражение в +8", p.Velocity.X)
	}
	if p.Bounces != 1 {
		t.Errorf("Bounces = %d, ожидался расход одного отскока", p.Bounces)
	}
}

func TestHomingRetargetsDeadEnemy(t *testing.T) {
	cfg := domain.NewConfig()
	alive := testEnemy(7, geom.Vector2D{X: 400, Y: 100}, 3)
	projs := []*domain.Projectile{{
		ID: 1, Position: geom.Vector2D{X: 400, Y: 500},
		Velocity: geom.Vector2D{Y: -8}, Size: cfg.ProjectileSize,
		IsPlayerProjectile: true,
		HomingTargetID:     99, // Захваченная цель уже мертва
	}}

	out := IntegrateProjectiles(projs, []*domain.Enemy{alive}, true, cfg)
	if len(out) != 1 {
		t.Fatalf("снаряд должен выжить")
	}
	if out[0].HomingTargetID != alive.ID {
		t.Errorf("HomingTargetID = %d, захват должен перейти на живого врага %d", out[0].HomingTargetID, alive.ID)
	}
}

func TestHomingIgnoresEnemyProjectiles(t *testing.T) {
	cfg := domain.NewConfig()
	enemy := testEnemy(1, geom.Vector2D{X: 700, Y: 300}, 3)
	projs := []*domain.Projectile{{
		ID: 1, Position: geom.Vector2D{X: 400, Y: 300},
		Velocity: geom.Vector2D{Y: -4}, Size: cfg.EnemyProjectileSize,
	}}

	out := IntegrateProjectiles(projs, []*domain.Enemy{enemy}, true, cfg)
	if out[0].Velocity.X != 0 {
		t.Errorf("вражеский снаряд не должен наводиться, скорость = %+v", out[0].Velocity)
	}
}

func TestAdvanceEnemiesMovesAndShoots(t *testing.T) {
	cfg := domain.NewConfig()
	p := testPlayer(cfg)
	e := testEnemy(1, geom.Vector2D{X: 100, Y: 100}, 3)
	e.AttackTimer = 1 // Выстрел на этом тике

	shots := AdvanceEnemies([]*domain.Enemy{e}, p, 0, cfg, idSeq())

	if len(shots) != 1 {
		t.Fatalf("выстрелов = %d, ожидался один", len(shots))
	}
	if shots[0].IsPlayerProjectile {
		t.Error("выстрел врага помечен как снаряд героя")
	}
	if e.AttackTimer != e.AttackCooldown {
		t.Errorf("AttackTimer = %d, должен взвестись на полный кулдаун %d", e.AttackTimer, e.AttackCooldown)
	}

	// Враг сдвинулся к герою (герой в центре, враг был левее и выше).
	if e.Position.X <= 100 || e.Position.Y <= 100 {
		t.Errorf("враг не сдвинулся к герою: %+v", e.Position)
	}
}

func TestFloatingTextRisesAndDies(t *testing.T) {
	cfg := domain.NewConfig()
	texts := []*domain.FloatingText{
		{ID: 1, Text: "-1", Position: geom.Vector2D{X: 100, Y: 100}, Life: 2},
		{ID: 2, Text: "+$25", Position: geom.Vector2D{X: 50, Y: 50}, Life: 1},
	}

	texts = AgeFloatingTexts(texts, cfg)

	if len(texts) != 1 || texts[0].ID != 1 {
		t.Fatalf("отживший текст должен исчезнуть, осталось %v", texts)
	}
	if texts[0].Position.Y != 100-cfg.TextRiseSpeed {
		t.Errorf("текст должен уплывать вверх: Y = %v", texts[0].Position.Y)
	}
}
