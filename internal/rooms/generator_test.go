package rooms

import (
	"math/rand"
	"testing"

	"greed-server/internal/domain"
)

func seq() func() int64 {
	var n int64
	return func() int64 {
		n++
		return n
	}
}

func TestGenerateEnemyCount(t *testing.T) {
	cfg := domain.NewConfig()
	rng := rand.New(rand.NewSource(1))

	for room := 1; room <= 10; room++ {
		enemies := Generate(rng, cfg, room, domain.RiskSafe, nil, seq())
		if len(enemies) != room+1 {
			t.Errorf("комната %d: врагов %d, ожидалось %d", room, len(enemies), room+1)
		}
	}
}

func TestGenerateChampionDuel(t *testing.T) {
	cfg := domain.NewConfig()
	rng := rand.New(rand.NewSource(1))

	enemies := Generate(rng, cfg, 3, domain.RiskChampionDuel, nil, seq())

	if len(enemies) != 1 {
		t.Fatalf("дуэль должна дать ровно одного врага, получено %d", len(enemies))
	}
	ch := enemies[0]
	if ch.Type != domain.EnemyTypeChampion {
		t.Errorf("тип = %s, ожидался CHAMPION", ch.Type)
	}
	wantHP := cfg.ChampionHealth * (1 + 3*0.2)
	if ch.Health != wantHP {
		t.Errorf("здоровье чемпиона = %v, ожидалось %v", ch.Health, wantHP)
	}

	// Проклятие на численность дуэль не трогает.
	curse := &domain.Curse{ID: domain.CurseEliteHunters}
	enemies = Generate(rng, cfg, 3, domain.RiskChampionDuel, curse, seq())
	if len(enemies) != 1 {
		t.Errorf("дуэль с проклятием: врагов %d, ожидался один", len(enemies))
	}
}

func TestGenerateEliteHunters(t *testing.T) {
	cfg := domain.NewConfig()
	rng := rand.New(rand.NewSource(7))
	curse := &domain.Curse{ID: domain.CurseEliteHunters}

	// Комната 7: обычных врагов было бы 8, под проклятием - 6.
	enemies := Generate(rng, cfg, 7, domain.RiskRisky, curse, seq())
	if len(enemies) != 6 {
		t.Fatalf("врагов %d, ожидалось floor(8*0.75)=6", len(enemies))
	}
	for i, e := range enemies {
		if !e.IsElite {
			t.Errorf("враг %d не элитный", i)
		}
		if e.Health != 1+cfg.EliteHealthBonus {
			t.Errorf("враг %d: здоровье %v, ожидалось %v", i, e.Health, 1+cfg.EliteHealthBonus)
		}
		if e.Speed != cfg.EnemySpeed*cfg.EliteSpeedMultiplier {
			t.Errorf("враг %d: скорость %v", i, e.Speed)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := domain.NewConfig()

	a := Generate(rand.New(rand.NewSource(42)), cfg, 5, domain.RiskSafe, nil, seq())
	b := Generate(rand.New(rand.NewSource(42)), cfg, 5, domain.RiskSafe, nil, seq())

	if len(a) != len(b) {
		t.Fatalf("разное число врагов: %d и %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Position != b[i].Position || a[i].IsElite != b[i].IsElite || a[i].AttackTimer != b[i].AttackTimer {
			t.Errorf("враг %d отличается между прогонами: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateSpawnAboveCanvas(t *testing.T) {
	cfg := domain.NewConfig()
	rng := rand.New(rand.NewSource(3))

	enemies := Generate(rng, cfg, 4, domain.RiskSafe, nil, seq())
	for i, e := range enemies {
		if e.Position.Y >= 0 {
			t.Errorf("враг %d заспавнен внутри холста: Y=%v", i, e.Position.Y)
		}
		if e.Position.X < 0 || e.Position.X > cfg.CanvasWidth {
			t.Errorf("враг %d вне ширины холста: X=%v", i, e.Position.X)
		}
		if e.AttackTimer < e.AttackCooldown {
			t.Errorf("враг %d: первый выстрел раньше кулдауна", i)
		}
	}
}

func TestResetForRoom(t *testing.T) {
	p := &domain.Player{ShotsFiredThisRoom: 42, DamageMultiplier: 2}
	ResetForRoom(p)
	if p.ShotsFiredThisRoom != 0 || p.DamageMultiplier != 1 {
		t.Errorf("состояние комнаты не сброшено: %+v", p)
	}
}
