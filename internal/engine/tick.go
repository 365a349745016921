package engine

import (
	"greed-server/internal/domain"
	"greed-server/internal/systems"
)

// profileRetryTicks - период повторных попыток записи профиля
// после неудачи (десять секунд).
const profileRetryTicks = 600

// Step продвигает забег на один тик. Вызывается ровно 60 раз в
// секунду из игрового цикла.
func (r *Run) Step() {
	r.Tick++

	switch r.Phase {
	case domain.PhaseInGame:
		r.stepCombat()

	case domain.PhaseRoundStart:
		r.stepCosmetics()
		r.PhaseTicks--
		if r.PhaseTicks <= 0 {
			r.beginCombat()
		}

	case domain.PhaseRoomClear:
		r.stepCosmetics()
		r.PhaseTicks--
		if r.PhaseTicks <= 0 {
			r.openBetting()
		}

	case domain.PhaseDying:
		r.stepCosmetics()
		r.PhaseTicks--
		if r.PhaseTicks <= 0 {
			r.Phase = domain.PhaseGameOver
		}

	default: // BETTING, GAME_OVER
		r.stepCosmetics()
	}

	if r.profileDirty && r.Tick%profileRetryTicks == 0 {
		r.saveProfile()
	}
}

// stepCombat - полный боевой тик. Порядок проходов фиксирован:
// движение, стрельба, интеграция снарядов, коллизии, подбор,
// старение косметики, терминальные проверки.
func (r *Run) stepCombat() {
	p := r.Player

	if p.InvulnerabilityTimer > 0 {
		p.InvulnerabilityTimer--
	}

	systems.MovePlayer(p, &r.Input, r.cfg)

	ricochet := r.Curse != nil && r.Curse.ID == domain.CurseRicochetHell
	bounces := 0
	if ricochet {
		bounces = r.cfg.RicochetBounces
	}

	// Выстрел героя.
	if r.attackTimer > 0 {
		r.attackTimer--
	}
	if r.Input.Fire && r.attackTimer <= 0 {
		r.attackTimer = r.cfg.PlayerAttackCooldown
		r.PlayerProjectiles = append(r.PlayerProjectiles,
			systems.PlayerShot(p, r.Input.Aim, bounces, r.cfg, r.nextID()))
		p.ShotsFiredThisRoom++
	}

	// Враги: движение и стрельба.
	shots := systems.AdvanceEnemies(r.Enemies, p, bounces, r.cfg, r.nextID)
	r.EnemyProjectiles = append(r.EnemyProjectiles, shots...)

	// Интеграция снарядов. Самонаведение - только у героя и только
	// под благословением.
	homing := p.ActiveBoon != nil && p.ActiveBoon.ID == domain.BoonHoming
	r.PlayerProjectiles = systems.IntegrateProjectiles(r.PlayerProjectiles, r.Enemies, homing, r.cfg)
	r.EnemyProjectiles = systems.IntegrateProjectiles(r.EnemyProjectiles, r.Enemies, false, r.cfg)

	hadEnemies := len(r.Enemies) > 0
	vampiric := r.Curse != nil && r.Curse.ID == domain.CurseVampiricFoes

	// Снаряды героя по врагам.
	surviving, texts, loot := systems.CollidePlayerProjectiles(r.PlayerProjectiles, r.Enemies, p, r.cfg, r.nextID)
	r.PlayerProjectiles = surviving
	r.FloatingTexts = append(r.FloatingTexts, texts...)
	r.Pickups = append(r.Pickups, loot...)

	// Вражеские снаряды и контакт по герою.
	r.EnemyProjectiles = systems.CollideEnemyProjectiles(r.EnemyProjectiles, r.Enemies, p, r.damagePlayer, vampiric, r.cfg)
	r.Enemies = systems.CollideEnemiesWithPlayer(r.Enemies, p, r.damagePlayer, vampiric, r.cfg)

	// Подбор добычи.
	remaining, gained, lootTexts := systems.CollectPickups(r.Pickups, p, r.cfg, r.nextID)
	r.Pickups = remaining
	r.Currency += gained
	r.FloatingTexts = append(r.FloatingTexts, lootTexts...)

	r.stepCosmetics()

	// Терминальные проверки - строго после всех проходов урона.
	// Здоровье проверяется до какого-либо зажима: смертельный удар
	// мог увести его в минус.
	if p.Health <= 0 {
		r.setGameOver("You were slain...", "")
		return
	}
	if hadEnemies && len(r.Enemies) == 0 {
		r.roomWon()
	}
}

// stepCosmetics - старение визуальных эффектов. Идет каждый тик
// в любой фазе: тексты доживают и на экране ставок.
func (r *Run) stepCosmetics() {
	r.FloatingTexts = systems.AgeFloatingTexts(r.FloatingTexts, r.cfg)
	r.Particles = systems.AgeParticles(r.Particles)
	r.Pickups = systems.AgePickups(r.Pickups)
	systems.AgeHazards(r.Hazards, r.cfg)

	if r.Shake > 0 {
		r.Shake -= r.cfg.ShakeDecay
		if r.Shake < 0 {
			r.Shake = 0
		}
	}
	if r.Flash > 0 {
		r.Flash -= r.cfg.FlashDecay
		if r.Flash < 0 {
			r.Flash = 0
		}
	}
	if !r.Phase.IsCombat() && r.Player.InvulnerabilityTimer > 0 {
		r.Player.InvulnerabilityTimer--
	}
}
