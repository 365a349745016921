package engine

import (
	"math"

	"greed-server/internal/domain"
	"greed-server/pkg/api"
)

// BuildSnapshot собирает полный снимок забега для клиента.
// Снимок самодостаточен: клиент рисует кадр, ничего не досчитывая.
func (r *Run) BuildSnapshot() *api.Snapshot {
	snap := &api.Snapshot{
		Type:       "UPDATE",
		Tick:       r.Tick,
		RunID:      r.ID,
		Phase:      string(r.Phase),
		PhaseTicks: r.PhaseTicks,
		Room:       r.Room,

		Currency:     r.Currency,
		Wager:        r.Wager,
		Risk:         string(r.Risk),
		HasInsurance: r.HasInsurance,

		ShakeIntensity: r.Shake,
		DamageFlash:    r.Flash,

		Message:    r.Message,
		SubMessage: r.SubMessage,

		Profile: BuildProfileView(r.Username, r.Profile),
	}

	p := r.Player
	snap.Player = &api.PlayerView{
		X: p.Position.X, Y: p.Position.Y,
		Health: p.Health, MaxHealth: p.MaxHealth,
		Size:                 p.Size,
		InvulnerabilityTimer: p.InvulnerabilityTimer,
		ShotsFiredThisRoom:   p.ShotsFiredThisRoom,
	}
	if p.ActiveBoon != nil {
		snap.Player.ActiveBoon = p.ActiveBoon.ID
	}

	for _, e := range r.Enemies {
		snap.Enemies = append(snap.Enemies, api.EnemyView{
			ID: e.ID, Type: e.Type,
			X: e.Position.X, Y: e.Position.Y, Size: e.Size,
			Health: e.Health, MaxHealth: e.MaxHealth,
			HitTimer: e.HitTimer, IsElite: e.IsElite,
		})
	}
	snap.PlayerProjectiles = projectileViews(r.PlayerProjectiles)
	snap.EnemyProjectiles = projectileViews(r.EnemyProjectiles)

	for _, pk := range r.Pickups {
		snap.Pickups = append(snap.Pickups, api.PickupView{
			ID: pk.ID, Type: pk.Type,
			X: pk.Position.X, Y: pk.Position.Y,
			Size: pk.Size, Life: pk.Life, Value: pk.Value,
		})
	}
	for _, t := range r.FloatingTexts {
		snap.FloatingTexts = append(snap.FloatingTexts, api.TextView{
			ID: t.ID, Text: t.Text,
			X: t.Position.X, Y: t.Position.Y,
			Life: t.Life, Color: t.Color, Scale: t.Scale,
		})
	}
	for _, pt := range r.Particles {
		snap.Particles = append(snap.Particles, api.ParticleView{
			ID: pt.ID, X: pt.Position.X, Y: pt.Position.Y,
			Life: pt.Life, Size: pt.Size, Color: pt.Color,
		})
	}
	for _, h := range r.Hazards {
		snap.Hazards = append(snap.Hazards, api.HazardView{
			ID: h.ID, X: h.Position.X, Y: h.Position.Y,
			Size: h.Size, State: h.State,
		})
	}

	if r.Curse != nil {
		snap.Curse = curseView(r.Curse)
	}

	// Предложения и прогноз награды видны только на экране ставок.
	if r.Phase == domain.PhaseBetting {
		for i := range r.OfferedCurses {
			snap.OfferedCurses = append(snap.OfferedCurses, *curseView(&r.OfferedCurses[i]))
		}
		for _, it := range r.OfferedItems {
			snap.OfferedItems = append(snap.OfferedItems, api.ShopItemView{
				ID: it.ID, Name: it.Name, Description: it.Description,
				Cost: it.Cost, Type: it.Type,
			})
		}

		mult := r.cfg.RiskMultiplier(r.Risk)
		if r.Curse != nil {
			mult *= r.Curse.Multiplier
		}
		snap.PotentialReward = int(math.Floor(float64(r.Wager) * mult))
	}

	return snap
}

func projectileViews(projs []*domain.Projectile) []api.ProjectileView {
	if len(projs) == 0 {
		return nil
	}
	views := make([]api.ProjectileView, 0, len(projs))
	for _, p := range projs {
		views = append(views, api.ProjectileView{
			ID: p.ID, X: p.Position.X, Y: p.Position.Y,
			Size: p.Size, Bounces: p.Bounces,
		})
	}
	return views
}

func curseView(c *domain.Curse) *api.CurseView {
	return &api.CurseView{
		ID: c.ID, Name: c.Name,
		Description: c.Description, Multiplier: c.Multiplier,
	}
}

// BuildProfileView собирает DTO мета-прогресса вместе с каталогом
// мастерской. Отдается и вне забега: по нему клиент рисует меню.
func BuildProfileView(username string, data *domain.UserData) *api.ProfileView {
	view := &api.ProfileView{
		Username:       username,
		BankedTreasure: data.BankedTreasure,
		DeepestRoom:    data.DeepestRoom,
		TombFragments:  data.TombFragments,
		Unlocks:        data.Unlocks,
	}
	for _, up := range domain.PermanentUpgrades {
		view.Upgrades = append(view.Upgrades, api.UpgradeView{
			ID: up.ID, Name: up.Name, Description: up.Description,
			Cost: up.Cost, Owned: data.HasUnlock(up.ID),
		})
	}
	return view
}
