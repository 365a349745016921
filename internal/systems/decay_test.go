package systems

import (
	"testing"

	"greed-server/internal/domain"
)

// Цикл ловушки: ARMING(120) -> ACTIVE(60) -> IDLE(180) -> ARMING.
func TestHazardCycle(t *testing.T) {
	cfg := domain.NewConfig()
	h := &domain.Hazard{ID: 1, State: domain.HazardStateIdle, Timer: 1}
	hazards := []*domain.Hazard{h}

	AgeHazards(hazards, cfg)
	if h.State != domain.HazardStateIdle || h.Timer != 0 {
		t.Fatalf("таймер должен дотикать до нуля, state=%s timer=%d", h.State, h.Timer)
	}

	AgeHazards(hazards, cfg)
	if h.State != domain.HazardStateArming || h.Timer != cfg.HazardArmingTicks {
		t.Errorf("после покоя ожидалось взведение на %d тиков, state=%s timer=%d",
			cfg.HazardArmingTicks, h.State, h.Timer)
	}

	h.Timer = 0
	AgeHazards(hazards, cfg)
	if h.State != domain.HazardStateActive || h.Timer != cfg.HazardActiveTicks {
		t.Errorf("после взведения ожидалась активная фаза на %d тиков, state=%s timer=%d",
			cfg.HazardActiveTicks, h.State, h.Timer)
	}

	h.Timer = 0
	AgeHazards(hazards, cfg)
	if h.State != domain.HazardStateIdle || h.Timer != cfg.HazardIdleTicks {
		t.Errorf("после активной фазы ожидался покой на %d тиков, state=%s timer=%d",
			cfg.HazardIdleTicks, h.State, h.Timer)
	}
}
