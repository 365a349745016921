package api

import (
	"errors"
	"math"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

const maxUsernameLen = 32

func (p LoginPayload) Validate() error {
	if p.Username == "" {
		return errors.New("username is required")
	}
	if len(p.Username) > maxUsernameLen {
		return errors.New("username too long")
	}
	return nil
}

func (p InputPayload) Validate() error {
	if math.IsNaN(p.AimX) || math.IsNaN(p.AimY) || math.IsInf(p.AimX, 0) || math.IsInf(p.AimY, 0) {
		return errors.New("aim coordinates must be finite")
	}
	return nil
}

func (p WagerPayload) Validate() error {
	if p.Amount < 0 {
		return errors.New("wager cannot be negative")
	}
	return nil
}

func (p RiskPayload) Validate() error {
	if p.Risk == "" {
		return errors.New("risk is required")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.ItemID == "" {
		return errors.New("itemId is required")
	}
	return nil
}

func (p UpgradePayload) Validate() error {
	if p.UpgradeID == "" {
		return errors.New("upgradeId is required")
	}
	return nil
}
