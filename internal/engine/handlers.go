package engine

import (
	"encoding/json"
	"errors"
	"fmt"

	"greed-server/internal/domain"
	"greed-server/pkg/api"
)

// Context передает хендлеру сессию игрока и сервис.
// Хендлеры выполняются в горутине игрового цикла, поэтому могут
// свободно мутировать забег.
type Context struct {
	Service *GameService
	Session *session
}

// HandlerFunc - контракт для любой команды клиента.
type HandlerFunc func(ctx Context, payload json.RawMessage) error

// TypedHandlerFunc - "чистый" хендлер, который работает с готовой структурой T.
type TypedHandlerFunc[T any] func(ctx Context, payload T) error

// EmptyHandlerFunc - хендлер, которому не нужны данные (DESCEND, CASH_OUT).
type EmptyHandlerFunc func(ctx Context) error

// ErrNoActiveRun возвращается командами забега вне забега.
var ErrNoActiveRun = errors.New("no active run")

// ErrRunInProgress возвращается командами меню во время живого забега.
var ErrRunInProgress = errors.New("run still in progress")

// WithPayload берет "чистый" хендлер и превращает его в стандартный
// HandlerFunc. Распаковка JSON и валидация - здесь, один раз.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) error {
		var payload T

		if err := json.Unmarshal(raw, &payload); err != nil {
			return fmt.Errorf("invalid payload format: %w", err)
		}
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
		}

		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) error {
		return handler(ctx)
	}
}

// activeRun возвращает живой забег сессии или ErrNoActiveRun.
func (ctx Context) activeRun() (*Run, error) {
	if ctx.Session.run == nil {
		return nil, ErrNoActiveRun
	}
	return ctx.Session.run, nil
}

// --- Хендлеры команд ---

func handleStartRun(ctx Context) error {
	s := ctx.Session
	if s.run != nil && !s.run.Phase.Terminal() {
		return ErrRunInProgress
	}
	s.run = ctx.Service.newRun(s.username, s.profile)
	return nil
}

func handleInput(ctx Context, p api.InputPayload) error {
	run, err := ctx.activeRun()
	if err != nil {
		return err
	}
	run.Input = domain.InputState{
		Up: p.Up, Down: p.Down, Left: p.Left, Right: p.Right,
		Fire: p.Fire,
	}
	run.Input.Aim.X = p.AimX
	run.Input.Aim.Y = p.AimY
	return nil
}

func handleSetWager(ctx Context, p api.WagerPayload) error {
	run, err := ctx.activeRun()
	if err != nil {
		return err
	}
	return run.SetWager(p.Amount)
}

func handleSelectRisk(ctx Context, p api.RiskPayload) error {
	run, err := ctx.activeRun()
	if err != nil {
		return err
	}
	return run.SelectRisk(p.Risk)
}

func handleSelectCurse(ctx Context, p api.CursePayload) error {
	run, err := ctx.activeRun()
	if err != nil {
		return err
	}
	return run.SelectCurse(p.CurseID)
}

func handleBuyItem(ctx Context, p api.ItemPayload) error {
	run, err := ctx.activeRun()
	if err != nil {
		return err
	}
	return run.BuyShopItem(p.ItemID)
}

func handleDescend(ctx Context) error {
	run, err := ctx.activeRun()
	if err != nil {
		return err
	}
	return run.Descend()
}

func handleCashOut(ctx Context) error {
	run, err := ctx.activeRun()
	if err != nil {
		return err
	}
	return run.CashOut()
}

// handleBuyUpgrade - мастерская. Работает и из меню, и во время
// забега: купленная разблокировка попадет уже в следующее
// предложение проклятий.
func handleBuyUpgrade(ctx Context, p api.UpgradePayload) error {
	return ctx.Service.buyUpgrade(ctx.Session, p.UpgradeID)
}

// handleMenu возвращает игрока в меню, закрывая завершенный забег.
func handleMenu(ctx Context) error {
	s := ctx.Session
	if s.run != nil && !s.run.Phase.Terminal() {
		return ErrRunInProgress
	}
	s.run = nil
	return nil
}
