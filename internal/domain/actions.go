package domain

import "strings"

// ActionType - внутренний числовой идентификатор команды клиента.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionLogin
	ActionStartRun
	ActionInput
	ActionSetWager
	ActionSelectRisk
	ActionSelectCurse
	ActionBuyItem
	ActionDescend
	ActionCashOut
	ActionBuyUpgrade
	ActionMenu
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"LOGIN":        ActionLogin,
	"START_RUN":    ActionStartRun,
	"INPUT":        ActionInput,
	"SET_WAGER":    ActionSetWager,
	"SELECT_RISK":  ActionSelectRisk,
	"SELECT_CURSE": ActionSelectCurse,
	"BUY_ITEM":     ActionBuyItem,
	"DESCEND":      ActionDescend,
	"CASH_OUT":     ActionCashOut,
	"BUY_UPGRADE":  ActionBuyUpgrade,
	"MENU":         ActionMenu,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionLogin:       "LOGIN",
	ActionStartRun:    "START_RUN",
	ActionInput:       "INPUT",
	ActionSetWager:    "SET_WAGER",
	ActionSelectRisk:  "SELECT_RISK",
	ActionSelectCurse: "SELECT_CURSE",
	ActionBuyItem:     "BUY_ITEM",
	ActionDescend:     "DESCEND",
	ActionCashOut:     "CASH_OUT",
	ActionBuyUpgrade:  "BUY_UPGRADE",
	ActionMenu:        "MENU",
}

// ParseAction конвертирует строку из JSON в ActionType.
func ParseAction(s string) ActionType {
	// Нечувствительность к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для логов).
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
