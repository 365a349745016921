package domain

// RunPhase - фаза конечного автомата забега.
type RunPhase string

const (
	PhaseRoundStart RunPhase = "ROUND_START" // Отсчет перед боем
	PhaseInGame     RunPhase = "IN_GAME"     // Активный бой
	PhaseRoomClear  RunPhase = "ROOM_CLEAR"  // Пауза после зачистки, ставки еще закрыты
	PhaseBetting    RunPhase = "BETTING"     // Экран ставок и лавки
	PhaseDying      RunPhase = "PLAYER_DYING"
	PhaseGameOver   RunPhase = "GAME_OVER"
)

// IsCombat - в этой фазе движок гоняет полный боевой тик.
func (p RunPhase) IsCombat() bool {
	return p == PhaseInGame
}

// Terminal - забег завершен, тикать больше нечего, кроме косметики.
func (p RunPhase) Terminal() bool {
	return p == PhaseGameOver
}
