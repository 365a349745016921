package domain

import "greed-server/pkg/geom"

// InputState - намерения игрока, считываемые ровно один раз в начале тика.
// Пишутся асинхронно сетевым слоем, но это простые флаги и координата,
// составных транзакций нет.
type InputState struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`

	Aim  geom.Vector2D `json:"aim"` // Абсолютная точка прицела
	Fire bool          `json:"fire"`
}
