package agent

import (
	"encoding/json"
	"math"

	"greed-server/internal/engine"
	"greed-server/pkg/api"

	"github.com/sirupsen/logrus"
)

// Bot представляет собой "игрока-компьютера" (Headless Agent).
// Этот код является примером ВНЕШНЕГО клиента: он логинится и получает
// снимки мира так же, как обычный игрок через WebSocket, только без сети -
// напрямую через хаб сервера. На каждый снимок бот отвечает командой.
// Используется для дымовых прогонов и простых нагрузочных тестов.
//
// Жизненный цикл:
//  1. NewBot -> логин, регистрация в хабе, получение личного канала (Inbox).
//  2. Run -> запуск в отдельной горутине, слушает свой Inbox.
//  3. На каждый снимок вызывается react: по фазе забега бот решает,
//     какую команду отправить обратно.
type Bot struct {
	Username string
	Service  *engine.GameService // Прямая ссылка на движок (для простоты в этом проекте)
	Inbox    chan any

	// CashOutRoom - комната, после зачистки которой бот забирает банк.
	// Ноль означает "спускайся, пока не умрешь".
	CashOutRoom int

	// Троттлинг: в паузах снимки приходят каждый тик,
	// а команду достаточно отправить один раз за фазу.
	lastPhase string
	acted     bool
}

func NewBot(username string, service *engine.GameService, cashOutRoom int) (*Bot, error) {
	if _, err := service.Login(username); err != nil {
		return nil, err
	}
	logrus.WithField("username", username).Info("[BOT] Agent connected")
	return &Bot{
		Username:    username,
		Service:     service,
		CashOutRoom: cashOutRoom,
		// Бот регистрируется в хабе как обычный клиент и получает свой канал для обновлений.
		Inbox: service.Hub.Register(username),
	}, nil
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
// Завершается, когда хаб закрывает канал (Unregister или выселение).
func (b *Bot) Run() {
	for msg := range b.Inbox {
		snap, ok := msg.(*api.Snapshot)
		if !ok {
			continue // ERROR-ответы боту не интересны
		}
		b.react(snap)
	}
	logrus.WithField("username", b.Username).Info("[BOT] Agent shut down")
}

// react - мозг бота. Принимает решение на основе полученного снимка.
func (b *Bot) react(snap *api.Snapshot) {
	// Сбрасываем защелку "уже сходил" при смене фазы.
	if snap.Phase != b.lastPhase {
		b.lastPhase = snap.Phase
		b.acted = false
	}

	switch snap.Phase {
	case "MENU":
		if !b.acted {
			b.acted = true
			b.send("START_RUN", nil)
		}
	case "IN_GAME":
		b.fight(snap)
	case "BETTING":
		if b.acted {
			return
		}
		b.acted = true
		if b.CashOutRoom > 0 && snap.Room >= b.CashOutRoom {
			b.send("CASH_OUT", nil)
			return
		}
		// Ставим половину добычи и идем глубже.
		b.send("SET_WAGER", api.WagerPayload{Amount: snap.Currency / 2})
		b.send("DESCEND", nil)
	case "GAME_OVER":
		if !b.acted {
			b.acted = true
			b.send("MENU", nil)
		}
	}
}

// fight целится в ближайшего врага и стреляет, подтягиваясь к центру холста.
func (b *Bot) fight(snap *api.Snapshot) {
	if snap.Player == nil {
		return
	}
	p := snap.Player

	input := api.InputPayload{Fire: false}

	// Держимся недалеко от центра, чтобы не зажали в углу.
	const cx, cy = 400.0, 300.0
	if p.X < cx-40 {
		input.Right = true
	} else if p.X > cx+40 {
		input.Left = true
	}
	if p.Y < cy-40 {
		input.Down = true
	} else if p.Y > cy+40 {
		input.Up = true
	}

	if target := nearestEnemy(snap.Enemies, p.X, p.Y); target != nil {
		input.AimX = target.X
		input.AimY = target.Y
		input.Fire = true
	}

	b.send("INPUT", input)
}

func nearestEnemy(enemies []api.EnemyView, x, y float64) *api.EnemyView {
	var best *api.EnemyView
	bestDist := math.MaxFloat64
	for i := range enemies {
		e := &enemies[i]
		d := (e.X-x)*(e.X-x) + (e.Y-y)*(e.Y-y)
		if d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}

func (b *Bot) send(action string, payload any) {
	cmd := api.ClientCommand{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			logrus.WithField("username", b.Username).Errorf("[BOT] Marshal payload: %v", err)
			return
		}
		cmd.Payload = raw
	}
	b.Service.ProcessCommand(b.Username, cmd)
}

// Stop отписывает бота от хаба; Run после этого завершится сам.
func (b *Bot) Stop() {
	b.Service.Hub.Unregister(b.Username, b.Inbox)
}
