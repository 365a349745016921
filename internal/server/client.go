package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"greed-server/internal/domain"
	"greed-server/internal/engine"
	"greed-server/pkg/api"
	"greed-server/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Game     *engine.GameService
	Conn     *websocket.Conn
	Send     chan any
	Username string
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game: game,
		Conn: conn,
		Send: make(chan any, 256),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	var updates chan any

	defer func() {
		if updates != nil {
			c.Game.Hub.Unregister(c.Username, updates)
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		if c.Username != "" {
			logger.Log.WithField("username", c.Username).Info("Client disconnected")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE (LOGIN)
	// Первое сообщение обязано быть LOGIN. Все остальное - разрыв.
	var loginCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&loginCmd); err != nil {
		logger.Log.Warn("Handshake failed")
		return
	}
	if domain.ParseAction(loginCmd.Action) != domain.ActionLogin {
		c.writeError("first message must be LOGIN")
		return
	}

	var payload api.LoginPayload
	if err := json.Unmarshal(loginCmd.Payload, &payload); err != nil {
		c.writeError("invalid login payload")
		return
	}
	if err := payload.Validate(); err != nil {
		c.writeError(err.Error())
		return
	}

	profile, err := c.Game.Login(payload.Username)
	if err != nil {
		logger.Log.WithError(err).Error("Login failed")
		c.writeError("login failed")
		return
	}
	c.Username = payload.Username

	logger.Log.WithFields(logrus.Fields{
		"username": c.Username,
		"banked":   profile.BankedTreasure,
		"deepest":  profile.DeepestRoom,
	}).Info("Client logged in")

	// 2. ПОДПИСКА НА ОБНОВЛЕНИЯ
	// Повторный логин под тем же именем вытесняет старое соединение.
	updates = c.Game.Hub.Register(c.Username)

	go func() {
		for msg := range updates {
			select {
			case c.Send <- msg:
			default:
				// Клиент не успевает - кадр пропускается
			}
		}
		close(c.Send)
	}()

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		if domain.ParseAction(cmd.Action) == domain.ActionLogin {
			// Уже залогинены
			continue
		}
		c.Game.ProcessCommand(c.Username, cmd)
	}
}

// writeError отправляет ошибку напрямую, минуя Hub.
// Используется только до завершения рукопожатия.
func (c *Client) writeError(text string) {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err == nil {
		_ = c.Conn.WriteJSON(api.ErrorResponse{Type: "ERROR", Error: text})
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
