package engine

import (
	"encoding/json"
	"sync"
	"time"

	"greed-server/internal/domain"
	"greed-server/internal/infrastructure/storage"
	"greed-server/internal/network"
	"greed-server/internal/progress"
	"greed-server/pkg/api"
	"greed-server/pkg/logger"
)

// Command - команда клиента, уже привязанная к имени пользователя
// сетевым слоем.
type Command struct {
	Username string
	Action   domain.ActionType
	Payload  json.RawMessage
}

// session - один залогиненный игрок: профиль и, возможно, забег.
// Сессия переживает обрыв соединения: забег продолжает тикать,
// переподключившийся клиент получает очередной снимок как ни в чем
// не бывало.
type session struct {
	username string
	profile  *domain.UserData
	run      *Run
}

// GameService владеет всеми сессиями и крутит единый игровой цикл.
// Все мутации состояния забегов происходят только в горутине цикла:
// команды попадают туда через CommandChan.
type GameService struct {
	CommandChan chan Command
	Hub         *network.Broadcaster

	cfg      *domain.Config
	progress *progress.Service

	mu       sync.Mutex
	sessions map[string]*session
	runSeq   int64

	handlers map[domain.ActionType]HandlerFunc

	// ledger - опциональная летопись завершенных забегов.
	ledger *storage.Ledger

	stop chan struct{}
}

func NewService(cfg *domain.Config, svc *progress.Service) *GameService {
	s := &GameService{
		CommandChan: make(chan Command, 256),
		Hub:         network.NewBroadcaster(),
		cfg:         cfg,
		progress:    svc,
		sessions:    make(map[string]*session),
		stop:        make(chan struct{}),
	}
	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers = map[domain.ActionType]HandlerFunc{
		domain.ActionStartRun:    WithEmptyPayload(handleStartRun),
		domain.ActionInput:       WithPayload(handleInput),
		domain.ActionSetWager:    WithPayload(handleSetWager),
		domain.ActionSelectRisk:  WithPayload(handleSelectRisk),
		domain.ActionSelectCurse: WithPayload(handleSelectCurse),
		domain.ActionBuyItem:     WithPayload(handleBuyItem),
		domain.ActionDescend:     WithEmptyPayload(handleDescend),
		domain.ActionCashOut:     WithEmptyPayload(handleCashOut),
		domain.ActionBuyUpgrade:  WithPayload(handleBuyUpgrade),
		domain.ActionMenu:        WithEmptyPayload(handleMenu),
	}
}

func (s *GameService) Start() {
	go s.runLoop()
}

func (s *GameService) Stop() {
	close(s.stop)
}

// Login загружает (или создает) профиль и заводит сессию.
// Вызывается из горутины соединения до начала игрового трафика.
func (s *GameService) Login(username string) (*domain.UserData, error) {
	profile, err := s.progress.Login(username)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[username]; ok {
		// Переподключение: профиль в сессии - источник истины,
		// на диске может лежать отставшая копия.
		return sess.profile, nil
	}
	s.sessions[username] = &session{username: username, profile: profile}
	return profile, nil
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
func (s *GameService) ProcessCommand(username string, cmd api.ClientCommand) {
	action := domain.ParseAction(cmd.Action)
	if action == domain.ActionUnknown {
		logger.Log.WithField("action", cmd.Action).Warn("Неизвестная команда")
		s.sendError(username, "unknown action: "+cmd.Action)
		return
	}

	select {
	case s.CommandChan <- Command{Username: username, Action: action, Payload: cmd.Payload}:
	default:
		// Очередь полна - клиент шлет быстрее, чем движок тикает.
		logger.Log.WithField("username", username).Warn("Очередь команд переполнена, команда отброшена")
	}
}

// --- Игровой цикл ---

func (s *GameService) runLoop() {
	logger.Log.WithField("tps", domain.TicksPerSecond).Info("Игровой цикл запущен")

	ticker := time.NewTicker(time.Second / domain.TicksPerSecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			logger.Log.Info("Игровой цикл остановлен")
			return
		case <-ticker.C:
			s.tickOnce()
		}
	}
}

// tickOnce - один кадр сервера: сперва накопившиеся команды,
// затем шаг симуляции каждого забега, затем рассылка снимков.
func (s *GameService) tickOnce() {
	s.drainCommands()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.run != nil {
			sess.run.Step()
			s.logFinishedRun(sess.run)
		}
		s.publish(sess)
	}
}

// SetLedger включает запись завершенных забегов в летопись.
func (s *GameService) SetLedger(l *storage.Ledger) {
	s.ledger = l
}

// logFinishedRun дописывает развязку забега в летопись. Ровно один раз:
// экран GAME_OVER висит, пока игрок не уйдет в меню.
func (s *GameService) logFinishedRun(run *Run) {
	if s.ledger == nil || run.ledgerLogged || run.Phase != domain.PhaseGameOver {
		return
	}
	run.ledgerLogged = true

	outcome := storage.OutcomeDeath
	if run.escaped {
		outcome = storage.OutcomeCashOut
	}
	rec := storage.RunRecord{
		Timestamp: time.Now().Unix(),
		Seed:      run.seed,
		Room:      run.Room,
		Banked:    run.Currency,
		Fragments: run.earnedFragments,
		Outcome:   outcome,
		Username:  run.Username,
	}
	if err := s.ledger.Append(rec); err != nil {
		logger.Log.WithField("run_id", run.ID).WithError(err).Warn("Не удалось записать забег в летопись")
	}
}

// drainCommands выгребает очередь команд целиком. Команды, пришедшие
// внутри одного кадра, применяются в порядке поступления.
func (s *GameService) drainCommands() {
	for {
		select {
		case cmd := <-s.CommandChan:
			s.dispatch(cmd)
		default:
			return
		}
	}
}

func (s *GameService) dispatch(cmd Command) {
	s.mu.Lock()
	sess, ok := s.sessions[cmd.Username]
	s.mu.Unlock()
	if !ok {
		logger.Log.WithField("username", cmd.Username).Warn("Команда без сессии")
		return
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		s.sendError(cmd.Username, "unsupported action: "+cmd.Action.String())
		return
	}

	if err := handler(Context{Service: s, Session: sess}, cmd.Payload); err != nil {
		logger.Log.WithField("username", cmd.Username).
			WithField("action", cmd.Action.String()).
			WithError(err).
			Debug("Команда отклонена")
		s.sendError(cmd.Username, err.Error())
	}
}

// publish отправляет игроку снимок: забега, если он идет,
// иначе - меню с профилем.
func (s *GameService) publish(sess *session) {
	if !s.Hub.HasSubscriber(sess.username) {
		return
	}
	if sess.run != nil {
		s.Hub.SendTo(sess.username, sess.run.BuildSnapshot())
		return
	}
	s.Hub.SendTo(sess.username, &api.Snapshot{
		Type:    "UPDATE",
		Phase:   "MENU",
		Profile: BuildProfileView(sess.username, sess.profile),
	})
}

func (s *GameService) sendError(username, text string) {
	s.Hub.SendTo(username, api.ErrorResponse{Type: "ERROR", Error: text})
}

// newRun создает забег с очередным зерном от мастер-зерна конфига.
func (s *GameService) newRun(username string, profile *domain.UserData) *Run {
	s.runSeq++
	return NewRun(username, profile, s.cfg, s.cfg.Seed+s.runSeq, s.progress)
}

func (s *GameService) buyUpgrade(sess *session, upgradeID string) error {
	up, err := s.progress.BuyUpgrade(sess.profile, upgradeID)
	if err != nil {
		return err
	}
	logger.Log.WithField("username", sess.username).
		WithField("upgrade", up.ID).
		Info("Куплено улучшение")
	return s.progress.Save(sess.username, sess.profile)
}

// RunInfo - сводка по забегу для отладочной ручки.
type RunInfo struct {
	Username string `json:"username"`
	RunID    string `json:"runId,omitempty"`
	Phase    string `json:"phase"`
	Room     int    `json:"room,omitempty"`
	Tick     int64  `json:"tick,omitempty"`
	Currency int    `json:"currency,omitempty"`
}

// DebugRuns возвращает сводку по всем сессиям.
func (s *GameService) DebugRuns() []RunInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]RunInfo, 0, len(s.sessions))
	for _, sess := range s.sessions {
		info := RunInfo{Username: sess.username, Phase: "MENU"}
		if sess.run != nil {
			info.RunID = sess.run.ID
			info.Phase = string(sess.run.Phase)
			info.Room = sess.run.Room
			info.Tick = sess.run.Tick
			info.Currency = sess.run.Currency
		}
		infos = append(infos, info)
	}
	return infos
}
