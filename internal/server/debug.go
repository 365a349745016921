package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"greed-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/debug/runs", h.handleListRuns).Methods(http.MethodGet)
}

// /debug/runs - сводка по всем сессиям: кто в меню, кто в какой
// комнате и с какой добычей.
func (h *DebugHandler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.DebugRuns())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	// Пустой список отдаем как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
