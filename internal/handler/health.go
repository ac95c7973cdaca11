package handler

import "net/http"

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Members int    `json:"members"`
}

// HealthHandler обрабатывает health check
type HealthHandler struct {
	count func() int
}

// NewHealthHandler создает новый HealthHandler; count сообщает размер каталога
func NewHealthHandler(count func() int) *HealthHandler {
	return &HealthHandler{count: count}
}

// Health обрабатывает GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "ok",
		Members: h.count(),
	})
}
