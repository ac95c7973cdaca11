package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/aidar/stellar-team/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var teamTemplate = template.Must(template.ParseFS(templateFS, "templates/team.html"))

// PageHandler отдает HTML страницу команды
type PageHandler struct {
	memberService *service.MemberService
	title         string
	logger        *slog.Logger
}

// NewPageHandler создает новый PageHandler
func NewPageHandler(memberService *service.MemberService, title string, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		memberService: memberService,
		title:         title,
		logger:        logger,
	}
}

// Team обрабатывает GET /team
func (h *PageHandler) Team(w http.ResponseWriter, r *http.Request) {
	page := h.memberService.TeamPage(h.title)

	if err := RespondWithTemplate(w, r, http.StatusOK, teamTemplate, page); err != nil {
		h.logger.Error("Failed to render team page", "error", err)
		HandleError(w, r, err)
	}
}
