package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/stellar-team/internal/domain"
	"github.com/aidar/stellar-team/internal/service"
)

// MemberHandler обрабатывает эндпоинты каталога участников
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler создает новый MemberHandler
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// ListMembersResponse представляет ответ со списком участников
type ListMembersResponse struct {
	Members []domain.Member `json:"members"`
	Count   int             `json:"count"`
}

// ListMembers обрабатывает GET /api/members
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members := h.memberService.List()

	RespondWithJSON(w, r, http.StatusOK, ListMembersResponse{
		Members: members,
		Count:   len(members),
	})
}

// GetMember обрабатывает GET /api/members/{index}
func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")

	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		HandleError(w, r, fmt.Errorf("%w: %q", domain.ErrInvalidIndex, raw))
		return
	}

	member, err := h.memberService.Get(index)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, member)
}
