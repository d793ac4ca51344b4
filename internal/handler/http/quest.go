package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/restoops/staff-backend-go/internal/domain/quest"
	"github.com/restoops/staff-backend-go/internal/domain/shift"
	"github.com/restoops/staff-backend-go/internal/handler/http/response"
)

type QuestHandler interface {
	ListEmployeeQuests(w http.ResponseWriter, r *http.Request)
	GetQuestDetail(w http.ResponseWriter, r *http.Request)
	CreateQuest(w http.ResponseWriter, r *http.Request)
}

type questHandlerImpl struct {
	questService quest.QuestService
}

func NewQuestHandler(questService quest.QuestService) QuestHandler {
	return &questHandlerImpl{questService: questService}
}

// ListEmployeeQuests implements QuestHandler.
func (h *questHandlerImpl) ListEmployeeQuests(w http.ResponseWriter, r *http.Request) {
	waiterID, ok := pathID(r, "waiterId")
	if !ok {
		response.HandleError(w, shift.ErrInvalidEmployeeID)
		return
	}
	q := newQueryParams(r)
	filter := quest.QuestFilter{
		EmployeeID:     waiterID,
		Date:           q.String("date"),
		OrganizationID: q.OptionalInt64("organization_id"),
	}
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	quests, err := h.questService.ListEmployeeQuests(r.Context(), filter)
	if err != nil {
		slog.Error("ListEmployeeQuests service error", "waiter_id", waiterID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, quests)
}

// GetQuestDetail implements QuestHandler.
func (h *questHandlerImpl) GetQuestDetail(w http.ResponseWriter, r *http.Request) {
	questID, ok := pathID(r, "questId")
	if !ok {
		response.HandleError(w, quest.ErrQuestNotFound)
		return
	}
	q := newQueryParams(r)
	orgID := q.OptionalInt64("organization_id")
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	detail, err := h.questService.GetQuestDetail(r.Context(), questID, orgID)
	if err != nil {
		slog.Error("GetQuestDetail service error", "quest_id", questID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// CreateQuest implements QuestHandler.
func (h *questHandlerImpl) CreateQuest(w http.ResponseWriter, r *http.Request) {
	var req quest.CreateQuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateQuest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	reward, err := h.questService.CreateQuest(r.Context(), req)
	if err != nil {
		slog.Error("CreateQuest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Quest created successfully", quest.NewCreatedQuestResponse(req, reward))
}
