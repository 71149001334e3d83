package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/resume-screening/api/http/presenter"
	"github.com/artem13815/resume-screening/pkg/screening"
)

const maxScreeningBatch = 200

type ScreeningHandler struct {
	orch *screening.Orchestrator
	log  *zap.Logger
}

func NewScreeningHandler(orch *screening.Orchestrator, log *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{orch: orch, log: log}
}

type screeningRequest struct {
	JobIDs             []string           `json:"jobIds"`
	Criteria           screening.Criteria `json:"criteria"`
	IncludeUnqualified bool               `json:"includeUnqualified"`
}

// Create прогоняет пачку завершённых задач через оценку по критериям.
// Пропавшие или незавершённые задачи попадают в ответ как пропущенные,
// пачка при этом не прерывается.
// @Summary Запустить скрининг
// @Tags    Скрининг
// @Accept  json
// @Produce json
// @Param   request body handlers.screeningRequest true "Задачи и критерии"
// @Success 200 {object} screening.Report
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /screenings [post]
func (h *ScreeningHandler) Create(c *fiber.Ctx) error {
	var req screeningRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	if len(req.JobIDs) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "jobIds is required")
	}
	if len(req.JobIDs) > maxScreeningBatch {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("too many jobs: limit is %d", maxScreeningBatch))
	}

	ids := make([]uuid.UUID, 0, len(req.JobIDs))
	for _, raw := range req.JobIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("invalid job id %q", raw))
		}
		ids = append(ids, id)
	}

	report, err := h.orch.Screen(c.Context(), ids, req.Criteria, req.IncludeUnqualified)
	if err != nil {
		return presenter.FromError(c, err)
	}
	h.log.Info("screening completed",
		zap.String("screening_id", report.ScreeningID.String()),
		zap.Int("total", report.TotalResumes),
		zap.Int("qualified", report.QualifiedCount))
	return presenter.JSON(c, http.StatusOK, report)
}
