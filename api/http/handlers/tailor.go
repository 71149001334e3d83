package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/resume-screening/api/http/presenter"
	"github.com/artem13815/resume-screening/pkg/job"
	"github.com/artem13815/resume-screening/pkg/resume"
	"github.com/artem13815/resume-screening/pkg/tailor"
	"github.com/artem13815/resume-screening/pkg/templates"
)

type TailorHandler struct {
	store job.Store
	svc   *tailor.Service
}

func NewTailorHandler(store job.Store, svc *tailor.Service) *TailorHandler {
	return &TailorHandler{store: store, svc: svc}
}

// completedRecord fetches the extracted record of a COMPLETED job.
func (h *TailorHandler) completedRecord(c *fiber.Ctx) (uuid.UUID, *resume.Record, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, nil, presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	j, err := h.store.Get(c.Context(), id)
	if err != nil {
		return uuid.Nil, nil, presenter.FromError(c, err)
	}
	if j.Status != job.StatusCompleted || j.Result == nil {
		return uuid.Nil, nil, presenter.JSON(c, http.StatusConflict, presenter.ErrorResponse{
			Message: "extraction is not complete yet",
			Kind:    "conflict",
		})
	}
	return id, j.Result, nil
}

type tailorRequest struct {
	JobDescription string `json:"jobDescription"`
}

type tailorResponse struct {
	JobID    uuid.UUID     `json:"jobId"`
	Tailored bool          `json:"tailored"`
	Resume   resume.Record `json:"resume"`
}

// Tailor адаптирует извлечённое резюме под описание вакансии.
// При недоступности модели возвращает исходное резюме (tailored=false).
// @Summary Адаптировать резюме под вакансию
// @Tags    Резюме
// @Accept  json
// @Produce json
// @Param   id path string true "ID задачи (UUID)"
// @Param   request body handlers.tailorRequest true "Описание вакансии"
// @Success 200 {object} handlers.tailorResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/tailor [post]
func (h *TailorHandler) Tailor(c *fiber.Ctx) error {
	var req tailorRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return presenter.Error(c, http.StatusBadRequest, "jobDescription is required")
	}
	id, rec, errResp := h.completedRecord(c)
	if rec == nil {
		return errResp
	}
	out, applied := h.svc.Tailor(c.Context(), *rec, req.JobDescription)
	return presenter.JSON(c, http.StatusOK, tailorResponse{
		JobID:    id,
		Tailored: applied,
		Resume:   out,
	})
}

// Templates возвращает список доступных шаблонов рендеринга.
// @Summary Список шаблонов резюме
// @Tags    Резюме
// @Produce json
// @Success 200 {array} templates.Info
// @Router  /templates [get]
func (h *TailorHandler) Templates(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, templates.List())
}

// Render отдаёт извлечённое резюме готовой HTML-страницей.
// @Summary Отрендерить резюме в HTML
// @Tags    Резюме
// @Produce html
// @Param   id       path  string true  "ID задачи (UUID)"
// @Param   template query string false "Идентификатор шаблона (1, 2 или 3)"
// @Success 200 {string} string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/render [get]
func (h *TailorHandler) Render(c *fiber.Ctx) error {
	_, rec, errResp := h.completedRecord(c)
	if rec == nil {
		return errResp
	}
	html, err := templates.Render(*rec, c.Query("template"))
	if err != nil {
		return presenter.FromError(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}
