package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/resume-screening/api/http/presenter"
	"github.com/artem13815/resume-screening/pkg/errs"
	"github.com/artem13815/resume-screening/pkg/extraction"
	"github.com/artem13815/resume-screening/pkg/job"
	"github.com/artem13815/resume-screening/pkg/upload"
)

const maxBulkFiles = 50

type ResumesHandler struct {
	store     job.Store
	validator *upload.Validator
	gateway   *extraction.Gateway
	log       *zap.Logger
}

func NewResumesHandler(store job.Store, validator *upload.Validator, gateway *extraction.Gateway, log *zap.Logger) *ResumesHandler {
	return &ResumesHandler{
		store:     store,
		validator: validator,
		gateway:   gateway,
		log:       log,
	}
}

type jobResponse struct {
	JobID     uuid.UUID      `json:"jobId"`
	Filename  string         `json:"filename"`
	SizeB     int64          `json:"sizeB"`
	MimeType  string         `json:"mimeType"`
	Status    job.Status     `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Error     *job.ErrorInfo `json:"error,omitempty"`
}

func toJobResponse(j job.Job) jobResponse {
	return jobResponse{
		JobID:     j.ID,
		Filename:  j.Filename,
		SizeB:     j.Size,
		MimeType:  j.MimeType,
		Status:    j.Status,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
		Error:     j.Error,
	}
}

// Upload принимает файл резюме и ставит задачу извлечения в очередь.
// @Summary Загрузить резюме
// @Description Принимает PDF/DOCX/DOC/TXT и запускает асинхронное извлечение структурированных данных.
// @Tags        Резюме
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Файл резюме"
// @Success     201 {object} handlers.jobResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     413 {object} presenter.ErrorResponse
// @Failure     415 {object} presenter.ErrorResponse
// @Router      /resumes [post]
func (h *ResumesHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required")
	}
	j, err := h.acceptFile(c, fh)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, toJobResponse(j))
}

type bulkItem struct {
	Filename string     `json:"filename"`
	JobID    *uuid.UUID `json:"jobId,omitempty"`
	Error    string     `json:"error,omitempty"`
}

type bulkResponse struct {
	Accepted int        `json:"accepted"`
	Rejected int        `json:"rejected"`
	Items    []bulkItem `json:"items"`
}

// BulkUpload принимает до 50 файлов за один запрос.
// Каждый файл валидируется отдельно: ошибка одного не отменяет остальные.
// @Summary Массовая загрузка резюме
// @Tags    Резюме
// @Accept  multipart/form-data
// @Produce json
// @Param   files formData file true "Файлы резюме (до 50)"
// @Success 200 {object} handlers.bulkResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resumes/bulk [post]
func (h *ResumesHandler) BulkUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "multipart form is required")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "at least one file is required")
	}
	if len(files) > maxBulkFiles {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("too many files: limit is %d", maxBulkFiles))
	}

	resp := bulkResponse{Items: make([]bulkItem, 0, len(files))}
	for _, fh := range files {
		item := bulkItem{Filename: fh.Filename}
		j, err := h.acceptFile(c, fh)
		if err != nil {
			item.Error = err.Error()
			resp.Rejected++
		} else {
			id := j.ID
			item.JobID = &id
			resp.Accepted++
		}
		resp.Items = append(resp.Items, item)
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

// acceptFile validates, stores and enqueues a single uploaded file.
func (h *ResumesHandler) acceptFile(c *fiber.Ctx, fh *multipart.FileHeader) (job.Job, error) {
	file, err := fh.Open()
	if err != nil {
		return job.Job{}, errs.New(errs.KindValidation, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.validator.MaxBytes())
	if err != nil {
		return job.Job{}, err
	}
	mime, err := h.validator.Validate(fh.Filename, data)
	if err != nil {
		return job.Job{}, err
	}

	j, err := h.store.Create(c.Context(), fh.Filename, mime, int64(len(data)))
	if err != nil {
		return job.Job{}, err
	}
	if err := h.gateway.Submit(j.ID, j.Filename, j.MimeType, data); err != nil {
		// The job would otherwise hang in PENDING forever.
		info := job.ErrorInfo{Kind: errs.KindOf(err), Message: err.Error()}
		if uerr := h.store.UpdateFailure(c.Context(), j.ID, info); uerr != nil {
			h.log.Warn("failed to record submit failure", zap.String("job_id", j.ID.String()), zap.Error(uerr))
		}
		return job.Job{}, err
	}
	h.log.Info("resume accepted",
		zap.String("job_id", j.ID.String()),
		zap.String("filename", j.Filename),
		zap.Int64("size_b", j.Size))
	return j, nil
}

type listResponse struct {
	Items  []jobResponse `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// List возвращает страницу задач извлечения, новые впереди.
// @Summary Список задач извлечения
// @Tags    Резюме
// @Produce json
// @Param   limit  query int    false "Размер страницы (по умолчанию 20, максимум 200)"
// @Param   offset query int    false "Смещение"
// @Param   status query string false "Фильтр по статусу (PENDING/PROCESSING/COMPLETED/FAILED)"
// @Success 200 {object} handlers.listResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resumes [get]
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 20)
	filter := job.ListFilter{Limit: limit, Offset: offset}
	if raw := c.Query("status"); raw != "" {
		st, err := job.ParseStatus(raw)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid status filter")
		}
		filter.Status = st
	}
	items, total, err := h.store.List(c.Context(), filter)
	if err != nil {
		return presenter.FromError(c, err)
	}
	resp := listResponse{
		Items:  make([]jobResponse, 0, len(items)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, j := range items {
		resp.Items = append(resp.Items, toJobResponse(j))
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

// Get возвращает статус задачи извлечения.
// @Summary Статус задачи
// @Tags    Резюме
// @Produce json
// @Param   id path string true "ID задачи (UUID)"
// @Success 200 {object} handlers.jobResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	j, err := h.store.Get(c.Context(), id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toJobResponse(j))
}

// GetData возвращает извлечённое резюме завершённой задачи.
// @Summary Данные резюме
// @Tags    Резюме
// @Produce json
// @Param   id path string true "ID задачи (UUID)"
// @Success 200 {object} resume.Record
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/data [get]
func (h *ResumesHandler) GetData(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	j, err := h.store.Get(c.Context(), id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	switch j.Status {
	case job.StatusCompleted:
		return presenter.JSON(c, http.StatusOK, j.Result)
	case job.StatusFailed:
		kind := errs.KindInternal
		msg := "extraction failed"
		if j.Error != nil {
			kind = j.Error.Kind
			msg = j.Error.Message
		}
		return presenter.JSON(c, http.StatusUnprocessableEntity, presenter.ErrorResponse{
			Message: msg,
			Kind:    string(kind),
		})
	default:
		return presenter.JSON(c, http.StatusConflict, presenter.ErrorResponse{
			Message: "extraction is not complete yet",
			Kind:    string(errs.KindConflict),
		})
	}
}

// Delete удаляет задачу вместе с результатом.
// @Summary Удалить задачу
// @Tags    Резюме
// @Param   id path string true "ID задачи (UUID)"
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [delete]
func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.store.Delete(c.Context(), id); err != nil {
		return presenter.FromError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, errs.Wrap(errs.KindValidation, "failed to read file", err)
	}
	if int64(len(b)) > max {
		return nil, errs.Wrap(errs.KindValidation,
			fmt.Sprintf("file too large: limit is %d bytes", max), upload.ErrTooLarge)
	}
	return b, nil
}
