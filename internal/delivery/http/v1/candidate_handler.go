package v1

import (
	"io"
	"net/http"

	"github.com/Larissacdias1/scib-candidates-platform/internal/delivery/http/response"
	"github.com/Larissacdias1/scib-candidates-platform/internal/domain"
	"github.com/Larissacdias1/scib-candidates-platform/pkg/apperror"
	"github.com/Larissacdias1/scib-candidates-platform/pkg/upload"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 5 << 20 // 5 MiB

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, uploadLimiter gin.HandlerFunc, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", uploadLimiter, handler.Create)
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.GetByID)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Register a candidate
// @Description  Registers a candidate from identity fields plus a single-row Excel file carrying seniority, years of experience and availability
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        name     formData  string  true  "Candidate first name"
// @Param        surname  formData  string  true  "Candidate surname"
// @Param        file     formData  file    true  "Excel file with exactly one data row"
// @Success      201  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CreateCandidateInput
	if err := c.ShouldBind(&input); err != nil {
		c.Error(apperror.BadRequest("name and surname are required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("Excel file is required"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.Error(apperror.BadRequest("file exceeds the 5MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		c.Error(err)
		return
	}
	if len(data) > maxUploadBytes {
		c.Error(apperror.BadRequest("file exceeds the 5MB limit"))
		return
	}

	if result := upload.ValidateWorkbook(fileHeader.Filename, data, fileHeader.Header.Get("Content-Type")); !result.Valid {
		c.Error(apperror.BadRequest(result.Error))
		return
	}

	candidate, err := h.candidateUC.Create(c.Request.Context(), input, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// List godoc
// @Summary      List candidates
// @Description  Returns all candidates, most recently created first
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates", candidates)
}

// GetByID godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate id (UUID)"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *gin.Context) {
	id, ok := candidateID(c)
	if !ok {
		return
	}

	candidate, err := h.candidateUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate", candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Description  Partial update: only the fields present in the body are overwritten
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Candidate id (UUID)"
// @Param        payload  body      domain.UpdateCandidateInput   true  "Fields to update"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	id, ok := candidateID(c)
	if !ok {
		return
	}

	var input domain.UpdateCandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("invalid update payload"))
		return
	}

	candidate, err := h.candidateUC.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

// Delete godoc
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate id (UUID)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, ok := candidateID(c)
	if !ok {
		return
	}

	if err := h.candidateUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}

// candidateID validates the :id path parameter as a UUID before it ever
// reaches the store.
func candidateID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Error(apperror.BadRequest("id must be a valid UUID"))
		return "", false
	}
	return id, true
}
