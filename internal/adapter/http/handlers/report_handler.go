package handlers

import (
	"errors"
	"log"
	"net/http"

	request "veredicto/internal/adapter/http/dto/request"
	response "veredicto/internal/adapter/http/dto/response"
	"veredicto/internal/usecase"
	"veredicto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAnalyzePayload = pkg.NewDomainErrorSimple("INVALID_ANALYSIS_INPUT", "Invalid analysis payload", http.StatusBadRequest)

// ReportHandler handles report creation and the paywalled read projection.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// Analyze registers a finished analysis and returns the new locked report.
//
//	@Summary      Register an analysis result
//	@Description  Creates a locked report from the free-tier analysis output.
//	@Tags         reports
//	@Accept       json
//	@Produce      json
//	@Param        payload  body      request.AnalyzeRequest  true  "Analysis result"
//	@Success      201      {object}  response.AnalyzeResponse
//	@Failure      400      {object}  pkg.HTTPError
//	@Router       /analyze [post]
func (h *ReportHandler) Analyze(c *gin.Context) {
	var payload request.AnalyzeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnalyzePayload.HTTPStatus, errInvalidAnalyzePayload.ToHTTPError())
		return
	}

	rep, err := h.usecase.CreateFromAnalysis(c.Request.Context(), usecase.AnalysisInput{
		Domain:           payload.ResolveDomain(),
		ModulesSelected:  payload.ModulesSelected,
		ProblemsDetected: payload.ProblemsDetected,
		TechnicalSummary: payload.TechnicalSummary,
	})
	if err != nil {
		log.Printf("[report][handler] analyze failed domain=%s err=%v", payload.ResolveDomain(), err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[report][handler] analyze success report_id=%s domain=%s", rep.ID, rep.Domain)

	c.JSON(http.StatusCreated, response.FromCreatedReport(rep))
}

// GetReport returns one report through the paywall projection.
//
//	@Summary      Fetch a report
//	@Description  Returns the report; premium fields appear only after payment.
//	@Tags         reports
//	@Produce      json
//	@Param        id   path      string  true  "Report ID"
//	@Success      200  {object}  response.ReportResponse
//	@Failure      404  {object}  pkg.HTTPError
//	@Router       /report/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id := c.Param("id")

	rep, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[report][handler] get failed report_id=%s err=%v", id, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReport(rep))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAnalysisInput), errors.Is(err, usecase.ErrInvalidReportID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Report not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
