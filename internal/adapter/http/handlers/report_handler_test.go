package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"veredicto/internal/adapter/http/handlers/mocks"
	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_Analyze(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.POST("/analyze", h.Analyze)

		req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.POST("/analyze", h.Analyze)

		req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(`{"modules_selected":["seo"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		uc.EXPECT().CreateFromAnalysis(gomock.Any(), usecase.AnalysisInput{
			Domain:           "tienda.cl",
			ModulesSelected:  []string{"seo"},
			ProblemsDetected: []string{"certificado vencido"},
			TechnicalSummary: "resumen",
		}).Return(entities.Report{ID: "rep-1", Domain: "tienda.cl"}, nil)

		r := gin.New()
		r.POST("/analyze", h.Analyze)

		body := `{"domain":" tienda.cl ","modules_selected":["seo"],"problems_detected":["certificado vencido"],"technical_summary":"resumen"}`
		req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp["report_id"] != "rep-1" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		uc.EXPECT().CreateFromAnalysis(gomock.Any(), gomock.Any()).Return(entities.Report{}, errors.New("db"))

		r := gin.New()
		r.POST("/analyze", h.Analyze)

		req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(`{"domain":"tienda.cl"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestReportHandler_GetReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Report{}, usecase.ErrReportNotFound)

		r := gin.New()
		r.GET("/report/:id", h.GetReport)

		req := httptest.NewRequest(http.MethodGet, "/report/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("locked report hides premium content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Report{
			ID:         "rep-1",
			Domain:     "tienda.cl",
			FullReport: "secreto",
		}, nil)

		r := gin.New()
		r.GET("/report/:id", h.GetReport)

		req := httptest.NewRequest(http.MethodGet, "/report/rep-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "secreto") {
			t.Fatalf("locked response leaked premium content: %s", w.Body.String())
		}
	})

	t.Run("paid report exposes full content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Report{
			ID:         "rep-1",
			Domain:     "tienda.cl",
			Paid:       true,
			FullReport: "contenido premium",
		}, nil)

		r := gin.New()
		r.GET("/report/:id", h.GetReport)

		req := httptest.NewRequest(http.MethodGet, "/report/rep-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "contenido premium") {
			t.Fatalf("paid response missing premium content: %s", w.Body.String())
		}
	})
}
