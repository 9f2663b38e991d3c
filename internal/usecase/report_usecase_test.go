package usecase

import (
	"context"
	"errors"
	"testing"

	"veredicto/internal/domain/entities"
	mock_interfaces "veredicto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_CreateFromAnalysis(t *testing.T) {
	t.Run("empty domain", func(t *testing.T) {
		uc := NewReportUseCase(nil)
		_, err := uc.CreateFromAnalysis(context.Background(), AnalysisInput{Domain: "   "})
		if !errors.Is(err, ErrInvalidAnalysisInput) {
			t.Fatalf("expected ErrInvalidAnalysisInput, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Report{})).DoAndReturn(
			func(_ context.Context, r entities.Report) (entities.Report, error) {
				if r.ID == "" {
					t.Fatalf("expected generated id")
				}
				if r.Domain != "tienda.cl" {
					t.Fatalf("unexpected domain: %q", r.Domain)
				}
				if r.Paid || r.Sent || r.RepairActive {
					t.Fatalf("new report must start locked: %+v", r)
				}
				if r.FullReport != "" || r.SuggestedActions != "" {
					t.Fatalf("new report must have no premium content: %+v", r)
				}
				if r.PendingCheckouts == nil {
					t.Fatalf("expected allocated pending checkout map")
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		res, err := uc.CreateFromAnalysis(context.Background(), AnalysisInput{
			Domain:           " tienda.cl ",
			ModulesSelected:  []string{"seo", "seguridad"},
			ProblemsDetected: []string{"certificado vencido"},
			TechnicalSummary: "resumen",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.ProblemsDetected) != 1 || res.TechnicalSummary != "resumen" {
			t.Fatalf("free tier fields not carried over: %+v", res)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewReportUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Report{}, errors.New("db"))

		_, err := uc.CreateFromAnalysis(context.Background(), AnalysisInput{Domain: "tienda.cl"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestReportUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewReportUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidReportID) {
			t.Fatalf("expected ErrInvalidReportID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewReportUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Report{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "rep-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewReportUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Report{}, nil)

		_, err := uc.GetByID(context.Background(), "rep-1")
		if !errors.Is(err, ErrReportNotFound) {
			t.Fatalf("expected ErrReportNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReportRepository(ctrl)
		uc := NewReportUseCase(repo)
		expected := entities.Report{ID: "rep-1", Domain: "tienda.cl"}
		repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(expected, nil)

		res, err := uc.GetByID(context.Background(), " rep-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "rep-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
