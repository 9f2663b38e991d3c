package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReportNotFound       = errors.New("report not found")
	ErrInvalidReportID      = errors.New("invalid report id")
	ErrInvalidAnalysisInput = errors.New("invalid analysis input")
)

// AnalysisInput is the free-tier content handed over by the analysis engine.
// The fields are copied verbatim into the new report; this service never
// derives or rewrites them.
type AnalysisInput struct {
	Domain           string
	ModulesSelected  []string
	ProblemsDetected []string
	TechnicalSummary string
}

// IReportUseCase exposes report creation and the read projection.

type IReportUseCase interface {
	CreateFromAnalysis(ctx context.Context, in AnalysisInput) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
}

type ReportUseCase struct {
	repo interfaces.IReportRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// CreateFromAnalysis builds a locked report: free-tier fields populated,
// premium fields empty, all unlock flags false.
func (u *ReportUseCase) CreateFromAnalysis(ctx context.Context, in AnalysisInput) (entities.Report, error) {
	domain := strings.TrimSpace(in.Domain)
	if domain == "" {
		return entities.Report{}, ErrInvalidAnalysisInput
	}

	now := time.Now().UTC()
	rep := entities.Report{
		ID:               uuid.NewString(),
		Domain:           domain,
		ModulesSelected:  in.ModulesSelected,
		ProblemsDetected: in.ProblemsDetected,
		TechnicalSummary: in.TechnicalSummary,
		PendingCheckouts: map[string]entities.Tier{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, rep)
}

func (u *ReportUseCase) GetByID(ctx context.Context, id string) (entities.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Report{}, ErrInvalidReportID
	}

	rep, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Report{}, err
	}
	if rep.ID == "" {
		return entities.Report{}, ErrReportNotFound
	}
	return rep, nil
}
