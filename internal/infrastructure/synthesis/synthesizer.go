package synthesis

import (
	"context"
	"fmt"
	"strings"

	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase/interfaces"
)

// TemplateSynthesizer composes the premium payloads from the free-tier
// analysis fields. The real analysis engine lives outside this service; this
// implementation is the stand-in at that boundary and is deliberately
// deterministic so fulfillment retries produce identical content.

type TemplateSynthesizer struct{}

var _ interfaces.IContentSynthesizer = (*TemplateSynthesizer)(nil)

func NewTemplateSynthesizer() *TemplateSynthesizer {
	return &TemplateSynthesizer{}
}

func (s *TemplateSynthesizer) ComposeFullReport(_ context.Context, rep entities.Report) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Veredicto completo para %s\n\n", rep.Domain)
	if len(rep.ModulesSelected) > 0 {
		fmt.Fprintf(&b, "Módulos analizados: %s\n\n", strings.Join(rep.ModulesSelected, ", "))
	}
	if len(rep.ProblemsDetected) > 0 {
		b.WriteString("Diagnóstico detallado:\n")
		for i, p := range rep.ProblemsDetected {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p)
		}
		b.WriteString("\n")
	}
	if rep.TechnicalSummary != "" {
		fmt.Fprintf(&b, "Evaluación técnica:\n%s\n", rep.TechnicalSummary)
	}
	return b.String(), nil
}

func (s *TemplateSynthesizer) ComposeRepairPlan(_ context.Context, rep entities.Report) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan de reparación para %s\n\n", rep.Domain)
	if len(rep.ProblemsDetected) == 0 {
		b.WriteString("No se detectaron problemas que requieran acción.\n")
		return b.String(), nil
	}
	for i, p := range rep.ProblemsDetected {
		fmt.Fprintf(&b, "%d. Corregir: %s\n", i+1, p)
	}
	return b.String(), nil
}
