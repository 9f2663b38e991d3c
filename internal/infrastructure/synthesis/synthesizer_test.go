package synthesis

import (
	"context"
	"strings"
	"testing"

	"veredicto/internal/domain/entities"
)

func TestTemplateSynthesizer_Deterministic(t *testing.T) {
	s := NewTemplateSynthesizer()
	rep := entities.Report{
		ID:               "rep-1",
		Domain:           "tienda.cl",
		ModulesSelected:  []string{"seo", "seguridad"},
		ProblemsDetected: []string{"certificado vencido"},
		TechnicalSummary: "resumen",
	}

	first, err := s.ComposeFullReport(context.Background(), rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.ComposeFullReport(context.Background(), rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("retries must produce identical content")
	}
	if !strings.Contains(first, "tienda.cl") || !strings.Contains(first, "certificado vencido") {
		t.Fatalf("free tier fields missing from content:\n%s", first)
	}
}

func TestTemplateSynthesizer_RepairPlan(t *testing.T) {
	s := NewTemplateSynthesizer()

	t.Run("lists one action per problem", func(t *testing.T) {
		rep := entities.Report{
			Domain:           "tienda.cl",
			ProblemsDetected: []string{"certificado vencido", "enlaces rotos"},
		}
		plan, err := s.ComposeRepairPlan(context.Background(), rep)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(plan, "1. Corregir: certificado vencido") || !strings.Contains(plan, "2. Corregir: enlaces rotos") {
			t.Fatalf("unexpected plan:\n%s", plan)
		}
	})

	t.Run("clean site gets an empty plan", func(t *testing.T) {
		plan, err := s.ComposeRepairPlan(context.Background(), entities.Report{Domain: "tienda.cl"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(plan, "No se detectaron problemas") {
			t.Fatalf("unexpected plan:\n%s", plan)
		}
	})
}
