package tui

import (
	"fmt"
	"strings"

	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/model"
)

// renderDiagnosis formats the problem finding for both the live result
// and the saved-report detail views.
func renderDiagnosis(a *App, d model.Diagnosis, width int) string {
	var b strings.Builder
	b.WriteString(warnStyle.Render(d.ProblemName))
	b.WriteString("\n")
	b.WriteString(wrapText(d.Description, width))
	for _, s := range d.Symptoms {
		b.WriteString("\n")
		b.WriteString(wrapText("• "+s, width))
	}
	return b.String()
}

// renderTreatmentPlan formats the action plan sections, skipping empty
// ones.
func renderTreatmentPlan(a *App, plan model.TreatmentPlan, width int) string {
	var parts []string
	if len(plan.ImmediateActions) > 0 {
		var b strings.Builder
		b.WriteString(sectionStyle.Render(a.t(i18n.KeyImmediateActions)))
		for _, action := range plan.ImmediateActions {
			b.WriteString("\n")
			b.WriteString(wrapText("• "+action, width))
		}
		parts = append(parts, b.String())
	}
	if len(plan.OrganicRemedies) > 0 {
		parts = append(parts, renderRemedies(a.t(i18n.KeyOrganicRemedies), plan.OrganicRemedies, width))
	}
	if len(plan.ChemicalControls) > 0 {
		parts = append(parts, renderRemedies(a.t(i18n.KeyChemicalControls), plan.ChemicalControls, width))
	}
	return strings.Join(parts, "\n\n")
}

func renderRemedies(title string, remedies []model.Remedy, width int) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(title))
	for _, r := range remedies {
		b.WriteString("\n")
		b.WriteString(wrapText("• "+r.Product, width))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(wrapText("  "+r.Application, width)))
	}
	return b.String()
}

func formatConfidence(score float64) string {
	return fmt.Sprintf("%.0f%%", score)
}
