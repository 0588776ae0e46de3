package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/webfleet-dev/webfleet/internal/provisioning"
)

var (
	reportColorGreen = lipgloss.Color("#22c55e")
	reportColorRed   = lipgloss.Color("#ef4444")
	reportColorBlue  = lipgloss.Color("#3b82f6")
	reportColorDim   = lipgloss.Color("#6b7280")
	reportColorWhite = lipgloss.Color("#f9fafb")
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorWhite)

	reportSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorBlue)

	reportDimStyle = lipgloss.NewStyle().
			Foreground(reportColorDim)

	reportGreenStyle = lipgloss.NewStyle().
				Foreground(reportColorGreen)

	reportRedStyle = lipgloss.NewStyle().
			Foreground(reportColorRed)
)

// RenderReport produces a lipgloss-styled run summary string.
func RenderReport(env string, report *provisioning.Report) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(reportTitleStyle.Render(fmt.Sprintf("  webfleet: %s", env)))
	b.WriteString("\n")
	b.WriteString(reportDimStyle.Render("  " + strings.Repeat("═", 36)))
	b.WriteString("\n\n")

	if report.ProvisionErr != nil {
		b.WriteString(reportRedStyle.Render(fmt.Sprintf("  provisioning failed: %v", report.ProvisionErr)))
	} else {
		b.WriteString(reportGreenStyle.Render("  provisioning succeeded"))
	}
	b.WriteString("\n\n")

	renderResources(&b, report)
	renderCleanup(&b, report)

	return b.String()
}

func renderResources(b *strings.Builder, report *provisioning.Report) {
	res := report.Resources
	if res == nil {
		return
	}

	b.WriteString(reportSectionStyle.Render("  Resources"))
	b.WriteString("\n")

	if res.Group != nil {
		fmt.Fprintf(b, "    group    %s (%s)\n", res.Group.Name, res.Group.Region)
	}
	if res.Domain != nil {
		fmt.Fprintf(b, "    domain   %s\n", res.Domain.Name)
	}
	if res.Certificate != nil {
		fmt.Fprintf(b, "    cert     %s\n", res.Certificate.PFXPath)
	}
	for _, plan := range res.Plans {
		fmt.Fprintf(b, "    plan     %s (%s, capacity %d)\n", plan.Name, plan.Region, plan.TargetCapacity)
	}
	for _, app := range res.Apps {
		fmt.Fprintf(b, "    app      %s (%s)\n", app.Name, app.Region)
	}
	if res.Profile != nil {
		fmt.Fprintf(b, "    profile  %s (%s)\n", res.Profile.Name, res.Profile.FQDN)
	}
	b.WriteString("\n")
}

func renderCleanup(b *strings.Builder, report *provisioning.Report) {
	b.WriteString(reportSectionStyle.Render("  Cleanup"))
	b.WriteString("\n")

	switch {
	case !report.CleanupAttempted:
		b.WriteString(reportDimStyle.Render("    environment kept"))
	case report.CleanupErr != nil:
		b.WriteString(reportRedStyle.Render(fmt.Sprintf("    resource group deletion failed: %v", report.CleanupErr)))
	default:
		b.WriteString(reportGreenStyle.Render("    resource group deleted"))
	}
	b.WriteString("\n")
}
