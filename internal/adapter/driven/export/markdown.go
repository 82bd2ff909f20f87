package export

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/ai-roi-playground/internal/domain/entity"
	"github.com/diillson/ai-roi-playground/pkg/console"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const htmlStyle = `body{font-family:-apple-system,Segoe UI,Helvetica,Arial,sans-serif;background:#f8fafc;color:#1e293b;margin:0;padding:2rem;}
.wrap{max-width:760px;margin:0 auto;background:#fff;padding:1.5rem 2rem;border-radius:8px;box-shadow:0 1px 3px rgba(0,0,0,.1);}
h1{text-align:center;font-weight:600;} h2{border-bottom:1px solid #e2e8f0;padding-bottom:.3rem;}
table{width:100%;border-collapse:collapse;font-size:.9rem;margin:.8rem 0;}
th,td{border:1px solid #cbd5e1;padding:.35rem .5rem;text-align:left;}
thead th{background:#f1f5f9;}
footer{text-align:center;font-size:.75rem;color:#94a3b8;margin-top:1.5rem;}`

// ExportToMarkdown writes the reports as a GitHub-flavored Markdown document.
func (r *ExportRepositoryImpl) ExportToMarkdown(reports []entity.ProjectionReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "md")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFilename, []byte(RenderMarkdown(reports)), 0644); err != nil {
		return "", fmt.Errorf("error writing Markdown file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToHTML renders the Markdown report to a standalone HTML page.
func (r *ExportRepositoryImpl) ExportToHTML(reports []entity.ProjectionReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "html")
	if err != nil {
		return "", err
	}

	var content bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(RenderMarkdown(reports)), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	title := "AI ROI Playground"
	if len(reports) == 1 {
		title += " - " + reports[0].Organization.DisplayName
	}

	page := "<!doctype html><html><head><meta charset='utf-8'><title>" + html.EscapeString(title) + "</title>" +
		"<style>" + htmlStyle + "</style></head><body><div class='wrap'>" +
		content.String() +
		"<footer>Estimates illustrative only.</footer></div></body></html>\n"

	if err := os.WriteFile(outputFilename, []byte(page), 0644); err != nil {
		return "", fmt.Errorf("error writing HTML file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// RenderMarkdown builds the Markdown body shared by the md and html reports.
func RenderMarkdown(reports []entity.ProjectionReport) string {
	var b strings.Builder
	b.WriteString("# Bank AI ROI Playground\n\n")

	if len(reports) > 1 {
		b.WriteString("## Comparison\n\n")
		b.WriteString("| Organization | ROI / $ | AI Spend | Potential Savings | Year-1 | NPV | ROI multiple |\n")
		b.WriteString("|---|---:|---:|---:|---:|---:|---:|\n")
		for _, rep := range reports {
			fmt.Fprintf(&b, "| %s | %.2f | %s | %s | %s | %s | %s |\n",
				escapeCell(rep.Organization.DisplayName),
				rep.Parameters.ROIPerUnit,
				console.FormatBillions(rep.Projection.AISpend),
				console.FormatBillions(rep.Projection.PotentialAnnualBenefit),
				console.FormatBillions(rep.Projection.FirstYearBenefit()),
				console.FormatBillions(rep.Projection.NPV),
				console.FormatMultiple(rep.Projection.ROIMultiple))
		}
		b.WriteString("\n")
	}

	for _, rep := range reports {
		org, params, proj := rep.Organization, rep.Parameters, rep.Projection

		uplift := "off"
		if params.IncludeRevenueUplift {
			uplift = "+0.3 % / yr"
		}

		fmt.Fprintf(&b, "## %s\n\n", org.DisplayName)
		fmt.Fprintf(&b, "- AI share of tech budget: **%s**\n", console.FormatPercent(params.AISharePct))
		fmt.Fprintf(&b, "- ROI ($ saved per $AI): **%.2f**\n", params.ROIPerUnit)
		fmt.Fprintf(&b, "- Horizon: **%d yrs**\n", params.HorizonYears)
		fmt.Fprintf(&b, "- Revenue uplift: **%s**\n", uplift)
		fmt.Fprintf(&b, "- Discount rate: **%s**\n\n", console.FormatPercent(params.DiscountRate))

		b.WriteString("| Revenue | Tech Spend | AI Spend | Potential Savings |\n")
		b.WriteString("|---:|---:|---:|---:|\n")
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n\n",
			console.FormatBillions(org.AnnualRevenue),
			console.FormatBillions(org.TechSpend),
			console.FormatBillions(proj.AISpend),
			console.FormatBillions(proj.PotentialAnnualBenefit))

		fmt.Fprintf(&b, "Year-1 savings estimate: **%s**  \n", console.FormatBillions(proj.FirstYearBenefit()))
		fmt.Fprintf(&b, "NPV Benefits (%d yrs, %s): **%s**  \n", params.HorizonYears,
			console.FormatPercent(params.DiscountRate), console.FormatBillions(proj.NPV))
		fmt.Fprintf(&b, "ROI multiple vs AI Spend: **%s**\n\n", console.FormatMultiple(proj.ROIMultiple))

		b.WriteString("| Year | Adoption | Nominal Benefit | Present Value | Cumulative NPV |\n")
		b.WriteString("|---|---:|---:|---:|---:|\n")
		for _, p := range proj.Points {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				p.YearLabel,
				console.FormatPercent(p.AdoptionRate),
				console.FormatBillionsPrecise(p.NominalBenefit),
				console.FormatBillionsPrecise(p.PresentValue),
				console.FormatBillionsPrecise(p.CumulativeDiscountedBenefit))
		}

		fmt.Fprintf(&b, "\n_Report %s, generated %s._\n\n", rep.ID, rep.GeneratedAt.Format("2006-01-02 15:04 MST"))
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
