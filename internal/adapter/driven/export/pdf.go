package export

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/diillson/ai-roi-playground/internal/domain/entity"
	"github.com/diillson/ai-roi-playground/pkg/console"
	"github.com/jung-kurt/gofpdf"
)

type rgb [3]int

var (
	headerColor     = rgb{40, 40, 40}
	headerTextColor = rgb{255, 255, 255}
	sectionColor    = rgb{0, 0, 0}
	bodyTextColor   = rgb{50, 50, 50}
	lineColor       = rgb{200, 200, 200}
	nominalColor    = rgb{79, 70, 229}
	cumulativeColor = rgb{5, 150, 105}
	spendColor      = rgb{245, 158, 11}
)

// ExportToPDF writes one page per report: metrics, yearly table and benefit chart.
func (r *ExportRepositoryImpl) ExportToPDF(reports []entity.ProjectionReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("AI ROI Playground", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// the footer of a page is drawn when the next page opens, so current is only
	// updated after AddPage
	var current entity.ProjectionReport
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Report %s, generated %s. Estimates illustrative only.",
			current.ID, current.GeneratedAt.Format("2006-01-02 15:04 MST"))), "", 0, "C", false, 0, "")
	})

	for _, rep := range reports {
		pdf.AddPage()
		current = rep
		drawReportHeader(pdf, tr, rep)
		drawMetrics(pdf, tr, rep)
		drawYearlyTable(pdf, tr, rep.Projection)
		drawChart(pdf, tr, rep.Projection)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func setText(pdf *gofpdf.Fpdf, c rgb) { pdf.SetTextColor(c[0], c[1], c[2]) }
func setDraw(pdf *gofpdf.Fpdf, c rgb) { pdf.SetDrawColor(c[0], c[1], c[2]) }
func setFill(pdf *gofpdf.Fpdf, c rgb) { pdf.SetFillColor(c[0], c[1], c[2]) }

func drawSectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Arial", "B", 12)
	setText(pdf, sectionColor)
	pdf.Cell(0, 8, tr(title))
	pdf.Ln(7)
	setDraw(pdf, lineColor)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)
}

func drawReportHeader(pdf *gofpdf.Fpdf, tr func(string) string, rep entity.ProjectionReport) {
	setFill(pdf, headerColor)
	setText(pdf, headerTextColor)
	pdf.SetFont("Arial", "B", 14)
	name := rep.Organization.DisplayName
	if len(name) > 80 {
		name = name[:77] + "..."
	}
	pdf.CellFormat(0, 12, tr("  "+name), "", 1, "L", true, 0, "")

	params := rep.Parameters
	uplift := "off"
	if params.IncludeRevenueUplift {
		uplift = "+0.3 % / yr"
	}
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	setText(pdf, bodyTextColor)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  AI share %s  |  ROI %.2f per $  |  %d yrs  |  revenue uplift %s  |  discount %s",
		console.FormatPercent(params.AISharePct), params.ROIPerUnit, params.HorizonYears, uplift,
		console.FormatPercent(params.DiscountRate))), "", 1, "L", true, 0, "")
	pdf.Ln(8)
}

func drawMetrics(pdf *gofpdf.Fpdf, tr func(string) string, rep entity.ProjectionReport) {
	drawSectionTitle(pdf, tr, "Summary")

	org, proj := rep.Organization, rep.Projection
	labels := []string{"Revenue", "Tech Spend", "AI Spend", "Potential Savings"}
	values := []string{
		console.FormatBillions(org.AnnualRevenue),
		console.FormatBillions(org.TechSpend),
		console.FormatBillions(proj.AISpend),
		console.FormatBillions(proj.PotentialAnnualBenefit),
	}

	colWidth := 190.0 / float64(len(labels))
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	for _, l := range labels {
		pdf.CellFormat(colWidth, 5, tr(l), "", 0, "L", false, 0, "")
	}
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	setText(pdf, bodyTextColor)
	for _, v := range values {
		pdf.CellFormat(colWidth, 8, tr(v), "", 0, "L", false, 0, "")
	}
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(60, 6, tr("Year-1 savings estimate:"), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	setText(pdf, nominalColor)
	pdf.CellFormat(0, 6, tr(console.FormatBillions(proj.FirstYearBenefit())), "", 1, "L", false, 0, "")

	setText(pdf, bodyTextColor)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(60, 6, tr(fmt.Sprintf("NPV Benefits (%d yrs, %s):", rep.Parameters.HorizonYears,
		console.FormatPercent(rep.Parameters.DiscountRate))), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	setText(pdf, cumulativeColor)
	pdf.CellFormat(0, 6, tr(console.FormatBillions(proj.NPV)), "", 1, "L", false, 0, "")

	setText(pdf, bodyTextColor)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(60, 6, tr("ROI multiple vs AI Spend:"), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, tr(pdfMultiple(proj.ROIMultiple)), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func drawYearlyTable(pdf *gofpdf.Fpdf, tr func(string) string, proj entity.Projection) {
	drawSectionTitle(pdf, tr, "Yearly projection")

	headers := []string{"Year", "Adoption", "Nominal Benefit", "Present Value", "Cumulative NPV"}
	widths := []float64{24, 30, 45, 45, 46}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	setText(pdf, bodyTextColor)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, p := range proj.Points {
		cells := []string{
			p.YearLabel,
			console.FormatPercent(p.AdoptionRate),
			console.FormatBillionsPrecise(p.NominalBenefit),
			console.FormatBillionsPrecise(p.PresentValue),
			console.FormatBillionsPrecise(p.CumulativeDiscountedBenefit),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(8)
}

// drawChart plots nominal benefit (solid) and cumulative discounted benefit (dashed) per
// year, plus a horizontal reference line at the AI spend.
func drawChart(pdf *gofpdf.Fpdf, tr func(string) string, proj entity.Projection) {
	drawSectionTitle(pdf, tr, "Benefit projection")

	const (
		left   = 30.0
		width  = 165.0
		height = 65.0
		ticks  = 4
	)
	top := pdf.GetY() + 2
	bottom := top + height

	maxValue := chartMax(proj)
	y := func(v float64) float64 { return bottom - v/maxValue*height }

	// grid and y-axis labels
	pdf.SetFont("Arial", "", 7)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetLineWidth(0.1)
	setDraw(pdf, lineColor)
	pdf.SetDashPattern([]float64{1, 1}, 0)
	for i := 0; i <= ticks; i++ {
		v := maxValue * float64(i) / ticks
		pdf.Line(left, y(v), left+width, y(v))
		pdf.Text(left-12, y(v)+1, tr(console.FormatBillions(v)))
	}
	pdf.SetDashPattern([]float64{}, 0)

	n := len(proj.Points)
	if n == 0 {
		pdf.SetY(bottom + 10)
		return
	}
	step := width / float64(n)
	x := func(i int) float64 { return left + step*(float64(i)+0.5) }

	for i, p := range proj.Points {
		pdf.Text(x(i)-2, bottom+5, tr(p.YearLabel))
	}

	if proj.AISpend > 0 && !math.IsInf(proj.AISpend, 0) {
		pdf.SetLineWidth(0.4)
		setDraw(pdf, spendColor)
		pdf.SetDashPattern([]float64{2, 2}, 0)
		pdf.Line(left, y(proj.AISpend), left+width, y(proj.AISpend))
		pdf.SetDashPattern([]float64{}, 0)
		setText(pdf, spendColor)
		pdf.Text(left+2, y(proj.AISpend)-1.5, tr("AI Spend"))
	}

	pdf.SetLineWidth(0.6)
	setDraw(pdf, nominalColor)
	setFill(pdf, nominalColor)
	for i, p := range proj.Points {
		if i > 0 {
			pdf.Line(x(i-1), y(proj.Points[i-1].NominalBenefit), x(i), y(p.NominalBenefit))
		}
		pdf.Circle(x(i), y(p.NominalBenefit), 0.9, "F")
	}

	setDraw(pdf, cumulativeColor)
	pdf.SetDashPattern([]float64{2, 1.5}, 0)
	for i := 1; i < n; i++ {
		pdf.Line(x(i-1), y(proj.Points[i-1].CumulativeDiscountedBenefit), x(i), y(proj.Points[i].CumulativeDiscountedBenefit))
	}
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetLineWidth(0.2)

	// legend
	legendY := bottom + 11
	pdf.SetFont("Arial", "", 8)
	drawLegendEntry(pdf, tr, left, legendY, nominalColor, "Nominal benefit")
	drawLegendEntry(pdf, tr, left+50, legendY, cumulativeColor, "Cumulative discounted benefit")
	drawLegendEntry(pdf, tr, left+115, legendY, spendColor, "AI spend")

	pdf.SetY(legendY + 6)
}

func drawLegendEntry(pdf *gofpdf.Fpdf, tr func(string) string, x, y float64, c rgb, label string) {
	setFill(pdf, c)
	pdf.Rect(x, y-2.5, 6, 2.5, "F")
	setText(pdf, bodyTextColor)
	pdf.Text(x+8, y, tr(label))
}

// chartMax returns the top of the y-axis: the largest finite value drawn, or 1 when the
// chart is empty.
func chartMax(proj entity.Projection) float64 {
	maxValue := 0.0
	consider := func(v float64) {
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v > maxValue {
			maxValue = v
		}
	}
	consider(proj.AISpend)
	for _, p := range proj.Points {
		consider(p.NominalBenefit)
		consider(p.CumulativeDiscountedBenefit)
	}
	if maxValue == 0 {
		return 1
	}
	return maxValue * 1.1
}

// pdfMultiple is FormatMultiple restricted to characters the core PDF fonts can encode.
func pdfMultiple(v float64) string {
	switch {
	case math.IsNaN(v):
		return "n/a"
	case math.IsInf(v, 0):
		return "unbounded (no AI spend)"
	}
	return fmt.Sprintf("%.2fx", v)
}
