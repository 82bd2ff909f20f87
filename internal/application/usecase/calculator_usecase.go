package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diillson/ai-roi-playground/internal/domain/entity"
	"github.com/diillson/ai-roi-playground/internal/domain/projection"
	"github.com/diillson/ai-roi-playground/internal/domain/repository"
	"github.com/diillson/ai-roi-playground/internal/shared/types"
	"github.com/diillson/ai-roi-playground/pkg/console"
	"github.com/google/uuid"
)

// CatalogLoader builds the organization catalog, optionally extended from a file.
type CatalogLoader func(catalogFile string) (repository.CatalogRepository, error)

// CalculatorUseCase handles the main calculator functionality.
type CalculatorUseCase struct {
	loadCatalog CatalogLoader
	exportRepo  repository.ExportRepository
	console     types.ConsoleInterface
	prompter    Prompter
	now         func() time.Time
}

// NewCalculatorUseCase creates a new calculator use case.
func NewCalculatorUseCase(
	loadCatalog CatalogLoader,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	prompter Prompter,
) *CalculatorUseCase {
	return &CalculatorUseCase{
		loadCatalog: loadCatalog,
		exportRepo:  exportRepo,
		console:     console,
		prompter:    prompter,
		now:         time.Now,
	}
}

// RunCalculator é o ponto de entrada do caso de uso.
func (uc *CalculatorUseCase) RunCalculator(ctx context.Context, args *types.CLIArgs) error {
	catalog, err := uc.openCatalog(args.CatalogFile)
	if err != nil {
		return err
	}

	if args.List {
		uc.RenderCatalog(catalog)
		return nil
	}

	if args.Compare {
		reports, err := uc.Compare(catalog, args)
		if err != nil {
			return err
		}
		uc.RenderComparison(reports)
		return uc.ExportReports(ctx, reports, args, "ai-roi-comparison")
	}

	session, err := NewSessionFromArgs(catalog, args)
	if err != nil {
		return err
	}

	uc.RenderSession(session)

	if args.Interactive {
		return uc.RunInteractive(ctx, session, args)
	}

	report := uc.BuildReport(session.Organization(), session.Parameters(), session.Result())
	return uc.ExportReports(ctx, []entity.ProjectionReport{report}, args, "ai-roi-"+session.Organization().ID)
}

func (uc *CalculatorUseCase) openCatalog(catalogFile string) (repository.CatalogRepository, error) {
	if catalogFile == "" {
		return uc.loadCatalog("")
	}

	status := uc.console.Status(fmt.Sprintf("Loading organization catalog from %s", catalogFile))
	catalog, err := uc.loadCatalog(catalogFile)
	status.Stop()
	if err != nil {
		return nil, err
	}
	uc.console.LogSuccess("Loaded %d organizations", len(catalog.List()))
	return catalog, nil
}

// NewSessionFromArgs builds a session and applies the parameters given on the command line.
func NewSessionFromArgs(catalog repository.CatalogRepository, args *types.CLIArgs) (*Session, error) {
	session, err := NewSession(catalog, args.Organization)
	if err != nil {
		return nil, err
	}
	if err := applyArgs(session, args); err != nil {
		return nil, err
	}
	return session, nil
}

func applyArgs(session *Session, args *types.CLIArgs) error {
	if args.Horizon != 0 {
		if err := session.SetHorizon(args.Horizon); err != nil {
			return err
		}
	}
	if args.AIShare != nil {
		session.SetAIShare(*args.AIShare)
	}
	if args.ROIPerUnit != nil {
		session.SetROIPerUnit(*args.ROIPerUnit)
	}
	session.SetRevenueUplift(args.RevenueUplift)
	return nil
}

// Compare projects every catalog organization with the same parameters. Each organization
// uses its own default ROI unless one was given explicitly.
func (uc *CalculatorUseCase) Compare(catalog repository.CatalogRepository, args *types.CLIArgs) ([]entity.ProjectionReport, error) {
	orgs := catalog.List()
	reports := make([]entity.ProjectionReport, 0, len(orgs))
	for _, org := range orgs {
		session, err := NewSession(catalog, org.ID)
		if err != nil {
			return nil, err
		}
		if err := applyArgs(session, args); err != nil {
			return nil, err
		}
		reports = append(reports, uc.BuildReport(session.Organization(), session.Parameters(), session.Result()))
	}
	return reports, nil
}

// BuildReport stamps a projection with an id and generation time.
func (uc *CalculatorUseCase) BuildReport(org entity.OrganizationProfile, params entity.ProjectionParameters, result entity.Projection) entity.ProjectionReport {
	return entity.ProjectionReport{
		ID:           uuid.NewString(),
		GeneratedAt:  uc.now().UTC(),
		Organization: org,
		Parameters:   params,
		Projection:   result,
	}
}

// RenderCatalog mostra a tabela de organizações disponíveis.
func (uc *CalculatorUseCase) RenderCatalog(catalog repository.CatalogRepository) {
	table := uc.console.CreateTable()
	table.AddColumn("ID")
	table.AddColumn("Organization")
	table.AddColumn("Revenue")
	table.AddColumn("Tech Spend")
	table.AddColumn("Default ROI / $")

	for _, org := range catalog.List() {
		table.AddRow(
			org.ID,
			org.DisplayName,
			console.FormatBillions(org.AnnualRevenue),
			console.FormatBillions(org.TechSpend),
			fmt.Sprintf("%.2f", org.DefaultROIPerUnit),
		)
	}

	uc.console.Println(table.Render())
}

// RenderSession mostra métricas, tabela anual e gráfico da sessão atual.
func (uc *CalculatorUseCase) RenderSession(session *Session) {
	org := session.Organization()
	params := session.Parameters()
	result := session.Result()

	uc.console.DisplayPanel(org.DisplayName, parametersSummary(params))

	metrics := uc.console.CreateTable()
	metrics.AddColumn("Revenue")
	metrics.AddColumn("Tech Spend")
	metrics.AddColumn("AI Spend")
	metrics.AddColumn("Potential Savings")
	metrics.AddRow(
		console.FormatBillions(org.AnnualRevenue),
		console.FormatBillions(org.TechSpend),
		console.FormatBillions(result.AISpend),
		console.FormatBillions(result.PotentialAnnualBenefit),
	)
	uc.console.Println(metrics.Render())

	uc.console.Println(fmt.Sprintf("Year-1 savings estimate: %s", console.BrightIndigo(console.FormatBillions(result.FirstYearBenefit()))))
	uc.console.Println(fmt.Sprintf("NPV Benefits (%d yrs, %s): %s",
		params.HorizonYears,
		console.FormatPercent(params.DiscountRate),
		console.BrightGreen(console.FormatBillions(result.NPV))))
	uc.console.Println(fmt.Sprintf("ROI multiple vs AI Spend: %s", console.FormatMultiple(result.ROIMultiple)))

	if !result.HasFiniteROIMultiple() {
		uc.console.LogWarning("AI spend is zero, the ROI multiple is undefined")
	}

	uc.console.Println(yearlyTable(uc.console, result).Render())
	uc.console.DisplayProjectionChart(chartSeries(result), result.AISpend)
}

// RenderComparison mostra uma linha por organização.
func (uc *CalculatorUseCase) RenderComparison(reports []entity.ProjectionReport) {
	if len(reports) == 0 {
		uc.console.LogWarning("No organizations to compare")
		return
	}

	uc.console.DisplayPanel("Organization comparison", parametersSummary(reports[0].Parameters))

	table := uc.console.CreateTable()
	table.AddColumn("Organization")
	table.AddColumn("ROI / $")
	table.AddColumn("AI Spend")
	table.AddColumn("Potential Savings")
	table.AddColumn("Year-1")
	table.AddColumn("NPV")
	table.AddColumn("ROI multiple")

	for _, r := range reports {
		table.AddRow(
			r.Organization.DisplayName,
			fmt.Sprintf("%.2f", r.Parameters.ROIPerUnit),
			console.FormatBillions(r.Projection.AISpend),
			console.FormatBillions(r.Projection.PotentialAnnualBenefit),
			console.FormatBillions(r.Projection.FirstYearBenefit()),
			console.FormatBillions(r.Projection.NPV),
			console.FormatMultiple(r.Projection.ROIMultiple),
		)
	}

	uc.console.Println(table.Render())
}

// ExportReports writes every requested report type. Unknown types are skipped with a warning.
func (uc *CalculatorUseCase) ExportReports(ctx context.Context, reports []entity.ProjectionReport, args *types.CLIArgs, defaultName string) error {
	if len(args.ReportType) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	name := args.ReportName
	if name == "" {
		name = fmt.Sprintf("%s-%s", defaultName, uc.now().Format("20060102-1504"))
	}

	progress := uc.console.Progress(args.ReportType)
	var written []string
	for _, reportType := range args.ReportType {
		path, err := uc.exportOne(reports, strings.ToLower(strings.TrimSpace(reportType)), name, args.Dir)
		progress.Increment()
		if err != nil {
			progress.Stop()
			return err
		}
		if path != "" {
			written = append(written, path)
		}
	}
	progress.Stop()

	for _, path := range written {
		uc.console.LogSuccess("Report saved to %s", path)
	}
	return nil
}

func (uc *CalculatorUseCase) exportOne(reports []entity.ProjectionReport, reportType, name, dir string) (string, error) {
	var (
		path string
		err  error
	)
	switch reportType {
	case "csv":
		path, err = uc.exportRepo.ExportToCSV(reports, name, dir)
	case "json":
		path, err = uc.exportRepo.ExportToJSON(reports, name, dir)
	case "pdf":
		path, err = uc.exportRepo.ExportToPDF(reports, name, dir)
	case "md", "markdown":
		path, err = uc.exportRepo.ExportToMarkdown(reports, name, dir)
	case "html":
		path, err = uc.exportRepo.ExportToHTML(reports, name, dir)
	default:
		uc.console.LogWarning("Unsupported report type '%s', skipping", reportType)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("exporting %s report: %w", reportType, err)
	}
	return path, nil
}

func parametersSummary(params entity.ProjectionParameters) string {
	uplift := "off"
	if params.IncludeRevenueUplift {
		uplift = "+0.3 % / yr"
	}
	return fmt.Sprintf("AI share of tech budget: %s\nROI ($ saved per $AI): %.2f\nHorizon: %d yrs (adoption %s)\nRevenue uplift: %s\nDiscount rate: %s",
		console.FormatPercent(params.AISharePct),
		params.ROIPerUnit,
		params.HorizonYears,
		adoptionSummary(params.HorizonYears),
		uplift,
		console.FormatPercent(params.DiscountRate))
}

func yearlyTable(c types.ConsoleInterface, result entity.Projection) types.TableInterface {
	table := c.CreateTable()
	table.AddColumn("Year")
	table.AddColumn("Adoption")
	table.AddColumn("Nominal Benefit")
	table.AddColumn("Present Value")
	table.AddColumn("Cumulative NPV")
	for _, p := range result.Points {
		table.AddRow(
			p.YearLabel,
			console.FormatPercent(p.AdoptionRate),
			console.FormatBillionsPrecise(p.NominalBenefit),
			console.FormatBillionsPrecise(p.PresentValue),
			console.FormatBillionsPrecise(p.CumulativeDiscountedBenefit),
		)
	}
	return table
}

func chartSeries(result entity.Projection) []types.ChartPoint {
	series := make([]types.ChartPoint, len(result.Points))
	for i, p := range result.Points {
		series[i] = types.ChartPoint{
			Label:      p.YearLabel,
			Nominal:    p.NominalBenefit,
			Cumulative: p.CumulativeDiscountedBenefit,
		}
	}
	return series
}

// adoptionSummary lists the adoption curve applied for the horizon, ex.: "30 % → 60 % → 90 %".
func adoptionSummary(h entity.Horizon) string {
	curve := projection.AdoptionCurve(h)
	parts := make([]string, len(curve))
	for i, r := range curve {
		parts[i] = console.FormatPercent(r)
	}
	return strings.Join(parts, " → ")
}
