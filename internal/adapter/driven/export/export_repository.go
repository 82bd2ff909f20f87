package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/diillson/ai-roi-playground/internal/domain/entity"
	"github.com/diillson/ai-roi-playground/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV writes one row per projected year of every report.
func (r *ExportRepositoryImpl) ExportToCSV(reports []entity.ProjectionReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{
		"Report ID", "Organization ID", "Organization", "Revenue (B)", "Tech Spend (B)",
		"AI Share", "ROI per $", "Horizon (yrs)", "Revenue Uplift", "Discount Rate",
		"AI Spend (B)", "Potential Savings (B)",
		"Year", "Adoption", "Nominal Benefit (B)", "Present Value (B)", "Cumulative NPV (B)",
		"NPV (B)", "ROI Multiple",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, rep := range reports {
		org, params, proj := rep.Organization, rep.Parameters, rep.Projection
		for _, p := range proj.Points {
			record := []string{
				rep.ID,
				org.ID,
				org.DisplayName,
				formatNumber(org.AnnualRevenue),
				formatNumber(org.TechSpend),
				formatNumber(params.AISharePct),
				formatNumber(params.ROIPerUnit),
				strconv.Itoa(int(params.HorizonYears)),
				strconv.FormatBool(params.IncludeRevenueUplift),
				formatNumber(params.DiscountRate),
				formatNumber(proj.AISpend),
				formatNumber(proj.PotentialAnnualBenefit),
				p.YearLabel,
				formatNumber(p.AdoptionRate),
				formatNumber(p.NominalBenefit),
				formatNumber(p.PresentValue),
				formatNumber(p.CumulativeDiscountedBenefit),
				formatNumber(proj.NPV),
				formatNumber(proj.ROIMultiple),
			}
			if err := writer.Write(record); err != nil {
				return "", fmt.Errorf("error writing CSV row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// jsonReport is the exported shape of a report. The ROI multiple is null when it is not
// finite, since JSON cannot carry NaN or infinities.
type jsonReport struct {
	ID                     string                      `json:"id"`
	GeneratedAt            time.Time                   `json:"generated_at"`
	Organization           entity.OrganizationProfile  `json:"organization"`
	Parameters             entity.ProjectionParameters `json:"parameters"`
	AISpend                float64                     `json:"ai_spend"`
	PotentialAnnualBenefit float64                     `json:"potential_annual_benefit"`
	FirstYearBenefit       float64                     `json:"first_year_benefit"`
	Points                 []entity.ProjectionPoint    `json:"points"`
	NPV                    float64                     `json:"npv"`
	ROIMultiple            *float64                    `json:"roi_multiple"`
	ROIMultipleFinite      bool                        `json:"roi_multiple_finite"`
}

func (r *ExportRepositoryImpl) ExportToJSON(reports []entity.ProjectionReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	out := make([]jsonReport, 0, len(reports))
	for _, rep := range reports {
		jr := jsonReport{
			ID:                     rep.ID,
			GeneratedAt:            rep.GeneratedAt,
			Organization:           rep.Organization,
			Parameters:             rep.Parameters,
			AISpend:                rep.Projection.AISpend,
			PotentialAnnualBenefit: rep.Projection.PotentialAnnualBenefit,
			FirstYearBenefit:       rep.Projection.FirstYearBenefit(),
			Points:                 rep.Projection.Points,
			NPV:                    rep.Projection.NPV,
			ROIMultipleFinite:      rep.Projection.HasFiniteROIMultiple(),
		}
		if jr.ROIMultipleFinite {
			v := rep.Projection.ROIMultiple
			jr.ROIMultiple = &v
		}
		out = append(out, jr)
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename monta o caminho do relatório e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", base, ext)), nil
}

// formatNumber renders a value for machine-readable exports. Non-finite values become empty.
func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
