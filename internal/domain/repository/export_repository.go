package repository

import (
	"github.com/diillson/ai-roi-playground/internal/domain/entity"
)

// ExportRepository writes projection reports to disk and returns the absolute path written.
type ExportRepository interface {
	ExportToCSV(reports []entity.ProjectionReport, filename, outputDir string) (string, error)
	ExportToJSON(reports []entity.ProjectionReport, filename, outputDir string) (string, error)
	ExportToPDF(reports []entity.ProjectionReport, filename, outputDir string) (string, error)
	ExportToMarkdown(reports []entity.ProjectionReport, filename, outputDir string) (string, error)
	ExportToHTML(reports []entity.ProjectionReport, filename, outputDir string) (string, error)
}
