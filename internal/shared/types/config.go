package types

// Config represents the application configuration that can be loaded from a file.
// Pointer fields distinguish "not set" from an explicit zero.
type Config struct {
	Organization  string   `json:"organization" yaml:"organization" toml:"organization"`
	AIShare       *float64 `json:"ai_share" yaml:"ai_share" toml:"ai_share"`
	ROIPerUnit    *float64 `json:"roi_per_unit" yaml:"roi_per_unit" toml:"roi_per_unit"`
	Horizon       int      `json:"horizon" yaml:"horizon" toml:"horizon"`
	RevenueUplift bool     `json:"revenue_uplift" yaml:"revenue_uplift" toml:"revenue_uplift"`
	CatalogFile   string   `json:"catalog_file" yaml:"catalog_file" toml:"catalog_file"`
	ReportName    string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType    []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir           string   `json:"dir" yaml:"dir" toml:"dir"`
}
