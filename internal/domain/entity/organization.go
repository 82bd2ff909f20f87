package entity

// OrganizationProfile represents the financial profile of an organization in the catalog.
// Monetary values are expressed in billions.
type OrganizationProfile struct {
	ID                string  `json:"id" yaml:"id" toml:"id"`
	DisplayName       string  `json:"display_name" yaml:"display_name" toml:"display_name"`
	AnnualRevenue     float64 `json:"annual_revenue" yaml:"annual_revenue" toml:"annual_revenue"`
	TechSpend         float64 `json:"tech_spend" yaml:"tech_spend" toml:"tech_spend"`
	DefaultROIPerUnit float64 `json:"default_roi_per_unit" yaml:"default_roi_per_unit" toml:"default_roi_per_unit"`
}
