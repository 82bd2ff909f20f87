package entity

import "time"

// ProjectionReport bundles a projection with the inputs that produced it, ready for export.
type ProjectionReport struct {
	ID           string               `json:"id"`
	GeneratedAt  time.Time            `json:"generated_at"`
	Organization OrganizationProfile  `json:"organization"`
	Parameters   ProjectionParameters `json:"parameters"`
	Projection   Projection           `json:"projection"`
}
