package entity

import "math"

// Horizon é o número de anos projetados.
type Horizon int

const (
	Horizon3Years Horizon = 3
	Horizon5Years Horizon = 5
)

// Valid reports whether h is one of the supported horizons.
func (h Horizon) Valid() bool {
	return h == Horizon3Years || h == Horizon5Years
}

const (
	// DefaultDiscountRate is the fixed annual rate used to present-value the benefits.
	DefaultDiscountRate = 0.08
	// RevenueUpliftPct is the share of annual revenue added to each year when uplift is enabled.
	RevenueUpliftPct = 0.003

	DefaultAIShare = 0.25
	DefaultHorizon = Horizon5Years

	MinAIShare    = 0.0
	MaxAIShare    = 0.5
	MinROIPerUnit = 0.2
	MaxROIPerUnit = 1.5
	ParameterStep = 0.05
)

// ProjectionParameters holds the user-controlled inputs of a projection.
type ProjectionParameters struct {
	AISharePct           float64 `json:"ai_share_pct"`
	ROIPerUnit           float64 `json:"roi_per_unit"`
	HorizonYears         Horizon `json:"horizon_years"`
	IncludeRevenueUplift bool    `json:"include_revenue_uplift"`
	DiscountRate         float64 `json:"discount_rate"`
}

// DefaultParameters returns the starting parameters for the given organization.
func DefaultParameters(profile OrganizationProfile) ProjectionParameters {
	return ProjectionParameters{
		AISharePct:   DefaultAIShare,
		ROIPerUnit:   profile.DefaultROIPerUnit,
		HorizonYears: DefaultHorizon,
		DiscountRate: DefaultDiscountRate,
	}
}

// ProjectionPoint is one year of a projection.
type ProjectionPoint struct {
	YearLabel                   string  `json:"year"`
	AdoptionRate                float64 `json:"adoption_rate"`
	NominalBenefit              float64 `json:"nominal_benefit"`
	PresentValue                float64 `json:"present_value"`
	CumulativeDiscountedBenefit float64 `json:"cumulative_discounted_benefit"`
}

// Projection is the full result of projecting one organization with one parameter set.
// ROIMultiple is not finite when AISpend is zero.
type Projection struct {
	AISpend                float64           `json:"ai_spend"`
	PotentialAnnualBenefit float64           `json:"potential_annual_benefit"`
	Points                 []ProjectionPoint `json:"points"`
	NPV                    float64           `json:"npv"`
	ROIMultiple            float64           `json:"roi_multiple"`
}

// FirstYearBenefit returns the nominal benefit of the first projected year.
func (p Projection) FirstYearBenefit() float64 {
	if len(p.Points) == 0 {
		return 0
	}
	return p.Points[0].NominalBenefit
}

// HasFiniteROIMultiple reports whether ROIMultiple is a usable number.
func (p Projection) HasFiniteROIMultiple() bool {
	return !math.IsInf(p.ROIMultiple, 0) && !math.IsNaN(p.ROIMultiple)
}
