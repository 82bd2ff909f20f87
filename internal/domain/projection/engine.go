// Package projection computes the year-by-year AI benefit projection and its discounted NPV.
package projection

import (
	"fmt"
	"math"

	"github.com/diillson/ai-roi-playground/internal/domain/entity"
)

// Adoption curves are fixed policy constants; outputs must match them exactly.
var (
	adoptionCurve3Years = []float64{0.30, 0.60, 0.90}
	adoptionCurve5Years = []float64{0.30, 0.60, 0.90, 0.95, 1.00}
)

// AdoptionCurve returns a copy of the adoption fractions used for the given horizon.
// Any horizon other than three years uses the five-year curve.
func AdoptionCurve(horizon entity.Horizon) []float64 {
	curve := adoptionCurve5Years
	if horizon == entity.Horizon3Years {
		curve = adoptionCurve3Years
	}
	out := make([]float64, len(curve))
	copy(out, curve)
	return out
}

// Project computes the projection for one organization and parameter set.
//
// Inputs are used as given: out-of-range parameters are not clamped and a zero AI spend
// yields a non-finite ROIMultiple.
func Project(profile entity.OrganizationProfile, params entity.ProjectionParameters) entity.Projection {
	aiSpend := profile.TechSpend * params.AISharePct
	potential := aiSpend * params.ROIPerUnit

	uplift := 0.0
	if params.IncludeRevenueUplift {
		uplift = profile.AnnualRevenue * entity.RevenueUpliftPct
	}

	curve := AdoptionCurve(params.HorizonYears)
	points := make([]entity.ProjectionPoint, len(curve))

	cumulative := 0.0
	for i, rate := range curve {
		nominal := potential*rate + uplift
		pv := nominal / math.Pow(1+params.DiscountRate, float64(i+1))
		cumulative += pv

		points[i] = entity.ProjectionPoint{
			YearLabel:                   fmt.Sprintf("Y%d", i+1),
			AdoptionRate:                rate,
			NominalBenefit:              nominal,
			PresentValue:                pv,
			CumulativeDiscountedBenefit: cumulative,
		}
	}

	return entity.Projection{
		AISpend:                aiSpend,
		PotentialAnnualBenefit: potential,
		Points:                 points,
		NPV:                    cumulative,
		ROIMultiple:            cumulative / aiSpend,
	}
}
