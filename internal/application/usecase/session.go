package usecase

import (
	"fmt"
	"math"

	"github.com/diillson/ai-roi-playground/internal/domain/entity"
	"github.com/diillson/ai-roi-playground/internal/domain/projection"
	"github.com/diillson/ai-roi-playground/internal/domain/repository"
	"github.com/diillson/ai-roi-playground/internal/shared/types"
)

// Session holds the calculator state the user edits: the selected organization and the
// current parameters. Every mutation recomputes the projection synchronously and replaces
// the previous result.
type Session struct {
	catalog      repository.CatalogRepository
	organization entity.OrganizationProfile
	params       entity.ProjectionParameters
	result       entity.Projection
}

// NewSession starts a session on the given organization with default parameters.
// An empty orgID selects the catalog default.
func NewSession(catalog repository.CatalogRepository, orgID string) (*Session, error) {
	if orgID == "" {
		orgID = catalog.DefaultID()
	}
	org, err := catalog.Get(orgID)
	if err != nil {
		return nil, err
	}

	s := &Session{
		catalog:      catalog,
		organization: org,
		params:       entity.DefaultParameters(org),
	}
	s.recompute()
	return s, nil
}

// SelectOrganization switches organization and resets the ROI per unit to its default,
// discarding any earlier ROI edit.
func (s *Session) SelectOrganization(id string) error {
	org, err := s.catalog.Get(id)
	if err != nil {
		return err
	}
	s.organization = org
	s.params.ROIPerUnit = org.DefaultROIPerUnit
	s.recompute()
	return nil
}

// SetAIShare sets the share of the tech budget directed to AI, clamped to [0, 0.5]
// and snapped to the 0.05 step.
func (s *Session) SetAIShare(v float64) {
	s.params.AISharePct = ClampToStep(v, entity.MinAIShare, entity.MaxAIShare, entity.ParameterStep)
	s.recompute()
}

// SetROIPerUnit sets the return per dollar of AI spend, clamped to [0.2, 1.5] and snapped
// to the 0.05 step. The value persists until the organization changes.
func (s *Session) SetROIPerUnit(v float64) {
	s.params.ROIPerUnit = ClampToStep(v, entity.MinROIPerUnit, entity.MaxROIPerUnit, entity.ParameterStep)
	s.recompute()
}

// SetHorizon sets the projection horizon. Only 3 and 5 years are accepted.
func (s *Session) SetHorizon(years int) error {
	h := entity.Horizon(years)
	if !h.Valid() {
		return fmt.Errorf("%w: got %d", types.ErrInvalidHorizon, years)
	}
	s.params.HorizonYears = h
	s.recompute()
	return nil
}

// SetRevenueUplift toggles the fixed revenue uplift.
func (s *Session) SetRevenueUplift(on bool) {
	s.params.IncludeRevenueUplift = on
	s.recompute()
}

func (s *Session) Organization() entity.OrganizationProfile { return s.organization }

func (s *Session) Parameters() entity.ProjectionParameters { return s.params }

// Result returns the projection for the current state.
func (s *Session) Result() entity.Projection { return s.result }

func (s *Session) recompute() {
	s.result = projection.Project(s.organization, s.params)
}

// ClampToStep clamps v to [min, max] and rounds it to the nearest multiple of step.
// NaN maps to min.
func ClampToStep(v, min, max, step float64) float64 {
	if math.IsNaN(v) || v < min {
		v = min
	}
	if v > max {
		v = max
	}
	if step > 0 {
		v = math.Round(v/step) * step
	}
	// keep slider values free of binary noise, e.g. 0.15000000000000002
	return math.Round(v*1e6) / 1e6
}
