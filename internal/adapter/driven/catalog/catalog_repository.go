package catalog

import (
	"fmt"
	"strings"

	"github.com/diillson/ai-roi-playground/internal/adapter/driven/fileformat"
	"github.com/diillson/ai-roi-playground/internal/domain/entity"
	"github.com/diillson/ai-roi-playground/internal/domain/repository"
	"github.com/diillson/ai-roi-playground/internal/shared/types"
)

const defaultOrganizationID = "jpm"

// builtinOrganizations is the reference table, in display order.
var builtinOrganizations = []entity.OrganizationProfile{
	{ID: "jpm", DisplayName: "JPMorgan Chase", AnnualRevenue: 158.1, TechSpend: 15.5, DefaultROIPerUnit: 0.44},
	{ID: "boa", DisplayName: "Bank of America", AnnualRevenue: 98.6, TechSpend: 12, DefaultROIPerUnit: 0.35},
	{ID: "uob", DisplayName: "United Overseas Bank (UOB)", AnnualRevenue: 10.6, TechSpend: 0.83, DefaultROIPerUnit: 0.28},
}

// catalogFile is the on-disk layout of an organization catalog.
type catalogFile struct {
	Organizations []entity.OrganizationProfile `json:"organizations" yaml:"organizations" toml:"organizations"`
}

// CatalogRepositoryImpl implementa o CatalogRepository. It is never mutated after construction.
type CatalogRepositoryImpl struct {
	order    []string
	profiles map[string]entity.OrganizationProfile
}

// NewCatalogRepository cria o catálogo com as organizações de referência.
func NewCatalogRepository() repository.CatalogRepository {
	return build(builtinOrganizations)
}

// NewCatalogRepositoryFromFile returns the reference catalog extended with the organizations
// declared in a TOML, YAML or JSON file. An entry whose id already exists replaces the
// reference entry in place.
func NewCatalogRepositoryFromFile(filePath string) (repository.CatalogRepository, error) {
	var file catalogFile
	if err := fileformat.DecodeFile(filePath, &file); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", filePath, err)
	}

	seen := make(map[string]bool, len(file.Organizations))
	entries := append([]entity.OrganizationProfile(nil), builtinOrganizations...)
	for i, org := range file.Organizations {
		org.ID = strings.TrimSpace(org.ID)
		if org.ID == "" {
			return nil, fmt.Errorf("catalog file %s, entry %d: %w", filePath, i+1, types.ErrEmptyCatalogEntry)
		}
		if seen[org.ID] {
			return nil, fmt.Errorf("catalog file %s: %w: %s", filePath, types.ErrDuplicateOrganization, org.ID)
		}
		seen[org.ID] = true

		if strings.TrimSpace(org.DisplayName) == "" {
			org.DisplayName = org.ID
		}

		replaced := false
		for j := range entries {
			if entries[j].ID == org.ID {
				entries[j] = org
				replaced = true
				break
			}
		}
		if !replaced {
			entries = append(entries, org)
		}
	}

	return build(entries), nil
}

func build(entries []entity.OrganizationProfile) *CatalogRepositoryImpl {
	c := &CatalogRepositoryImpl{
		order:    make([]string, 0, len(entries)),
		profiles: make(map[string]entity.OrganizationProfile, len(entries)),
	}
	for _, org := range entries {
		c.order = append(c.order, org.ID)
		c.profiles[org.ID] = org
	}
	return c
}

// List returns a copy of every organization in catalog order.
func (c *CatalogRepositoryImpl) List() []entity.OrganizationProfile {
	out := make([]entity.OrganizationProfile, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.profiles[id])
	}
	return out
}

// Get returns the organization registered under id.
func (c *CatalogRepositoryImpl) Get(id string) (entity.OrganizationProfile, error) {
	org, ok := c.profiles[id]
	if !ok {
		return entity.OrganizationProfile{}, fmt.Errorf("%w: %q", types.ErrOrganizationNotFound, id)
	}
	return org, nil
}

// DefaultID returns the organization selected when none is requested.
func (c *CatalogRepositoryImpl) DefaultID() string {
	if _, ok := c.profiles[defaultOrganizationID]; ok {
		return defaultOrganizationID
	}
	if len(c.order) > 0 {
		return c.order[0]
	}
	return ""
}
