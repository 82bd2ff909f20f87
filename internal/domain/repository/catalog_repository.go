package repository

import "github.com/diillson/ai-roi-playground/internal/domain/entity"

// CatalogRepository is the read-only table of organizations a projection can be run for.
type CatalogRepository interface {
	List() []entity.OrganizationProfile
	Get(id string) (entity.OrganizationProfile, error)
	DefaultID() string
}
