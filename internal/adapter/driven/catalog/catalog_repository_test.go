package catalog_test

import (
	"os"
	"path/filepath"

	"github.com/diillson/ai-roi-playground/internal/adapter/driven/catalog"
	"github.com/diillson/ai-roi-playground/internal/domain/entity"
	"github.com/diillson/ai-roi-playground/internal/shared/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ids(orgs []entity.OrganizationProfile) []string {
	out := make([]string, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, o.ID)
	}
	return out
}

var _ = Describe("CatalogRepository", func() {
	Describe("reference catalog", func() {
		repo := catalog.NewCatalogRepository()

		It("lists the reference banks in order", func() {
			Expect(ids(repo.List())).To(Equal([]string{"jpm", "boa", "uob"}))
		})

		It("selects JPMorgan by default", func() {
			Expect(repo.DefaultID()).To(Equal("jpm"))
		})

		It("returns the reference profile", func() {
			org, err := repo.Get("boa")
			Expect(err).NotTo(HaveOccurred())
			Expect(org).To(Equal(entity.OrganizationProfile{
				ID:                "boa",
				DisplayName:       "Bank of America",
				AnnualRevenue:     98.6,
				TechSpend:         12,
				DefaultROIPerUnit: 0.35,
			}))
		})

		It("fails for unknown ids", func() {
			_, err := repo.Get("hsbc")
			Expect(err).To(MatchError(types.ErrOrganizationNotFound))
		})

		It("is not affected by changes to listed profiles", func() {
			list := repo.List()
			list[0].TechSpend = 0
			list[0].DisplayName = "changed"

			org, err := repo.Get("jpm")
			Expect(err).NotTo(HaveOccurred())
			Expect(org.TechSpend).To(Equal(15.5))
			Expect(org.DisplayName).To(Equal("JPMorgan Chase"))
		})
	})

	Describe("catalog files", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		write := func(name, content string) string {
			path := filepath.Join(dir, name)
			Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
			return path
		}

		It("appends organizations from YAML", func() {
			path := write("banks.yaml", `
organizations:
  - id: dbs
    display_name: DBS Bank
    annual_revenue: 15.3
    tech_spend: 1.2
    default_roi_per_unit: 0.3
`)
			repo, err := catalog.NewCatalogRepositoryFromFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids(repo.List())).To(Equal([]string{"jpm", "boa", "uob", "dbs"}))

			org, err := repo.Get("dbs")
			Expect(err).NotTo(HaveOccurred())
			Expect(org.TechSpend).To(Equal(1.2))
		})

		It("replaces reference entries from TOML in place", func() {
			path := write("banks.toml", `
[[organizations]]
id = "boa"
display_name = "BofA"
annual_revenue = 100.0
tech_spend = 13.0
default_roi_per_unit = 0.4
`)
			repo, err := catalog.NewCatalogRepositoryFromFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids(repo.List())).To(Equal([]string{"jpm", "boa", "uob"}))

			org, err := repo.Get("boa")
			Expect(err).NotTo(HaveOccurred())
			Expect(org.DisplayName).To(Equal("BofA"))
			Expect(org.DefaultROIPerUnit).To(Equal(0.4))
		})

		It("falls back to the id as display name for JSON entries", func() {
			path := write("banks.json", `{"organizations":[{"id":"ocbc","annual_revenue":9.1,"tech_spend":0.7,"default_roi_per_unit":0.25}]}`)
			repo, err := catalog.NewCatalogRepositoryFromFile(path)
			Expect(err).NotTo(HaveOccurred())

			org, err := repo.Get("ocbc")
			Expect(err).NotTo(HaveOccurred())
			Expect(org.DisplayName).To(Equal("ocbc"))
		})

		It("rejects entries without id", func() {
			path := write("banks.json", `{"organizations":[{"display_name":"Nameless"}]}`)
			_, err := catalog.NewCatalogRepositoryFromFile(path)
			Expect(err).To(MatchError(types.ErrEmptyCatalogEntry))
		})

		It("rejects duplicate ids within a file", func() {
			path := write("banks.json", `{"organizations":[{"id":"dbs"},{"id":"dbs"}]}`)
			_, err := catalog.NewCatalogRepositoryFromFile(path)
			Expect(err).To(MatchError(types.ErrDuplicateOrganization))
		})

		It("rejects unknown extensions", func() {
			path := write("banks.ini", "id=dbs")
			_, err := catalog.NewCatalogRepositoryFromFile(path)
			Expect(err).To(MatchError(types.ErrUnsupportedFormat))
		})
	})
})
