package usecase_test

import (
	"context"
	"errors"

	"github.com/diillson/ai-roi-playground/internal/adapter/driven/catalog"
	"github.com/diillson/ai-roi-playground/internal/application/usecase"
	"github.com/diillson/ai-roi-playground/internal/domain/repository"
	"github.com/diillson/ai-roi-playground/internal/shared/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func float(v float64) *float64 { return &v }

var _ = Describe("CalculatorUseCase", func() {
	var (
		console  *fakeConsole
		exporter *fakeExporter
		prompter *scriptedPrompter
		uc       *usecase.CalculatorUseCase
		ctx      context.Context
	)

	loadCatalog := func(string) (repository.CatalogRepository, error) {
		return catalog.NewCatalogRepository(), nil
	}

	BeforeEach(func() {
		console = &fakeConsole{}
		exporter = &fakeExporter{}
		prompter = &scriptedPrompter{}
		uc = usecase.NewCalculatorUseCase(loadCatalog, exporter, console, prompter)
		ctx = context.Background()
	})

	Describe("a single run", func() {
		It("renders the projection without exporting by default", func() {
			Expect(uc.RunCalculator(ctx, &types.CLIArgs{})).To(Succeed())

			Expect(console.panels).To(HaveLen(1))
			Expect(console.panels[0]).To(HavePrefix("JPMorgan Chase"))
			Expect(console.output()).To(ContainSubstring("Year-1 savings estimate"))
			Expect(console.output()).To(ContainSubstring("1.27×"))
			Expect(console.charts).To(Equal(1))
			Expect(exporter.calls).To(BeEmpty())
		})

		It("applies the requested parameters", func() {
			args := &types.CLIArgs{
				Organization:  "boa",
				AIShare:       float(0.5),
				ROIPerUnit:    float(1.0),
				Horizon:       3,
				RevenueUplift: true,
				ReportType:    []string{"json"},
				ReportName:    "boa",
				Dir:           "/tmp/out",
			}
			Expect(uc.RunCalculator(ctx, args)).To(Succeed())

			Expect(exporter.calls).To(HaveLen(1))
			report := exporter.calls[0].reports[0]
			Expect(report.Organization.ID).To(Equal("boa"))
			Expect(report.Parameters.AISharePct).To(Equal(0.5))
			Expect(report.Parameters.ROIPerUnit).To(Equal(1.0))
			Expect(report.Projection.Points).To(HaveLen(3))
			Expect(report.ID).NotTo(BeEmpty())
			Expect(exporter.calls[0].name).To(Equal("boa"))
			Expect(exporter.calls[0].dir).To(Equal("/tmp/out"))
			Expect(console.successes).To(ContainElement("Report saved to /tmp/out/boa.json"))
		})

		It("warns when the ROI multiple is undefined", func() {
			Expect(uc.RunCalculator(ctx, &types.CLIArgs{AIShare: float(0)})).To(Succeed())
			Expect(console.output()).To(ContainSubstring("n/a"))
			Expect(console.warnings).To(ContainElement(ContainSubstring("AI spend is zero")))
		})

		It("rejects invalid horizons", func() {
			Expect(uc.RunCalculator(ctx, &types.CLIArgs{Horizon: 7})).To(MatchError(types.ErrInvalidHorizon))
		})

		It("rejects unknown organizations", func() {
			Expect(uc.RunCalculator(ctx, &types.CLIArgs{Organization: "hsbc"})).To(MatchError(types.ErrOrganizationNotFound))
		})
	})

	Describe("exports", func() {
		It("writes each known type and skips unknown ones", func() {
			args := &types.CLIArgs{ReportType: []string{"csv", "PDF", "xlsx", "md", "html"}, ReportName: "r"}
			Expect(uc.RunCalculator(ctx, args)).To(Succeed())

			kinds := []string{}
			for _, c := range exporter.calls {
				kinds = append(kinds, c.kind)
			}
			Expect(kinds).To(Equal([]string{"csv", "pdf", "md", "html"}))
			Expect(console.warnings).To(ContainElement(ContainSubstring("xlsx")))
		})

		It("names reports after the organization when no name is given", func() {
			Expect(uc.RunCalculator(ctx, &types.CLIArgs{Organization: "uob", ReportType: []string{"csv"}})).To(Succeed())
			Expect(exporter.calls[0].name).To(HavePrefix("ai-roi-uob-"))
		})

		It("wraps exporter failures", func() {
			exporter.err = errors.New("disk full")
			err := uc.RunCalculator(ctx, &types.CLIArgs{ReportType: []string{"csv"}})
			Expect(err).To(MatchError(ContainSubstring("exporting csv report: disk full")))
		})

		It("stops when the context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			err := uc.RunCalculator(cancelled, &types.CLIArgs{ReportType: []string{"csv"}})
			Expect(err).To(MatchError(context.Canceled))
			Expect(exporter.calls).To(BeEmpty())
		})
	})

	It("lists the catalog", func() {
		Expect(uc.RunCalculator(ctx, &types.CLIArgs{List: true})).To(Succeed())
		Expect(console.tables).To(HaveLen(1))
		Expect(console.tables[0].rows).To(HaveLen(3))
		Expect(console.tables[0].rows[2][1]).To(Equal("United Overseas Bank (UOB)"))
	})

	Describe("comparison", func() {
		It("uses each organization's default ROI", func() {
			reports, err := uc.Compare(catalog.NewCatalogRepository(), &types.CLIArgs{})
			Expect(err).NotTo(HaveOccurred())
			Expect(reports).To(HaveLen(3))

			rois := []float64{}
			for _, r := range reports {
				rois = append(rois, r.Parameters.ROIPerUnit)
			}
			Expect(rois).To(Equal([]float64{0.44, 0.35, 0.28}))
		})

		It("applies an explicit ROI to every organization", func() {
			reports, err := uc.Compare(catalog.NewCatalogRepository(), &types.CLIArgs{ROIPerUnit: float(0.9), Horizon: 3})
			Expect(err).NotTo(HaveOccurred())
			for _, r := range reports {
				Expect(r.Parameters.ROIPerUnit).To(Equal(0.9))
				Expect(r.Projection.Points).To(HaveLen(3))
			}
		})

		It("exports all organizations in one report", func() {
			Expect(uc.RunCalculator(ctx, &types.CLIArgs{Compare: true, ReportType: []string{"csv"}})).To(Succeed())
			Expect(exporter.calls).To(HaveLen(1))
			Expect(exporter.calls[0].reports).To(HaveLen(3))
			Expect(exporter.calls[0].name).To(HavePrefix("ai-roi-comparison-"))
		})
	})

	Describe("interactive mode", func() {
		It("applies edits and re-renders until quit", func() {
			prompter.answers = []string{
				"Set % of tech budget to AI", "10",
				"Set ROI ($ saved per $AI)", "0.8",
				"Change organization", "Bank of America (boa)",
				"Toggle revenue uplift", "yes",
				"Change horizon", "3",
				"Quit",
			}
			args := &types.CLIArgs{Interactive: true}
			Expect(uc.RunCalculator(ctx, args)).To(Succeed())

			// initial render plus one per change
			Expect(console.charts).To(Equal(6))
			Expect(prompter.answers).To(BeEmpty())
			Expect(console.panels[len(console.panels)-1]).To(HavePrefix("Bank of America"))
			Expect(console.panels[len(console.panels)-1]).To(ContainSubstring("ROI ($ saved per $AI): 0.35"))
			Expect(console.panels[len(console.panels)-1]).To(ContainSubstring("AI share of tech budget: 10 %"))
			Expect(console.panels[len(console.panels)-1]).To(ContainSubstring("Horizon: 3 yrs"))
		})

		It("keeps going after invalid input", func() {
			prompter.answers = []string{
				"Set ROI ($ saved per $AI)", "abc",
				"Quit",
			}
			Expect(uc.RunCalculator(ctx, &types.CLIArgs{Interactive: true})).To(Succeed())
			Expect(console.warnings).To(ContainElement(ContainSubstring("not a number")))
			Expect(console.charts).To(Equal(1))
		})

		It("exports on request", func() {
			prompter.answers = []string{
				"Export report", "json, csv",
				"Quit",
			}
			Expect(uc.RunCalculator(ctx, &types.CLIArgs{Interactive: true})).To(Succeed())
			Expect(exporter.calls).To(HaveLen(2))
			Expect(exporter.calls[0].kind).To(Equal("json"))
		})
	})
})
