package usecase_test

import (
	"github.com/diillson/ai-roi-playground/internal/adapter/driven/catalog"
	"github.com/diillson/ai-roi-playground/internal/application/usecase"
	"github.com/diillson/ai-roi-playground/internal/domain/entity"
	"github.com/diillson/ai-roi-playground/internal/domain/projection"
	"github.com/diillson/ai-roi-playground/internal/shared/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Session", func() {
	var session *usecase.Session

	BeforeEach(func() {
		var err error
		session, err = usecase.NewSession(catalog.NewCatalogRepository(), "")
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts on the default organization with default parameters", func() {
		Expect(session.Organization().ID).To(Equal("jpm"))
		Expect(session.Parameters()).To(Equal(entity.ProjectionParameters{
			AISharePct:   0.25,
			ROIPerUnit:   0.44,
			HorizonYears: entity.Horizon5Years,
			DiscountRate: 0.08,
		}))
		Expect(session.Result().NPV).To(BeNumerically("~", 4.92, 0.01))
	})

	It("fails for unknown organizations", func() {
		_, err := usecase.NewSession(catalog.NewCatalogRepository(), "nope")
		Expect(err).To(MatchError(types.ErrOrganizationNotFound))
	})

	Describe("organization changes", func() {
		It("reset the ROI to the new organization's default", func() {
			session.SetROIPerUnit(1.0)
			Expect(session.SelectOrganization("uob")).To(Succeed())
			Expect(session.Parameters().ROIPerUnit).To(Equal(0.28))
		})

		It("reset the ROI even when reselecting the same organization", func() {
			session.SetROIPerUnit(1.0)
			Expect(session.SelectOrganization("jpm")).To(Succeed())
			Expect(session.Parameters().ROIPerUnit).To(Equal(0.44))
		})

		It("keep other parameters", func() {
			session.SetAIShare(0.1)
			Expect(session.SetHorizon(3)).To(Succeed())
			session.SetRevenueUplift(true)
			Expect(session.SelectOrganization("boa")).To(Succeed())

			params := session.Parameters()
			Expect(params.AISharePct).To(Equal(0.1))
			Expect(params.HorizonYears).To(Equal(entity.Horizon3Years))
			Expect(params.IncludeRevenueUplift).To(BeTrue())
		})

		It("leave the state untouched on unknown ids", func() {
			session.SetROIPerUnit(1.0)
			before := session.Parameters()
			Expect(session.SelectOrganization("nope")).To(MatchError(types.ErrOrganizationNotFound))
			Expect(session.Organization().ID).To(Equal("jpm"))
			Expect(session.Parameters()).To(Equal(before))
		})
	})

	It("keeps ROI edits while the organization stays", func() {
		session.SetROIPerUnit(0.8)
		session.SetAIShare(0.4)
		Expect(session.SetHorizon(3)).To(Succeed())
		session.SetRevenueUplift(true)
		Expect(session.Parameters().ROIPerUnit).To(Equal(0.8))
	})

	DescribeTable("clamps and snaps the AI share",
		func(in, want float64) {
			session.SetAIShare(in)
			Expect(session.Parameters().AISharePct).To(Equal(want))
		},
		Entry("below range", -0.2, 0.0),
		Entry("above range", 0.9, 0.5),
		Entry("between steps", 0.27, 0.25),
		Entry("on a step", 0.15, 0.15),
	)

	DescribeTable("clamps and snaps the ROI per unit",
		func(in, want float64) {
			session.SetROIPerUnit(in)
			Expect(session.Parameters().ROIPerUnit).To(Equal(want))
		},
		Entry("below range", 0.1, 0.2),
		Entry("above range", 2.0, 1.5),
		Entry("between steps", 0.44, 0.45),
	)

	It("rejects horizons other than 3 and 5", func() {
		Expect(session.SetHorizon(4)).To(MatchError(types.ErrInvalidHorizon))
		Expect(session.Parameters().HorizonYears).To(Equal(entity.Horizon5Years))
		Expect(session.Result().Points).To(HaveLen(5))
	})

	It("recomputes after every change", func() {
		session.SetAIShare(0.5)
		Expect(session.SetHorizon(3)).To(Succeed())
		session.SetRevenueUplift(true)

		Expect(session.Result()).To(Equal(projection.Project(session.Organization(), session.Parameters())))
		Expect(session.Result().Points).To(HaveLen(3))
	})
})

var _ = Describe("ClampToStep", func() {
	DescribeTable("values",
		func(v, min, max, step, want float64) {
			Expect(usecase.ClampToStep(v, min, max, step)).To(Equal(want))
		},
		Entry("inside range", 0.35, 0.2, 1.5, 0.05, 0.35),
		Entry("rounds up", 0.43, 0.2, 1.5, 0.05, 0.45),
		Entry("rounds down", 0.41, 0.2, 1.5, 0.05, 0.4),
		Entry("minimum", 0.0, 0.0, 0.5, 0.05, 0.0),
		Entry("maximum", 0.5, 0.0, 0.5, 0.05, 0.5),
		Entry("no step", 0.123, 0.0, 1.0, 0.0, 0.123),
	)
})

var _ = Describe("ParsePercent", func() {
	DescribeTable("accepted input",
		func(raw string, want float64) {
			v, err := usecase.ParsePercent(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeNumerically("~", want, 1e-12))
		},
		Entry("plain number", "25", 0.25),
		Entry("percent sign", "30%", 0.30),
		Entry("spaced percent sign", " 12.5 % ", 0.125),
	)

	It("rejects text", func() {
		_, err := usecase.ParsePercent("lots")
		Expect(err).To(HaveOccurred())
	})
})
