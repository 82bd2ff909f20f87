package console_test

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/diillson/ai-roi-playground/internal/shared/types"
	"github.com/diillson/ai-roi-playground/pkg/console"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("formatting", func() {
	DescribeTable("FormatBillions",
		func(v float64, want string) {
			Expect(console.FormatBillions(v)).To(Equal(want))
		},
		Entry("rounds to one decimal", 3.875, "3.9B"),
		Entry("keeps whole values", 12.0, "12.0B"),
		Entry("zero", 0.0, "0.0B"),
	)

	DescribeTable("FormatMultiple",
		func(v float64, want string) {
			Expect(console.FormatMultiple(v)).To(Equal(want))
		},
		Entry("finite", 0.6198, "0.62×"),
		Entry("positive infinity", math.Inf(1), "∞×"),
		Entry("negative infinity", math.Inf(-1), "-∞×"),
		Entry("not a number", math.NaN(), "n/a"),
	)

	DescribeTable("FormatPercent",
		func(v float64, want string) {
			Expect(console.FormatPercent(v)).To(Equal(want))
		},
		Entry("quarter", 0.25, "25 %"),
		Entry("half", 0.5, "50 %"),
		Entry("snapped step", 0.15000000000000002, "15 %"),
	)
})

var _ = Describe("ChartRows", func() {
	series := []types.ChartPoint{
		{Label: "Y1", Nominal: 1, Cumulative: 1},
		{Label: "Y2", Nominal: 2, Cumulative: 3},
		{Label: "Y3", Nominal: 3, Cumulative: 4},
	}

	It("produces one fixed-width row per point", func() {
		rows := console.ChartRows(series, 2, 8)
		Expect(rows).To(HaveLen(3))
		for _, row := range rows {
			Expect(utf8.RuneCountInString(row)).To(Equal(9))
		}
	})

	It("scales bars against the largest value", func() {
		rows := console.ChartRows(series, 2, 8)
		Expect(strings.Count(rows[0], "█")).To(Equal(2))
		Expect(strings.Count(rows[2], "█")).To(Equal(6))
		Expect([]rune(rows[2])[8]).To(Equal('◆'))
	})

	It("marks the reference value where the bar does not reach", func() {
		rows := console.ChartRows(series, 2, 8)
		Expect([]rune(rows[0])[4]).To(Equal('┆'))
	})

	It("tolerates an all-zero chart", func() {
		rows := console.ChartRows([]types.ChartPoint{{Label: "Y1"}}, 0, 4)
		Expect(rows).To(Equal([]string{"◆    "}))
	})
})
