package slider_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rulerpick/internal/clock"
	"github.com/san-kum/rulerpick/internal/slider"
)

var _ = Describe("Slider", func() {
	var (
		clk      *clock.Manual
		sl       *slider.Slider
		settings slider.Settings
		events   []string
		values   []float64
	)

	build := func() {
		var err error
		sl, err = slider.New(settings,
			slider.WithClock(clk),
			slider.WithDelegate(slider.Delegate{
				OnTrackingBegin: func() { events = append(events, "begin") },
				OnTrackingEnd:   func() { events = append(events, "end") },
				OnValueChanged:  func(v float64) { values = append(values, v) },
			}),
		)
		Expect(err).NotTo(HaveOccurred())
		sl.Resize(200, 60)
	}

	BeforeEach(func() {
		clk = clock.NewManual(time.Unix(0, 0))
		settings = slider.DefaultSettings()
		events, values = nil, nil
	})

	Context("dragging", func() {
		BeforeEach(build)

		It("lowers the value when the finger moves right", func() {
			Expect(sl.DragStart(100)).To(BeTrue())
			Expect(sl.DragMove(150)).To(BeTrue())
			Expect(sl.Value()).To(Equal(-5.0))
		})

		It("clamps at the range limits", func() {
			sl.DragStart(100)
			sl.DragMove(100 + 10*500)
			Expect(sl.Value()).To(Equal(-100.0))
			sl.DragMove(100 - 10*500)
			Expect(sl.Value()).To(Equal(100.0))
		})

		It("reports begin and end exactly once per session", func() {
			sl.DragStart(100)
			sl.DragMove(110)
			sl.DragMove(120)
			sl.DragEnd(120)
			sl.DragEnd(120)
			Expect(events).To(Equal([]string{"begin", "end"}))
		})
	})

	Context("setting the value directly", func() {
		BeforeEach(build)

		It("clamps to the maximum", func() {
			sl.SetValue(150)
			Expect(sl.Value()).To(Equal(100.0))
			Expect(values).To(Equal([]float64{100}))
		})
	})

	Context("releasing between ticks", func() {
		BeforeEach(build)

		It("settles on the nearest tick in four steps", func() {
			sl.SetValue(4.6)
			sl.DragStart(100)
			sl.DragEnd(100)
			Expect(sl.Settling()).To(BeTrue())

			var trace []float64
			for sl.Settling() {
				clk.Advance(sl.Interval())
				if sl.Step() {
					trace = append(trace, sl.Value())
				}
			}
			Expect(trace).To(HaveLen(4))
			Expect(trace[0]).To(BeNumerically("~", 4.625, 1e-9))
			Expect(trace[1]).To(BeNumerically("~", 4.7, 1e-9))
			Expect(trace[2]).To(BeNumerically("~", 4.825, 1e-9))
			Expect(trace[3]).To(Equal(5.0))
		})
	})

	Context("with a zero tick", func() {
		BeforeEach(func() {
			settings.Tick = 0
			build()
		})

		It("refuses to track", func() {
			sl.MarkDrawn()
			Expect(sl.DragStart(100)).To(BeFalse())
			Expect(sl.Tracking()).To(BeFalse())
			Expect(sl.NeedsRedraw()).To(BeFalse())
			Expect(events).To(BeEmpty())
		})
	})

	Context("laying out the ruler", func() {
		BeforeEach(build)

		It("puts the middle mark at the centre at full opacity", func() {
			Expect(sl.Spacing()).To(Equal(10.0))
			marks := sl.Layout()
			Expect(marks).To(HaveLen(21))
			Expect(marks[10].Position).To(Equal(100.0))
			Expect(marks[10].Opacity).To(Equal(1.0))
		})

		It("is identical for identical input", func() {
			sl.SetValue(-42.3)
			Expect(sl.Layout()).To(Equal(sl.Layout()))
		})
	})
})
