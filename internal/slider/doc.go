// Package slider orchestrates the ruler picker.
//
// A [Slider] owns the value model, the drag tracker and the snap animator.
// Hosts push input through [Slider.DragStart], [Slider.DragMove] and
// [Slider.DragEnd], call [Slider.Step] on their own schedule while
// [Slider.Settling] is true, and repaint from [Slider.Layout] whenever
// [Slider.NeedsRedraw] reports a change.
//
// # Example
//
//	s, _ := slider.New(slider.DefaultSettings(), slider.WithDelegate(slider.Delegate{
//		OnValueChanged: func(v float64) { fmt.Println(v) },
//	}))
//	s.Resize(200, 60)
//	s.DragStart(100)
//	s.DragMove(150)
//	s.DragEnd(150)
//
// # Thread Safety
//
// Slider instances are NOT thread-safe. Input events and steps must come
// from a single event loop.
package slider
