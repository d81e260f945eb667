package slider

// Delegate receives host notifications. Every field is optional.
type Delegate struct {
	OnTrackingBegin func()
	OnTrackingEnd   func()
	OnValueChanged  func(value float64)
}

func (d Delegate) trackingBegin() {
	if d.OnTrackingBegin != nil {
		d.OnTrackingBegin()
	}
}

func (d Delegate) trackingEnd() {
	if d.OnTrackingEnd != nil {
		d.OnTrackingEnd()
	}
}

func (d Delegate) valueChanged(v float64) {
	if d.OnValueChanged != nil {
		d.OnValueChanged(v)
	}
}
