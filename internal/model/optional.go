package model

// Optional is a scalar that is either present with a value or absent.
// The zero value is absent, so "unknown" never collides with 0.
type Optional struct {
	value   float64
	present bool
}

func Present(v float64) Optional {
	return Optional{value: v, present: true}
}

func Absent() Optional {
	return Optional{}
}

// OptionalFromPtr maps nil to Absent.
func OptionalFromPtr(v *float64) Optional {
	if v == nil {
		return Absent()
	}
	return Present(*v)
}

func (o Optional) IsPresent() bool { return o.present }

// Get returns the value and whether it is present.
func (o Optional) Get() (float64, bool) {
	return o.value, o.present
}

// Or returns the value, or def when absent.
func (o Optional) Or(def float64) float64 {
	if !o.present {
		return def
	}
	return o.value
}

// Scale multiplies a present value by k; absent stays absent.
func (o Optional) Scale(k float64) Optional {
	if !o.present {
		return o
	}
	return Present(o.value * k)
}
