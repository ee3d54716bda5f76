package aml

// Resolve turns a scene delta into an absolute value according to the
// reference frame. object is the target's bind-time value for the axis and
// current is the value the previous scene ended on.
func Resolve(std Standard, object, current, delta float64) float64 {
	switch std {
	case StandardObject:
		return object + delta
	case StandardCurrent:
		return current + delta
	default:
		return delta
	}
}
