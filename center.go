package aml

// ResolveCenter converts a pivot specification into offsets from the
// target's top-left corner. Relative pivots scale x and y by the current
// width and height; z is never scaled.
func ResolveCenter(attr CenterAttribute, width, height, cx, cy, cz float64) Vec3 {
	if attr == CenterAbsolute {
		return Vec3{cx, cy, cz}
	}
	return Vec3{cx * width, cy * height, cz}
}
