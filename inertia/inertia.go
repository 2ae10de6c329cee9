package inertia

import "github.com/golang/geo/r3"

// Calculate returns the inertia tensor of a body with the given mass and geometry, expressed about the
// geometry's centroid in its principal frame. The second return value is false, and the tensor is zero,
// when the geometry kind has no formula; that case is not an error.
//
// Inputs are not range checked. Negative or zero dimensions and masses propagate through the formulas.
func Calculate(mass float64, g Geometry) (Tensor, bool) {
	switch geom := g.(type) {
	case Box:
		return BoxInertia(mass, geom.Size), true
	case Cylinder:
		return CylinderInertia(mass, geom.Radius, geom.Height), true
	case Sphere:
		return SphereInertia(mass, geom.Radius), true
	case MeshAsEllipsoid:
		return EllipsoidInertia(mass, geom.Size), true
	default:
		return Tensor{}, false
	}
}

// BoxInertia returns the inertia of a solid box with full extents size.
func BoxInertia(mass float64, size r3.Vector) Tensor {
	return crossTermInertia(mass/12, size)
}

// CylinderInertia returns the inertia of a solid cylinder of radius r and height h about z.
func CylinderInertia(mass, r, h float64) Tensor {
	i := mass / 12 * (float64(3*(r*r)) + float64(h*h))
	return Tensor{
		Ixx: i,
		Iyy: i,
		Izz: 0.5 * mass * (r * r),
	}
}

// SphereInertia returns the inertia of a solid sphere of radius r.
func SphereInertia(mass, r float64) Tensor {
	i := 0.4 * mass * (r * r)
	return Tensor{Ixx: i, Iyy: i, Izz: i}
}

// EllipsoidInertia returns the mesh approximation: the box cross terms with a leading coefficient of 1/5
// instead of 1/12. Existing models were built with these values; it is not a mesh integral.
func EllipsoidInertia(mass float64, size r3.Vector) Tensor {
	return crossTermInertia(mass/5, size)
}

// The float64 conversions round each square before the sum, which keeps the compiler from fusing
// them into an FMA on architectures that have one. Results must be identical on every platform.
func crossTermInertia(i float64, size r3.Vector) Tensor {
	x2, y2, z2 := float64(size.X*size.X), float64(size.Y*size.Y), float64(size.Z*size.Z)
	return Tensor{
		Ixx: i * (y2 + z2),
		Iyy: i * (x2 + z2),
		Izz: i * (x2 + y2),
	}
}
