// Package inertia computes closed-form inertia tensors for the rigid-body primitives used in robot models.
//
// A Geometry is one of Box, Cylinder, Sphere or MeshAsEllipsoid. Any other kind is carried as Unknown so
// that callers can pass through geometry kinds this package does not know about; Calculate returns no
// tensor for those rather than an error.
package inertia

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// GeometryType is the tag that selects an inertia formula.
type GeometryType string

// The geometry types that have a closed-form inertia.
const (
	BoxType      = GeometryType("box")
	CylinderType = GeometryType("cylinder")
	SphereType   = GeometryType("sphere")
	MeshType     = GeometryType("mesh")
)

// Known reports whether t selects one of the supported formulas.
func (t GeometryType) Known() bool {
	switch t {
	case BoxType, CylinderType, SphereType, MeshType:
		return true
	default:
		return false
	}
}

// Geometry is a primitive whose inertia can be looked up. The set of implementations is closed to this
// package. Geometries are plain values.
type Geometry interface {
	fmt.Stringer
	Type() GeometryType
	isGeometry()
}

// Box is a solid rectangular prism centered on its origin with edges along the axes.
type Box struct {
	// Size holds the full extents along x, y and z.
	Size r3.Vector
}

// Cylinder is a solid cylinder centered on its origin with its axis along z.
type Cylinder struct {
	Radius float64
	Height float64
}

// Sphere is a solid sphere centered on its origin.
type Sphere struct {
	Radius float64
}

// MeshAsEllipsoid approximates a mesh by its extents, using the ellipsoid coefficient with the
// box cross terms.
type MeshAsEllipsoid struct {
	Size r3.Vector
}

// Unknown is any geometry kind without an inertia formula.
type Unknown struct {
	Kind GeometryType
}

func (Box) isGeometry()             {}
func (Cylinder) isGeometry()        {}
func (Sphere) isGeometry()          {}
func (MeshAsEllipsoid) isGeometry() {}
func (Unknown) isGeometry()         {}

// Type returns BoxType.
func (Box) Type() GeometryType { return BoxType }

// Type returns CylinderType.
func (Cylinder) Type() GeometryType { return CylinderType }

// Type returns SphereType.
func (Sphere) Type() GeometryType { return SphereType }

// Type returns MeshType.
func (MeshAsEllipsoid) Type() GeometryType { return MeshType }

// Type returns the unrecognized kind.
func (u Unknown) Type() GeometryType { return u.Kind }

func (b Box) String() string {
	return fmt.Sprintf("Type: Box | Size: X:%g, Y:%g, Z:%g", b.Size.X, b.Size.Y, b.Size.Z)
}

func (c Cylinder) String() string {
	return fmt.Sprintf("Type: Cylinder | Radius: %g | Height: %g", c.Radius, c.Height)
}

func (s Sphere) String() string {
	return fmt.Sprintf("Type: Sphere | Radius: %g", s.Radius)
}

func (m MeshAsEllipsoid) String() string {
	return fmt.Sprintf("Type: Mesh | Size: X:%g, Y:%g, Z:%g", m.Size.X, m.Size.Y, m.Size.Z)
}

func (u Unknown) String() string {
	return fmt.Sprintf("Type: %q (unrecognized)", string(u.Kind))
}
