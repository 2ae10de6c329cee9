package inertia

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/inertia/utils"
)

// Tensor is the upper triangle of a symmetric 3x3 inertia matrix.
type Tensor struct {
	Ixx, Ixy, Ixz float64
	Iyy, Iyz      float64
	Izz           float64
}

// NewTensorFromUpper builds a Tensor from (ixx, ixy, ixz, iyy, iyz, izz).
func NewTensorFromUpper(upper [6]float64) Tensor {
	return Tensor{
		Ixx: upper[0], Ixy: upper[1], Ixz: upper[2],
		Iyy: upper[3], Iyz: upper[4],
		Izz: upper[5],
	}
}

// Upper returns the six independent entries in the order (ixx, ixy, ixz, iyy, iyz, izz).
func (t Tensor) Upper() [6]float64 {
	return [6]float64{t.Ixx, t.Ixy, t.Ixz, t.Iyy, t.Iyz, t.Izz}
}

// Diagonal returns (ixx, iyy, izz).
func (t Tensor) Diagonal() r3.Vector {
	return r3.Vector{X: t.Ixx, Y: t.Iyy, Z: t.Izz}
}

// IsDiagonal reports whether every off-diagonal entry is exactly zero.
func (t Tensor) IsDiagonal() bool {
	return t.Ixy == 0 && t.Ixz == 0 && t.Iyz == 0
}

// Matrix returns the full symmetric matrix.
func (t Tensor) Matrix() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		t.Ixx, t.Ixy, t.Ixz,
		t.Ixy, t.Iyy, t.Iyz,
		t.Ixz, t.Iyz, t.Izz,
	})
}

// PrincipalMoments returns the eigenvalues of the tensor in ascending order.
func (t Tensor) PrincipalMoments() (r3.Vector, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(t.Matrix(), false); !ok {
		return r3.Vector{}, errors.New("eigendecomposition of inertia tensor failed")
	}
	values := eig.Values(nil)
	return r3.Vector{X: values[0], Y: values[1], Z: values[2]}, nil
}

// IsPhysical reports whether the tensor could belong to a real rigid body: principal moments are
// non-negative and satisfy the triangle inequality, both within epsilon.
func (t Tensor) IsPhysical(epsilon float64) bool {
	moments, err := t.PrincipalMoments()
	if err != nil {
		return false
	}
	if moments.X < -epsilon {
		return false
	}
	return moments.X+moments.Y >= moments.Z-epsilon
}

// AlmostEqual compares two tensors entry by entry.
func (t Tensor) AlmostEqual(other Tensor, epsilon float64) bool {
	return utils.R3VectorAlmostEqual(t.Diagonal(), other.Diagonal(), epsilon) &&
		utils.R3VectorAlmostEqual(t.offDiagonal(), other.offDiagonal(), epsilon)
}

// offDiagonal returns (ixy, ixz, iyz).
func (t Tensor) offDiagonal() r3.Vector {
	return r3.Vector{X: t.Ixy, Y: t.Ixz, Z: t.Iyz}
}

func (t Tensor) String() string {
	return fmt.Sprintf("ixx: %g, ixy: %g, ixz: %g, iyy: %g, iyz: %g, izz: %g",
		t.Ixx, t.Ixy, t.Ixz, t.Iyy, t.Iyz, t.Izz)
}
