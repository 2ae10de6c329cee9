package urdf

import (
	"encoding/xml"
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/inertia/inertia"
	"go.viam.com/inertia/utils"
)

// Inertial is the XML used in a URDF inertial element. Masses are in kg and inertias in kg*m^2.
type Inertial struct {
	XMLName xml.Name     `xml:"inertial"`
	Origin  *pose        `xml:"origin,omitempty"`
	Mass    massValue    `xml:"mass"`
	Inertia inertiaValue `xml:"inertia"`
}

type pose struct {
	XMLName xml.Name `xml:"origin"`
	XYZ     string   `xml:"xyz,attr"` // "x y z" format, in meters
	RPY     string   `xml:"rpy,attr"` // Fixed frame angle "r p y" format, in radians
}

type massValue struct {
	Value float64 `xml:"value,attr"`
}

type inertiaValue struct {
	Ixx float64 `xml:"ixx,attr"`
	Ixy float64 `xml:"ixy,attr"`
	Ixz float64 `xml:"ixz,attr"`
	Iyy float64 `xml:"iyy,attr"`
	Iyz float64 `xml:"iyz,attr"`
	Izz float64 `xml:"izz,attr"`
}

// NewInertial returns the inertial element for a body of the given mass and tensor. Tensors are computed
// about the link's own centroid, so the origin is always zero.
func NewInertial(mass float64, tensor inertia.Tensor) *Inertial {
	return &Inertial{
		Origin: &pose{
			XYZ: utils.FloatSliceToSpaceDelimitedString(0, 0, 0),
			RPY: utils.FloatSliceToSpaceDelimitedString(0, 0, 0),
		},
		Mass: massValue{Value: mass},
		Inertia: inertiaValue{
			Ixx: tensor.Ixx, Ixy: tensor.Ixy, Ixz: tensor.Ixz,
			Iyy: tensor.Iyy, Iyz: tensor.Iyz,
			Izz: tensor.Izz,
		},
	}
}

// validate checks that xyz and rpy each hold three finite numbers.
func (p *pose) validate() error {
	for _, attr := range []struct{ name, value string }{{"xyz", p.XYZ}, {"rpy", p.RPY}} {
		values := utils.SpaceDelimitedStringToFloatSlice(attr.value)
		if len(values) != 3 || lo.SomeBy(values, func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }) {
			return errors.Errorf("origin %s must be three numbers, got %q", attr.name, attr.value)
		}
	}
	return nil
}

// MassValue returns the mass of the element.
func (i *Inertial) MassValue() float64 {
	return i.Mass.Value
}

// Tensor returns the inertia of the element.
func (i *Inertial) Tensor() inertia.Tensor {
	return inertia.Tensor{
		Ixx: i.Inertia.Ixx, Ixy: i.Inertia.Ixy, Ixz: i.Inertia.Ixz,
		Iyy: i.Inertia.Iyy, Iyz: i.Inertia.Iyz,
		Izz: i.Inertia.Izz,
	}
}
