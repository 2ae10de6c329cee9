package urdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/inertia/config"
	"go.viam.com/inertia/inertia"
)

func testInertias() config.Inertias {
	box := inertia.Box{Size: r3.Vector{X: 1, Y: 2, Z: 3}}
	boxTensor, _ := inertia.Calculate(12, box)
	cyl := inertia.Cylinder{Radius: 0.1, Height: 0.7}
	cylTensor, _ := inertia.Calculate(3.3, cyl)
	return config.Inertias{
		{Name: "base", Mass: 12, Geometry: box, Inertia: boxTensor, OK: true},
		{Name: "arm", Mass: 3.3, Geometry: cyl, Inertia: cylTensor, OK: true},
		{Name: "nozzle", Mass: 1, Geometry: inertia.Unknown{Kind: "cone"}},
	}
}

func TestNewInertial(t *testing.T) {
	tensor := inertia.SphereInertia(10, 1)
	in := NewInertial(10, tensor)
	test.That(t, in.MassValue(), test.ShouldEqual, 10.)
	test.That(t, in.Tensor(), test.ShouldResemble, tensor)
	test.That(t, in.Origin.XYZ, test.ShouldEqual, "0 0 0")
}

func TestMarshalModelXML(t *testing.T) {
	data, err := MarshalModelXML(NewModel("arm", testInertias()))
	test.That(t, err, test.ShouldBeNil)
	out := string(data)
	test.That(t, strings.HasPrefix(out, "<?xml"), test.ShouldBeTrue)
	test.That(t, out, test.ShouldContainSubstring, `<robot name="arm">`)
	test.That(t, out, test.ShouldContainSubstring, `<mass value="12"></mass>`)
	test.That(t, out, test.ShouldContainSubstring, `<inertia ixx="13" ixy="0" ixz="0" iyy="10" iyz="0" izz="5"></inertia>`)
	test.That(t, out, test.ShouldContainSubstring, `<link name="nozzle"></link>`)
	test.That(t, strings.Count(out, "<inertial>"), test.ShouldEqual, 2)
}

func TestInertialsRoundTrip(t *testing.T) {
	inertias := testInertias()
	data, err := MarshalModelXML(NewModel("arm", inertias))
	test.That(t, err, test.ShouldBeNil)

	path := filepath.Join(t.TempDir(), "arm."+Extension)
	test.That(t, os.WriteFile(path, data, 0o600), test.ShouldBeNil)

	parsed, err := ParseInertialsFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parsed, test.ShouldHaveLength, 2)
	for _, li := range inertias.Resolved() {
		in, ok := parsed[li.Name]
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, in.MassValue(), test.ShouldEqual, li.Mass)
		test.That(t, in.Tensor(), test.ShouldResemble, li.Inertia)
	}
	_, ok := parsed["nozzle"]
	test.That(t, ok, test.ShouldBeFalse)
}

func TestUnmarshalInertialsErrors(t *testing.T) {
	_, err := UnmarshalInertials([]byte("<robot"))
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ParseInertialsFile("does/not/exist.urdf")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to read URDF file")
}

func TestUnmarshalInertialsOrigin(t *testing.T) {
	const doc = `<robot name="r">
  <link name="shifted">
    <inertial>
      <origin xyz="0.1 0 -2e-3" rpy="0 0 1.57"></origin>
      <mass value="2"></mass>
      <inertia ixx="1" ixy="0" ixz="0" iyy="1" iyz="0" izz="1"></inertia>
    </inertial>
  </link>
</robot>`
	parsed, err := UnmarshalInertials([]byte(doc))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parsed["shifted"].MassValue(), test.ShouldEqual, 2.)

	for _, origin := range []string{
		`xyz="0 0" rpy="0 0 0"`,
		`xyz="0 0 0" rpy="0 zero 0"`,
		`xyz="0 0 Inf" rpy="0 0 0"`,
	} {
		bad := strings.Replace(doc, `xyz="0.1 0 -2e-3" rpy="0 0 1.57"`, origin, 1)
		_, err := UnmarshalInertials([]byte(bad))
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, `link "shifted"`)
		test.That(t, err.Error(), test.ShouldContainSubstring, "must be three numbers")
	}
}
