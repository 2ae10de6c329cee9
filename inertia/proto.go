package inertia

import (
	"bytes"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	commonpb "go.viam.com/api/common/v1"

	"go.viam.com/inertia/utils"
)

// plyContentType is the mesh content type whose bytes can be read for extents.
const plyContentType = "ply"

// Geometry kinds that arrive over the API but have no inertia formula.
const (
	capsuleType    = GeometryType("capsule")
	pointcloudType = GeometryType("pointcloud")
)

// NewGeometryFromProtobuf converts a Geometry proto message into a Geometry. Proto dimensions are in
// millimeters and are converted to meters. Capsules and point clouds become Unknown.
func NewGeometryFromProtobuf(geometry *commonpb.Geometry) (Geometry, error) {
	if geometry == nil {
		return nil, errors.New("cannot convert nil geometry")
	}
	switch gt := geometry.GetGeometryType().(type) {
	case *commonpb.Geometry_Box:
		dims := gt.Box.GetDimsMm()
		return Box{Size: r3.Vector{
			X: utils.MMToMeters(dims.GetX()),
			Y: utils.MMToMeters(dims.GetY()),
			Z: utils.MMToMeters(dims.GetZ()),
		}}, nil
	case *commonpb.Geometry_Sphere:
		return Sphere{Radius: utils.MMToMeters(gt.Sphere.GetRadiusMm())}, nil
	case *commonpb.Geometry_Mesh:
		mesh := gt.Mesh
		if mesh.GetContentType() != plyContentType {
			return nil, errors.Errorf("unsupported mesh content type %q, must be %q", mesh.GetContentType(), plyContentType)
		}
		size, err := MeshExtentsFromPLY(bytes.NewReader(mesh.GetMesh()))
		if err != nil {
			return nil, err
		}
		return MeshAsEllipsoid{Size: size}, nil
	case *commonpb.Geometry_Capsule:
		return Unknown{Kind: capsuleType}, nil
	case *commonpb.Geometry_Pointcloud:
		return Unknown{Kind: pointcloudType}, nil
	default:
		return nil, errors.Errorf("geometry %q has no geometry type set", geometry.GetLabel())
	}
}
