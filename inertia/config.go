package inertia

import (
	"encoding/json"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"go.viam.com/inertia/utils"
)

const geometryTypeKey = "geometryType"

// GeometryConfig is the attribute form in which a host describes a geometry. Field names follow the
// host's geometry dictionaries, so it decodes from JSON and from attribute maps alike.
type GeometryConfig struct {
	Type GeometryType `json:"geometryType"`

	// boxes and meshes use size, in meters along x, y, z
	Size []float64 `json:"size,omitempty"`

	// spheres use radius, cylinders use radius and height
	Radius *float64 `json:"radius,omitempty"`
	Height *float64 `json:"height,omitempty"`

	// a PLY file whose vertex extents become the size of a mesh when size is not given
	Mesh string `json:"mesh,omitempty"`
}

// Validate ensures all parts of the config are valid. Kinds without an inertia formula are valid; they
// produce no tensor rather than a config error.
func (config *GeometryConfig) Validate(path string) error {
	if config.Type == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "geometryType")
	}
	var err error
	switch config.Type {
	case BoxType:
		err = multierr.Append(err, validateSize(path, config.Size))
	case MeshType:
		if config.Mesh == "" || len(config.Size) != 0 {
			err = multierr.Append(err, validateSize(path, config.Size))
		}
	case CylinderType:
		if config.Radius == nil {
			err = multierr.Append(err, utils.NewConfigValidationFieldRequiredError(path, "radius"))
		}
		if config.Height == nil {
			err = multierr.Append(err, utils.NewConfigValidationFieldRequiredError(path, "height"))
		}
	case SphereType:
		if config.Radius == nil {
			err = multierr.Append(err, utils.NewConfigValidationFieldRequiredError(path, "radius"))
		}
	}
	return err
}

func validateSize(path string, size []float64) error {
	switch len(size) {
	case 0:
		return utils.NewConfigValidationFieldRequiredError(path, "size")
	case 3:
		return nil
	default:
		return utils.NewConfigValidationError(path, errors.Errorf("size must have 3 entries, got %d", len(size)))
	}
}

// ParseConfig converts a GeometryConfig into a Geometry. Unrecognized kinds become Unknown.
func (config *GeometryConfig) ParseConfig() (Geometry, error) {
	if err := config.Validate("geometry"); err != nil {
		return nil, err
	}
	switch config.Type {
	case BoxType:
		size, _ := utils.R3VectorFromSlice(config.Size)
		return Box{Size: size}, nil
	case CylinderType:
		return Cylinder{Radius: *config.Radius, Height: *config.Height}, nil
	case SphereType:
		return Sphere{Radius: *config.Radius}, nil
	case MeshType:
		if size, ok := utils.R3VectorFromSlice(config.Size); ok {
			return MeshAsEllipsoid{Size: size}, nil
		}
		size, err := NewMeshFromPLYFile(config.Mesh)
		if err != nil {
			return nil, err
		}
		return MeshAsEllipsoid{Size: size}, nil
	default:
		return Unknown{Kind: config.Type}, nil
	}
}

// NewGeometryConfig returns the config describing g.
func NewGeometryConfig(g Geometry) (*GeometryConfig, error) {
	switch geom := g.(type) {
	case Box:
		return &GeometryConfig{Type: BoxType, Size: []float64{geom.Size.X, geom.Size.Y, geom.Size.Z}}, nil
	case Cylinder:
		r, h := geom.Radius, geom.Height
		return &GeometryConfig{Type: CylinderType, Radius: &r, Height: &h}, nil
	case Sphere:
		r := geom.Radius
		return &GeometryConfig{Type: SphereType, Radius: &r}, nil
	case MeshAsEllipsoid:
		return &GeometryConfig{Type: MeshType, Size: []float64{geom.Size.X, geom.Size.Y, geom.Size.Z}}, nil
	case Unknown:
		return &GeometryConfig{Type: geom.Kind}, nil
	default:
		return nil, errors.Errorf("cannot build config for geometry of type %T", g)
	}
}

// NewGeometryConfigFromAttributes decodes a host attribute map into a GeometryConfig. Numeric strings are
// accepted. Keys that do not belong to the config are returned so the caller can report them. For kinds
// without an inertia formula only the kind is decoded and every other key is returned as unused.
func NewGeometryConfigFromAttributes(attributes map[string]interface{}) (*GeometryConfig, []string, error) {
	var tag struct {
		Type GeometryType `json:"geometryType"`
	}
	if err := decodeAttributes(attributes, &tag, nil); err != nil {
		return nil, nil, err
	}
	if tag.Type != "" && !tag.Type.Known() {
		unused := lo.Without(lo.Keys(attributes), geometryTypeKey)
		sort.Strings(unused)
		return &GeometryConfig{Type: tag.Type}, unused, nil
	}

	var config GeometryConfig
	var md mapstructure.Metadata
	if err := decodeAttributes(attributes, &config, &md); err != nil {
		return nil, nil, err
	}
	return &config, md.Unused, nil
}

func decodeAttributes(attributes map[string]interface{}, result interface{}, md *mapstructure.Metadata) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           result,
		Metadata:         md,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(attributes); err != nil {
		return errors.Wrap(err, "failed to decode geometry attributes")
	}
	return nil
}

// UnmarshalJSON decodes a GeometryConfig. For kinds without an inertia formula only the kind is decoded,
// so their other fields may hold anything.
func (config *GeometryConfig) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type GeometryType `json:"geometryType"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	if tag.Type != "" && !tag.Type.Known() {
		*config = GeometryConfig{Type: tag.Type}
		return nil
	}

	type geometryConfig GeometryConfig
	var decoded geometryConfig
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*config = GeometryConfig(decoded)
	return nil
}

// CalculateFromAttributes computes the inertia of a geometry given as a host attribute map. The boolean is
// false when the geometry kind has no formula. Malformed attributes for a known kind are an error.
func CalculateFromAttributes(mass float64, attributes map[string]interface{}) (Tensor, bool, error) {
	config, _, err := NewGeometryConfigFromAttributes(attributes)
	if err != nil {
		return Tensor{}, false, err
	}
	geom, err := config.ParseConfig()
	if err != nil {
		return Tensor{}, false, err
	}
	tensor, ok := Calculate(mass, geom)
	return tensor, ok, nil
}

// GeometryConfigSchema returns the JSON schema of GeometryConfig.
func GeometryConfigSchema() ([]byte, error) {
	return json.MarshalIndent(jsonschema.Reflect(&GeometryConfig{}), "", "  ")
}
