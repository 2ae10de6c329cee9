package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/inertia/config"
	"go.viam.com/inertia/inertia"
	"go.viam.com/inertia/logging"
	"go.viam.com/inertia/urdf"
	"go.viam.com/inertia/utils"
)

// setupLogger installs the global logger. Console logs go to the app's ErrWriter so command output stays
// clean; without flags only warnings and errors are shown. The returned closer is nil unless logging to
// a file.
func setupLogger(c *cli.Context) (io.Closer, error) {
	level := logging.WARN
	switch {
	case c.Bool(generalFlagDebug):
		level = logging.DEBUG
	case c.IsSet(generalFlagLogLevel):
		parsed, err := logging.LevelFromString(c.String(generalFlagLogLevel))
		if err != nil {
			return nil, err
		}
		level = parsed
	case c.IsSet(generalFlagLogFile):
		level = logging.INFO
	}

	if c.IsSet(generalFlagLogFile) {
		logger, closer := logging.NewFileLogger("inertia", c.String(generalFlagLogFile), level)
		logging.ReplaceGlobal(logger)
		return closer, nil
	}
	logging.ReplaceGlobal(logging.NewWriterLogger("inertia", c.App.ErrWriter, level))
	return nil, nil
}

// CalcAction computes the inertia of the primitive described by flags and prints
// "ixx ixy ixz iyy iyz izz". A geometry type without a formula prints a notice and is not an error.
func CalcAction(c *cli.Context) error {
	logger := logging.Global().Sublogger("calc")
	geomCfg := &inertia.GeometryConfig{
		Type: inertia.GeometryType(c.String(calcFlagType)),
		Size: c.Float64Slice(calcFlagSize),
		Mesh: c.String(calcFlagMesh),
	}
	if c.IsSet(calcFlagRadius) {
		r := c.Float64(calcFlagRadius)
		geomCfg.Radius = &r
	}
	if c.IsSet(calcFlagHeight) {
		h := c.Float64(calcFlagHeight)
		geomCfg.Height = &h
	}

	geom, err := geomCfg.ParseConfig()
	if err != nil {
		return err
	}
	logger.Debugw("parsed geometry", "geometry", geom.String())

	tensor, ok := inertia.Calculate(c.Float64(calcFlagMass), geom)
	if !ok {
		printf(c.App.Writer, "no inertia for geometry type %q", string(geom.Type()))
		return nil
	}
	upper := tensor.Upper()
	printf(c.App.Writer, "%s", utils.FloatSliceToSpaceDelimitedString(upper[:]...))
	return nil
}

// ModelAction reads a model file and prints the inertia of every link.
func ModelAction(c *cli.Context) error {
	logger := logging.Global().Sublogger("model")
	cfg, err := config.Read(c.Context, c.String(modelFlagConfig), logger)
	if err != nil {
		return errors.Wrap(err, "failed to read model config")
	}
	inertias, err := cfg.Compute(c.Context, logger)
	if err != nil {
		return err
	}

	if !c.Bool(modelFlagURDF) {
		printf(c.App.Writer, "%s", inertias.String())
		return nil
	}
	data, err := urdf.MarshalModelXML(urdf.NewModel(cfg.Name, inertias))
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", data)
	return nil
}

// SchemaAction prints the JSON schema of the geometry config.
func SchemaAction(c *cli.Context) error {
	schema, err := inertia.GeometryConfigSchema()
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", schema)
	return nil
}
