// Package cli contains the inertia command line interface.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

// CLI flags.
const (
	generalFlagDebug    = "debug"
	generalFlagLogLevel = "log-level"
	generalFlagLogFile  = "log-file"

	calcFlagType   = "type"
	calcFlagMass   = "mass"
	calcFlagSize   = "size"
	calcFlagRadius = "radius"
	calcFlagHeight = "height"
	calcFlagMesh   = "mesh"

	modelFlagConfig = "config"
	modelFlagURDF   = "urdf"
)

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	var logCloser io.Closer
	return &cli.App{
		Name:            "inertia",
		Usage:           "compute inertia tensors of robot model primitives",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  generalFlagLogLevel,
				Usage: "log at `LEVEL` (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:      generalFlagLogFile,
				Usage:     "write JSON logs to a rotated `FILE` instead of stderr",
				TakesFile: true,
			},
		},
		Before: func(c *cli.Context) error {
			closer, err := setupLogger(c)
			logCloser = closer
			return err
		},
		After: func(c *cli.Context) error {
			if logCloser == nil {
				return nil
			}
			return logCloser.Close()
		},
		Commands: []*cli.Command{
			{
				Name:      "calc",
				Usage:     "compute the inertia of a single primitive",
				UsageText: "inertia calc --type <box|cylinder|sphere|mesh> --mass <kg> [geometry flags]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     calcFlagType,
						Usage:    "geometry type",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     calcFlagMass,
						Usage:    "mass in kg",
						Required: true,
					},
					&cli.Float64SliceFlag{
						Name:  calcFlagSize,
						Usage: "comma separated extents along x,y,z in meters (box, mesh)",
					},
					&cli.Float64Flag{
						Name:  calcFlagRadius,
						Usage: "radius in meters (cylinder, sphere)",
					},
					&cli.Float64Flag{
						Name:  calcFlagHeight,
						Usage: "height in meters (cylinder)",
					},
					&cli.StringFlag{
						Name:      calcFlagMesh,
						Usage:     "PLY `FILE` whose extents are used when --size is not given (mesh)",
						TakesFile: true,
					},
				},
				Action: CalcAction,
			},
			{
				Name:      "model",
				Usage:     "compute the inertia of every link in a model file",
				UsageText: "inertia model --config <file> [--urdf]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      modelFlagConfig,
						Aliases:   []string{"c"},
						Usage:     "load the model from `FILE`",
						Required:  true,
						TakesFile: true,
					},
					&cli.BoolFlag{
						Name:  modelFlagURDF,
						Usage: "print URDF inertial elements instead of a table",
					},
				},
				Action: ModelAction,
			},
			{
				Name:   "schema",
				Usage:  "print the JSON schema of a geometry config",
				Action: SchemaAction,
			},
		},
	}
}
