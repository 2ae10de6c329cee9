// Package config defines the model inertia file format: a named model with a list of links, each with a
// mass and a geometry.
package config

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"go.viam.com/inertia/inertia"
	"go.viam.com/inertia/logging"
	"go.viam.com/inertia/utils"
)

// LinkConfig describes one rigid body of a model.
type LinkConfig struct {
	Name     string                  `json:"name"`
	Mass     float64                 `json:"mass"`
	Geometry *inertia.GeometryConfig `json:"geometry"`
}

// Config is a model made of links.
type Config struct {
	Name  string       `json:"name"`
	Links []LinkConfig `json:"links"`

	ConfigFilePath string `json:"-"`
}

// Validate ensures all parts of the config are valid. Masses are not range checked.
func (c *Config) Validate() error {
	var err error
	if c.Name == "" {
		err = multierr.Append(err, utils.NewConfigValidationFieldRequiredError("model", "name"))
	}
	for idx, link := range c.Links {
		path := fmt.Sprintf("links.%d", idx)
		if link.Name == "" {
			err = multierr.Append(err, utils.NewConfigValidationFieldRequiredError(path, "name"))
		}
		if link.Geometry == nil {
			err = multierr.Append(err, utils.NewConfigValidationFieldRequiredError(path, "geometry"))
			continue
		}
		err = multierr.Append(err, link.Geometry.Validate(path+".geometry"))
	}
	names := lo.Map(c.Links, func(link LinkConfig, _ int) string { return link.Name })
	for _, dup := range lo.FindDuplicates(lo.Compact(names)) {
		err = multierr.Append(err, errors.Errorf("duplicate link name %q", dup))
	}
	return err
}

// LinkInertia is the computed inertia of one link. OK is false when the link's geometry kind has no
// inertia formula, in which case Inertia is zero and should not be used.
type LinkInertia struct {
	Name     string
	Mass     float64
	Geometry inertia.Geometry
	Inertia  inertia.Tensor
	OK       bool
}

// Inertias is the result of computing a model.
type Inertias []LinkInertia

// Compute calculates the inertia of every link. Geometries are parsed concurrently, since mesh links read
// files, and results keep the link order. Links whose geometry kind is unrecognized are kept with OK set
// to false.
func (c *Config) Compute(ctx context.Context, logger logging.Logger) (Inertias, error) {
	for idx, link := range c.Links {
		if link.Geometry == nil {
			return nil, utils.NewConfigValidationFieldRequiredError(fmt.Sprintf("links.%d", idx), "geometry")
		}
	}

	geometries := make([]inertia.Geometry, len(c.Links))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())
	for idx, link := range c.Links {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			geom, err := link.Geometry.ParseConfig()
			if err != nil {
				return errors.Wrapf(err, "link %q", link.Name)
			}
			geometries[idx] = geom
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	inertias := make(Inertias, 0, len(c.Links))
	for idx, link := range c.Links {
		geom := geometries[idx]
		tensor, ok := inertia.Calculate(link.Mass, geom)
		if !ok {
			logger.Warnw("skipping inertia for unrecognized geometry", "link", link.Name, "geometryType", geom.Type())
		} else {
			logger.Debugw("computed inertia", "link", link.Name, "inertia", tensor.String())
		}
		inertias = append(inertias, LinkInertia{
			Name:     link.Name,
			Mass:     link.Mass,
			Geometry: geom,
			Inertia:  tensor,
			OK:       ok,
		})
	}
	return inertias, nil
}

// Resolved returns only the links that have an inertia.
func (inertias Inertias) Resolved() Inertias {
	return lo.Filter(inertias, func(li LinkInertia, _ int) bool { return li.OK })
}

// String prints out a table of each link, with columns of name, mass, geometry and the six tensor entries.
func (inertias Inertias) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Link", "Mass", "Geometry", "Ixx", "Ixy", "Ixz", "Iyy", "Iyz", "Izz"})
	for i, li := range inertias {
		row := table.Row{fmt.Sprintf("%d", i+1), li.Name, fmt.Sprintf("%g", li.Mass), li.Geometry.String()}
		if li.OK {
			for _, v := range li.Inertia.Upper() {
				row = append(row, fmt.Sprintf("%.6g", v))
			}
		} else {
			row = append(row, "-", "-", "-", "-", "-", "-")
		}
		t.AppendRow(row)
	}
	return t.Render()
}
