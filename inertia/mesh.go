package inertia

import (
	"bytes"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/chenzhekl/goply"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/inertia/utils"
)

// NewMeshFromPLYFile reads a PLY file and returns the extents of its vertices.
func NewMeshFromPLYFile(path string) (r3.Vector, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return r3.Vector{}, errors.Wrap(err, "failed to open mesh file")
	}
	defer f.Close() //nolint:errcheck

	size, err := MeshExtentsFromPLY(f)
	if err != nil {
		return r3.Vector{}, errors.Wrapf(err, "failed to load mesh from %s", path)
	}
	return size, nil
}

// maxPLYBytes bounds how much PLY data is read from a file or stream.
const maxPLYBytes = 64 << 20

// MeshExtentsFromPLY returns the axis-aligned extents (max minus min on each axis) of the vertices in a
// PLY stream. These are the dimensions used by MeshAsEllipsoid.
func MeshExtentsFromPLY(r io.Reader) (size r3.Vector, err error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPLYBytes+1))
	if err != nil {
		return r3.Vector{}, errors.Wrap(err, "failed to read PLY data")
	}
	if len(data) > maxPLYBytes {
		return r3.Vector{}, errors.Errorf("PLY data exceeds %d bytes", maxPLYBytes)
	}
	if err := checkPLYElementCounts(data); err != nil {
		return r3.Vector{}, err
	}

	// goply panics instead of returning errors on malformed input.
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("failed to parse PLY data: %v", rec)
		}
	}()

	vertices := goply.New(bytes.NewReader(data)).Elements("vertex")
	if len(vertices) == 0 {
		return r3.Vector{}, errors.New("PLY data contains no vertices")
	}

	minPt := r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	maxPt := r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i, vertex := range vertices {
		var pt [3]float64
		for j, axis := range [3]string{"x", "y", "z"} {
			prop, ok := vertex[axis]
			if !ok {
				return r3.Vector{}, errors.Errorf("vertex %d has no %q property", i, axis)
			}
			v, ok := plyNumber(prop)
			if !ok {
				return r3.Vector{}, errors.Wrapf(utils.NewUnexpectedTypeError(v, prop), "vertex %d property %q", i, axis)
			}
			pt[j] = v
		}
		minPt = r3.Vector{X: math.Min(minPt.X, pt[0]), Y: math.Min(minPt.Y, pt[1]), Z: math.Min(minPt.Z, pt[2])}
		maxPt = r3.Vector{X: math.Max(maxPt.X, pt[0]), Y: math.Max(maxPt.Y, pt[1]), Z: math.Max(maxPt.Z, pt[2])}
	}
	return maxPt.Sub(minPt), nil
}

// checkPLYElementCounts rejects headers that declare more elements than there are body lines. goply
// allocates every declared element up front, one element per line.
func checkPLYElementCounts(data []byte) error {
	lines := strings.Split(string(data), "\n")
	declared := 0
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "element":
			if len(fields) != 3 {
				return errors.Errorf("malformed PLY element line %q", line)
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil || count < 0 || count > len(lines) {
				return errors.Errorf("invalid PLY element count %q for %q", fields[2], fields[1])
			}
			declared += count
		case "end_header":
			body := lo.CountBy(lines[i+1:], func(l string) bool { return strings.TrimSpace(l) != "" })
			if declared > body {
				return errors.Errorf("PLY header declares %d elements but data has only %d lines", declared, body)
			}
			return nil
		}
	}
	return errors.New("PLY data has no end_header")
}

func plyNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint8:
		return float64(n), true
	case int16:
		return float64(n), true
	case uint16:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint32:
		return float64(n), true
	default:
		return 0, false
	}
}
