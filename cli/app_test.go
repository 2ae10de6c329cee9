package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"go.viam.com/inertia/logging"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runAppWithStderr(t, args...)
	return out, err
}

func runAppWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	orig := logging.Global()
	t.Cleanup(func() { logging.ReplaceGlobal(orig) })

	var out, errOut bytes.Buffer
	app := NewApp(&out, &errOut)
	err := app.Run(append([]string{"inertia"}, args...))
	return out.String(), errOut.String(), err
}

func TestCalcAction(t *testing.T) {
	for _, tc := range []struct {
		name     string
		args     []string
		expected string
	}{
		{"box", []string{"--type", "box", "--mass", "12", "--size", "1,1,1"}, "2 0 0 2 0 2\n"},
		{"cylinder", []string{"--type", "cylinder", "--mass", "12", "--radius", "1", "--height", "2"}, "7 0 0 7 0 6\n"},
		{"sphere", []string{"--type", "sphere", "--mass", "10", "--radius", "1"}, "4 0 0 4 0 4\n"},
		{"mesh", []string{"--type", "mesh", "--mass", "10", "--size", "1,1,1"}, "4 0 0 4 0 4\n"},
		{"mesh file", []string{"--type", "mesh", "--mass", "10", "--mesh", "testdata/block.ply"}, "26 0 0 20 0 10\n"},
		{"massless", []string{"--type", "box", "--mass", "0", "--size", "1,2,3"}, "0 0 0 0 0 0\n"},
		{"cone", []string{"--type", "cone", "--mass", "1"}, "no inertia for geometry type \"cone\"\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runApp(t, append([]string{"calc"}, tc.args...)...)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, out, test.ShouldEqual, tc.expected)
		})
	}
}

func TestCalcActionErrors(t *testing.T) {
	_, err := runApp(t, "calc", "--type", "sphere", "--mass", "1")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"radius" is required`)

	_, err = runApp(t, "calc", "--type", "box", "--mass", "1", "--size", "1,2")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "size must have 3 entries")

	_, err = runApp(t, "calc", "--type", "box")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestModelAction(t *testing.T) {
	out, err := runApp(t, "model", "--config", "testdata/model.json")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "chassis")
	test.That(t, out, test.ShouldContainSubstring, "wheel")
	test.That(t, out, test.ShouldContainSubstring, "antenna")

	out, err = runApp(t, "model", "-c", "testdata/model.json", "--urdf")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, `<robot name="rover">`)
	test.That(t, out, test.ShouldContainSubstring, `<inertia ixx="13" ixy="0" ixz="0" iyy="10" iyz="0" izz="5"></inertia>`)
	test.That(t, out, test.ShouldContainSubstring, `<link name="antenna"></link>`)
	test.That(t, strings.Count(out, "<inertial>"), test.ShouldEqual, 2)

	_, err = runApp(t, "model", "--config", "testdata/nope.json")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to read model config")
}

func TestSchemaAction(t *testing.T) {
	out, err := runApp(t, "schema")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, json.Valid([]byte(out)), test.ShouldBeTrue)
	test.That(t, out, test.ShouldContainSubstring, "geometryType")
}

func TestLogLevelFlag(t *testing.T) {
	_, err := runApp(t, "--log-level", "warn", "schema")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, logging.Global().GetLevel(), test.ShouldEqual, logging.WARN)

	_, err = runApp(t, "--log-level", "shouty", "schema")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLogFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inertia.log")
	_, err := runApp(t, "--log-file", path, "model", "--config", "testdata/model.json")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, logging.Global().GetLevel(), test.ShouldEqual, logging.INFO)

	data, err := os.ReadFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldContainSubstring, "skipping inertia for unrecognized geometry")
	test.That(t, string(data), test.ShouldContainSubstring, `"link":"antenna"`)
	test.That(t, string(data), test.ShouldContainSubstring, `"logger":"inertia.model"`)
}

func TestDefaultLoggingWarnsOnStderr(t *testing.T) {
	out, errOut, err := runAppWithStderr(t, "model", "--config", "testdata/model.json")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldNotContainSubstring, "skipping inertia")
	test.That(t, errOut, test.ShouldContainSubstring, "skipping inertia for unrecognized geometry")
	test.That(t, errOut, test.ShouldContainSubstring, "antenna")
	test.That(t, errOut, test.ShouldNotContainSubstring, "computed inertia")
	test.That(t, logging.Global().GetLevel(), test.ShouldEqual, logging.WARN)

	out, errOut, err = runAppWithStderr(t, "--debug", "calc", "--type", "sphere", "--mass", "10", "--radius", "1")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, "4 0 0 4 0 4\n")
	test.That(t, errOut, test.ShouldContainSubstring, "parsed geometry")
}

func TestLogFileWithLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inertia.log")
	_, err := runApp(t, "--log-file", path, "--log-level", "debug", "calc", "--type", "box", "--mass", "12", "--size", "1,1,1")
	test.That(t, err, test.ShouldBeNil)

	data, err := os.ReadFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldContainSubstring, "parsed geometry")
	test.That(t, string(data), test.ShouldContainSubstring, `"level":"DEBUG"`)
}
