package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, *logtest.Hook, error) {
	logger, hook := logtest.NewNullLogger()
	var out bytes.Buffer
	err := newApp(&out, logger).Run(append([]string{"gisutil"}, args...))
	return out.String(), hook, err
}

func TestFeatureClassCommand(t *testing.T) {
	out, _, err := run(t, "featureclass", "--workspace", `C:\data\project.gdb`, "parcels")
	require.NoError(t, err)
	assert.Equal(t, "C:\\data\\project.gdb\\parcels\n", out)

	out, _, err = run(t, "featureclass", "-w", `C:\data`, "parcels")
	require.NoError(t, err)
	assert.Equal(t, "C:\\data\\parcels.shp\n", out)
}

func TestFeatureClassCommandRequiresName(t *testing.T) {
	_, _, err := run(t, "featureclass", "--workspace", "data")
	assert.Error(t, err)
}

func TestTraverseCommand(t *testing.T) {
	out, _, err := run(t, "traverse", "--distance", "10", "--bearing", "0")
	require.NoError(t, err)
	assert.Equal(t, "x,y\n10,0\n", out)
}

func TestTraverseCommandGeoJSON(t *testing.T) {
	out, _, err := run(t, "traverse", "--x", "1", "--y", "1", "--distance", "5", "--bearing", "0", "--geojson")
	require.NoError(t, err)

	var feature map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &feature))
	geometry := feature["geometry"].(map[string]interface{})
	assert.Equal(t, "LineString", geometry["type"])
	assert.Equal(t, []interface{}{[]interface{}{1.0, 1.0}, []interface{}{6.0, 1.0}}, geometry["coordinates"])
}

func TestAreaCommand(t *testing.T) {
	out, hook, err := run(t, "area", "0,0", "0,1", "1,1", "1,0", "0,0")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
	assert.Empty(t, hook.Entries)
}

func TestAreaCommandWarnsOnOpenRing(t *testing.T) {
	out, hook, err := run(t, "area", "0,0", "4,0", "4,3")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, 3, hook.LastEntry().Data["points"])
}

func TestAreaCommandInvalidPoint(t *testing.T) {
	_, _, err := run(t, "area", "0,0", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")

	_, _, err = run(t, "area", "0,x")
	assert.Error(t, err)
}

func TestCircleCommandStdout(t *testing.T) {
	out, _, err := run(t, "circle", "--radius", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 361)
	assert.Equal(t, "x,y", lines[0])
	assert.Equal(t, "5,0", lines[1])
}

func TestCircleCommandCSV(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "circle.csv")

	out, hook, err := run(t, "circle", "--radius", "1", "--sides", "4", "--csv", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, path, hook.LastEntry().Data["path"])

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 6)
	assert.Equal(t, []string{"1", "0"}, records[1])
	assert.Equal(t, records[1], records[5])
}

func TestCircleCommandGeoJSON(t *testing.T) {
	out, _, err := run(t, "circle", "--radius", "2", "--sides", "8", "--geojson")
	require.NoError(t, err)

	var feature map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &feature))
	geometry := feature["geometry"].(map[string]interface{})
	assert.Equal(t, "Polygon", geometry["type"])
	ring := geometry["coordinates"].([]interface{})[0].([]interface{})
	assert.Len(t, ring, 9)
}

func TestCircleCommandTooFewSides(t *testing.T) {
	_, _, err := run(t, "circle", "--radius", "2", "--sides", "2")
	assert.Error(t, err)
}
