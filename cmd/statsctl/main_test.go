package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhytomyr-tourism/internal/domain"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("DATA_SOURCE", "file")
	t.Setenv("VISITS_ENABLED", "false")
	t.Setenv("WORKER_ENABLED", "false")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	// значения по умолчанию идут первыми, флаги теста их перекрывают
	full := append([]string{args[0],
		"--districts", "../../data/districts.geojson",
		"--attractions", "../../data/attractions.json",
	}, args[1:]...)
	rootCmd.SetArgs(full)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := runCLI(t, "validate", "--strict=false")
	require.NoError(t, err)

	assert.Contains(t, out, "districts:           4\n")
	assert.Contains(t, out, "total objects:       23\n")
	assert.Contains(t, out, "located:             21\n")
	assert.Contains(t, out, "outside districts:   1\n")
	assert.Contains(t, out, "missing coordinates: 1\n")
	assert.Contains(t, out, "unknown category:    1\n")
	assert.Contains(t, out, `category "sport": 1 object(s)`)
}

func TestValidateCommand_Strict(t *testing.T) {
	_, err := runCLI(t, "validate", "--strict=true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 excluded and 1 unclassified")
}

func TestValidateCommand_BadDistricts(t *testing.T) {
	_, err := runCLI(t, "validate", "--strict=false", "--districts", "../../data/attractions.json")
	assert.Error(t, err)
}

func TestAggregateCommand(t *testing.T) {
	out, err := runCLI(t, "aggregate", "--pretty=false")
	require.NoError(t, err)

	var bundle domain.AnalyticsBundle
	require.NoError(t, json.Unmarshal([]byte(out), &bundle))

	assert.Equal(t, 23, bundle.Totals.TotalObjects)
	assert.Equal(t, 22, bundle.Totals.ClassifiedCount)
	assert.Equal(t, 1, bundle.Quality.ExcludedCount)
	assert.Equal(t, 7, bundle.Quality.TotalClusters)
	assert.Equal(t, 3.1, bundle.Quality.AveragePerCluster)
	require.Len(t, bundle.Categories, 7)
	require.Len(t, bundle.Districts, 4)
	assert.Equal(t, "zhytomyr", bundle.Districts[0].DistrictID)
	assert.Equal(t, 12, bundle.Districts[0].Count)
	assert.Equal(t, 1, bundle.UnknownCategories["sport"])
}

func TestResolveCommand(t *testing.T) {
	out, err := runCLI(t, "resolve", "--lat", "50.2547", "--lng", "28.6587")
	require.NoError(t, err)
	assert.Contains(t, out, "zhytomyr\t")

	out, err = runCLI(t, "resolve", "--lat", "50.45", "--lng", "30.52")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)

	_, err = runCLI(t, "resolve", "--lat", "95", "--lng", "30.52")
	assert.Error(t, err)
}
