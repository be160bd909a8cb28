package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/vehicle-dashboard/internal/dataset"
)

const sampleCSV = `price,model_year,model,condition,cylinders,fuel,odometer,transmission,type,paint_color,is_4wd,date_posted,days_listed
9400,2011,bmw x5,good,6,gas,145000,automatic,SUV,,1,2018-06-23,19
25500,,ford f-150,good,6,gas,88705,automatic,pickup,white,1,2018-10-19,50
5500,2013,hyundai sonata,like new,4,gas,110000,automatic,sedan,red,,2019-02-07,79
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vehicles.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))
	return path
}

func TestRunPrintsSummary(t *testing.T) {
	t.Setenv("DASHBOARD_LOG_LEVEL", "error")
	path := writeSample(t)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-source", path}, &out))

	var s summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &s))
	assert.Equal(t, 3, s.Rows)
	assert.Equal(t, "This dataset has 3 listings", s.RowsLabel)
	assert.Len(t, s.Fingerprint, 16)
	assert.Equal(t, []string{"all", "SUV", "pickup", "sedan"}, s.Options["type"])
	assert.Equal(t, []string{"all", "good", "like new"}, s.Options["condition"])
	assert.Equal(t, dataset.Bounds{Min: 5500, Max: 25500}, s.Bounds["price"])
}

func TestRunWritesWorkbook(t *testing.T) {
	t.Setenv("DASHBOARD_LOG_LEVEL", "error")
	path := writeSample(t)
	xlsx := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, run(context.Background(), []string{"-source", path, "-xlsx", xlsx, "-bounds", ""}, &bytes.Buffer{}))
	info, err := os.Stat(xlsx)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRunRejectsUnknownColumn(t *testing.T) {
	t.Setenv("DASHBOARD_LOG_LEVEL", "error")
	err := run(context.Background(), []string{"-source", writeSample(t), "-options", "fuel"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
}

func TestRunMissingSource(t *testing.T) {
	t.Setenv("DASHBOARD_LOG_LEVEL", "error")
	err := run(context.Background(), []string{"-source", filepath.Join(t.TempDir(), "nope.csv")}, &bytes.Buffer{})
	assert.ErrorIs(t, err, dataset.ErrDataLoad)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"type", "condition", "model"}, splitList("type, condition;model"))
	assert.Empty(t, splitList(""))
}
