package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/vehicle-dashboard/internal/dataset"
	"github.com/yourorg/vehicle-dashboard/internal/dataset/datasettest"
	"github.com/yourorg/vehicle-dashboard/internal/filter"
)

func fullCriteria(t *testing.T, ds *dataset.Dataset) filter.Criteria {
	t.Helper()
	cat, err := dataset.NewCatalog(ds)
	require.NoError(t, err)
	return filter.Unconstrained(cat)
}

func TestFilterSuvScenario(t *testing.T) {
	ds := datasettest.New(t,
		datasettest.Row{Type: "suv", Condition: "good", Price: 5000, ModelYear: 2015},
		datasettest.Row{Type: "sedan", Condition: "fair", Price: 3000, ModelYear: 2010},
	)
	res := filter.Filter(ds, filter.Criteria{
		VehicleType: "suv",
		Condition:   "all",
		Price:       filter.Range[float64]{Min: 0, Max: 10000},
		Year:        filter.Range[int]{Min: 2000, Max: 2020},
	})
	require.Equal(t, 1, res.Count())
	assert.Equal(t, ds.At(0), res.Rows[0])
}

func TestFilterResultDoesNotShareRowsWithDataset(t *testing.T) {
	ds := datasettest.Fleet(t)
	crit := fullCriteria(t, ds)
	crit.VehicleType = "suv"

	res := filter.Filter(ds, crit)
	require.Equal(t, 3, res.Count())
	*res.Rows[0].Type = "mutated"
	*res.Rows[2].Condition = "mutated"

	again := filter.Filter(ds, crit)
	assert.Equal(t, 3, again.Count())
	assert.Equal(t, "suv", *ds.At(0).Type)
	assert.Equal(t, "excellent", *ds.At(7).Condition)
}

func TestFilterAllSentinelIsIdentity(t *testing.T) {
	ds := datasettest.Fleet(t)
	res := filter.Filter(ds, fullCriteria(t, ds))
	assert.Equal(t, ds.Listings(), res.Rows)
}

func TestFilterEmptyStringActsAsAll(t *testing.T) {
	ds := datasettest.Fleet(t)
	c := fullCriteria(t, ds)
	c.VehicleType, c.Condition = "", ""
	assert.Equal(t, ds.Len(), filter.Filter(ds, c).Count())
}

func TestFilterInvertedRangeIsEmpty(t *testing.T) {
	ds := datasettest.Fleet(t)
	c := fullCriteria(t, ds)
	c.Price = filter.Range[float64]{Min: 100, Max: 50}
	res := filter.Filter(ds, c)
	assert.Equal(t, 0, res.Count())
	assert.NotNil(t, res.Rows)

	c = fullCriteria(t, ds)
	c.Year = filter.Range[int]{Min: 2020, Max: 2000}
	assert.Equal(t, 0, filter.Filter(ds, c).Count())
}

func TestFilterBoundsAreInclusive(t *testing.T) {
	ds := datasettest.Fleet(t)
	c := fullCriteria(t, ds)
	c.Price = filter.Range[float64]{Min: 5000, Max: 5000}
	c.Year = filter.Range[int]{Min: 2015, Max: 2015}
	res := filter.Filter(ds, c)
	require.Equal(t, 1, res.Count())
	assert.Equal(t, "ford explorer", *res.Rows[0].Model)
}

func TestFilterNullCategoryNeverMatchesSpecificValue(t *testing.T) {
	ds := datasettest.Fleet(t)
	c := fullCriteria(t, ds)
	c.Condition = "good"
	for _, row := range filter.Filter(ds, c).Rows {
		require.NotNil(t, row.Condition)
		assert.Equal(t, "good", *row.Condition)
	}

	c = fullCriteria(t, ds)
	c.VehicleType = "SUV"
	assert.Equal(t, 0, filter.Filter(ds, c).Count(), "match is case-sensitive")
}

func TestFilterPreservesOrder(t *testing.T) {
	ds := datasettest.Fleet(t)
	c := fullCriteria(t, ds)
	c.Price = filter.Range[float64]{Min: 5000, Max: 20000}
	res := filter.Filter(ds, c)
	require.NotZero(t, res.Count())

	next := 0
	for _, row := range res.Rows {
		found := false
		for next < ds.Len() {
			if ds.At(next) == row {
				found = true
				next++
				break
			}
			next++
		}
		require.True(t, found, "row %+v out of order", row)
	}
}

func TestFilterIsMonotonic(t *testing.T) {
	ds := datasettest.Fleet(t)
	base := fullCriteria(t, ds)
	baseCount := filter.Filter(ds, base).Count()

	narrowed := []func(c *filter.Criteria){
		func(c *filter.Criteria) { c.Price.Min += 4000 },
		func(c *filter.Criteria) { c.Price.Max -= 10000 },
		func(c *filter.Criteria) { c.Year.Min = 2014 },
		func(c *filter.Criteria) { c.Year.Max = 2016 },
		func(c *filter.Criteria) { c.VehicleType = "suv" },
		func(c *filter.Criteria) { c.Condition = "excellent" },
	}
	prev := baseCount
	cur := base
	for i, narrow := range narrowed {
		c := base
		narrow(&c)
		assert.LessOrEqual(t, filter.Filter(ds, c).Count(), baseCount, "single narrowing %d", i)

		narrow(&cur)
		n := filter.Filter(ds, cur).Count()
		assert.LessOrEqual(t, n, prev, "cumulative narrowing %d", i)
		prev = n
	}
}
