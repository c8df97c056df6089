package contracts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceSeries_Validate(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2024, 1, 1+n, 0, 0, 0, 0, time.UTC)
	}

	valid := &PriceSeries{Commodity: "CORN", Points: []PricePoint{
		{Date: day(0), Price: 4.5},
		{Date: day(1), Price: 4.6},
		{Date: day(2), Price: 4.4},
	}}
	assert.NoError(t, valid.Validate())

	nonPositive := &PriceSeries{Commodity: "CORN", Points: []PricePoint{
		{Date: day(0), Price: 4.5},
		{Date: day(1), Price: 0},
	}}
	assert.Error(t, nonPositive.Validate())

	duplicateDate := &PriceSeries{Commodity: "CORN", Points: []PricePoint{
		{Date: day(0), Price: 4.5},
		{Date: day(0), Price: 4.6},
	}}
	assert.Error(t, duplicateDate.Validate())

	outOfOrder := &PriceSeries{Commodity: "CORN", Points: []PricePoint{
		{Date: day(1), Price: 4.5},
		{Date: day(0), Price: 4.6},
	}}
	assert.Error(t, outOfOrder.Validate())

	empty := &PriceSeries{Commodity: "CORN"}
	assert.NoError(t, empty.Validate())
}

func TestPriceSeries_Accessors(t *testing.T) {
	s := &PriceSeries{Commodity: "CORN", Points: []PricePoint{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Price: 4.5},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Price: 4.6},
	}}

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []float64{4.5, 4.6}, s.Prices())

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 4.6, last.Price)

	_, ok = (&PriceSeries{}).Last()
	assert.False(t, ok)
}
