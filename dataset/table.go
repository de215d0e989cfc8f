// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"time"

	"github.com/aclements/go-gg/table"
)

// WeatherTable returns ws as a table with one column per field.
func WeatherTable(ws []Weather) *table.Table {
	dateCol := make(byTime, len(ws))
	tmaxCol := make([]float64, len(ws))
	dewCol := make([]float64, len(ws))
	humCol := make([]float64, len(ws))
	cloudCol := make([]float64, len(ws))
	for i := range ws {
		w := &ws[i]

		dateCol[i] = w.Date
		tmaxCol[i] = w.TemperatureMax
		dewCol[i] = w.DewPoint
		humCol[i] = w.Humidity
		cloudCol[i] = w.CloudCover
	}

	return new(table.Builder).
		Add("date", dateCol).
		Add("temperature max", tmaxCol).
		Add("dew point", dewCol).
		Add("humidity", humCol).
		Add("cloud cover", cloudCol).
		Done()
}

// IndicatorTable returns inds as a table, grouped by series.
func IndicatorTable(inds []Indicator) table.Grouping {
	series := make([]string, len(inds))
	codes := make([]string, len(inds))
	names := make([]string, len(inds))
	values := make([]float64, len(inds))
	for i, ind := range inds {
		series[i] = ind.Series
		codes[i] = ind.Country
		names[i] = ind.CountryName
		values[i] = ind.Value
	}

	tab := new(table.Builder).
		Add("series", series).
		Add("country", codes).
		Add("name", names).
		Add("value", values).
		Done()
	return table.GroupBy(tab, "series")
}

// CountryTable returns the codes and names of cs joined with the
// values of one indicator series. Countries without a value are
// omitted.
func CountryTable(cs []Country, values map[string]float64) *table.Table {
	var codes, names []string
	var vals []float64
	for _, c := range cs {
		v, ok := values[c.ID]
		if !ok {
			continue
		}
		codes = append(codes, c.ID)
		names = append(names, c.Name)
		vals = append(vals, v)
	}
	return new(table.Builder).
		Add("country", codes).
		Add("name", names).
		Add("value", vals).
		Done()
}

// byTime is a date column go-gg can sort.
type byTime []time.Time

func (s byTime) Len() int {
	return len(s)
}

func (s byTime) Less(i, j int) bool {
	return s[i].Before(s[j])
}

func (s byTime) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
