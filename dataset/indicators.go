// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Indicator is one value of a World Bank development indicator
// series for one country.
type Indicator struct {
	Series      string
	Country     string // ISO 3166-1 alpha-3 code
	CountryName string
	Value       float64
}

// Indicator CSV columns.
const (
	seriesCol      = "Series Name"
	countryCol     = "Country Code"
	countryNameCol = "Country Name"
	// ValueColumn is the column holding the indicator values.
	ValueColumn = "2017 [YR2017]"
)

// LoadIndicators loads a World Bank indicator CSV export from src.
func LoadIndicators(ctx context.Context, src string) ([]Indicator, []error, error) {
	return load(ctx, src, ReadIndicators)
}

// ReadIndicators parses a World Bank indicator CSV export. Rows whose
// value is missing, including the ".." World Bank uses for no data,
// are skipped. Record indexes in errors count data rows from 0.
func ReadIndicators(r io.Reader) ([]Indicator, []error, error) {
	br := bufio.NewReader(r)
	// Exports start with a byte order mark, which would otherwise
	// hide the quote opening the first header.
	if bom, err := br.Peek(3); err == nil && string(bom) == "\ufeff" {
		br.Discard(3)
	}
	cr := csv.NewReader(br)
	// Exports end with a few free-form footer lines.
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("empty indicator CSV")
	} else if err != nil {
		return nil, nil, err
	}
	cols := make(map[string]int)
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, need := range []string{seriesCol, countryCol, ValueColumn} {
		if _, ok := cols[need]; !ok {
			return nil, nil, fmt.Errorf("indicator CSV has no %q column", need)
		}
	}
	field := func(row []string, col string) string {
		i, ok := cols[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []Indicator
	var skipped []error
	for i := 0; ; i++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, nil, err
		}
		if blank(row) {
			continue
		}
		ind := Indicator{
			Series:      field(row, seriesCol),
			Country:     field(row, countryCol),
			CountryName: field(row, countryNameCol),
		}
		if ind.Country == "" {
			skipped = append(skipped, &MissingFieldError{i, countryCol, errMissing})
			continue
		}
		if ind.Series == "" {
			skipped = append(skipped, &MissingFieldError{i, seriesCol, errMissing})
			continue
		}
		v := field(row, ValueColumn)
		if v == "" || v == ".." {
			skipped = append(skipped, &MissingFieldError{i, ValueColumn, errMissing})
			continue
		}
		ind.Value, err = strconv.ParseFloat(v, 64)
		if err != nil {
			skipped = append(skipped, &MissingFieldError{i, ValueColumn, err})
			continue
		}
		out = append(out, ind)
	}
	return out, skipped, nil
}

func blank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ByCountry returns the values of series keyed by country code. If a
// country appears more than once, the first value wins.
func ByCountry(inds []Indicator, series string) map[string]float64 {
	m := make(map[string]float64)
	for _, ind := range inds {
		if ind.Series != series {
			continue
		}
		if _, ok := m[ind.Country]; !ok {
			m[ind.Country] = ind.Value
		}
	}
	return m
}

// Series returns the distinct series names in inds, in order of first
// appearance.
func Series(inds []Indicator) []string {
	seen := make(map[string]bool)
	var out []string
	for _, ind := range inds {
		if !seen[ind.Series] {
			seen[ind.Series] = true
			out = append(out, ind.Series)
		}
	}
	return out
}
