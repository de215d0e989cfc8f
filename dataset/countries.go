// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Country is a country's outline from a GeoJSON feature.
type Country struct {
	// ID is the ISO 3166-1 alpha-3 code, which joins countries to
	// indicators.
	ID   string
	Name string
	// Geometry is in longitude/latitude degrees.
	Geometry orb.Geometry
}

// Feature properties holding a country's code and name.
const (
	countryIDProp   = "ADM0_A3_IS"
	countryNameProp = "NAME"
)

// LoadCountries loads a GeoJSON FeatureCollection of country
// outlines from src.
func LoadCountries(ctx context.Context, src string) ([]Country, []error, error) {
	return load(ctx, src, ReadCountries)
}

// ReadCountries parses a GeoJSON FeatureCollection of country
// outlines. Features without a code or geometry are skipped; a
// missing name falls back to the code.
func ReadCountries(r io.Reader) ([]Country, []error, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, nil, err
	}
	var out []Country
	var skipped []error
	for i, f := range fc.Features {
		id := f.Properties.MustString(countryIDProp, "")
		if id == "" {
			skipped = append(skipped, &MissingFieldError{i, countryIDProp, errMissing})
			continue
		}
		if f.Geometry == nil {
			skipped = append(skipped, &MissingFieldError{i, "geometry", errMissing})
			continue
		}
		out = append(out, Country{
			ID:       id,
			Name:     f.Properties.MustString(countryNameProp, id),
			Geometry: f.Geometry,
		})
	}
	return out, skipped, nil
}
