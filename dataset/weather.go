// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"encoding/json"
	"io"
	"sort"
	"time"
)

// Weather is one day of weather observations.
type Weather struct {
	Date           time.Time
	TemperatureMax float64 // °F
	DewPoint       float64 // °F
	Humidity       float64 // fraction
	CloudCover     float64 // fraction
}

type weatherJSON struct {
	Date           *string  `json:"date"`
	TemperatureMax *float64 `json:"temperatureMax"`
	DewPoint       *float64 `json:"dewPoint"`
	Humidity       *float64 `json:"humidity"`
	CloudCover     *float64 `json:"cloudCover"`
}

// LoadWeather loads a JSON array of weather records from src. Other
// fields in the records are ignored.
func LoadWeather(ctx context.Context, src string) ([]Weather, []error, error) {
	return load(ctx, src, ReadWeather)
}

// ReadWeather parses a JSON array of weather records. Records are
// returned in source order.
func ReadWeather(r io.Reader) ([]Weather, []error, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, err
	}
	var out []Weather
	var skipped []error
	for i, msg := range raw {
		w, err := decodeWeather(i, msg)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		out = append(out, w)
	}
	return out, skipped, nil
}

func decodeWeather(i int, msg json.RawMessage) (Weather, error) {
	var j weatherJSON
	if err := json.Unmarshal(msg, &j); err != nil {
		return Weather{}, &MissingFieldError{i, "", err}
	}
	if j.Date == nil {
		return Weather{}, &MissingFieldError{i, "date", errMissing}
	}
	date, err := parseDate(*j.Date)
	if err != nil {
		return Weather{}, &MissingFieldError{i, "date", err}
	}
	w := Weather{Date: date}
	for _, f := range []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"temperatureMax", j.TemperatureMax, &w.TemperatureMax},
		{"dewPoint", j.DewPoint, &w.DewPoint},
		{"humidity", j.Humidity, &w.Humidity},
		{"cloudCover", j.CloudCover, &w.CloudCover},
	} {
		if f.src == nil {
			return Weather{}, &MissingFieldError{i, f.name, errMissing}
		}
		*f.dst = *f.src
	}
	return w, nil
}

// parseDate parses a calendar date, or a full timestamp.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	if t, err2 := time.Parse(time.RFC3339, s); err2 == nil {
		return t, nil
	}
	return time.Time{}, err
}

// SortByDate sorts ws by date. Records with equal dates keep their
// order.
func SortByDate(ws []Weather) {
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[i].Date.Before(ws[j].Date)
	})
}
