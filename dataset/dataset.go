// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads the static datasets the charts are drawn
// from.
//
// Every dataset has a typed record schema. A source that cannot be
// read or parsed at all is a *LoadError. A record that is missing a
// field or has a malformed one is skipped; the loaders return a
// *MissingFieldError for every skipped record next to the records
// they kept, so callers can report them.
//
// Sources are file paths, "-" for standard input, or http and https
// URLs.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// LoadError reports a dataset source that could not be fetched or
// parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a record that was skipped because a field
// is missing or malformed. Index is the record's position in the
// source.
type MissingFieldError struct {
	Index int
	Field string
	Err   error
}

// errMissing is the Err of a MissingFieldError for an absent field.
var errMissing = errors.New("missing")

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d: field %q: %v", e.Index, e.Field, e.Err)
}

func (e *MissingFieldError) Unwrap() error {
	return e.Err
}

// Open opens a dataset source for reading. The caller must close the
// result.
func Open(ctx context.Context, src string) (io.ReadCloser, error) {
	switch {
	case src == "-":
		return io.NopCloser(os.Stdin), nil
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		req, err := http.NewRequestWithContext(ctx, "GET", src, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: %s", src, resp.Status)
		}
		return resp.Body, nil
	}
	return os.Open(src)
}

// load opens src and parses it with parse, wrapping any failure in a
// *LoadError.
func load[T any](ctx context.Context, src string, parse func(r io.Reader) ([]T, []error, error)) ([]T, []error, error) {
	f, err := Open(ctx, src)
	if err != nil {
		return nil, nil, &LoadError{src, err}
	}
	defer f.Close()
	recs, skipped, err := parse(f)
	if err != nil {
		return nil, nil, &LoadError{src, err}
	}
	return recs, skipped, nil
}
