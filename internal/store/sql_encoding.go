// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func encodeGeometry(g orb.Geometry) (string, error) {
	if g == nil {
		return "", nil
	}
	data, err := geojson.NewGeometry(g).MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("%w: geometry: %w", ErrEncodingValue, err)
	}
	return string(data), nil
}

func decodeGeometry(s string) (orb.Geometry, error) {
	if s == "" {
		return nil, nil
	}
	g, err := geojson.UnmarshalGeometry([]byte(s))
	if err != nil {
		return nil, err
	}
	return g.Geometry(), nil
}

func encodeProperties(p map[string]any) (string, error) {
	if len(p) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("%w: properties: %w", ErrEncodingValue, err)
	}
	return string(data), nil
}

func decodeProperties(s string) (map[string]any, error) {
	props := map[string]any{}
	if s == "" {
		return props, nil
	}
	if err := json.Unmarshal([]byte(s), &props); err != nil {
		return nil, err
	}
	return props, nil
}

// boundsPredicate matches rows whose stored bounding box intersects b.
// A box reaching past the antimeridian also matches the wrapped part.
func boundsPredicate(prefix string, b models.MapBoundingBox) sq.Sqlizer {
	intersects := func(minLon, maxLon float64) sq.Sqlizer {
		return sq.And{
			sq.LtOrEq{prefix + "min_longitude": maxLon},
			sq.GtOrEq{prefix + "max_longitude": minLon},
			sq.LtOrEq{prefix + "min_latitude": b.MaxLatitude},
			sq.GtOrEq{prefix + "max_latitude": b.MinLatitude},
		}
	}

	or := sq.Or{intersects(b.MinLongitude, b.MaxLongitude)}
	if b.MaxLongitude > 180 {
		or = append(or, intersects(b.MinLongitude-360, b.MaxLongitude-360))
	}
	if b.MinLongitude < -180 {
		or = append(or, intersects(b.MinLongitude+360, b.MaxLongitude+360))
	}
	return or
}

// selectAll runs a built select and scans every row with scan.
func selectAll[T any](ctx context.Context, q queryer, query sq.SelectBuilder, scan func(rowScanner) (T, error)) ([]T, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// selectOne returns the first row of query or errRecordNotFound.
func selectOne[T any](ctx context.Context, q queryer, query sq.SelectBuilder, scan func(rowScanner) (T, error)) (T, error) {
	items, err := selectAll(ctx, q, query.Limit(1), scan)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(items) == 0 {
		var zero T
		return zero, errRecordNotFound
	}
	return items[0], nil
}

func exec(ctx context.Context, q queryer, stmt sq.Sqlizer) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

// liveQuery builds a change-tracked query whose fetch runs against the pool.
func liveQuery[T any](name string, key func(T) string, fetch func(ctx context.Context) ([]T, error), entities ...models.Entity) changes.Query[T] {
	return changes.Query[T]{
		Name:     name,
		Entities: entities,
		Fetch:    fetch,
		Key:      key,
	}
}
