// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package queries

import (
	"cmp"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/multimeric/flapison/internal/utils"
	"github.com/multimeric/flapison/schemas"
)

// ApplySort stable sorts models in place by the sort members, reading values
// through each member's model field.
func ApplySort[T any](models []T, def *schemas.Definition, sortFields []SortField) error {
	if len(sortFields) == 0 {
		return nil
	}

	type sortKey struct {
		modelField string
		desc       bool
	}
	keys := make([]sortKey, len(sortFields))
	for i, sf := range sortFields {
		modelField, err := def.ModelField(sf.Field)
		if err != nil {
			return err
		}
		keys[i] = sortKey{modelField: modelField, desc: sf.Desc}
	}

	slices.SortStableFunc(models, func(a, b T) int {
		for _, key := range keys {
			av, _ := utils.ModelFieldValue(a, key.modelField)
			bv, _ := utils.ModelFieldValue(b, key.modelField)
			c := compareValues(av, bv)
			if key.desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
	return nil
}

// compareValues orders two model values of the same dynamic type. Values of
// mismatched or unsupported types compare as equal.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
		return 0
	case uuid.UUID:
		if bv, ok := b.(uuid.UUID); ok {
			return strings.Compare(av.String(), bv.String())
		}
		return 0
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
		return 0
	case bool:
		bv, ok := b.(bool)
		if !ok || av == bv {
			return 0
		}
		if bv {
			return -1
		}
		return 1
	}

	an, aok := toFloat(a)
	bn, bok := toFloat(b)
	if aok && bok {
		return cmp.Compare(an, bn)
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// Resolve returns the effective page number and size. A zero size falls back
// to defaultSize, maxSize caps the size when positive, and the number is at
// least 1.
func (p Page) Resolve(defaultSize, maxSize int) (number, size int) {
	size = p.Size
	if size <= 0 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	number = p.Number
	if number <= 0 {
		number = 1
	}
	return number, size
}

// ApplyPage returns the requested page of models. A non-positive resolved
// size disables pagination.
func ApplyPage[T any](models []T, page Page, defaultSize, maxSize int) []T {
	number, size := page.Resolve(defaultSize, maxSize)
	if size <= 0 {
		return models
	}

	start := (number - 1) * size
	if start >= len(models) {
		return []T{}
	}
	return models[start:min(start+size, len(models))]
}

// PageCount returns the number of pages needed for total items, at least 1.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}
