// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

import "reflect"

// ModelFieldValue reads a model field from a struct, a struct pointer or a
// map[string]any model. Struct fields are located by the exported form of the
// field name, so "created_at" reads the CreatedAt field.
func ModelFieldValue(model any, field string) (any, bool) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := v.MapIndex(reflect.ValueOf(field))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		fv := v.FieldByName(ExportedName(field))
		if !fv.IsValid() {
			return nil, false
		}
		return fv.Interface(), true
	default:
		return nil, false
	}
}
