// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils_test

import (
	"testing"

	"github.com/multimeric/flapison/internal/utils"
)

func assertEqual[V comparable](t *testing.T, actual, expected V) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Actual: %v, Expected: %v", actual, expected)
	}
}

func TestUnderscore(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "createdAt", expected: "created_at"},
		{input: "CreatedAt", expected: "created_at"},
		{input: "created-at", expected: "created_at"},
		{input: "created_at", expected: "created_at"},
		{input: "AuthorID", expected: "author_i_d"},
		{input: "title", expected: "title"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assertEqual(t, utils.Underscore(tc.input), tc.expected)
		})
	}
}

func TestDasherize(t *testing.T) {
	assertEqual(t, utils.Dasherize("Planet Go"), "planet-go")
	assertEqual(t, utils.Dasherize("created_at"), "created-at")
	assertEqual(t, utils.Dasherize("PlanetGo"), "planet-go")
}

func TestCamelize(t *testing.T) {
	assertEqual(t, utils.Camelize("created_at"), "createdAt")
	assertEqual(t, utils.Camelize("created-at"), "createdAt")
	assertEqual(t, utils.Camelize("title"), "title")
	assertEqual(t, utils.Camelize(""), "")
}

func TestExportedName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "created_at", expected: "CreatedAt"},
		{input: "id", expected: "ID"},
		{input: "author_id", expected: "AuthorID"},
		{input: "self_url", expected: "SelfURL"},
		{input: "api_key", expected: "APIKey"},
		{input: "title", expected: "Title"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assertEqual(t, utils.ExportedName(tc.input), tc.expected)
		})
	}
}
