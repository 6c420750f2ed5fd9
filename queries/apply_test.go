// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package queries_test

import (
	"testing"
	"time"

	"github.com/multimeric/flapison/exceptions"
	"github.com/multimeric/flapison/queries"
	"github.com/multimeric/flapison/schemas"
)

type testBook struct {
	ID          int
	Title       string
	PublishedAt time.Time
	PageCount   int
}

func newBookDefinition() *schemas.Definition {
	return schemas.NewDefinition("BookSchema", "books").
		DeclareField("id", &schemas.Attribute{}).
		DeclareField("title", &schemas.Attribute{}).
		DeclareField("published_at", &schemas.Attribute{}).
		DeclareField("pages", &schemas.Attribute{ModelField: "page_count"})
}

func newTestBooks() []*testBook {
	return []*testBook{
		{ID: 1, Title: "The Go Programming Language", PublishedAt: time.Date(2015, 10, 26, 0, 0, 0, 0, time.UTC), PageCount: 380},
		{ID: 2, Title: "Learning Go", PublishedAt: time.Date(2021, 3, 2, 0, 0, 0, 0, time.UTC), PageCount: 375},
		{ID: 3, Title: "Go in Action", PublishedAt: time.Date(2015, 11, 4, 0, 0, 0, 0, time.UTC), PageCount: 264},
		{ID: 4, Title: "Learning Go", PublishedAt: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), PageCount: 400},
	}
}

func assertBookOrder(t *testing.T, books []*testBook, ids ...int) {
	t.Helper()
	if len(books) != len(ids) {
		t.Fatalf("Actual: %d books, Expected: %d", len(books), len(ids))
	}
	for i, id := range ids {
		assertEqual(t, books[i].ID, id)
	}
}

func TestApplySort(t *testing.T) {
	def := newBookDefinition()

	t.Run("Should sort ascending by default", func(t *testing.T) {
		books := newTestBooks()
		err := queries.ApplySort(books, def, []queries.SortField{{Field: "title"}})
		if err != nil {
			t.Fatal(err)
		}
		assertBookOrder(t, books, 3, 2, 4, 1)
	})

	t.Run("Should sort descending on a minus member", func(t *testing.T) {
		books := newTestBooks()
		err := queries.ApplySort(books, def, []queries.SortField{{Field: "published_at", Desc: true}})
		if err != nil {
			t.Fatal(err)
		}
		assertBookOrder(t, books, 4, 2, 3, 1)
	})

	t.Run("Should break ties with later members through model field overrides", func(t *testing.T) {
		books := newTestBooks()
		err := queries.ApplySort(books, def, []queries.SortField{
			{Field: "title"},
			{Field: "pages", Desc: true},
		})
		if err != nil {
			t.Fatal(err)
		}
		assertBookOrder(t, books, 3, 4, 2, 1)
	})

	t.Run("Should leave the order untouched without sort members", func(t *testing.T) {
		books := newTestBooks()
		if err := queries.ApplySort(books, def, nil); err != nil {
			t.Fatal(err)
		}
		assertBookOrder(t, books, 1, 2, 3, 4)
	})

	t.Run("Should fail on unknown members", func(t *testing.T) {
		books := newTestBooks()
		err := queries.ApplySort(books, def, []queries.SortField{{Field: "ghost"}})
		assertAPIError(t, err, exceptions.CodeUnknownField, "BookSchema has no attribute ghost")
	})
}

func TestPageResolve(t *testing.T) {
	testCases := []struct {
		name           string
		page           queries.Page
		expectedNumber int
		expectedSize   int
	}{
		{
			name:           "Should fall back to the default size and first page",
			page:           queries.Page{},
			expectedNumber: 1,
			expectedSize:   10,
		},
		{
			name:           "Should cap the size at the maximum",
			page:           queries.Page{Size: 100, Number: 2},
			expectedNumber: 2,
			expectedSize:   50,
		},
		{
			name:           "Should keep sizes within bounds",
			page:           queries.Page{Size: 5, Number: 3},
			expectedNumber: 3,
			expectedSize:   5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			number, size := tc.page.Resolve(10, 50)
			assertEqual(t, number, tc.expectedNumber)
			assertEqual(t, size, tc.expectedSize)
		})
	}
}

func TestApplyPage(t *testing.T) {
	books := newTestBooks()

	t.Run("Should slice the requested page", func(t *testing.T) {
		page := queries.ApplyPage(books, queries.Page{Size: 2, Number: 2}, 10, 50)
		assertBookOrder(t, page, 3, 4)
	})

	t.Run("Should return an empty page past the end", func(t *testing.T) {
		page := queries.ApplyPage(books, queries.Page{Size: 2, Number: 5}, 10, 50)
		assertEqual(t, len(page), 0)
	})

	t.Run("Should clamp the final partial page", func(t *testing.T) {
		page := queries.ApplyPage(books, queries.Page{Size: 3, Number: 2}, 10, 50)
		assertBookOrder(t, page, 4)
	})

	t.Run("Should disable pagination without a resolved size", func(t *testing.T) {
		page := queries.ApplyPage(books, queries.Page{}, 0, 0)
		assertEqual(t, len(page), len(books))
	})
}

func TestPageCount(t *testing.T) {
	assertEqual(t, queries.PageCount(5, 2), 3)
	assertEqual(t, queries.PageCount(4, 2), 2)
	assertEqual(t, queries.PageCount(0, 2), 1)
	assertEqual(t, queries.PageCount(5, 0), 1)
}
