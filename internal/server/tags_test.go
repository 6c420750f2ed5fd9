// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server_test

import (
	"net/http"
	"testing"

	"github.com/multimeric/flapison/documents"
	"github.com/multimeric/flapison/exceptions"
)

func TestListTags(t *testing.T) {
	testCases := []TestRequestCase{
		{
			Name:      "Should return all tags",
			Path:      "/tags",
			ExpStatus: http.StatusOK,
			AssertFn: func(t *testing.T, res *http.Response) {
				ds := GetTestDataset(t)
				doc := AssertTestResponseBody(t, res, documents.Document{})
				resources := AssertDocumentResources(t, &doc)

				AssertEqual(t, len(resources), len(ds.Tags))
				AssertMetaCount(t, &doc, len(ds.Tags))

				first := resources[0]
				AssertEqual(t, AssertResourceString(t, first, "type"), "tags")
				attrs := AssertResourceMap(t, first, "attributes")
				AssertEqual(t, len(attrs), 2)
				name, _ := attrs["name"].(string)
				AssertEqual(t, name, ds.Tags[0].Name)

				_, hasLinks := first["links"]
				AssertEqual(t, hasLinks, false)
			},
		},
		{
			Name:      "Should sort tags by their slug",
			Path:      "/tags?sort=slug",
			ExpStatus: http.StatusOK,
			AssertFn: func(t *testing.T, res *http.Response) {
				doc := AssertTestResponseBody(t, res, documents.Document{})
				resources := AssertDocumentResources(t, &doc)

				firstSlug, _ := AssertResourceMap(t, resources[0], "attributes")["slug"].(string)
				AssertEqual(t, firstSlug, "devlogs")
				lastSlug, _ := AssertResourceMap(t, resources[4], "attributes")["slug"].(string)
				AssertEqual(t, lastSlug, "web-services")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			PerformTestRequestCase(t, http.MethodGet, tc)
		})
	}
}

func TestGetTag(t *testing.T) {
	testCases := []TestRequestCase{
		{
			Name:      "Should return a tag by its slug",
			Path:      "/tags/go",
			ExpStatus: http.StatusOK,
			AssertFn: func(t *testing.T, res *http.Response) {
				ds := GetTestDataset(t)
				tag, ok := ds.TagBySlug("go")
				AssertEqual(t, ok, true)

				doc := AssertTestResponseBody(t, res, documents.Document{})
				resource := AssertDocumentResource(t, &doc)

				AssertEqual(t, AssertResourceString(t, resource, "type"), "tags")
				AssertEqual(t, AssertResourceString(t, resource, "id"), tag.ID.String())
				attrs := AssertResourceMap(t, resource, "attributes")
				name, _ := attrs["name"].(string)
				AssertEqual(t, name, "Go")
			},
		},
		{
			Name:      "Should match hyphenated slugs",
			Path:      "/tags/web-services",
			ExpStatus: http.StatusOK,
			AssertFn: func(t *testing.T, res *http.Response) {
				doc := AssertTestResponseBody(t, res, documents.Document{})
				resource := AssertDocumentResource(t, &doc)

				attrs := AssertResourceMap(t, resource, "attributes")
				name, _ := attrs["name"].(string)
				AssertEqual(t, name, "Web Services")
			},
		},
		{
			Name:      "Should return 404 when the tag does not exist",
			Path:      "/tags/missing-tag",
			ExpStatus: http.StatusNotFound,
			AssertFn: func(t *testing.T, res *http.Response) {
				resBody := AssertTestResponseBody(t, res, exceptions.ErrorResponse{})
				AssertEqual(t, resBody.Errors[0].Code, exceptions.CodeNotFound)
				AssertEqual(t, resBody.Errors[0].Detail, "Tag missing-tag not found")
			},
		},
		{
			Name:      "Should return 400 when the slug is malformed",
			Path:      "/tags/INVALID",
			ExpStatus: http.StatusBadRequest,
			AssertFn: func(t *testing.T, res *http.Response) {
				resBody := AssertTestResponseBody(t, res, exceptions.ErrorResponse{})
				AssertEqual(t, resBody.Errors[0].Code, exceptions.CodeValidation)
				AssertEqual(t, resBody.Errors[0].Detail, "tag_slug must be valid")
				AssertEqual(t, resBody.Errors[0].Source.Parameter, "tag_slug")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			PerformTestRequestCase(t, http.MethodGet, tc)
		})
	}
}
