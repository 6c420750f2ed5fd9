// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/multimeric/flapison/documents"
	"github.com/multimeric/flapison/exceptions"
)

func TestListComments(t *testing.T) {
	testCases := []TestRequestCase{
		{
			Name:      "Should page comments with the default page size",
			Path:      "/comments",
			ExpStatus: http.StatusOK,
			AssertFn: func(t *testing.T, res *http.Response) {
				ds := GetTestDataset(t)
				doc := AssertTestResponseBody(t, res, documents.Document{})
				resources := AssertDocumentResources(t, &doc)

				AssertEqual(t, len(resources), int(GetTestConfig(t).DefaultPageSize()))
				AssertMetaCount(t, &doc, len(ds.Comments))
				AssertNotEmpty(t, doc.Links["next"])
			},
		},
		{
			Name:      "Should return every comment when the page is large enough",
			Path:      "/comments?page[size]=24",
			ExpStatus: http.StatusOK,
			AssertFn: func(t *testing.T, res *http.Response) {
				ds := GetTestDataset(t)
				doc := AssertTestResponseBody(t, res, documents.Document{})
				resources := AssertDocumentResources(t, &doc)

				AssertEqual(t, len(resources), len(ds.Comments))
				_, hasNext := doc.Links["next"]
				AssertEqual(t, hasNext, false)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			PerformTestRequestCase(t, http.MethodGet, tc)
		})
	}
}

func TestGetComment(t *testing.T) {
	missingID := uuid.NewString()

	testCases := []TestRequestCase{
		{
			Name: "Should return a single comment document",
			PathFn: func(t *testing.T) string {
				return "/comments/" + GetTestDataset(t).Comments[0].ID.String()
			},
			ExpStatus: http.StatusOK,
			AssertFn: func(t *testing.T, res *http.Response) {
				comment := GetTestDataset(t).Comments[0]
				doc := AssertTestResponseBody(t, res, documents.Document{})
				resource := AssertDocumentResource(t, &doc)

				AssertEqual(t, AssertResourceString(t, resource, "type"), "comments")
				AssertEqual(t, AssertResourceString(t, resource, "id"), comment.ID.String())

				attrs := AssertResourceMap(t, resource, "attributes")
				AssertEqual(t, len(attrs), 2)
				body, _ := attrs["body"].(string)
				AssertEqual(t, body, comment.Body)

				links := AssertResourceMap(t, resource, "links")
				AssertEqual(t, AssertResourceString(t, links, "self"), "/comments/"+comment.ID.String())

				rels := AssertResourceMap(t, resource, "relationships")
				authorRel := AssertResourceMap(t, rels, "author")
				linkage := AssertResourceMap(t, authorRel, "data")
				AssertEqual(t, AssertResourceString(t, linkage, "type"), "authors")
				AssertEqual(t, AssertResourceString(t, linkage, "id"), comment.Author.ID.String())

				postRel := AssertResourceMap(t, rels, "post")
				_, hasLinkage := postRel["data"]
				AssertEqual(t, hasLinkage, false)
				postLinks := AssertResourceMap(t, postRel, "links")
				AssertEqual(t, AssertResourceString(t, postLinks, "related"), "/posts/"+comment.Post.ID.String())
			},
		},
		{
			Name: "Should include the comment author with their name only",
			PathFn: func(t *testing.T) string {
				return "/comments/" + GetTestDataset(t).Comments[0].ID.String() + "?include=author"
			},
			ExpStatus: http.StatusOK,
			AssertFn: func(t *testing.T, res *http.Response) {
				comment := GetTestDataset(t).Comments[0]
				doc := AssertTestResponseBody(t, res, documents.Document{})

				AssertEqual(t, len(doc.Included), 1)
				author := FindIncluded(t, &doc, "authors", comment.Author.ID.String())
				AssertEqual(t, len(author.Attributes), 1)
				name, _ := author.Attributes["name"].(string)
				AssertEqual(t, name, comment.Author.Name)
			},
		},
		{
			Name: "Should include the comment post",
			PathFn: func(t *testing.T) string {
				return "/comments/" + GetTestDataset(t).Comments[0].ID.String() + "?include=post"
			},
			ExpStatus: http.StatusOK,
			AssertFn: func(t *testing.T, res *http.Response) {
				comment := GetTestDataset(t).Comments[0]
				doc := AssertTestResponseBody(t, res, documents.Document{})

				AssertEqual(t, len(doc.Included), 1)
				post := FindIncluded(t, &doc, "posts", comment.Post.ID.String())
				AssertEqual(t, len(post.Attributes), 4)
				title, _ := post.Attributes["title"].(string)
				AssertEqual(t, title, comment.Post.Title)
			},
		},
		{
			Name:      "Should return 400 when the comment id is not a uuid",
			Path:      "/comments/not-a-uuid",
			ExpStatus: http.StatusBadRequest,
			AssertFn: func(t *testing.T, res *http.Response) {
				resBody := AssertTestResponseBody(t, res, exceptions.ErrorResponse{})
				AssertEqual(t, resBody.Errors[0].Code, exceptions.CodeValidation)
				AssertEqual(t, resBody.Errors[0].Detail, "comment_i_d must be valid")
				AssertEqual(t, resBody.Errors[0].Source.Parameter, "comment_i_d")
			},
		},
		{
			Name:      "Should return 404 when the comment does not exist",
			Path:      "/comments/" + missingID,
			ExpStatus: http.StatusNotFound,
			AssertFn: func(t *testing.T, res *http.Response) {
				resBody := AssertTestResponseBody(t, res, exceptions.ErrorResponse{})
				AssertEqual(t, resBody.Errors[0].Code, exceptions.CodeNotFound)
				AssertEqual(t, resBody.Errors[0].Detail, "Comment "+missingID+" not found")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			PerformTestRequestCase(t, http.MethodGet, tc)
		})
	}
}
