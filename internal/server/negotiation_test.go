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

func TestMediaTypeNegotiation(t *testing.T) {
	testCases := []struct {
		Name        string
		Method      string
		Accept      string
		ContentType string
		ExpStatus   int
		ExpCode     string
	}{
		{
			Name:      "Should accept the plain media type",
			Method:    http.MethodGet,
			Accept:    documents.MediaType,
			ExpStatus: http.StatusOK,
		},
		{
			Name:      "Should accept a wildcard",
			Method:    http.MethodGet,
			Accept:    "*/*",
			ExpStatus: http.StatusOK,
		},
		{
			Name:      "Should accept the media type next to a parameterized instance",
			Method:    http.MethodGet,
			Accept:    documents.MediaType + "; q=0.9, " + documents.MediaType,
			ExpStatus: http.StatusOK,
		},
		{
			Name:      "Should return 406 when every media type instance is parameterized",
			Method:    http.MethodGet,
			Accept:    documents.MediaType + "; charset=utf-8",
			ExpStatus: http.StatusNotAcceptable,
			ExpCode:   exceptions.CodeNotAcceptable,
		},
		{
			Name:        "Should return 415 for a parameterized content type",
			Method:      http.MethodPost,
			Accept:      documents.MediaType,
			ContentType: documents.MediaType + "; charset=utf-8",
			ExpStatus:   http.StatusUnsupportedMediaType,
			ExpCode:     exceptions.CodeUnsupportedMediaType,
		},
		{
			Name:        "Should return 405 for a clean content type on a read only resource",
			Method:      http.MethodPost,
			Accept:      documents.MediaType,
			ContentType: documents.MediaType,
			ExpStatus:   http.StatusMethodNotAllowed,
			ExpCode:     exceptions.CodeBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			fiberApp := GetTestServer(t).App

			res := PerformTestRequest(t, fiberApp, tc.Method, "/posts", tc.Accept, tc.ContentType)
			defer func() {
				if err := res.Body.Close(); err != nil {
					t.Fatal(err)
				}
			}()

			AssertTestStatusCode(t, res, tc.ExpStatus)
			if tc.ExpCode != "" {
				resBody := AssertTestResponseBody(t, res, exceptions.ErrorResponse{})
				AssertEqual(t, resBody.Errors[0].Code, tc.ExpCode)
			}
		})
	}
}
