// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package documents

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/multimeric/flapison/queries"
)

// MediaType is the JSON API media type.
const MediaType = "application/vnd.api+json"

const jsonAPIVersion = "1.0"

// Links maps link names to URLs.
type Links map[string]string

// Linkage is a resource identifier object.
type Linkage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// RelationshipObject carries the linkage and links of one relationship
// member. HasData distinguishes an empty to-one relationship, which renders
// as data null, from a relationship whose linkage is unknown, which renders
// without a data key.
type RelationshipObject struct {
	Data    any
	HasData bool
	Links   Links
	Meta    map[string]any
}

func (r RelationshipObject) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 3)
	if r.HasData {
		out["data"] = r.Data
	}
	if len(r.Links) > 0 {
		out["links"] = r.Links
	}
	if len(r.Meta) > 0 {
		out["meta"] = r.Meta
	}
	return json.Marshal(out)
}

// Resource is a JSON API resource object.
type Resource struct {
	Type          string                        `json:"type"`
	ID            string                        `json:"id"`
	Attributes    map[string]any                `json:"attributes,omitempty"`
	Relationships map[string]RelationshipObject `json:"relationships,omitempty"`
	Links         Links                         `json:"links,omitempty"`
	Meta          map[string]any                `json:"meta,omitempty"`
}

// Document is a top level JSON API document.
type Document struct {
	Data     any            `json:"data"`
	Included []*Resource    `json:"included,omitempty"`
	Meta     map[string]any `json:"meta,omitempty"`
	Links    Links          `json:"links,omitempty"`
	JSONAPI  map[string]any `json:"jsonapi,omitempty"`
}

func NewDocument() *Document {
	return &Document{
		JSONAPI: map[string]any{"version": jsonAPIVersion},
	}
}

// PageLinks builds the pagination links for a list endpoint, keeping the
// request's other query parameters in every link.
func PageLinks(path string, query url.Values, number, size, total int) Links {
	if size <= 0 {
		return Links{"self": path}
	}
	if number <= 0 {
		number = 1
	}

	last := queries.PageCount(total, size)
	links := Links{
		"self":  formatPageURL(path, query, number, size),
		"first": formatPageURL(path, query, 1, size),
		"last":  formatPageURL(path, query, last, size),
	}
	if number > 1 {
		links["prev"] = formatPageURL(path, query, number-1, size)
	}
	if number < last {
		links["next"] = formatPageURL(path, query, number+1, size)
	}
	return links
}

func formatPageURL(path string, query url.Values, number, size int) string {
	params := make(url.Values, len(query)+2)
	for key, vals := range query {
		params[key] = vals
	}
	params.Set("page[number]", fmt.Sprintf("%d", number))
	params.Set("page[size]", fmt.Sprintf("%d", size))
	return path + "?" + params.Encode()
}
