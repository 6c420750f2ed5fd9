// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package queries

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/multimeric/flapison/exceptions"
	"github.com/multimeric/flapison/schemas"
)

// SortField is one segment of a sort parameter. A leading minus in the query
// string marks the member descending.
type SortField struct {
	Field string
	Desc  bool
}

// Page holds the page based pagination parameters. Zero values mean the
// client did not send them.
type Page struct {
	Size   int
	Number int
}

// Params are the JSON API query parameters of one request.
type Params struct {
	// Include holds the dotted include paths in request order.
	Include []string
	// Fields maps a resource type to its requested sparse fieldset. A type
	// key present with an empty list restricts that type to its id member.
	Fields map[string][]string
	Sort   []SortField
	Page   Page
}

var bracketKeyRegex = regexp.MustCompile(`^([a-z]+)\[([^\[\]]+)\]$`)

// Parse reads the JSON API query parameters from raw query values. Unknown
// parameters such as filters pass through untouched for the caller to handle.
func Parse(values url.Values) (*Params, error) {
	params := &Params{Fields: make(map[string][]string)}

	for key, raws := range values {
		switch key {
		case "include":
			for _, raw := range raws {
				params.Include = append(params.Include, splitCSV(raw)...)
			}
			continue
		case "sort":
			for _, raw := range raws {
				for _, part := range splitCSV(raw) {
					name, desc := strings.CutPrefix(part, "-")
					if name == "" {
						continue
					}
					params.Sort = append(params.Sort, SortField{Field: name, Desc: desc})
				}
			}
			continue
		}

		match := bracketKeyRegex.FindStringSubmatch(key)
		if match == nil {
			continue
		}
		base, sub := match[1], match[2]

		switch base {
		case "fields":
			if _, ok := params.Fields[sub]; !ok {
				params.Fields[sub] = make([]string, 0)
			}
			for _, raw := range raws {
				params.Fields[sub] = append(params.Fields[sub], splitCSV(raw)...)
			}
		case "page":
			value, err := parsePageValue(sub, raws[len(raws)-1])
			if err != nil {
				return nil, err
			}
			switch sub {
			case "size":
				params.Page.Size = value
			case "number":
				params.Page.Number = value
			}
		}
	}

	return params, nil
}

func parsePageValue(sub, raw string) (int, error) {
	if sub != "size" && sub != "number" {
		return 0, exceptions.NewBadRequest(
			fmt.Sprintf("Parameter page[%s] is not supported", sub),
		)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.NewBadRequest(
			fmt.Sprintf("Parameter page[%s] must be an integer", sub),
		)
	}
	if value < 0 {
		return 0, exceptions.NewBadRequest(
			fmt.Sprintf("Parameter page[%s] must be a positive integer", sub),
		)
	}
	return value, nil
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SparseFields converts the parsed fieldsets to the schema package's type.
func (p *Params) SparseFields() schemas.SparseFields {
	return schemas.SparseFields(p.Fields)
}

// SortMembers returns the sort member names without direction markers.
func (p *Params) SortMembers() []string {
	members := make([]string, len(p.Sort))
	for i, sf := range p.Sort {
		members[i] = sf.Field
	}
	return members
}
