// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemas

import (
	"fmt"
	"slices"

	"github.com/multimeric/flapison/exceptions"
	"github.com/multimeric/flapison/internal/utils"
)

// SparseFields maps a resource type to the member names requested for it. A
// type key present with an empty list restricts that type to its id member;
// an absent key leaves the type unrestricted.
type SparseFields map[string][]string

// ComputeOptions seeds a computed schema with the scoping a caller would
// otherwise pass at instantiation.
type ComputeOptions struct {
	Only    []string
	Exclude []string
	Many    bool
	Context map[string]any
}

// Compute instantiates a definition scoped by sparse fieldsets and include
// paths, recursively computing the schema of every included relationship.
//
// Each include path's first segment must name a declared relationship member;
// the remainder of the path scopes the related schema. Sparse fieldsets
// intersect the declared members with the requested ones (and with the
// caller's only when set), and the id member is always kept when a schema is
// restricted. Dotted only entries narrow the related schema they address,
// dotted exclude entries widen its exclusions, and relationship level
// overrides replace whatever a pre-configured instance carries.
func (r *Registry) Compute(
	def *Definition,
	opts ComputeOptions,
	fields SparseFields,
	include []string,
) (*Schema, error) {
	includeData := make([]string, 0, len(include))
	relatedIncludes := make(map[string][]string)
	for _, includePath := range include {
		head, tail := splitMember(includePath)

		f, ok := def.Field(head)
		if !ok {
			return nil, exceptions.NewInvalidInclude(
				fmt.Sprintf("%s has no attribute %s", def.name, head),
			)
		}
		if _, ok := f.(*Relationship); !ok {
			return nil, exceptions.NewInvalidInclude(
				fmt.Sprintf("%s is not a relationship attribute of %s", head, def.name),
			)
		}

		includeData = append(includeData, head)
		if tail != "" {
			relatedIncludes[head] = append(relatedIncludes[head], tail)
		}
	}

	only := opts.Only

	// Dotted only entries address related schemas; collect them before sparse
	// fieldsets strip them from the list.
	relatedOnly := make(map[string][]string)
	for _, onlyPath := range only {
		head, tail := splitMember(onlyPath)
		if tail == "" {
			continue
		}
		relatedOnly[head] = append(relatedOnly[head], tail)
	}

	if requested, ok := fields[def.resourceType]; ok {
		declared := utils.SliceToHashSet(def.Fields())
		tmp := declared.Intersect(utils.SliceToHashSet(requested))
		if only != nil {
			tmp = tmp.Intersect(utils.SliceToHashSet(only))
		}
		only = utils.SortedItems(tmp)
	}

	if only != nil && !slices.Contains(only, "id") {
		only = append(slices.Clone(only), "id")
	}

	relatedExclude := make(map[string][]string)
	for _, excludePath := range opts.Exclude {
		head, tail := splitMember(excludePath)
		if tail == "" {
			continue
		}
		relatedExclude[head] = append(relatedExclude[head], tail)
	}

	schema, err := newSchema(r, def, instanceOptions{
		only:        only,
		exclude:     opts.Exclude,
		many:        opts.Many,
		context:     opts.Context,
		includeData: includeData,
	}, nil)
	if err != nil {
		return nil, err
	}

	for _, head := range schema.Includes() {
		f, _ := def.Field(head)
		rel := f.(*Relationship)

		childDef, inherited, err := resolveRef(r, rel.Schema, def.name, head)
		if err != nil {
			return nil, err
		}

		childOpts := ComputeOptions{
			Only:    inherited.only,
			Exclude: inherited.exclude,
			Many:    inherited.many,
			Context: opts.Context,
		}
		if rel.Only != nil {
			childOpts.Only = rel.Only
		}
		if rel.Exclude != nil {
			childOpts.Exclude = rel.Exclude
		}
		if tails := relatedOnly[head]; tails != nil {
			set := utils.SliceToHashSet(tails)
			if childOpts.Only != nil {
				set = set.Intersect(utils.SliceToHashSet(childOpts.Only))
			}
			childOpts.Only = utils.SortedItems(set)
		}
		if tails := relatedExclude[head]; tails != nil {
			set := utils.SliceToHashSet(tails)
			set = set.Union(utils.SliceToHashSet(childOpts.Exclude))
			childOpts.Exclude = utils.SortedItems(set)
		}

		child, err := r.Compute(childDef, childOpts, fields, relatedIncludes[head])
		if err != nil {
			return nil, err
		}
		schema.related[head] = child
	}

	return schema, nil
}
