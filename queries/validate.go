// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package queries

import (
	"fmt"
	"slices"
	"strings"

	"github.com/multimeric/flapison/exceptions"
	"github.com/multimeric/flapison/schemas"
)

// Validate checks the parsed parameters against the registry before any
// schema computation, so bad requests fail loudly instead of silently
// narrowing the response. def is the definition serving the endpoint.
func (p *Params) Validate(reg *schemas.Registry, def *schemas.Definition) error {
	if err := p.validateFields(reg); err != nil {
		return err
	}
	if err := p.validateInclude(reg, def); err != nil {
		return err
	}
	return p.validateSort(def)
}

// validateFields checks every requested member against the type's schema.
// Types without a registered schema never restrict anything and are skipped.
func (p *Params) validateFields(reg *schemas.Registry) error {
	types := make([]string, 0, len(p.Fields))
	for rtype := range p.Fields {
		types = append(types, rtype)
	}
	slices.Sort(types)

	for _, rtype := range types {
		def, err := reg.SchemaFromType(rtype)
		if err != nil {
			continue
		}
		for _, member := range p.Fields[rtype] {
			if _, ok := def.Field(member); !ok {
				return exceptions.NewInvalidField(
					fmt.Sprintf("%s has no attribute %s", def.Name(), member),
				)
			}
		}
	}
	return nil
}

func (p *Params) validateInclude(reg *schemas.Registry, def *schemas.Definition) error {
	for _, path := range p.Include {
		current := def
		for _, segment := range strings.Split(path, ".") {
			f, ok := current.Field(segment)
			if !ok {
				return exceptions.NewInvalidInclude(
					fmt.Sprintf("%s has no attribute %s", current.Name(), segment),
				)
			}
			if _, ok := f.(*schemas.Relationship); !ok {
				return exceptions.NewInvalidInclude(
					fmt.Sprintf("%s is not a relationship attribute of %s", segment, current.Name()),
				)
			}
			next, err := reg.RelatedDefinition(current, segment)
			if err != nil {
				return err
			}
			current = next
		}
	}
	return nil
}

func (p *Params) validateSort(def *schemas.Definition) error {
	for _, member := range p.SortMembers() {
		f, ok := def.Field(member)
		if !ok {
			return exceptions.NewInvalidSort(
				fmt.Sprintf("%s has no attribute %s", def.Name(), member),
			)
		}
		if _, ok := f.(*schemas.Relationship); ok {
			return exceptions.NewInvalidSort(
				fmt.Sprintf("You can't sort on %s because it is a relationship field", member),
			)
		}
	}
	return nil
}

// CheckIncludeDepth rejects include paths nested deeper than max levels. A
// non-positive max disables the check.
func (p *Params) CheckIncludeDepth(max int) error {
	if max <= 0 {
		return nil
	}
	for _, path := range p.Include {
		if depth := strings.Count(path, ".") + 1; depth > max {
			return exceptions.NewInvalidInclude(
				fmt.Sprintf("Include path %s exceeds the maximum depth of %d", path, max),
			)
		}
	}
	return nil
}
