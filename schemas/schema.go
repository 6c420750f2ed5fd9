// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemas

import (
	"fmt"
	"slices"
	"strings"

	"github.com/multimeric/flapison/exceptions"
	"github.com/multimeric/flapison/internal/utils"
)

type declaredField struct {
	name  string
	field Field
}

// Definition is the declaration of a schema: its registry name, its resource
// type and its members in declaration order. Request scoping never mutates a
// Definition; it produces Schema instances instead.
type Definition struct {
	name         string
	resourceType string
	selfURL      string
	fields       []declaredField
	index        map[string]int
}

// NewDefinition creates an empty definition for the given registry name and
// JSON API resource type.
func NewDefinition(name, resourceType string) *Definition {
	return &Definition{
		name:         name,
		resourceType: resourceType,
		index:        make(map[string]int),
	}
}

// DeclareField adds a member to the definition. Redeclaring a name replaces
// the field but keeps its original position.
func (d *Definition) DeclareField(name string, field Field) *Definition {
	if i, ok := d.index[name]; ok {
		d.fields[i].field = field
		return d
	}
	d.index[name] = len(d.fields)
	d.fields = append(d.fields, declaredField{name: name, field: field})
	return d
}

// SetSelfURL sets the resource self link template, e.g. "/posts/{id}".
func (d *Definition) SetSelfURL(template string) *Definition {
	d.selfURL = template
	return d
}

func (d *Definition) Name() string {
	return d.name
}

func (d *Definition) Type() string {
	return d.resourceType
}

func (d *Definition) SelfURL() string {
	return d.selfURL
}

// Fields returns the declared member names in declaration order.
func (d *Definition) Fields() []string {
	return utils.MapSlice(d.fields, func(f *declaredField) string { return f.name })
}

// Field returns the declared field for a member name.
func (d *Definition) Field(name string) (Field, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.fields[i].field, true
}

// Schema is a definition instantiated for one request. It carries the
// resolved scoping, the include paths addressed to it and the related and
// nested schemas materialized for the compound document.
type Schema struct {
	def         *Definition
	reg         *Registry
	many        bool
	context     map[string]any
	only        []string
	exclude     []string
	fields      []declaredField
	index       map[string]int
	includeData []string
	includeSet  utils.HashSet[string]
	related     map[string]*Schema
	nested      map[string]*Schema
}

type instanceOptions struct {
	only        []string
	exclude     []string
	many        bool
	context     map[string]any
	includeData []string
}

func newSchema(reg *Registry, def *Definition, opts instanceOptions, chain []string) (*Schema, error) {
	s := &Schema{
		def:        def,
		reg:        reg,
		many:       opts.many,
		context:    opts.context,
		only:       opts.only,
		exclude:    opts.exclude,
		index:      make(map[string]int),
		includeSet: utils.NewHashSet[string](),
		related:    make(map[string]*Schema),
		nested:     make(map[string]*Schema),
	}
	for _, member := range opts.includeData {
		if s.includeSet.Contains(member) {
			continue
		}
		s.includeSet.Add(member)
		s.includeData = append(s.includeData, member)
	}

	// Dotted entries scope the member's own schema; only their head decides
	// visibility here. A nil only means the schema is unscoped.
	restricted := opts.only != nil
	onlyHeads := utils.NewHashSet[string]()
	onlyTails := make(map[string][]string)
	if restricted {
		for _, entry := range opts.only {
			head, tail := splitMember(entry)
			if _, ok := def.Field(head); !ok {
				return nil, exceptions.NewUnknownField(def.name, head)
			}
			onlyHeads.Add(head)
			if tail != "" {
				onlyTails[head] = append(onlyTails[head], tail)
			}
		}
	}
	excludeExact := utils.NewHashSet[string]()
	excludeTails := make(map[string][]string)
	for _, entry := range opts.exclude {
		head, tail := splitMember(entry)
		if _, ok := def.Field(head); !ok {
			return nil, exceptions.NewUnknownField(def.name, head)
		}
		if tail == "" {
			excludeExact.Add(head)
		} else {
			excludeTails[head] = append(excludeTails[head], tail)
		}
	}

	for _, df := range def.fields {
		if restricted && !onlyHeads.Contains(df.name) {
			continue
		}
		if excludeExact.Contains(df.name) {
			continue
		}
		s.index[df.name] = len(s.fields)
		s.fields = append(s.fields, df)
	}

	for _, df := range s.fields {
		var nested *Nested
		var listWrapped bool
		switch f := df.field.(type) {
		case *Nested:
			nested = f
		case *List:
			if inner, ok := f.Inner.(*Nested); ok {
				nested = inner
				listWrapped = true
			}
		}
		if nested == nil {
			continue
		}
		child, err := s.buildNested(df.name, nested, listWrapped, onlyTails[df.name], excludeTails[df.name], chain)
		if err != nil {
			return nil, err
		}
		s.nested[df.name] = child
	}
	return s, nil
}

func (s *Schema) buildNested(
	member string,
	field *Nested,
	listWrapped bool,
	onlyTails, excludeTails []string,
	chain []string,
) (*Schema, error) {
	def, inherited, err := resolveRef(s.reg, field.Schema, s.def.name, member)
	if err != nil {
		return nil, err
	}
	childChain := append(slices.Clone(chain), s.def.name)
	if slices.Contains(childChain, def.name) {
		return nil, exceptions.NewInvalidSchema(
			fmt.Sprintf("Schema %s is nested within itself", def.name),
		)
	}

	only := inherited.only
	if field.Only != nil {
		only = field.Only
	}
	if onlyTails != nil {
		set := utils.SliceToHashSet(onlyTails)
		if only != nil {
			set = set.Intersect(utils.SliceToHashSet(only))
		}
		only = utils.SortedItems(set)
	}
	exclude := inherited.exclude
	if field.Exclude != nil {
		exclude = field.Exclude
	}
	if excludeTails != nil {
		set := utils.SliceToHashSet(excludeTails)
		set = set.Union(utils.SliceToHashSet(exclude))
		exclude = utils.SortedItems(set)
	}

	return newSchema(s.reg, def, instanceOptions{
		only:    only,
		exclude: exclude,
		many:    inherited.many || field.Many || listWrapped,
		context: s.context,
	}, childChain)
}

type refOptions struct {
	only    []string
	exclude []string
	many    bool
}

// resolveRef returns the definition behind a reference plus any scoping the
// reference itself carries. Pre-configured instances keep their only, exclude
// and many settings.
func resolveRef(reg *Registry, ref SchemaRef, schemaName, member string) (*Definition, refOptions, error) {
	switch r := ref.(type) {
	case refDef:
		if r.def != nil {
			return r.def, refOptions{}, nil
		}
	case refName:
		def, err := reg.Get(r.name)
		if err != nil {
			return nil, refOptions{}, err
		}
		return def, refOptions{}, nil
	case refInstance:
		if r.schema != nil {
			return r.schema.def, refOptions{
				only:    r.schema.only,
				exclude: r.schema.exclude,
				many:    r.schema.many,
			}, nil
		}
	}
	return nil, refOptions{}, exceptions.NewRelationNotFound(
		fmt.Sprintf("%s has no related schema for %s", schemaName, member),
	)
}

func splitMember(entry string) (head, tail string) {
	if i := strings.Index(entry, "."); i >= 0 {
		return entry[:i], entry[i+1:]
	}
	return entry, ""
}

func (s *Schema) Definition() *Definition {
	return s.def
}

func (s *Schema) Name() string {
	return s.def.name
}

func (s *Schema) Type() string {
	return s.def.resourceType
}

func (s *Schema) Many() bool {
	return s.many
}

func (s *Schema) Context() map[string]any {
	return s.context
}

// Only returns the resolved only list, nil when the schema is unscoped.
func (s *Schema) Only() []string {
	return s.only
}

func (s *Schema) Exclude() []string {
	return s.exclude
}

// Fields returns the visible member names in declaration order.
func (s *Schema) Fields() []string {
	return utils.MapSlice(s.fields, func(f *declaredField) string { return f.name })
}

// Field returns a member's field when it is visible under the current
// scoping.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i].field, true
}

// Includes returns the relationship members included on this schema, in
// request order and deduplicated.
func (s *Schema) Includes() []string {
	return s.includeData
}

func (s *Schema) Included(member string) bool {
	return s.includeSet.Contains(member)
}

// RelatedSchema returns the computed schema for an included relationship
// member.
func (s *Schema) RelatedSchema(member string) (*Schema, bool) {
	child, ok := s.related[member]
	return child, ok
}

// NestedSchema returns the schema materialized for a nested member.
func (s *Schema) NestedSchema(member string) (*Schema, bool) {
	child, ok := s.nested[member]
	return child, ok
}

// RelatedDefinition resolves the definition a relationship member points at,
// whether or not the member is included.
func (s *Schema) RelatedDefinition(member string) (*Definition, error) {
	return s.reg.RelatedDefinition(s.def, member)
}
