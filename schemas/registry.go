// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/multimeric/flapison/exceptions"
)

// Registry holds schema definitions by name and resolves resource types back
// to definitions. All request scoping starts from a registry.
type Registry struct {
	defs     map[string]*Definition
	order    []string
	validate *validator.Validate
}

func NewRegistry() *Registry {
	return &Registry{
		defs:     make(map[string]*Definition),
		validate: newDefinitionValidator(),
	}
}

type definitionValidation struct {
	Name         string   `validate:"required"`
	ResourceType string   `validate:"required,resource_type"`
	Members      []string `validate:"required,min=1,dive,member_name"`
}

// Register adds a definition to the registry. The definition must carry a
// valid resource type, valid member names and an id member. Registering the
// same name twice is rejected; two definitions may share a resource type, in
// which case type lookups return the earlier registration.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return exceptions.NewInvalidSchema("Cannot register a nil schema definition")
	}
	if _, ok := r.defs[def.name]; ok {
		return exceptions.NewInvalidSchema(
			fmt.Sprintf("Schema %s is already registered", def.name),
		)
	}

	v := definitionValidation{
		Name:         def.name,
		ResourceType: def.resourceType,
		Members:      def.Fields(),
	}
	if err := r.validate.Struct(&v); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			e := vErrs[0]
			return exceptions.NewInvalidSchema(fmt.Sprintf(
				"Schema %s is invalid: %s failed on %s",
				def.name, strings.ToLower(e.Field()), e.Tag(),
			))
		}
		return exceptions.NewInvalidSchema(err.Error())
	}
	if _, ok := def.Field("id"); !ok {
		return exceptions.NewInvalidSchema(
			fmt.Sprintf("Schema %s must declare an id member", def.name),
		)
	}

	r.defs[def.name] = def
	r.order = append(r.order, def.name)
	return nil
}

// MustRegister registers the given definitions and panics on the first
// failure. Intended for program start up.
func (r *Registry) MustRegister(defs ...*Definition) {
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
}

// Get returns a registered definition by name.
func (r *Registry) Get(name string) (*Definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, exceptions.NewUnknownSchema(name)
	}
	return def, nil
}

// MustGet is Get panicking on unknown names, for wiring at program start up.
func (r *Registry) MustGet(name string) *Definition {
	def, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return def
}

// Names returns the registered definition names in registration order.
func (r *Registry) Names() []string {
	return r.order
}

// SchemaFromType finds the definition serializing the given resource type,
// scanning in registration order so shared types resolve to the earliest
// registration.
func (r *Registry) SchemaFromType(resourceType string) (*Definition, error) {
	for _, name := range r.order {
		if r.defs[name].resourceType == resourceType {
			return r.defs[name], nil
		}
	}
	return nil, exceptions.NewUnknownType(resourceType)
}

// RelatedDefinition resolves the definition behind a relationship member of
// def, whether the member references it directly, by instance or by name.
func (r *Registry) RelatedDefinition(def *Definition, member string) (*Definition, error) {
	f, ok := def.Field(member)
	if !ok {
		return nil, exceptions.NewUnknownField(def.name, member)
	}
	rel, ok := f.(*Relationship)
	if !ok {
		return nil, exceptions.NewInvalidInclude(
			fmt.Sprintf("%s is not a relationship attribute of %s", member, def.name),
		)
	}
	relDef, _, err := resolveRef(r, rel.Schema, def.name, member)
	return relDef, err
}

// Instantiate builds a schema instance with static scoping, without any
// request parameters. Instances built this way are meant for ByInstance
// references inside definitions.
func (r *Registry) Instantiate(def *Definition, opts ComputeOptions) (*Schema, error) {
	return newSchema(r, def, instanceOptions{
		only:    opts.Only,
		exclude: opts.Exclude,
		many:    opts.Many,
		context: opts.Context,
	}, nil)
}

// MustInstantiate is Instantiate panicking on error, for static declarations.
func (r *Registry) MustInstantiate(def *Definition, opts ComputeOptions) *Schema {
	s, err := r.Instantiate(def, opts)
	if err != nil {
		panic(err)
	}
	return s
}
