// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemas

// Field is a declared member of a schema definition. A member is one of four
// kinds: a plain attribute, a nested object, a list, or a JSON API
// relationship.
type Field interface {
	// modelFieldName returns the model field override, or an empty string
	// when the member maps to the model field of the same name.
	modelFieldName() string
}

// Attribute is a plain serializable member.
type Attribute struct {
	// ModelField overrides the model field the member reads from.
	ModelField string
	// Format is an optional rendering hint, e.g. a time layout.
	Format string
}

func (a *Attribute) modelFieldName() string {
	return a.ModelField
}

// Nested embeds a sub-object inline in the attributes of a resource. It is
// not a JSON API relationship and never produces resource linkage.
type Nested struct {
	Schema     SchemaRef
	Many       bool
	ModelField string
	Only       []string
	Exclude    []string
}

func (n *Nested) modelFieldName() string {
	return n.ModelField
}

// List wraps another field kind. A List whose Inner is a Nested counts as a
// nested member for join support.
type List struct {
	Inner      Field
	ModelField string
}

func (l *List) modelFieldName() string {
	return l.ModelField
}

// Relationship is a JSON API relationship member. The related schema can be
// given directly, as a pre-configured instance, or by registry name.
type Relationship struct {
	Schema SchemaRef
	// Type is the related resource type, required to render linkage when the
	// relationship is not included in the compound document.
	Type string
	// IDField is the model field holding the related model's identifier.
	// Defaults to the related schema's id member when resolvable.
	IDField string
	// Linkage renders resource identifier objects even when the relationship
	// is not included.
	Linkage    bool
	Many       bool
	ModelField string
	// Only and Exclude override the scoping of the related schema.
	Only    []string
	Exclude []string
	// SelfURL and RelatedURL are link templates; "{member}" placeholders are
	// substituted with model field values.
	SelfURL    string
	RelatedURL string
}

func (r *Relationship) modelFieldName() string {
	return r.ModelField
}

// SchemaRef points at a related schema by definition, by pre-configured
// instance, or by registry name.
type SchemaRef interface {
	isSchemaRef()
}

type refDef struct {
	def *Definition
}

type refName struct {
	name string
}

type refInstance struct {
	schema *Schema
}

func (refDef) isSchemaRef()      {}
func (refName) isSchemaRef()     {}
func (refInstance) isSchemaRef() {}

// ByDef references a related schema definition directly.
func ByDef(def *Definition) SchemaRef {
	return refDef{def: def}
}

// ByName references a related schema through the registry, resolved lazily so
// definitions may reference each other in any registration order.
func ByName(name string) SchemaRef {
	return refName{name: name}
}

// ByInstance references a pre-configured schema instance; its scoping and
// many flag carry over to the computed related schema.
func ByInstance(schema *Schema) SchemaRef {
	return refInstance{schema: schema}
}
