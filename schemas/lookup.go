// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemas

import (
	"fmt"

	"github.com/multimeric/flapison/exceptions"
)

// ModelField maps a member name to the model field it reads from. Members
// without an override map to the model field of the same name.
func (d *Definition) ModelField(member string) (string, error) {
	f, ok := d.Field(member)
	if !ok {
		return "", exceptions.NewUnknownField(d.name, member)
	}
	if mf := f.modelFieldName(); mf != "" {
		return mf, nil
	}
	return member, nil
}

// SchemaField maps a model field back to the member exposing it, scanning
// members in declaration order.
func (d *Definition) SchemaField(modelField string) (string, error) {
	for _, df := range d.fields {
		attr := df.field.modelFieldName()
		if modelField == attr || (attr == "" && modelField == df.name) {
			return df.name, nil
		}
	}
	return "", exceptions.NewUnknownSchemaField(modelField)
}

// Relationships returns the relationship member names in declaration order.
// When modelField is true the names are mapped to their model fields.
func (d *Definition) Relationships(modelField bool) []string {
	var names []string
	for _, df := range d.fields {
		if _, ok := df.field.(*Relationship); !ok {
			continue
		}
		name := df.name
		if modelField {
			if mf := df.field.modelFieldName(); mf != "" {
				name = mf
			}
		}
		names = append(names, name)
	}
	return names
}

// NestedFields returns the members embedding sub-objects, either directly
// nested or nested inside a list. Relationship members are not included.
func (d *Definition) NestedFields(modelField bool) []string {
	var names []string
	for _, df := range d.fields {
		switch f := df.field.(type) {
		case *Nested:
		case *List:
			if _, ok := f.Inner.(*Nested); !ok {
				continue
			}
		default:
			continue
		}
		name := df.name
		if modelField {
			if mf := df.field.modelFieldName(); mf != "" {
				name = mf
			}
		}
		names = append(names, name)
	}
	return names
}

// RelatedRef returns the schema reference carried by a relationship, nested
// or list member.
func (d *Definition) RelatedRef(member string) (SchemaRef, error) {
	f, ok := d.Field(member)
	if !ok {
		return nil, exceptions.NewUnknownField(d.name, member)
	}
	switch t := f.(type) {
	case *Relationship:
		if t.Schema != nil {
			return t.Schema, nil
		}
	case *Nested:
		if t.Schema != nil {
			return t.Schema, nil
		}
	case *List:
		if inner, ok := t.Inner.(*Nested); ok && inner.Schema != nil {
			return inner.Schema, nil
		}
	}
	return nil, exceptions.NewRelationNotFound(
		fmt.Sprintf("%s has no related schema for %s", d.name, member),
	)
}
