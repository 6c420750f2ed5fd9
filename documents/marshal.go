// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package documents

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/multimeric/flapison/exceptions"
	"github.com/multimeric/flapison/internal/utils"
	"github.com/multimeric/flapison/schemas"
)

type includedKey struct {
	rtype string
	id    string
}

type marshaller struct {
	included []*Resource
	seen     utils.HashSet[includedKey]
}

func newMarshaller() *marshaller {
	return &marshaller{seen: utils.NewHashSet[includedKey]()}
}

// Marshal serializes a model through a computed schema into a compound
// document. Schemas computed with Many expect a slice of models.
func Marshal(schema *schemas.Schema, model any) (*Document, error) {
	if schema.Many() {
		return MarshalMany(schema, model)
	}

	m := newMarshaller()
	res, err := m.resource(schema, model)
	if err != nil {
		return nil, err
	}
	if err := m.traverseIncludes(schema, model); err != nil {
		return nil, err
	}

	doc := NewDocument()
	doc.Data = res
	doc.Included = m.included
	return doc, nil
}

// MarshalMany serializes a slice of models into a list document. Primary
// resources never repeat inside included, even when they relate to each
// other.
func MarshalMany(schema *schemas.Schema, models any) (*Document, error) {
	items, err := sliceElements(models)
	if err != nil {
		return nil, err
	}

	m := newMarshaller()
	resources := make([]*Resource, 0, len(items))
	for _, item := range items {
		res, err := m.resource(schema, item)
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	for _, item := range items {
		if err := m.traverseIncludes(schema, item); err != nil {
			return nil, err
		}
	}

	doc := NewDocument()
	doc.Data = resources
	doc.Included = m.included
	return doc, nil
}

func (m *marshaller) resource(schema *schemas.Schema, model any) (*Resource, error) {
	id, err := m.modelID(schema, model)
	if err != nil {
		return nil, err
	}

	res := &Resource{Type: schema.Type(), ID: id}
	m.seen.Add(includedKey{rtype: res.Type, id: id})

	attrs := make(map[string]any)
	rels := make(map[string]RelationshipObject)
	for _, member := range schema.Fields() {
		if member == "id" {
			continue
		}
		f, _ := schema.Field(member)

		if rel, ok := f.(*schemas.Relationship); ok {
			relObj, ok, err := m.relationship(schema, member, rel, model)
			if err != nil {
				return nil, err
			}
			if ok {
				rels[member] = relObj
			}
			continue
		}

		value, err := m.attributeValue(schema, member, f, model)
		if err != nil {
			return nil, err
		}
		attrs[member] = value
	}
	if len(attrs) > 0 {
		res.Attributes = attrs
	}
	if len(rels) > 0 {
		res.Relationships = rels
	}

	if tpl := schema.Definition().SelfURL(); tpl != "" {
		self, err := resolveLinkTemplate(tpl, model)
		if err != nil {
			return nil, err
		}
		res.Links = Links{"self": self}
	}
	return res, nil
}

// attributeValue renders one non-relationship member.
func (m *marshaller) attributeValue(schema *schemas.Schema, member string, f schemas.Field, model any) (any, error) {
	modelField, err := schema.Definition().ModelField(member)
	if err != nil {
		return nil, err
	}
	value, ok := utils.ModelFieldValue(model, modelField)
	if !ok {
		return nil, errMissingField(schema.Name(), modelField)
	}
	if isNilValue(value) {
		return nil, nil
	}

	switch field := f.(type) {
	case *schemas.Nested:
		child, _ := schema.NestedSchema(member)
		return m.nestedValue(child, value)
	case *schemas.List:
		if _, ok := field.Inner.(*schemas.Nested); ok {
			child, _ := schema.NestedSchema(member)
			return m.nestedValue(child, value)
		}
		items, err := sliceElements(value)
		if err != nil {
			return nil, err
		}
		var format string
		if inner, ok := field.Inner.(*schemas.Attribute); ok {
			format = inner.Format
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, renderValue(item, format))
		}
		return out, nil
	case *schemas.Attribute:
		return renderValue(value, field.Format), nil
	default:
		return renderValue(value, ""), nil
	}
}

func (m *marshaller) nestedValue(child *schemas.Schema, value any) (any, error) {
	if child == nil {
		return renderValue(value, ""), nil
	}
	if isNilValue(value) {
		return nil, nil
	}
	if child.Many() {
		items, err := sliceElements(value)
		if err != nil {
			return nil, err
		}
		out := make([]map[string]any, 0, len(items))
		for _, item := range items {
			obj, err := m.nestedObject(child, item)
			if err != nil {
				return nil, err
			}
			out = append(out, obj)
		}
		return out, nil
	}
	return m.nestedObject(child, value)
}

// nestedObject renders a nested schema as a plain attribute object. Nested
// objects keep their id member and never carry resource linkage.
func (m *marshaller) nestedObject(child *schemas.Schema, model any) (map[string]any, error) {
	obj := make(map[string]any, len(child.Fields()))
	for _, member := range child.Fields() {
		f, _ := child.Field(member)
		if _, ok := f.(*schemas.Relationship); ok {
			continue
		}
		value, err := m.attributeValue(child, member, f, model)
		if err != nil {
			return nil, err
		}
		obj[member] = value
	}
	return obj, nil
}

// relationship renders one visible relationship member. Linkage is rendered
// when the member is included in the compound document or the field asks for
// it; members with neither linkage nor links are skipped.
func (m *marshaller) relationship(
	schema *schemas.Schema,
	member string,
	rel *schemas.Relationship,
	model any,
) (RelationshipObject, bool, error) {
	var obj RelationshipObject

	links := make(Links, 2)
	if rel.SelfURL != "" {
		u, err := resolveLinkTemplate(rel.SelfURL, model)
		if err != nil {
			return obj, false, err
		}
		links["self"] = u
	}
	if rel.RelatedURL != "" {
		u, err := resolveLinkTemplate(rel.RelatedURL, model)
		if err != nil {
			return obj, false, err
		}
		links["related"] = u
	}
	if len(links) > 0 {
		obj.Links = links
	}

	if schema.Included(member) || rel.Linkage {
		modelField, err := schema.Definition().ModelField(member)
		if err != nil {
			return obj, false, err
		}
		value, ok := utils.ModelFieldValue(model, modelField)
		if !ok {
			return obj, false, errMissingField(schema.Name(), modelField)
		}

		rtype, idField, err := m.linkageTarget(schema, member, rel)
		if err != nil {
			return obj, false, err
		}

		if rel.Many {
			linkages := make([]Linkage, 0)
			if !isNilValue(value) {
				items, err := sliceElements(value)
				if err != nil {
					return obj, false, err
				}
				for _, item := range items {
					id, err := renderModelID(item, idField)
					if err != nil {
						return obj, false, err
					}
					linkages = append(linkages, Linkage{Type: rtype, ID: id})
				}
			}
			obj.Data, obj.HasData = linkages, true
		} else if isNilValue(value) {
			obj.Data, obj.HasData = nil, true
		} else {
			id, err := renderModelID(value, idField)
			if err != nil {
				return obj, false, err
			}
			obj.Data, obj.HasData = Linkage{Type: rtype, ID: id}, true
		}
	}

	if !obj.HasData && len(obj.Links) == 0 {
		return obj, false, nil
	}
	return obj, true, nil
}

// linkageTarget resolves the resource type and id field used for a
// relationship's linkage. Fields carrying both Type and IDField never touch
// the registry, so linkage only members work without a resolvable reference.
func (m *marshaller) linkageTarget(schema *schemas.Schema, member string, rel *schemas.Relationship) (string, string, error) {
	rtype := rel.Type
	idField := rel.IDField
	if rtype != "" && idField != "" {
		return rtype, idField, nil
	}

	relDef, err := schema.RelatedDefinition(member)
	if err != nil {
		return "", "", err
	}
	if rtype == "" {
		rtype = relDef.Type()
	}
	if idField == "" {
		idField, err = relDef.ModelField("id")
		if err != nil {
			return "", "", err
		}
	}
	return rtype, idField, nil
}

func (m *marshaller) traverseIncludes(schema *schemas.Schema, model any) error {
	for _, member := range schema.Includes() {
		child, ok := schema.RelatedSchema(member)
		if !ok {
			continue
		}
		modelField, err := schema.Definition().ModelField(member)
		if err != nil {
			return err
		}
		value, ok := utils.ModelFieldValue(model, modelField)
		if !ok {
			return errMissingField(schema.Name(), modelField)
		}
		if isNilValue(value) {
			continue
		}

		f, _ := schema.Definition().Field(member)
		if rel, _ := f.(*schemas.Relationship); rel != nil && rel.Many {
			items, err := sliceElements(value)
			if err != nil {
				return err
			}
			for _, item := range items {
				if err := m.include(child, item); err != nil {
					return err
				}
			}
			continue
		}
		if err := m.include(child, value); err != nil {
			return err
		}
	}
	return nil
}

func (m *marshaller) include(child *schemas.Schema, model any) error {
	id, err := m.modelID(child, model)
	if err != nil {
		return err
	}
	if m.seen.Contains(includedKey{rtype: child.Type(), id: id}) {
		return nil
	}

	res, err := m.resource(child, model)
	if err != nil {
		return err
	}
	m.included = append(m.included, res)
	return m.traverseIncludes(child, model)
}

func (m *marshaller) modelID(schema *schemas.Schema, model any) (string, error) {
	if _, ok := schema.Field("id"); !ok {
		return "", exceptions.NewSerializationError(
			fmt.Sprintf("%s has no visible id member", schema.Name()),
		)
	}
	modelField, err := schema.Definition().ModelField("id")
	if err != nil {
		return "", err
	}
	value, ok := utils.ModelFieldValue(model, modelField)
	if !ok {
		return "", errMissingField(schema.Name(), modelField)
	}
	if isNilValue(value) {
		return "", exceptions.NewSerializationError(
			fmt.Sprintf("%s model has an empty id", schema.Name()),
		)
	}
	return renderID(value), nil
}

func renderModelID(model any, idField string) (string, error) {
	value, ok := utils.ModelFieldValue(model, idField)
	if !ok || isNilValue(value) {
		return "", exceptions.NewSerializationError(
			fmt.Sprintf("Could not read field %s from the related model", idField),
		)
	}
	return renderID(value), nil
}

func errMissingField(schemaName, modelField string) *exceptions.Error {
	return exceptions.NewSerializationError(
		fmt.Sprintf("Could not read field %s from the model for %s", modelField, schemaName),
	)
}

// renderValue converts model values to their wire form. Only times and UUIDs
// need converting; everything else is left to the JSON encoder.
func renderValue(v any, format string) any {
	if isNilValue(v) {
		return nil
	}
	switch tv := v.(type) {
	case time.Time:
		if format == "" {
			format = time.RFC3339
		}
		return tv.Format(format)
	case *time.Time:
		if format == "" {
			format = time.RFC3339
		}
		return tv.Format(format)
	case uuid.UUID:
		return tv.String()
	case *uuid.UUID:
		return tv.String()
	default:
		return v
	}
}

func renderID(v any) string {
	switch tv := v.(type) {
	case string:
		return tv
	case fmt.Stringer:
		return tv.String()
	case int:
		return strconv.Itoa(tv)
	case int32:
		return strconv.FormatInt(int64(tv), 10)
	case int64:
		return strconv.FormatInt(tv, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func sliceElements(v any) ([]any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, exceptions.NewSerializationError(
			fmt.Sprintf("Expected a slice of models but got %T", v),
		)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

var linkParamRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// modelPathValue walks a dotted field path through the model, so "post.id"
// reads the id of the model's post.
func modelPathValue(model any, path string) (any, bool) {
	value := model
	for _, segment := range strings.Split(path, ".") {
		v, ok := utils.ModelFieldValue(value, segment)
		if !ok {
			return nil, false
		}
		value = v
	}
	return value, true
}

// resolveLinkTemplate substitutes {field} placeholders with the model's field
// values, e.g. "/posts/{id}/author" or "/posts/{post.id}".
func resolveLinkTemplate(template string, model any) (string, error) {
	var substErr error
	resolved := linkParamRegex.ReplaceAllStringFunc(template, func(match string) string {
		field := match[1 : len(match)-1]
		value, ok := modelPathValue(model, field)
		if !ok || isNilValue(value) {
			substErr = exceptions.NewSerializationError(
				fmt.Sprintf("Could not resolve link parameter %s", field),
			)
			return match
		}
		return renderID(value)
	})
	if substErr != nil {
		return "", substErr
	}
	return resolved, nil
}
