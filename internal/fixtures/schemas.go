// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fixtures

import (
	"github.com/multimeric/flapison/schemas"
)

// Schema registry names.
const (
	AuthorSchema  string = "AuthorSchema"
	PostSchema    string = "PostSchema"
	CommentSchema string = "CommentSchema"
	TagSchema     string = "TagSchema"
)

// NewSchemaRegistry declares the blog schemas. The post metadata definition
// stays unregistered since it only ever serves as a nested object.
func NewSchemaRegistry() *schemas.Registry {
	reg := schemas.NewRegistry()

	metadataDef := schemas.NewDefinition("PostMetadataSchema", "post_metadata").
		DeclareField("reading_time", &schemas.Attribute{}).
		DeclareField("language", &schemas.Attribute{})

	authorDef := schemas.NewDefinition(AuthorSchema, "authors").
		SetSelfURL("/authors/{id}").
		DeclareField("id", &schemas.Attribute{}).
		DeclareField("name", &schemas.Attribute{}).
		DeclareField("email", &schemas.Attribute{}).
		DeclareField("bio", &schemas.Attribute{}).
		DeclareField("created_at", &schemas.Attribute{}).
		DeclareField("posts", &schemas.Relationship{
			Schema:     schemas.ByName(PostSchema),
			Type:       "posts",
			Many:       true,
			RelatedURL: "/authors/{id}/posts",
		})

	postDef := schemas.NewDefinition(PostSchema, "posts").
		SetSelfURL("/posts/{id}").
		DeclareField("id", &schemas.Attribute{}).
		DeclareField("title", &schemas.Attribute{}).
		DeclareField("body", &schemas.Attribute{}).
		DeclareField("published_at", &schemas.Attribute{}).
		DeclareField("metadata", &schemas.Nested{Schema: schemas.ByDef(metadataDef)}).
		DeclareField("author", &schemas.Relationship{
			Schema:     schemas.ByName(AuthorSchema),
			Type:       "authors",
			Linkage:    true,
			RelatedURL: "/posts/{id}/author",
		}).
		DeclareField("comments", &schemas.Relationship{
			Schema:     schemas.ByName(CommentSchema),
			Type:       "comments",
			Many:       true,
			RelatedURL: "/posts/{id}/comments",
		}).
		DeclareField("tags", &schemas.Relationship{
			Schema:  schemas.ByName(TagSchema),
			Type:    "tags",
			Many:    true,
			Linkage: true,
		})

	// Comment authors render with their name only, even when included.
	commentAuthor := reg.MustInstantiate(authorDef, schemas.ComputeOptions{
		Only: []string{"name"},
	})
	commentDef := schemas.NewDefinition(CommentSchema, "comments").
		SetSelfURL("/comments/{id}").
		DeclareField("id", &schemas.Attribute{}).
		DeclareField("body", &schemas.Attribute{}).
		DeclareField("created_at", &schemas.Attribute{}).
		DeclareField("author", &schemas.Relationship{
			Schema:  schemas.ByInstance(commentAuthor),
			Type:    "authors",
			Linkage: true,
		}).
		DeclareField("post", &schemas.Relationship{
			Schema:     schemas.ByName(PostSchema),
			Type:       "posts",
			RelatedURL: "/posts/{post.id}",
		})

	tagDef := schemas.NewDefinition(TagSchema, "tags").
		DeclareField("id", &schemas.Attribute{}).
		DeclareField("name", &schemas.Attribute{}).
		DeclareField("slug", &schemas.Attribute{})

	reg.MustRegister(authorDef, postDef, commentDef, tagDef)
	return reg
}
