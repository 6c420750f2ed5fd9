// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fixtures

import (
	"time"

	"github.com/google/uuid"
)

type Author struct {
	ID        uuid.UUID `faker:"-"`
	Name      string    `faker:"name"`
	Email     string    `faker:"email"`
	Bio       string    `faker:"sentence"`
	CreatedAt time.Time `faker:"-"`
	Posts     []*Post   `faker:"-"`
}

// PostMetadata is embedded inline in post attributes, it is not a resource.
type PostMetadata struct {
	ReadingTime int    `faker:"boundary_start=2, boundary_end=15"`
	Language    string `faker:"lang=eng"`
}

type Post struct {
	ID          uuid.UUID     `faker:"-"`
	Title       string        `faker:"sentence"`
	Body        string        `faker:"paragraph"`
	PublishedAt time.Time     `faker:"-"`
	Metadata    *PostMetadata `faker:"-"`
	Author      *Author       `faker:"-"`
	Comments    []*Comment    `faker:"-"`
	Tags        []*Tag        `faker:"-"`
}

type Comment struct {
	ID        uuid.UUID `faker:"-"`
	Body      string    `faker:"sentence"`
	CreatedAt time.Time `faker:"-"`
	Author    *Author   `faker:"-"`
	Post      *Post     `faker:"-"`
}

type Tag struct {
	ID   uuid.UUID `faker:"-"`
	Name string    `faker:"-"`
	Slug string    `faker:"-"`
}
