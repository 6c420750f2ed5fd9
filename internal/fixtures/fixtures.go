// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fixtures

import (
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"

	"github.com/multimeric/flapison/internal/utils"
)

const (
	defaultAuthorCount     int = 4
	defaultPostsPerAuthor  int = 3
	defaultCommentsPerPost int = 2
)

// Dataset is the in-memory sample data served by the demo endpoints.
type Dataset struct {
	Authors  []*Author
	Posts    []*Post
	Comments []*Comment
	Tags     []*Tag
}

// Seed builds a dataset with faker generated content. The relationship shape
// is deterministic: every post belongs to its author, comments are written by
// the following authors round-robin, and tags rotate over the posts.
func Seed(authorCount, postsPerAuthor, commentsPerPost int) (*Dataset, error) {
	ds := &Dataset{}

	tagNames := []string{"Go", "Testing", "Web Services", "Devlogs", "Serialization"}
	for _, name := range tagNames {
		ds.Tags = append(ds.Tags, &Tag{
			ID:   uuid.New(),
			Name: name,
			Slug: utils.Dasherize(name),
		})
	}

	now := time.Now().UTC()
	for a := 0; a < authorCount; a++ {
		author := &Author{}
		if err := faker.FakeData(author); err != nil {
			return nil, err
		}
		author.ID = uuid.New()
		author.CreatedAt = now.AddDate(0, 0, -(a + 1))
		ds.Authors = append(ds.Authors, author)
	}

	for a, author := range ds.Authors {
		for p := 0; p < postsPerAuthor; p++ {
			post := &Post{}
			if err := faker.FakeData(post); err != nil {
				return nil, err
			}
			post.ID = uuid.New()
			post.PublishedAt = now.Add(-time.Duration(a*postsPerAuthor+p+1) * time.Hour)
			post.Author = author

			metadata := &PostMetadata{}
			if err := faker.FakeData(metadata); err != nil {
				return nil, err
			}
			post.Metadata = metadata

			first := (a + p) % len(ds.Tags)
			second := (a + p + 1) % len(ds.Tags)
			post.Tags = []*Tag{ds.Tags[first], ds.Tags[second]}

			for i := 0; i < commentsPerPost; i++ {
				comment := &Comment{}
				if err := faker.FakeData(comment); err != nil {
					return nil, err
				}
				comment.ID = uuid.New()
				comment.CreatedAt = post.PublishedAt.Add(time.Duration(i+1) * time.Minute)
				comment.Author = ds.Authors[(a+i+1)%len(ds.Authors)]
				comment.Post = post
				post.Comments = append(post.Comments, comment)
				ds.Comments = append(ds.Comments, comment)
			}

			author.Posts = append(author.Posts, post)
			ds.Posts = append(ds.Posts, post)
		}
	}

	return ds, nil
}

// SeedDefault seeds the dataset served by the demo server.
func SeedDefault() (*Dataset, error) {
	return Seed(defaultAuthorCount, defaultPostsPerAuthor, defaultCommentsPerPost)
}

func (d *Dataset) AuthorByID(id uuid.UUID) (*Author, bool) {
	for _, author := range d.Authors {
		if author.ID == id {
			return author, true
		}
	}
	return nil, false
}

func (d *Dataset) PostByID(id uuid.UUID) (*Post, bool) {
	for _, post := range d.Posts {
		if post.ID == id {
			return post, true
		}
	}
	return nil, false
}

func (d *Dataset) CommentByID(id uuid.UUID) (*Comment, bool) {
	for _, comment := range d.Comments {
		if comment.ID == id {
			return comment, true
		}
	}
	return nil, false
}

func (d *Dataset) TagBySlug(slug string) (*Tag, bool) {
	for _, tag := range d.Tags {
		if tag.Slug == slug {
			return tag, true
		}
	}
	return nil, false
}
