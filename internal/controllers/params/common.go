package params

type AuthorURLParams struct {
	AuthorID string `validate:"required,uuid"`
}

type PostURLParams struct {
	PostID string `validate:"required,uuid"`
}

type CommentURLParams struct {
	CommentID string `validate:"required,uuid"`
}

type TagURLParams struct {
	TagSlug string `validate:"required,slug"`
}
