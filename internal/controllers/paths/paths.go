package paths

const (
	Base string = "/"

	HealthBase string = "/health"

	AuthorsBase   string = "/authors"
	AuthorsSingle string = "/:authorID"
	AuthorsPosts  string = "/:authorID/posts"

	PostsBase     string = "/posts"
	PostsSingle   string = "/:postID"
	PostsAuthor   string = "/:postID/author"
	PostsComments string = "/:postID/comments"

	CommentsBase   string = "/comments"
	CommentsSingle string = "/:commentID"

	TagsBase   string = "/tags"
	TagsSingle string = "/:tagSlug"
)
