package server

func (s *FiberServer) RegisterFiberRoutes() {
	s.routes.HealthRoutes(s.App)
	s.routes.AuthorsRoutes(s.App)
	s.routes.PostsRoutes(s.App)
	s.routes.CommentsRoutes(s.App)
	s.routes.TagsRoutes(s.App)
}
