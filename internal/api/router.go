package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kurier/internal/domain"
)

// Server groups the dependencies behind the HTTP routes.
type Server struct {
	accounts domain.Accounts
	social   domain.Social
	messages domain.MessageLog
	relay    http.Handler
}

// NewServer bundles the services the routes dispatch to. relay handles
// the /ws upgrade; it authenticates in-band, so the route is mounted
// outside the bearer middleware.
func NewServer(accounts domain.Accounts, social domain.Social, messages domain.MessageLog, relay http.Handler) *Server {
	return &Server{
		accounts: accounts,
		social:   social,
		messages: messages,
		relay:    relay,
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/auth/register", s.register)
	r.POST("/auth/login", s.login)
	r.GET("/ws", gin.WrapH(s.relay))

	authed := r.Group("/", RequireAuth(s.accounts))
	authed.GET("/profile", s.getProfile)
	authed.PUT("/profile", s.updateProfile)
	authed.GET("/contacts", s.listContacts)
	authed.POST("/contacts", s.addContact)
	authed.GET("/messages", s.listMessages)
	authed.GET("/posts", s.listPosts)
	authed.POST("/posts", s.createPost)
	authed.PUT("/posts/:postId", s.updatePost)
	authed.DELETE("/posts/:postId", s.deletePost)
	authed.POST("/posts/:postId/like", s.likePost)

	return r
}
