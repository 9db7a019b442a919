package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/logging"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/config"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/services"
)

// RoutePolicy maps an operation name to whether it demands a bearer
// token. Keeping this a visible table (instead of middleware placement
// scattered over the router) makes the protection choices reviewable.
type RoutePolicy map[string]bool

// DefaultRoutePolicy preserves the observed protection choices: only
// the user listing is gated; per-user reads and writes, blogs, and
// comments are open. Flip an entry to change the policy.
var DefaultRoutePolicy = RoutePolicy{
	"users.list":   true,
	"users.get":    false,
	"users.update": false,
	"users.delete": false,
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	blogs     *services.BlogService
	comments  *services.CommentService
	jwtSecret []byte
	origins   []string
	policy    RoutePolicy
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us *services.UserService, bs *services.BlogService, cs *services.CommentService) *HTTPServer {
	return &HTTPServer{
		address:   cfg.Address,
		logger:    l.With("module", "httpapi"),
		users:     us,
		blogs:     bs,
		comments:  cs,
		jwtSecret: []byte(cfg.SecretKey),
		origins:   cfg.CORSOrigins,
		policy:    DefaultRoutePolicy,
	}
}

// guarded prepends the authorization gate when the policy demands it.
func (s *HTTPServer) guarded(op string, h gin.HandlerFunc) []gin.HandlerFunc {
	if s.policy[op] {
		return []gin.HandlerFunc{AuthRequired(s.jwtSecret), h}
	}
	return []gin.HandlerFunc{h}
}

func (s *HTTPServer) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World!")
	})

	users := router.Group("/users")
	{
		users.POST("/sign-up", s.SignUp)
		users.POST("/sign-in", s.SignIn)
		users.GET("", s.guarded("users.list", s.ListUsers)...)
		users.GET("/:id", s.guarded("users.get", s.GetUser)...)
		users.PUT("/:id", s.guarded("users.update", s.UpdateUser)...)
		users.DELETE("/:id", s.guarded("users.delete", s.DeleteUser)...)
	}

	blogs := router.Group("/blogs")
	{
		blogs.GET("", s.ListBlogs)
		blogs.GET("/:id", s.GetBlog)
		blogs.POST("", s.CreateBlog)
		blogs.POST("/uploads", s.CreateBlogUpload)
		blogs.PUT("/:id", s.UpdateBlog)
		blogs.DELETE("/:id", s.DeleteBlog)
	}

	comments := router.Group("/comments")
	{
		comments.GET("", s.ListComments)
		comments.GET("/:id", s.GetComment)
		comments.POST("", s.CreateComment)
		comments.PUT("/:id", s.UpdateComment)
		comments.DELETE("/:id", s.DeleteComment)
	}

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
