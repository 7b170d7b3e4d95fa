package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookline/catalog/internal/api/http/handler"
	"github.com/bookline/catalog/internal/api/http/middleware"
	"github.com/bookline/catalog/internal/logger"
	"github.com/bookline/catalog/internal/model"
	"github.com/bookline/catalog/internal/service"
)

// Router wires services into the HTTP route tree.
type Router struct {
	authService    *service.Auth
	accountService *service.Account
	authorService  *service.Author
	bookService    *service.Book
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	accountService *service.Account,
	authorService *service.Author,
	bookService *service.Book,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		accountService: accountService,
		authorService:  authorService,
		bookService:    bookService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the gin engine with middleware and all routes.
// Account creation and single-account reads are open; everything else
// requires a valid bearer token.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	accountHandler := handler.NewAccount(r.accountService, r.contextManager, r.logger)
	authorHandler := handler.NewAuthor(r.authorService, r.logger)
	bookHandler := handler.NewBook(r.bookService, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle)

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	engine.POST("/auth/token", authHandler.Login)
	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id", accountHandler.Get)

	authed := engine.Group("", authenticate.Handle)

	authed.POST("/auth/refresh/token", authHandler.Refresh)

	authed.GET("/accounts", accountHandler.List)
	authed.PUT("/accounts/:id", accountHandler.Update)
	authed.DELETE("/accounts/:id", accountHandler.Delete)

	authors := authed.Group("/authors")
	authors.POST("", authorHandler.Create)
	authors.GET("", authorHandler.List)
	authors.GET("/:id", authorHandler.Get)
	authors.PATCH("/:id", authorHandler.Update)
	authors.DELETE("/:id", authorHandler.Delete)

	books := authed.Group("/books")
	books.POST("", bookHandler.Create)
	books.GET("", bookHandler.List)
	books.GET("/:id", bookHandler.Get)
	books.PATCH("/:id", bookHandler.Update)
	books.DELETE("/:id", bookHandler.Delete)

	return engine
}
