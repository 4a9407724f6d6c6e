package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/respite-app/respite-server/internal/api/http/handler"
	"github.com/respite-app/respite-server/internal/api/http/middleware"
	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
	"github.com/respite-app/respite-server/internal/service"
)

// Router wires services into the HTTP route table.
type Router struct {
	authService     *service.Auth
	userService     *service.User
	supplyService   *service.Supply
	donationService *service.Donation
	postService     *service.Post
	tokenManager    model.TokenManager
	contextManager  model.ContextManager
	logger          *logger.Logger
	exposeErrors    bool
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	userService *service.User,
	supplyService *service.Supply,
	donationService *service.Donation,
	postService *service.Post,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
	exposeErrors bool,
) *Router {
	return &Router{
		authService:     authService,
		userService:     userService,
		supplyService:   supplyService,
		donationService: donationService,
		postService:     postService,
		tokenManager:    tokenManager,
		contextManager:  contextManager,
		logger:          logger,
		exposeErrors:    exposeErrors,
	}
}

// Register builds the echo instance with all routes and middleware. Public
// routes never pass through the auth middleware; protected routes always do.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	e.Use(logging.Handle)
	e.Use(echomw.CORS())

	errs := handler.NewErrors(r.exposeErrors)

	healthHandler := handler.NewHealth()
	authHandler := handler.NewAuth(r.authService, r.contextManager, errs, r.logger)
	userHandler := handler.NewUser(r.userService, r.contextManager, errs, r.logger)
	supplyHandler := handler.NewSupply(r.supplyService, errs, r.logger)
	donationHandler := handler.NewDonation(r.donationService, r.contextManager, errs, r.logger)
	postHandler := handler.NewPost(r.postService, r.contextManager, errs, r.logger)

	e.GET("/", healthHandler.Handle)

	api := e.Group("/api/v1")

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/login/oauth", authHandler.LoginOAuth)
	api.PATCH("/auth/update-password", authHandler.UpdatePassword, authenticate.Handle)

	api.GET("/user/total", userHandler.Total, authenticate.Handle)
	api.POST("/user", userHandler.Resolve, authenticate.Handle)
	api.PATCH("/user/update", userHandler.Update, authenticate.Handle)
	api.POST("/user/avatar", userHandler.UploadAvatar, authenticate.Handle)
	api.GET("/user/avatar/:key", userHandler.Avatar)

	api.POST("/supplies", supplyHandler.Create, authenticate.Handle)
	api.GET("/supplies", supplyHandler.List)
	api.GET("/supplies/:id", supplyHandler.Get)
	api.PATCH("/supplies/:id", supplyHandler.Update, authenticate.Handle)
	api.DELETE("/supplies/:id", supplyHandler.Delete, authenticate.Handle)

	api.POST("/donations", donationHandler.Create, authenticate.Handle)
	api.GET("/donations/statics", donationHandler.Statistics, authenticate.Handle)
	api.GET("/donations/leaderboard", donationHandler.Leaderboard)

	api.POST("/posts", postHandler.Create, authenticate.Handle)
	api.GET("/posts", postHandler.List)

	return e
}
