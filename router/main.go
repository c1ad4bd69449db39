package router

import (
	"github.com/codesmentors/codesmentors-api/config"
	"github.com/codesmentors/codesmentors-api/database"
	"github.com/codesmentors/codesmentors-api/handlers/auth"
	"github.com/codesmentors/codesmentors-api/handlers/category"
	"github.com/codesmentors/codesmentors-api/handlers/comment"
	"github.com/codesmentors/codesmentors-api/handlers/health"
	"github.com/codesmentors/codesmentors-api/handlers/loginhistory"
	"github.com/codesmentors/codesmentors-api/handlers/technology"
	"github.com/codesmentors/codesmentors-api/handlers/topic"
	"github.com/codesmentors/codesmentors-api/handlers/tutorial"
	"github.com/codesmentors/codesmentors-api/services"
	authutil "github.com/codesmentors/codesmentors-api/utils/auth"
	"github.com/codesmentors/codesmentors-api/utils/cache"
	"github.com/codesmentors/codesmentors-api/utils/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// SetupRoutes attaches the middleware stack and every route group to the app
func SetupRoutes(app *fiber.App, store database.Storage) {
	env, err := config.Get()
	if err != nil {
		log.Fatal("Failed to read environment: ", err)
	}

	db := store.GetDB().(*gorm.DB)

	jwtManager := authutil.NewJWTManager(authutil.JWTConfig{
		Secret: env.JWT_SECRET,
		Expiry: authutil.SessionExpiry,
		Issuer: env.JWT_ISSUER,
	})

	// Redis is optional: without it the public listings go straight to the DB
	var redisCache *cache.RedisCache
	if env.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(env.REDIS_URL)
		if err != nil {
			log.Warn("Redis unavailable, caching disabled: ", err)
			redisCache = nil
		}
	}

	mailer := services.NewMailerService(env)
	historyService := services.NewLoginHistoryService(db)

	authHandler := auth.NewAuthHandler(db, jwtManager, mailer, historyService)
	technologyHandler := technology.NewTechnologyHandler(db, redisCache)
	topicHandler := topic.NewTopicHandler(db, redisCache)
	tutorialHandler := tutorial.NewTutorialHandler(db)
	categoryHandler := category.NewCategoryHandler(db)
	commentHandler := comment.NewCommentHandler(db)
	historyHandler := loginhistory.NewLoginHistoryHandler(db, historyService)
	healthHandler := health.NewHealthHandler(store)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins: env.ALLOWED_ORIGINS,
	})

	app.Get("/health", healthHandler.Check)

	v1 := app.Group("/api/v1")

	// Account lifecycle
	user := v1.Group("/user")
	user.Post("/new-account", authHandler.Register)
	user.Post("/account-verify", authHandler.VerifyAccount)
	user.Get("/me", authMiddleware.Required(), authHandler.Me)

	account := v1.Group("/account")
	account.Post("/resend-otp", authHandler.ResendOTP)

	login := v1.Group("/login")
	login.Post("/via-password", authHandler.LoginViaPassword)
	login.Post("/via-otp", authHandler.LoginViaOTP)

	// Public content
	public := v1.Group("/public")
	public.Get("/technologies", technologyHandler.ListPublicTechnologies)
	public.Get("/topics", topicHandler.ListTopics)
	public.Get("/tutorials", tutorialHandler.ListTutorials)
	public.Get("/categories", categoryHandler.ListCategories)

	v1.Get("/tutorial/:slug", tutorialHandler.GetTutorialBySlug)
	v1.Get("/comment/tutorial/:tutorialId", commentHandler.ListComments)

	// Admin content management
	private := v1.Group("/private", authMiddleware.Required(), authMiddleware.RequireAdmin())
	private.Get("/technologies", technologyHandler.ListPrivateTechnologies)

	technologyGroup := v1.Group("/technology", authMiddleware.Required(), authMiddleware.RequireAdmin())
	technologyGroup.Post("/create", technologyHandler.CreateTechnology)

	topicGroup := v1.Group("/topic", authMiddleware.Required(), authMiddleware.RequireAdmin())
	topicGroup.Post("/create", topicHandler.CreateTopic)

	tutorialGroup := v1.Group("/tutorial", authMiddleware.Required(), authMiddleware.RequireAdmin())
	tutorialGroup.Post("/create", tutorialHandler.CreateTutorial)

	categoryGroup := v1.Group("/category")
	categoryGroup.Get("/:id", categoryHandler.GetCategory)
	categoryGroup.Post("/create", authMiddleware.Required(), authMiddleware.RequireAdmin(), categoryHandler.CreateCategory)
	categoryGroup.Put("/:id", authMiddleware.Required(), authMiddleware.RequireAdmin(), categoryHandler.UpdateCategory)
	categoryGroup.Delete("/:id", authMiddleware.Required(), authMiddleware.RequireAdmin(), categoryHandler.DeleteCategory)

	// Engagement (authenticated readers)
	commentGroup := v1.Group("/comment", authMiddleware.Required())
	commentGroup.Post("/create", commentHandler.CreateComment)
	commentGroup.Put("/:id", commentHandler.UpdateComment)
	commentGroup.Delete("/:id", commentHandler.DeleteComment)
	commentGroup.Post("/:id/like", commentHandler.LikeComment)

	// Login audit trail: admin surface, except recording an attempt
	historyGroup := v1.Group("/login-history", authMiddleware.Required())
	historyGroup.Post("/", historyHandler.Record)
	historyGroup.Get("/", authMiddleware.RequireAdmin(), historyHandler.List)
	historyGroup.Get("/stats", authMiddleware.RequireAdmin(), historyHandler.Statistics)
	historyGroup.Get("/user/:userId", authMiddleware.RequireAdmin(), historyHandler.ListForUser)
	historyGroup.Delete("/user/:userId", authMiddleware.RequireAdmin(), historyHandler.DeleteForUser)
	historyGroup.Get("/:id", authMiddleware.RequireAdmin(), historyHandler.Get)
	historyGroup.Put("/:id", authMiddleware.RequireAdmin(), historyHandler.Update)
	historyGroup.Delete("/:id", authMiddleware.RequireAdmin(), historyHandler.Delete)
}
