package routes

import (
	"plateful/configs"
	"plateful/controllers"
	"plateful/entity"
	"plateful/middlewares"
	"plateful/repository"
	"plateful/services"
	"plateful/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes builds the whole dependency graph and mounts every surface on
// the engine. The hub doubles as the Notifier the services push events
// through.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.TrackHub) {
	// repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	promoRepo := repository.NewPromotionRepository(db)
	contentRepo := repository.NewContentRepository(db)
	supportRepo := repository.NewSupportRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	otpRepo := repository.NewOTPRepository(db)

	// services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	otpSvc := services.NewOTPService(otpRepo, userRepo, authSvc, services.LogSender{})
	promoSvc := services.NewPromotionService(promoRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, promoSvc, hub)
	restSvc := services.NewRestaurantService(db, restRepo, menuRepo, orderRepo, hub)
	driverSvc := services.NewDriverService(db, driverRepo, orderRepo, hub)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo)
	contentSvc := services.NewContentService(contentRepo)
	supportSvc := services.NewSupportService(supportRepo)
	payoutSvc := services.NewPayoutService(db, payoutRepo, orderRepo, restRepo)
	directionsSvc := services.NewDirectionsService(cfg.RoutingBaseURL)
	assistSvc := services.NewAssistService(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)

	// controllers
	authCtl := controllers.NewAuthController(authSvc, otpSvc)
	cartCtl := controllers.NewCartController(cartSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	ownerOrderCtl := controllers.NewOwnerOrderController(orderSvc)
	driverCtl := controllers.NewDriverController(driverSvc, orderSvc)
	reviewCtl := controllers.NewReviewController(reviewSvc)
	restCtl := controllers.NewRestaurantController(restSvc)
	promoCtl := controllers.NewPromotionController(promoSvc)
	contentCtl := controllers.NewContentController(contentSvc)
	supportCtl := controllers.NewSupportController(supportSvc)
	adminCtl := controllers.NewAdminController(restSvc, orderSvc)
	payoutCtl := controllers.NewPayoutController(payoutSvc)
	dirCtl := controllers.NewDirectionsController(directionsSvc, assistSvc)
	trackCtl := controllers.NewTrackController(hub)

	secret := cfg.JWTSecret
	authed := middlewares.AuthMiddleware(secret)
	customer := middlewares.AuthMiddleware(secret, entity.RoleCustomer)
	owner := middlewares.AuthMiddleware(secret, entity.RoleOwner)
	driver := middlewares.AuthMiddleware(secret, entity.RoleDriver)
	admin := middlewares.AuthMiddleware(secret, entity.RoleAdmin)

	api := r.Group("/api")

	// public
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/otp/request", authCtl.RequestOTP)
		auth.POST("/otp/verify", authCtl.VerifyOTP)
	}
	api.GET("/restaurants", restCtl.List)
	api.GET("/restaurants/:id", restCtl.Detail)
	api.GET("/restaurants/:id/reviews", reviewCtl.ListForRestaurant)
	api.GET("/drivers/:id/reviews", reviewCtl.ListForDriver)
	api.GET("/content/banners", contentCtl.Banners)
	api.GET("/content/popups", contentCtl.Popups)
	api.POST("/content/popups/:id/seen", contentCtl.PopupSeen)
	api.GET("/blog/categories", contentCtl.Categories)
	api.GET("/blog/articles", contentCtl.Articles)
	api.GET("/blog/articles/:slug", contentCtl.ArticleBySlug)
	api.POST("/directions", dirCtl.Route)

	// any signed-in user
	me := api.Group("", authed)
	{
		me.GET("/me", authCtl.Me)
		me.PUT("/me", authCtl.UpdateMe)
		me.POST("/support/tickets", supportCtl.Open)
		me.GET("/support/tickets", supportCtl.ListMine)
	}

	// customer
	cust := api.Group("", customer)
	{
		cust.GET("/cart", cartCtl.Get)
		cust.POST("/cart/items", cartCtl.Add)
		cust.PATCH("/cart/items/:itemId", cartCtl.UpdateQty)
		cust.DELETE("/cart/items/:itemId", cartCtl.RemoveItem)
		cust.DELETE("/cart", cartCtl.Clear)

		cust.POST("/promotions/validate", promoCtl.Validate)

		cust.POST("/orders/checkout", orderCtl.Checkout)
		cust.GET("/orders", orderCtl.List)
		cust.GET("/orders/:id", orderCtl.Detail)
		cust.POST("/orders/:id/cancel", orderCtl.Cancel)

		cust.POST("/reviews/restaurant", reviewCtl.CreateRestaurant)
		cust.POST("/reviews/driver", reviewCtl.CreateDriver)
	}

	// restaurant owner
	own := api.Group("/owner", owner)
	{
		own.POST("/restaurants", restCtl.Create)
		own.GET("/restaurants/mine", restCtl.Mine)
		own.GET("/dashboard", restCtl.Dashboard)
		own.PUT("/restaurants/mine", restCtl.Update)
		own.POST("/restaurants/mine/active", restCtl.SetActive)

		own.GET("/menus", restCtl.ListMenus)
		own.POST("/menus", restCtl.CreateMenu)
		own.PUT("/menus/:menuId", restCtl.UpdateMenu)
		own.DELETE("/menus/:menuId", restCtl.DeleteMenu)

		own.GET("/restaurants/:id/orders", ownerOrderCtl.List)
		own.GET("/restaurants/:id/orders/:orderId", ownerOrderCtl.Detail)
		own.POST("/orders/:orderId/accept", ownerOrderCtl.Accept)
		own.POST("/orders/:orderId/preparing", ownerOrderCtl.StartPreparing)
		own.POST("/orders/:orderId/ready", ownerOrderCtl.MarkReady)
		own.POST("/orders/:orderId/cancel", ownerOrderCtl.Cancel)

		own.GET("/payouts", payoutCtl.ListMine)
	}

	// driver
	drv := api.Group("/driver", driver)
	{
		drv.GET("/profile", driverCtl.Profile)
		drv.PUT("/profile", driverCtl.UpsertProfile)
		drv.POST("/availability", driverCtl.SetAvailability)
		drv.POST("/location", driverCtl.ReportLocation)
		drv.GET("/jobs", driverCtl.Jobs)
		drv.GET("/orders", driverCtl.MyOrders)
		drv.POST("/orders/:orderId/claim", driverCtl.Claim)
		drv.POST("/orders/:orderId/pickup", driverCtl.ConfirmPickup)
		drv.POST("/orders/:orderId/delivering", driverCtl.StartDelivery)
		drv.POST("/orders/:orderId/complete", driverCtl.Complete)
	}

	// admin back office
	adm := api.Group("/admin", admin)
	{
		adm.GET("/restaurants", adminCtl.ListRestaurants)
		adm.POST("/restaurants/:id/validate", adminCtl.ValidateRestaurant)
		adm.POST("/orders/:orderId/cancel", adminCtl.CancelOrder)

		adm.POST("/promotions", promoCtl.Create)
		adm.GET("/promotions", promoCtl.List)
		adm.POST("/promotions/:id/active", promoCtl.SetActive)
		adm.DELETE("/promotions/:id", promoCtl.Delete)

		adm.POST("/banners", contentCtl.CreateBanner)
		adm.POST("/banners/:id/active", contentCtl.SetBannerActive)
		adm.DELETE("/banners/:id", contentCtl.DeleteBanner)
		adm.POST("/popups", contentCtl.CreatePopup)
		adm.POST("/blog/categories", contentCtl.CreateCategory)
		adm.POST("/blog/articles", contentCtl.CreateArticle)
		adm.PUT("/blog/articles/:id", contentCtl.UpdateArticle)

		adm.GET("/support/tickets", supportCtl.ListAll)
		adm.POST("/support/tickets/:id/close", supportCtl.Close)

		adm.POST("/payouts", payoutCtl.Generate)
		adm.GET("/payouts", payoutCtl.ListAll)
		adm.POST("/payouts/:id/paid", payoutCtl.MarkPaid)

		adm.POST("/blog/assist", dirCtl.Assist)
	}

	// live tracking
	track := r.Group("/ws", middlewares.WSAuthMiddleware(secret))
	{
		track.GET("/orders/:id", trackCtl.Order)
		track.GET("/restaurants/:id", trackCtl.Restaurant)
		track.GET("/drivers/:id", trackCtl.Driver)
	}
}
