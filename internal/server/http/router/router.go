package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/giftpad/cardmarket/internal/adapter/filestore"
	"github.com/giftpad/cardmarket/internal/server/http/handlers"
	"github.com/giftpad/cardmarket/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, files filestore.Store, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	pinHandler := handlers.NewPinHandler(facade)
	sellRequestHandler := handlers.NewSellRequestHandler(facade, files)
	withdrawalHandler := handlers.NewWithdrawalHandler(facade)
	bankAccountHandler := handlers.NewBankAccountHandler(facade)
	invitationHandler := handlers.NewInvitationHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	transactionHandler := handlers.NewTransactionHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.GET("/invitations/:code/validate", invitationHandler.Validate)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/me", profileHandler.Me)
	userAuth.PUT("/email", profileHandler.ChangeEmail)
	userAuth.GET("/pin", pinHandler.Status)
	userAuth.POST("/pin", pinHandler.Set)
	userAuth.PUT("/pin", pinHandler.Change)
	userAuth.POST("/pin/verify", pinHandler.Verify)
	userAuth.POST("/sell-requests", sellRequestHandler.Submit)
	userAuth.GET("/sell-requests", sellRequestHandler.List)
	userAuth.POST("/withdrawals", withdrawalHandler.Create)
	userAuth.GET("/withdrawals", withdrawalHandler.List)
	userAuth.POST("/bank-accounts", bankAccountHandler.Add)
	userAuth.GET("/bank-accounts", bankAccountHandler.List)
	userAuth.DELETE("/bank-accounts/:id", bankAccountHandler.Delete)
	userAuth.GET("/invitation", invitationHandler.Code)
	userAuth.GET("/notifications", notificationHandler.List)
	userAuth.POST("/notifications/:id/read", notificationHandler.Read)
	userAuth.GET("/transactions", transactionHandler.List)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade))
	admin.Use(middleware.AdminRequired(facade))
	admin.GET("/sell-requests", sellRequestHandler.ListAll)
	admin.GET("/sell-requests/unmarked", sellRequestHandler.ListUnmarked)
	admin.PATCH("/sell-requests/:id/status", sellRequestHandler.UpdateStatus)
	admin.POST("/sell-requests/:id/mark", sellRequestHandler.Mark)
	admin.GET("/withdrawals", withdrawalHandler.ListAll)
	admin.PATCH("/withdrawals/:id/status", withdrawalHandler.UpdateStatus)
	admin.POST("/withdrawals/:id/mark", withdrawalHandler.Mark)
	admin.POST("/invitations", invitationHandler.CodeForUser)
	admin.POST("/notifications", notificationHandler.Broadcast)
	admin.POST("/users/:id/adjust", adminHandler.AdjustBalance)
	admin.GET("/settings/referral-bonus", adminHandler.ReferralBonus)
	admin.PUT("/settings/referral-bonus", adminHandler.SetReferralBonus)
	admin.GET("/settings/tiers", adminHandler.TierTable)
	admin.PUT("/settings/tiers", adminHandler.SetTierTable)

	return engine
}
