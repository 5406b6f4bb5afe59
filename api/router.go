package api

import (
	"github.com/gin-gonic/gin"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/comment"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/contact"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/hint"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/navigation"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/health"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/metrics"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/preferences"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/product"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/quiz"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/wishlist"
)

// Handlers bundles every module handler the router mounts. Users is the
// service backing the auth middleware.
type Handlers struct {
	Users       *user.Service
	Auth        *user.Handler
	Products    *product.Handler
	Wishlist    *wishlist.Handler
	Contacts    *contact.Handler
	Comments    *comment.Handler
	Hints       *hint.Handler
	Quiz        *quiz.Handler
	UI          *navigation.Handler
	Preferences *preferences.Handler
}

// SetupRoutes registers every API route.
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/healthz", health.Healthz)
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.Auth.SignUp)
		auth.POST("/signin", h.Auth.SignIn)
		auth.POST("/guest", h.Auth.Guest)
		auth.POST("/signout", user.RequireSession(h.Users), h.Auth.SignOut)
		auth.GET("/session", user.LoadSession(h.Users), h.Auth.GetSession)
		auth.GET("/confirm", h.Auth.Confirm)
		auth.PUT("/profile", user.RequireSession(h.Users), h.Auth.UpdateProfile)
	}

	products := api.Group("/products")
	{
		products.GET("", h.Products.List)
		products.GET("/:id", h.Products.GetByID)

		products.GET("/:id/comments", h.Comments.List)
		products.POST("/:id/comments", user.RequireSession(h.Users), h.Comments.Create)
		products.DELETE("/:id/comments/:commentID", user.RequireSession(h.Users), h.Comments.Delete)
	}

	wishlistRoutes := api.Group("/wishlist", user.RequireSession(h.Users))
	{
		wishlistRoutes.GET("", h.Wishlist.List)
		wishlistRoutes.POST("", h.Wishlist.Add)
		wishlistRoutes.DELETE("/:productID", h.Wishlist.Remove)
	}

	contacts := api.Group("/contacts", user.RequireSession(h.Users))
	{
		contacts.GET("", h.Contacts.List)
		contacts.POST("", h.Contacts.Create)
		contacts.DELETE("/:id", h.Contacts.Delete)
	}

	hints := api.Group("/hints", user.RequireSession(h.Users))
	{
		hints.POST("", h.Hints.Dispatch)
		hints.GET("", h.Hints.History)
	}

	quizRoutes := api.Group("/quiz", user.RequireSession(h.Users))
	{
		quizRoutes.GET("/answers", h.Quiz.State)
		quizRoutes.PUT("/answers", h.Quiz.SetAnswer)
		quizRoutes.POST("/advance", h.Quiz.Advance)
		quizRoutes.POST("/submit", h.Quiz.Submit)
	}

	ui := api.Group("/ui", user.LoadSession(h.Users))
	{
		ui.GET("/state", h.UI.State)
		ui.POST("/navigate", h.UI.Navigate)
		ui.POST("/back", h.UI.Back)
		ui.POST("/select-product", h.UI.SelectProduct)
		ui.POST("/category", h.UI.Category)
		ui.POST("/overlays/:kind/open", h.UI.OpenOverlay)
		ui.POST("/overlays/:kind/close", h.UI.CloseOverlay)
	}

	prefs := api.Group("/preferences", user.RequireSession(h.Users))
	{
		prefs.GET("", h.Preferences.Get)
		prefs.PUT("", h.Preferences.Update)
	}
}
