package routes

import (
	"bistro-boss-api/handlers"
	"bistro-boss-api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes declares every route with its ordered check chain:
// identity first, then ownership or admin where required, then the handler.
// A failed check aborts before anything downstream runs.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	identity := middleware.AuthRequired(h.Tokens)
	owner := middleware.OwnerRequired()
	admin := middleware.AdminRequired(h.DB)

	// ── Public ─────────────────────────────────────────────────────
	r.POST("/jwt", h.IssueToken)
	r.GET("/menu", h.ListMenu)
	r.GET("/reviews", h.ListReviews)
	r.GET("/carts", h.ListCart)
	r.POST("/users", h.UpsertUser)

	// ── Identity-gated ─────────────────────────────────────────────
	r.POST("/carts", identity, h.AddCartItem)
	r.DELETE("/carts/:id", identity, h.RemoveCartItem)
	r.POST("/create-payment-intent", identity, h.CreatePaymentIntent)
	r.POST("/payments", identity, h.RecordPayment)

	// ── Identity + ownership ───────────────────────────────────────
	r.GET("/payments/:email", identity, owner, h.PaymentHistory)
	r.GET("/users/admin/:email", identity, owner, h.CheckAdmin)

	// ── Identity + admin ───────────────────────────────────────────
	r.GET("/menu/:id", identity, admin, h.GetMenuItem)
	r.POST("/menu", identity, admin, h.AddMenuItem)
	r.PATCH("/menu/:id", identity, admin, h.UpdateMenuItem)
	r.DELETE("/menu/:id", identity, admin, h.DeleteMenuItem)
	r.GET("/users", identity, admin, h.ListUsers)
	r.DELETE("/users/:id", identity, admin, h.DeleteUser)
	r.PATCH("/users/admin/:id", identity, admin, h.PromoteUser)
	r.GET("/admin-stats", identity, admin, h.AdminStats)
	r.GET("/order-stats", identity, admin, h.OrderStats)
}
