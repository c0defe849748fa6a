package http

import (
	"github.com/amanmaurya001/backend-test/internal/adapter/http/middleware"
	"github.com/amanmaurya001/backend-test/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(th *TokenHandler, ph *ProductHandler, sh *SubscribeHandler, ch *CheckoutHandler, authz *middleware.Authz) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())
	r.Use(middleware.Logging(logging.New("http")))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/token", th.IssueToken)
		v1.POST("/subscribe", middleware.SanitizeBody(), sh.Subscribe)
		v1.GET("/products", ph.ListProducts)
		v1.GET("/products/:code", ph.GetProduct)

		checkout := v1.Group("/checkout", authz.Require(), middleware.SanitizeBody())
		checkout.POST("/price", ch.PriceCart)
		checkout.POST("/confirm", ch.ConfirmOrder)
	}

	return r
}
