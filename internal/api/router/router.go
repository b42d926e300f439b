package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Vectra777/module-intervenants/config"
	"github.com/Vectra777/module-intervenants/internal/api/handler"
	"github.com/Vectra777/module-intervenants/internal/api/middleware"
)

// Setup construit le routeur gin et y branche l'ensemble des routes.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── Intervenants ──
	intervenants := r.Group("/intervenants")
	{
		intervenants.GET("", h.Intervenant.List)
		intervenants.POST("", h.Intervenant.Create)
		intervenants.GET("/:id", h.Intervenant.Get)
		intervenants.PUT("/:id", h.Intervenant.Update)
		intervenants.DELETE("/:id", h.Intervenant.Delete)
		intervenants.GET("/:id/etudes", h.Intervenant.ListEtudes)
	}

	// ── Etudes ──
	etudes := r.Group("/etudes")
	{
		etudes.GET("", h.Etude.List)
		etudes.POST("", h.Etude.Create)
		etudes.GET("/:id", h.Etude.Get)
		etudes.PUT("/:id", h.Etude.Update)
		etudes.DELETE("/:id", h.Etude.Delete)
		etudes.GET("/:id/intervenants", h.Etude.ListIntervenants)
		etudes.POST("/:id/intervenants/:intervenant_id", h.Etude.LinkIntervenant)
		etudes.DELETE("/:id/intervenants/:intervenant_id", h.Etude.UnlinkIntervenant)
		etudes.GET("/:id/cout-total", h.Etude.CoutTotal)
	}

	// ── Affectations ──
	affectations := r.Group("/affectations")
	{
		affectations.GET("", h.Affectation.List)
		affectations.POST("", h.Affectation.Create)
		affectations.GET("/:id", h.Affectation.Get)
		affectations.PUT("/:id", h.Affectation.Update)
		affectations.DELETE("/:id", h.Affectation.Delete)
	}

	return r
}
