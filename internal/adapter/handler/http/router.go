package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "github.com/sm8ta/webike_wear_microservice/docs"
	"github.com/sm8ta/webike_wear_microservice/internal/config"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	limiter *RateLimiter,
	metricsHandler http.Handler,
	bikeHandler *BikeHandler,
	componentHandler *ComponentHandler,
	catalogHandler *CatalogHandler,
	garageHandler *GarageHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// CORS
	origins := cfg.Origins()
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(metricsHandler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("")
	if limiter != nil {
		api.Use(limiter.Middleware())
	}
	api.Use(AuthMiddleware(tokenService))

	componentTypes := api.Group("/component-types")
	{
		componentTypes.GET("", catalogHandler.ListComponentTypes)
		componentTypes.GET("/:id", catalogHandler.GetComponentType)
		componentTypes.POST("", catalogHandler.CreateComponentType)
	}

	bikes := api.Group("/bikes")
	{
		bikes.POST("", bikeHandler.CreateBike)
		bikes.GET("/my", bikeHandler.GetMyBikes)
		bikes.GET("/:id", bikeHandler.GetBike)
		bikes.PUT("/:id", bikeHandler.UpdateBike)
		bikes.DELETE("/:id", bikeHandler.DeleteBike)
		bikes.PUT("/:id/distance", bikeHandler.RecordDistance)
		bikes.GET("/:id/with-components", bikeHandler.GetBikeWithComponents)
		bikes.GET("/:id/with-user", bikeHandler.GetBikeWithUser)
		bikes.GET("/:id/maintenance", bikeHandler.GetMaintenanceRecords)
		bikes.GET("/:id/components/:typeId/history", componentHandler.GetComponentHistory)
	}

	api.GET("/garage", garageHandler.GetGarage)

	components := api.Group("/components")
	{
		components.POST("", componentHandler.AddComponent)
		components.GET("/:id", componentHandler.GetComponent)
		components.PUT("/:id", componentHandler.UpdateComponent)
		components.POST("/:id/replace", componentHandler.ReplaceComponent)
	}

	return &Router{router: router}, nil
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
