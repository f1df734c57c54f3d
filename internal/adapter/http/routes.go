package http

import (
	"net/http"

	"tasklist/internal/adapter/http/handlers"
	"tasklist/internal/adapter/http/middleware"
	"tasklist/pkg/apierrors"
	"tasklist/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Task        *handlers.TaskHandler
	Step        *handlers.StepHandler
	Project     *handlers.ProjectHandler
	Environment *handlers.EnvironmentHandler
}

// NewRouter builds the gin engine with the global middleware chain, the API
// routes and the embedded web view.
func NewRouter(logger *zap.Logger, allowedOrigins []string, h Handlers) (*gin.Engine, error) {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.GinZapMiddleware(logger),
		middleware.CORSMiddleware(allowedOrigins),
	)

	RegisterRoutes(r, h)
	if err := registerWebRoutes(r); err != nil {
		return nil, err
	}
	return r, nil
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.GET("/environment", h.Environment.GetEnvironment)

		api.GET("/tasks", h.Task.ListTasks)
		api.POST("/tasks", h.Task.CreateTask)
		api.PUT("/tasks", h.Task.UpdateTask)
		api.POST("/tasks/complete_step", h.Task.CompleteStep)

		api.GET("/completed_steps", h.Step.ListSteps)
		api.POST("/completed_steps", h.Step.AddStep)

		api.GET("/projects", h.Project.ListProjects)
	}

	r.NoMethod(middleware.LanguageMiddleware(), func(c *gin.Context) {
		c.JSON(
			http.StatusMethodNotAllowed,
			apierrors.CreateError(http.StatusMethodNotAllowed, apierrors.MsgMethodNotAllowed, middleware.GetLang(c)),
		)
	})
	r.NoRoute(middleware.LanguageMiddleware(), func(c *gin.Context) {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, middleware.GetLang(c)),
		)
	})
}

func registerWebRoutes(r *gin.Engine) error {
	index, err := web.Index()
	if err != nil {
		return err
	}
	assets, err := web.Assets()
	if err != nil {
		return err
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	r.StaticFS("/static", http.FS(assets))
	return nil
}
