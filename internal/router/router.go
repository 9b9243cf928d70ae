package router

import (
	"log/slog"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"employee-management/internal/handlers"
	"employee-management/internal/middleware"
	"employee-management/internal/models"
	"employee-management/internal/store"
)

// Setup attaches the middleware chain and every route to r.
func Setup(r *gin.Engine, logger *slog.Logger, st *store.EmployeeStore) {
	set := metrics.NewSet()

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		cors.Default(),
		middleware.Metrics(set),
	)

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewResponse(http.StatusNotFound, nil, "Resource not found"))
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.NewResponse(http.StatusMethodNotAllowed, nil, "Method not allowed"))
	})

	eh := handlers.NewEmployeeHandler(st)
	sh := handlers.NewStatisticsHandler(st)

	// service surface
	r.GET("/", apiIndex)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; charset=utf-8")
		set.WritePrometheus(c.Writer)
		metrics.WriteProcessMetrics(c.Writer)
	})

	api := r.Group("/api")
	{
		api.GET("/employees", eh.ListEmployees)
		api.GET("/employees/search", eh.SearchEmployees)
		api.GET("/employees/department/:dept", eh.ListByDepartment)
		api.GET("/employees/:id", eh.GetEmployee)
		api.POST("/employees", eh.CreateEmployee)
		api.PUT("/employees/:id", eh.UpdateEmployee)
		api.DELETE("/employees/:id", eh.DeleteEmployee)

		api.GET("/statistics", sh.GetStatistics)
	}
}

// apiIndex describes the service for anyone hitting the bare root. This is
// plain documentation output, not an enveloped API response.
func apiIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Employee Management API",
		"version":     "1.0.0",
		"description": "RESTful API for employee management",
		"endpoints": gin.H{
			"GET /api/employees":                  "Get all employees",
			"GET /api/employees/:id":              "Get employee by ID",
			"POST /api/employees":                 "Create new employee",
			"PUT /api/employees/:id":              "Update employee",
			"DELETE /api/employees/:id":           "Delete employee",
			"GET /api/employees/department/:dept": "Get employees by department",
			"GET /api/employees/search":           "Search employees",
			"GET /api/statistics":                 "Get statistics",
		},
	})
}
