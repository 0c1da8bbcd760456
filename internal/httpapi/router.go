package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hrms/backend/internal/logging"
)

// NewRouter builds the gin engine with middleware and all resource routes.
func NewRouter(production bool, log logging.Logger,
	es EmployeeService, as AttendanceService, ds DashboardService) *gin.Engine {

	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log), cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "HRMS API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	employeeH := NewEmployeeHandler(es)
	employees := r.Group("/employees")
	{
		employees.GET("", employeeH.List)
		employees.POST("", employeeH.Create)
		employees.GET("/stats", employeeH.Stats)
		employees.DELETE("/:id", employeeH.Delete)
	}

	attendanceH := NewAttendanceHandler(as)
	attendance := r.Group("/attendance")
	{
		attendance.GET("", attendanceH.List)
		attendance.POST("", attendanceH.Mark)
	}

	dashboardH := NewDashboardHandler(ds)
	r.GET("/dashboard", dashboardH.Get)

	return r
}
