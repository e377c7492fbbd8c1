package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prayaas/yuvasetu/internal/app/controllers"
	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/middleware"
	"github.com/prayaas/yuvasetu/internal/pkg/auth"
)

// SetupRoutes registers all API routes on the router
func SetupRoutes(router *gin.Engine, ctrls *controllers.Controllers, jwtService *auth.JWTService) {
	v1 := router.Group("/api/v1")

	authed := middleware.JWTAuth(jwtService)
	adminOnly := middleware.RoleRequired(models.RoleAdmin)

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", ctrls.Auth.Register)
		authGroup.POST("/login", ctrls.Auth.Login)
		authGroup.GET("/me", authed, ctrls.Auth.Profile)
		authGroup.PATCH("/make-admin/:id", authed, adminOnly, ctrls.Auth.MakeAdmin)
	}

	volunteers := v1.Group("/users/volunteers", authed, adminOnly)
	{
		volunteers.POST("", ctrls.User.Create)
		volunteers.GET("", ctrls.User.GetAll)
		volunteers.GET("/stats", ctrls.User.Stats)
		volunteers.GET("/:id", ctrls.User.GetByID)
		volunteers.PUT("/:id", ctrls.User.Update)
		volunteers.DELETE("/:id", ctrls.User.Delete)
	}

	centers := v1.Group("/program-centers", authed)
	{
		centers.GET("", ctrls.ProgramCenter.GetAll)
		centers.GET("/stats", ctrls.ProgramCenter.Stats)
		centers.GET("/:id", ctrls.ProgramCenter.GetByID)
		centers.POST("", adminOnly, ctrls.ProgramCenter.Create)
		centers.PUT("/:id", adminOnly, ctrls.ProgramCenter.Update)
		centers.DELETE("/:id", adminOnly, ctrls.ProgramCenter.Delete)
	}

	attendance := v1.Group("/attendance", authed)
	{
		attendance.POST("/mark", ctrls.Attendance.Mark)
		attendance.GET("/volunteer", ctrls.Attendance.MyAttendance)
		attendance.GET("/summary", ctrls.Attendance.Summary)
		attendance.GET("/report", adminOnly, ctrls.Attendance.Report)
		attendance.GET("/report/download", adminOnly, ctrls.Attendance.Export)
	}

	library := v1.Group("/library", authed)
	{
		library.POST("/upload", ctrls.Library.Upload)
		library.GET("", ctrls.Library.GetAll)
		library.GET("/recent", ctrls.Library.GetRecent)
		library.GET("/stats", ctrls.Library.Stats)
		library.GET("/:id", ctrls.Library.GetByID)
		library.GET("/:id/download", ctrls.Library.Download)
		library.DELETE("/:id", adminOnly, ctrls.Library.Delete)
	}

	dashboard := v1.Group("/dashboard", authed)
	{
		dashboard.GET("/admin/stats", adminOnly, ctrls.Dashboard.AdminStats)
		dashboard.GET("/volunteer/stats", middleware.RoleRequired(models.RoleVolunteer), ctrls.Dashboard.VolunteerStats)
	}
}
