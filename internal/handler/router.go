package handler

import (
	"hr-admin/internal/middleware"
	"hr-admin/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires services, handlers and routes. Signup/login/logout are
// public; every other route needs a valid token, and destructive or
// status-changing routes need the admin flag on top.
func NewRouter(db *gorm.DB, tokens *service.TokenService) *gin.Engine {
	authH := NewAuthHandler(service.NewAuthService(db), tokens)
	employeeH := NewEmployeeHandler(service.NewEmployeeService(db))
	candidateH := NewCandidateHandler(service.NewCandidateService(db))
	leaveH := NewLeaveHandler(service.NewLeaveService(db))
	attendanceH := NewAttendanceHandler(service.NewAttendanceService(db))

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/user/signup", authH.Signup)
	r.POST("/api/user/login", authH.Login)
	r.POST("/api/user/logout", authH.Logout)

	api := r.Group("/api", middleware.RequireAuth(tokens))

	api.GET("/employee", employeeH.List)
	api.GET("/employee/search", employeeH.Search)
	api.GET("/employee/attendance", attendanceH.Roster)
	api.GET("/employee/:id", employeeH.Get)
	api.POST("/employee", employeeH.Create)
	api.PUT("/employee/:id", employeeH.Update)

	api.GET("/candidate", candidateH.List)
	api.GET("/candidate/:id", candidateH.Get)
	api.POST("/candidate", candidateH.Create)
	api.PUT("/candidate/:id", candidateH.Update)

	api.GET("/leave", leaveH.List)
	api.GET("/leave/:id", leaveH.Get)
	api.POST("/leave", leaveH.Create)
	api.PUT("/leave/:id", leaveH.Update)

	api.PUT("/attendance/update", attendanceH.Update)

	admin := api.Group("", middleware.RequireAdmin())
	admin.DELETE("/employee/:id", employeeH.Delete)
	admin.DELETE("/candidate/:id", candidateH.Delete)
	admin.DELETE("/leave/:id", leaveH.Delete)
	admin.PUT("/candidate/:id/status", candidateH.ChangeStatus)
	admin.PUT("/leave/updateStatus/:id", leaveH.UpdateStatus)

	return r
}
