package handler

import (
	"net/http"

	"hr-admin/internal/logger"
	"hr-admin/internal/model"
	"hr-admin/internal/service"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct{ svc *service.AttendanceService }

func NewAttendanceHandler(svc *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// PUT /api/attendance/update
func (h *AttendanceHandler) Update(c *gin.Context) {
	var req model.AttendanceUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Employee ID and status are required"})
		return
	}

	a, err := h.svc.Upsert(c.Request.Context(), req.EmployeeID, req.Task, req.Status)
	if err != nil {
		logger.Error("attendance.upsert", "employee", req.EmployeeID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance updated successfully", "attendance": a})
}

// GET /api/employee/attendance
func (h *AttendanceHandler) Roster(c *gin.Context) {
	roster, err := h.svc.Roster(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, roster)
}
