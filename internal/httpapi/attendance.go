package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hrms/backend/internal/common"
	"hrms/backend/internal/models"
)

type AttendanceHandler struct {
	service AttendanceService
}

func NewAttendanceHandler(s AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: s}
}

type markAttendanceRequest struct {
	EmployeeID int64  `json:"employeeId" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"required,oneof=Present Absent"`
}

// attendanceRecord is the full persisted mark, returned from Mark.
type attendanceRecord struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// attendanceItem is one listing row, with the owner's identity nested the
// way the frontend reads it (record.employee.name).
type attendanceItem struct {
	ID         int64         `json:"id"`
	EmployeeID int64         `json:"employee_id"`
	Date       string        `json:"date"`
	Status     string        `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	Employee   employeeIdent `json:"employee"`
}

type employeeIdent struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
}

func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	day, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		detail(c, http.StatusBadRequest, "invalid date")
		return
	}

	att, err := h.service.Mark(c.Request.Context(), req.EmployeeID, day, models.AttendanceStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorConflict):
			detail(c, http.StatusBadRequest, "Attendance already marked")
		case errors.Is(err, common.ErrorNotFound):
			detail(c, http.StatusNotFound, "Employee not found")
		case errors.Is(err, common.ErrorValidation):
			detail(c, http.StatusBadRequest, "invalid status")
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": attendanceRecord{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format(time.DateOnly),
		Status:     string(att.Status),
		CreatedAt:  att.CreatedAt,
		UpdatedAt:  att.UpdatedAt,
	}})
}

func (h *AttendanceHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	var date *time.Time
	if v := c.Query("date"); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			detail(c, http.StatusBadRequest, "invalid date")
			return
		}
		date = &d
	}

	var employeeID *int64
	if v := c.Query("employee"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			detail(c, http.StatusBadRequest, "invalid employee id")
			return
		}
		employeeID = &id
	}

	list, err := h.service.List(c.Request.Context(), date, employeeID, page, limit)
	if err != nil {
		serverError(c, err)
		return
	}

	items := make([]attendanceItem, 0, len(list.Items))
	for _, a := range list.Items {
		items = append(items, attendanceItem{
			ID:         a.ID,
			EmployeeID: a.EmployeeID,
			Date:       a.Date.Format(time.DateOnly),
			Status:     string(a.Status),
			CreatedAt:  a.CreatedAt,
			Employee:   employeeIdent{Name: a.EmployeeName, EmployeeID: a.EmployeeCode},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"total":      list.Total,
		"totalPages": list.TotalPages,
		"data":       items,
	})
}
