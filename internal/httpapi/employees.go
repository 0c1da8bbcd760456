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

type EmployeeHandler struct {
	service EmployeeService
}

func NewEmployeeHandler(s EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: s}
}

type createEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
	EmployeeID string `json:"employeeId"`
}

// employeeRecord is the full persisted record, returned from create.
type employeeRecord struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// employeeItem is the flattened listing row the frontend table renders.
type employeeItem struct {
	ID          int64  `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	JoiningDate string `json:"joining_date"`
	Status      string `json:"status"`
}

func toEmployeeRecord(e *models.Employee) employeeRecord {
	return employeeRecord{
		ID:         e.ID,
		EmployeeID: e.Code,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := h.service.Create(c.Request.Context(), req.Name, req.Email, req.Department, req.EmployeeID)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			detail(c, http.StatusBadRequest, "Employee ID or Email already exists")
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": toEmployeeRecord(employee)})
}

func (h *EmployeeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	list, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		serverError(c, err)
		return
	}

	items := make([]employeeItem, 0, len(list.Items))
	for _, e := range list.Items {
		items = append(items, employeeItem{
			ID:          e.ID,
			EmployeeID:  e.Code,
			Name:        e.FullName,
			Email:       e.Email,
			Department:  e.Department,
			JoiningDate: e.CreatedAt.Format(time.RFC3339),
			Status:      "Active",
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "total": list.Total, "data": items})
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		detail(c, http.StatusBadRequest, "invalid employee id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			detail(c, http.StatusNotFound, "Employee not found")
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Employee deleted permanently"})
}

func (h *EmployeeHandler) Stats(c *gin.Context) {
	total, err := h.service.CountActive(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"totalEmployees": total}})
}
