package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service DashboardService
}

func NewDashboardHandler(s DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

type dashboardStats struct {
	TotalEmployees int64  `json:"totalEmployees"`
	PresentToday   int64  `json:"presentToday"`
	AbsentToday    int64  `json:"absentToday"`
	NotMarked      int64  `json:"notMarked"`
	Date           string `json:"date"`
}

type departmentBucket struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type recentAttendanceItem struct {
	ID       int64        `json:"id"`
	Date     string       `json:"date"`
	Status   string       `json:"status"`
	Employee employeeName `json:"employee"`
}

type employeeName struct {
	Name string `json:"name"`
}

type recentEmployeeItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

func (h *DashboardHandler) Get(c *gin.Context) {
	d, err := h.service.Get(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	departments := make([]departmentBucket, 0, len(d.Departments))
	for _, dc := range d.Departments {
		departments = append(departments, departmentBucket{Department: dc.Department, Count: dc.Count})
	}

	recentAttendance := make([]recentAttendanceItem, 0, len(d.RecentAttendance))
	for _, a := range d.RecentAttendance {
		recentAttendance = append(recentAttendance, recentAttendanceItem{
			ID:       a.ID,
			Date:     a.Date.Format(time.DateOnly),
			Status:   string(a.Status),
			Employee: employeeName{Name: a.EmployeeName},
		})
	}

	recentEmployees := make([]recentEmployeeItem, 0, len(d.RecentEmployees))
	for _, e := range d.RecentEmployees {
		recentEmployees = append(recentEmployees, recentEmployeeItem{
			ID:         e.ID,
			Name:       e.FullName,
			Department: e.Department,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"stats": dashboardStats{
			TotalEmployees: d.Stats.TotalEmployees,
			PresentToday:   d.Stats.PresentToday,
			AbsentToday:    d.Stats.AbsentToday,
			NotMarked:      d.Stats.NotMarked,
			Date:           d.Stats.Date.Format(time.DateOnly),
		},
		"departments":      departments,
		"recentAttendance": recentAttendance,
		"recentEmployees":  recentEmployees,
	}})
}
