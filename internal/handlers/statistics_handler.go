package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-management/internal/query"
	"employee-management/internal/store"
)

type StatisticsHandler struct {
	Store *store.EmployeeStore
}

func NewStatisticsHandler(st *store.EmployeeStore) *StatisticsHandler {
	return &StatisticsHandler{Store: st}
}

// GET /api/statistics
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	respond(c, http.StatusOK, query.Statistics(h.Store.All()), "")
}
