package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"employee-management/internal/models"
	"employee-management/internal/query"
	"employee-management/internal/store"
)

type EmployeeHandler struct {
	Store *store.EmployeeStore
}

func NewEmployeeHandler(st *store.EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{Store: st}
}

// employeeID parses the :id path parameter. Paths without a numeric id never
// belonged to this resource, so they get the generic 404.
func employeeID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respond(c, http.StatusNotFound, nil, "Resource not found")
		return 0, false
	}
	return id, true
}

// salaryBound parses an optional salary bound from a query parameter; absent
// or unparseable values mean "no bound".
func salaryBound(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// respondStoreErr translates a store failure into its envelope. ErrNotFound
// gets the id-naming 404; anything else is the generic 500.
func respondStoreErr(c *gin.Context, err error, id int) {
	if errors.Is(err, store.ErrNotFound) {
		respond(c, http.StatusNotFound, nil, fmt.Sprintf("Employee with ID %d not found", id))
		return
	}
	respond(c, http.StatusInternalServerError, nil, "Internal server error")
}

// GET /api/employees
// Optional filters: department (exact match), sort (id|salary|hireDate), order (asc|desc)
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees := h.Store.All()

	if dept := c.Query("department"); dept != "" {
		employees = query.FilterByDepartment(employees, dept)
	}

	sortBy := c.DefaultQuery("sort", "id")
	order := c.DefaultQuery("order", "asc")
	employees = query.SortBy(employees, sortBy, order)

	respond(c, http.StatusOK, employees, fmt.Sprintf("Retrieved %d employees", len(employees)))
}

// GET /api/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		return
	}

	employee, err := h.Store.Find(id)
	if err != nil {
		respondStoreErr(c, err, id)
		return
	}

	respond(c, http.StatusOK, employee, "")
}

// POST /api/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in models.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond(c, http.StatusBadRequest, nil, "Request body must be JSON")
		return
	}

	if errs := models.ValidateEmployeeInput(in, false); len(errs) > 0 {
		respond(c, http.StatusBadRequest, gin.H{"errors": errs}, "Validation failed")
		return
	}

	hireDate := time.Now().Format("2006-01-02")
	if in.HireDate != nil {
		hireDate = *in.HireDate
	}

	employee := h.Store.Insert(models.Employee{
		FirstName:  *in.FirstName,
		LastName:   *in.LastName,
		Email:      *in.Email,
		Department: *in.Department,
		Salary:     *in.Salary,
		HireDate:   hireDate,
	})

	respond(c, http.StatusCreated, employee, "Employee created successfully")
}

// PUT /api/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		return
	}

	if _, err := h.Store.Find(id); err != nil {
		respondStoreErr(c, err, id)
		return
	}

	var in models.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond(c, http.StatusBadRequest, nil, "Request body must be JSON")
		return
	}

	if errs := models.ValidateEmployeeInput(in, true); len(errs) > 0 {
		respond(c, http.StatusBadRequest, gin.H{"errors": errs}, "Validation failed")
		return
	}

	employee, err := h.Store.Update(id, in)
	if err != nil {
		respondStoreErr(c, err, id)
		return
	}

	respond(c, http.StatusOK, employee, "Employee updated successfully")
}

// DELETE /api/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		return
	}

	if err := h.Store.Delete(id); err != nil {
		respondStoreErr(c, err, id)
		return
	}

	respond(c, http.StatusOK, nil, fmt.Sprintf("Employee %d deleted successfully", id))
}

// GET /api/employees/department/:dept
func (h *EmployeeHandler) ListByDepartment(c *gin.Context) {
	dept := c.Param("dept")
	employees := query.FilterByDepartment(h.Store.All(), dept)

	if len(employees) == 0 {
		respond(c, http.StatusOK, employees, fmt.Sprintf("No employees found in %s department", dept))
		return
	}

	respond(c, http.StatusOK, employees, fmt.Sprintf("Found %d employees in %s", len(employees), dept))
}

// GET /api/employees/search
// Query params: q (substring over names and email), minSalary, maxSalary
func (h *EmployeeHandler) SearchEmployees(c *gin.Context) {
	q := c.Query("q")
	minSalary := salaryBound(c.Query("minSalary"))
	maxSalary := salaryBound(c.Query("maxSalary"))

	results := query.Search(h.Store.All(), q, minSalary, maxSalary)

	respond(c, http.StatusOK, results, fmt.Sprintf("Found %d employees matching criteria", len(results)))
}
