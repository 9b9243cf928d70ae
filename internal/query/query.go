// Package query implements the read-only derivations over employee
// snapshots: department filtering, sorting, free-text search and aggregate
// statistics. Nothing here mutates the store; callers pass in the snapshot
// they got from it.
package query

import (
	"sort"
	"strings"

	"employee-management/internal/models"
)

// FilterByDepartment returns the records whose department equals dept
// exactly (case-sensitive).
func FilterByDepartment(employees []models.Employee, dept string) []models.Employee {
	result := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if e.Department == dept {
			result = append(result, e)
		}
	}
	return result
}

// SortBy stable-sorts employees in place by one of id, salary or hireDate and
// returns the slice. Any other field leaves the order untouched. Order is
// ascending unless it is exactly "desc"; ties keep their original relative
// order either way.
func SortBy(employees []models.Employee, field, order string) []models.Employee {
	var less func(a, b models.Employee) bool
	switch field {
	case "id":
		less = func(a, b models.Employee) bool { return a.ID < b.ID }
	case "salary":
		less = func(a, b models.Employee) bool { return a.Salary < b.Salary }
	case "hireDate":
		less = func(a, b models.Employee) bool { return a.HireDate < b.HireDate }
	default:
		return employees
	}
	if order == "desc" {
		asc := less
		less = func(a, b models.Employee) bool { return asc(b, a) }
	}
	sort.SliceStable(employees, func(i, j int) bool { return less(employees[i], employees[j]) })
	return employees
}

// Search returns the records matching q as a case-insensitive substring of
// the first name, last name or email. An empty q matches everything. Non-nil
// salary bounds additionally constrain the result to the closed interval
// [minSalary, maxSalary]; all conditions are conjunctive.
func Search(employees []models.Employee, q string, minSalary, maxSalary *float64) []models.Employee {
	q = strings.ToLower(q)

	result := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if q != "" &&
			!strings.Contains(strings.ToLower(e.FirstName), q) &&
			!strings.Contains(strings.ToLower(e.LastName), q) &&
			!strings.Contains(strings.ToLower(e.Email), q) {
			continue
		}
		if minSalary != nil && e.Salary < *minSalary {
			continue
		}
		if maxSalary != nil && e.Salary > *maxSalary {
			continue
		}
		result = append(result, e)
	}
	return result
}

// Statistics aggregates the whole collection: head count, mean salary,
// global salary range, per-department head counts, and one breakdown row per
// distinct department present in the data, in first-appearance order. An
// empty input yields zeroes, an empty counts map and no breakdown rows.
func Statistics(employees []models.Employee) models.Statistics {
	stats := models.Statistics{
		DepartmentCounts: make(map[string]int),
	}
	if len(employees) == 0 {
		return stats
	}

	var total float64
	minSal, maxSal := employees[0].Salary, employees[0].Salary
	deptOrder := make([]string, 0)
	deptPayroll := make(map[string]float64)

	for _, e := range employees {
		total += e.Salary
		if e.Salary < minSal {
			minSal = e.Salary
		}
		if e.Salary > maxSal {
			maxSal = e.Salary
		}
		if _, seen := stats.DepartmentCounts[e.Department]; !seen {
			deptOrder = append(deptOrder, e.Department)
		}
		stats.DepartmentCounts[e.Department]++
		deptPayroll[e.Department] += e.Salary
	}

	stats.TotalEmployees = len(employees)
	stats.AverageSalary = total / float64(len(employees))
	stats.SalaryRange = models.SalaryRange{Min: minSal, Max: maxSal}

	stats.DepartmentStats = make([]models.DepartmentStat, 0, len(deptOrder))
	for _, dept := range deptOrder {
		count := stats.DepartmentCounts[dept]
		stats.DepartmentStats = append(stats.DepartmentStats, models.DepartmentStat{
			Department:    dept,
			Count:         count,
			AverageSalary: deptPayroll[dept] / float64(count),
			TotalPayroll:  deptPayroll[dept],
		})
	}

	return stats
}
