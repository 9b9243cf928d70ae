package models

// SalaryRange holds the lowest and highest salary across a set of records.
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DepartmentStat aggregates the employees of one department.
type DepartmentStat struct {
	Department    string  `json:"department"`
	Count         int     `json:"count"`
	AverageSalary float64 `json:"averageSalary"`
	TotalPayroll  float64 `json:"totalPayroll"`
}

// Statistics is the aggregate report over the whole collection.
// DepartmentCounts and DepartmentStats cover only departments that currently
// have at least one employee; DepartmentStats disappears from the payload
// when there are none.
type Statistics struct {
	TotalEmployees   int              `json:"totalEmployees"`
	AverageSalary    float64          `json:"averageSalary"`
	DepartmentCounts map[string]int   `json:"departmentCounts"`
	SalaryRange      SalaryRange      `json:"salaryRange"`
	DepartmentStats  []DepartmentStat `json:"departmentStats,omitempty"`
}
