package models

import "strings"

// Employee represents one employee record. The ID is assigned by the store
// on insert and never changes afterwards, even across updates.
type Employee struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
	HireDate   string  `json:"hireDate"` // "YYYY-MM-DD"
}

// Department constants
const (
	DepartmentIT         = "IT"
	DepartmentHR         = "HR"
	DepartmentFinance    = "Finance"
	DepartmentMarketing  = "Marketing"
	DepartmentOperations = "Operations"
)

// ValidDepartments lists every accepted department, in the order quoted by
// validation messages.
var ValidDepartments = []string{
	DepartmentIT,
	DepartmentHR,
	DepartmentFinance,
	DepartmentMarketing,
	DepartmentOperations,
}

// IsValidDepartment checks if the department is one of the accepted values.
func IsValidDepartment(department string) bool {
	switch department {
	case DepartmentIT, DepartmentHR, DepartmentFinance, DepartmentMarketing, DepartmentOperations:
		return true
	default:
		return false
	}
}

// EmployeeInput carries a create or partial-update payload. Pointer fields
// distinguish absent from zero-valued, so an update may change any subset of
// attributes. There is no ID field: a client-supplied id is dropped on decode
// and can never overwrite the stored one.
type EmployeeInput struct {
	FirstName  *string  `json:"firstName"`
	LastName   *string  `json:"lastName"`
	Email      *string  `json:"email"`
	Department *string  `json:"department"`
	Salary     *float64 `json:"salary"`
	HireDate   *string  `json:"hireDate"`
}

// ValidateEmployeeInput checks in against the field constraints and returns
// every violation found, not just the first. An empty result means the input
// is acceptable. Partial mode skips the required-field checks so updates may
// supply any subset of fields; constraints on supplied fields still apply.
func ValidateEmployeeInput(in EmployeeInput, partial bool) []string {
	var errs []string

	if !partial {
		required := []struct {
			name    string
			present bool
		}{
			{"firstName", in.FirstName != nil},
			{"lastName", in.LastName != nil},
			{"email", in.Email != nil},
			{"department", in.Department != nil},
			{"salary", in.Salary != nil},
		}
		for _, f := range required {
			if !f.present {
				errs = append(errs, "Missing required field: "+f.name)
			}
		}
	}

	// Intentionally loose: containing '@' is the only email requirement.
	if in.Email != nil && !strings.Contains(*in.Email, "@") {
		errs = append(errs, "Invalid email format")
	}
	if in.Salary != nil && *in.Salary < 0 {
		errs = append(errs, "Salary must be a positive number")
	}
	if in.Department != nil && !IsValidDepartment(*in.Department) {
		errs = append(errs, "Department must be one of: "+strings.Join(ValidDepartments, ", "))
	}

	return errs
}
