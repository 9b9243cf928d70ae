package store

import (
	"errors"
	"sync"

	"employee-management/internal/models"
)

// ErrNotFound is returned when the referenced employee id is absent.
var ErrNotFound = errors.New("employee not found")

// EmployeeStore owns the authoritative employee collection and the next-id
// counter. The HTTP layer serves requests on multiple goroutines, so every
// access goes through an RWMutex to keep a single writer at a time on the
// records and the counter.
type EmployeeStore struct {
	mu        sync.RWMutex
	nextID    int
	employees []models.Employee // insertion order
}

// NewEmployeeStore returns an empty store whose first assigned id will be 1.
func NewEmployeeStore() *EmployeeStore {
	return &EmployeeStore{nextID: 1}
}

// Insert assigns the next id to e, appends it and returns the stored record.
// The counter advances unconditionally; callers validate before inserting.
func (s *EmployeeStore) Insert(e models.Employee) models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID
	s.nextID++
	s.employees = append(s.employees, e)
	return e
}

// Find returns the employee with the given id, or ErrNotFound.
func (s *EmployeeStore) Find(id int) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Employee{}, ErrNotFound
}

// Update merges the non-nil fields of patch into the stored record, leaving
// the id untouched, and returns the updated record. Returns ErrNotFound if
// the id is absent.
func (s *EmployeeStore) Update(id int, patch models.EmployeeInput) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		e := &s.employees[i]
		if patch.FirstName != nil {
			e.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			e.LastName = *patch.LastName
		}
		if patch.Email != nil {
			e.Email = *patch.Email
		}
		if patch.Department != nil {
			e.Department = *patch.Department
		}
		if patch.Salary != nil {
			e.Salary = *patch.Salary
		}
		if patch.HireDate != nil {
			e.HireDate = *patch.HireDate
		}
		return *e, nil
	}
	return models.Employee{}, ErrNotFound
}

// Delete removes the employee with the given id. The id is retired: the
// counter never rolls back, so a deleted id is never reassigned.
func (s *EmployeeStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// All returns a snapshot of every record in insertion order. The copy is the
// caller's to filter and sort without affecting the store.
func (s *EmployeeStore) All() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Employee, len(s.employees))
	copy(snapshot, s.employees)
	return snapshot
}

// Count returns the number of records currently stored.
func (s *EmployeeStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

// Seed inserts the built-in demo records so the service starts with ids 1-3
// assigned and the counter at 4.
func (s *EmployeeStore) Seed() {
	s.Insert(models.Employee{
		FirstName:  "Sarah",
		LastName:   "Johnson",
		Email:      "sarah.johnson@company.com",
		Department: models.DepartmentIT,
		Salary:     95000,
		HireDate:   "2020-01-15",
	})
	s.Insert(models.Employee{
		FirstName:  "Michael",
		LastName:   "Chen",
		Email:      "michael.chen@company.com",
		Department: models.DepartmentIT,
		Salary:     87000,
		HireDate:   "2020-03-22",
	})
	s.Insert(models.Employee{
		FirstName:  "Emily",
		LastName:   "Rodriguez",
		Email:      "emily.rodriguez@company.com",
		Department: models.DepartmentHR,
		Salary:     72000,
		HireDate:   "2019-07-10",
	})
}
