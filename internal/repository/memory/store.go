// Package memory implements the repository interfaces over in-process
// state. It stands in for the Postgres repositories in unit tests and
// in the DB_DRIVER=memory development mode. Nothing survives a
// restart.
package memory

import (
	"sync"
	"time"

	"github.com/bivekigroup/staff-backend-go/internal/domain/employee"
	"github.com/bivekigroup/staff-backend-go/internal/domain/organization"
	"github.com/bivekigroup/staff-backend-go/internal/domain/schedule"
)

// Store holds all in-memory state. One mutex guards everything; the
// schedule upsert relies on that to keep the (employeeId, date) pair
// unique under concurrent writers.
type Store struct {
	mu sync.RWMutex

	employees []employee.Employee // insertion order
	schedules map[string]map[string]schedule.Schedule
	orgs      []organization.Organization
}

func NewStore() *Store {
	return &Store{
		schedules: make(map[string]map[string]schedule.Schedule),
	}
}

// PutOrganization inserts or replaces an organization. Used for
// seeding dev and test fixtures.
func (s *Store) PutOrganization(org organization.Organization) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now().UTC()
		org.UpdatedAt = org.CreatedAt
	}
	for i := range s.orgs {
		if s.orgs[i].ID == org.ID {
			s.orgs[i] = org
			return
		}
	}
	s.orgs = append(s.orgs, org)
}

func (s *Store) hasOrganization(id string) bool {
	for i := range s.orgs {
		if s.orgs[i].ID == id {
			return true
		}
	}
	return false
}

const dayKeyFormat = "2006-01-02"
