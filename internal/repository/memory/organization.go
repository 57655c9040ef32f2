package memory

import (
	"context"

	"github.com/bivekigroup/staff-backend-go/internal/domain/organization"
)

type organizationRepository struct {
	store *Store
}

func NewOrganizationRepository(store *Store) organization.OrganizationRepository {
	return &organizationRepository{store: store}
}

// GetByID implements organization.OrganizationRepository.
func (r *organizationRepository) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orgs {
		if s.orgs[i].ID == id {
			return s.orgs[i], nil
		}
	}
	return organization.Organization{}, organization.ErrOrganizationNotFound
}

// Ensure implements organization.OrganizationRepository.
func (r *organizationRepository) Ensure(ctx context.Context, org organization.Organization) error {
	s := r.store
	s.mu.RLock()
	exists := s.hasOrganization(org.ID)
	s.mu.RUnlock()

	if !exists {
		s.PutOrganization(org)
	}
	return nil
}

// List implements organization.OrganizationRepository.
func (r *organizationRepository) List(ctx context.Context) ([]organization.Organization, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]organization.Organization, len(s.orgs))
	copy(result, s.orgs)
	return result, nil
}
