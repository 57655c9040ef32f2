package organization

import "context"

type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (Organization, error)
	List(ctx context.Context) ([]Organization, error)
	// Ensure creates the organization if it does not exist yet.
	// Used for seeding the default tenant on startup.
	Ensure(ctx context.Context, org Organization) error
}
