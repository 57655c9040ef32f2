package postgresql

import (
	"context"
	"errors"

	"github.com/bivekigroup/staff-backend-go/internal/domain/organization"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

// GetByID implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, o.db)

	query := `SELECT id, name, created_at, updated_at FROM organizations WHERE id = $1`

	var org organization.Organization
	err := q.QueryRow(ctx, query, id).Scan(&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, wrapStoreErr("get organization", err)
	}
	return org, nil
}

// Ensure implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) Ensure(ctx context.Context, org organization.Organization) error {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO organizations (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := q.Exec(ctx, query, org.ID, org.Name); err != nil {
		return wrapStoreErr("ensure organization", err)
	}
	return nil
}

// List implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) List(ctx context.Context) ([]organization.Organization, error) {
	q := GetQuerier(ctx, o.db)

	query := `SELECT id, name, created_at, updated_at FROM organizations ORDER BY created_at, id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("list organizations", err)
	}
	defer rows.Close()

	orgs := []organization.Organization{}
	for rows.Next() {
		var org organization.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orgs, nil
}
