package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
)

// Identity is the live account record merged with its role, attached to
// a request for its duration. Company identities carry Status and
// CompanyName; student and faculty identities carry the name fields.
type Identity struct {
	ID          int64
	Type        domain.Role
	Email       string
	CompanyName string
	FirstName   string
	LastName    string
	Status      domain.CompanyStatus
}

// Resolver maps verified claims to a live account record.
type Resolver interface {
	// Resolve returns (nil, nil) when no account matches the claims, and
	// a non-nil error only for store failures.
	Resolve(ctx context.Context, claims *Claims) (*Identity, error)
}

type accountLoader func(ctx context.Context, id int64) (*Identity, error)

// IdentityResolver looks up the role-appropriate table per request.
// Every call fetches fresh state; account records are never cached, so a
// suspended account is rejected on its very next request.
type IdentityResolver struct {
	loaders map[domain.Role]accountLoader
}

// NewIdentityResolver wires one loader per recognized role. Adding a
// role means adding a registry entry, not a new branch.
func NewIdentityResolver(
	companies repository.CompanyRepository,
	students repository.StudentRepository,
	faculty repository.FacultyRepository,
) *IdentityResolver {
	return &IdentityResolver{
		loaders: map[domain.Role]accountLoader{
			domain.RoleCompany: func(ctx context.Context, id int64) (*Identity, error) {
				company, err := companies.GetByID(ctx, id)
				if err != nil {
					return nil, err
				}
				return &Identity{
					ID:          company.ID,
					Type:        domain.RoleCompany,
					Email:       company.Email,
					CompanyName: company.CompanyName,
					Status:      company.Status,
				}, nil
			},
			domain.RoleStudent: func(ctx context.Context, id int64) (*Identity, error) {
				student, err := students.GetByID(ctx, id)
				if err != nil {
					return nil, err
				}
				return &Identity{
					ID:        student.ID,
					Type:      domain.RoleStudent,
					Email:     student.Email,
					FirstName: student.FirstName,
					LastName:  student.LastName,
				}, nil
			},
			domain.RoleFaculty: func(ctx context.Context, id int64) (*Identity, error) {
				member, err := faculty.GetByID(ctx, id)
				if err != nil {
					return nil, err
				}
				return &Identity{
					ID:        member.ID,
					Type:      domain.RoleFaculty,
					Email:     member.Email,
					FirstName: member.FirstName,
					LastName:  member.LastName,
				}, nil
			},
		},
	}
}

// Resolve loads the account for the claims. Unrecognized roles and
// missing rows both resolve to no identity.
func (r *IdentityResolver) Resolve(ctx context.Context, claims *Claims) (*Identity, error) {
	loader, ok := r.loaders[claims.Role]
	if !ok {
		return nil, nil
	}
	identity, err := loader(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return identity, nil
}
