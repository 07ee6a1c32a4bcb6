package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSAbhinav3/IWP-CIA3/internal/auth"
	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
)

func newResolverFixture() (*auth.IdentityResolver, *fakeCompanyRepo, *fakeStudentRepo, *fakeFacultyRepo) {
	companies := newFakeCompanyRepo()
	students := newFakeStudentRepo()
	faculty := newFakeFacultyRepo()
	return auth.NewIdentityResolver(companies, students, faculty), companies, students, faculty
}

func TestResolveCompanyProjection(t *testing.T) {
	resolver, companies, _, _ := newResolverFixture()
	companies.put(&domain.Company{
		ID:          42,
		Email:       "hr@acme.test",
		CompanyName: "Acme Corp",
		Status:      domain.CompanyStatusPending,
	})

	identity, err := resolver.Resolve(context.Background(), &auth.Claims{SubjectID: 42, Role: domain.RoleCompany})
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, int64(42), identity.ID)
	assert.Equal(t, domain.RoleCompany, identity.Type)
	assert.Equal(t, "hr@acme.test", identity.Email)
	assert.Equal(t, "Acme Corp", identity.CompanyName)
	assert.Equal(t, domain.CompanyStatusPending, identity.Status)
}

func TestResolveStudentProjection(t *testing.T) {
	resolver, _, students, _ := newResolverFixture()
	students.put(&domain.Student{
		ID:        9,
		Email:     "jane@college.test",
		FirstName: "Jane",
		LastName:  "Doe",
		Year:      4,
		Branch:    "CSE",
	})

	identity, err := resolver.Resolve(context.Background(), &auth.Claims{SubjectID: 9, Role: domain.RoleStudent})
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, domain.RoleStudent, identity.Type)
	assert.Equal(t, "Jane", identity.FirstName)
	assert.Equal(t, "Doe", identity.LastName)
	assert.Empty(t, identity.Status)
}

func TestResolveFacultyProjection(t *testing.T) {
	resolver, _, _, faculty := newResolverFixture()
	faculty.put(&domain.Faculty{ID: 3, Email: "dean@college.test", FirstName: "Ada"})

	identity, err := resolver.Resolve(context.Background(), &auth.Claims{SubjectID: 3, Role: domain.RoleFaculty})
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, domain.RoleFaculty, identity.Type)
	assert.Equal(t, "dean@college.test", identity.Email)
}

func TestResolveUnknownRoleYieldsNoIdentity(t *testing.T) {
	resolver, _, _, _ := newResolverFixture()

	identity, err := resolver.Resolve(context.Background(), &auth.Claims{SubjectID: 1, Role: domain.Role("admin")})
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestResolveMissingAccountYieldsNoIdentity(t *testing.T) {
	resolver, _, _, _ := newResolverFixture()

	identity, err := resolver.Resolve(context.Background(), &auth.Claims{SubjectID: 404, Role: domain.RoleCompany})
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestResolveStoreFailurePropagates(t *testing.T) {
	companies := newFakeCompanyRepo()
	companies.err = errors.New("connection refused")
	resolver := auth.NewIdentityResolver(companies, newFakeStudentRepo(), newFakeFacultyRepo())

	identity, err := resolver.Resolve(context.Background(), &auth.Claims{SubjectID: 1, Role: domain.RoleCompany})
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestResolveSeesFreshAccountState(t *testing.T) {
	resolver, companies, _, _ := newResolverFixture()
	companies.put(&domain.Company{ID: 42, Email: "hr@acme.test", Status: domain.CompanyStatusPending})
	claims := &auth.Claims{SubjectID: 42, Role: domain.RoleCompany}

	identity, err := resolver.Resolve(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyStatusPending, identity.Status)

	companies.setStatus(42, domain.CompanyStatusApproved)

	identity, err = resolver.Resolve(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyStatusApproved, identity.Status)
}
