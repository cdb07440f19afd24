package services

import (
	"testing"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	staff  []*models.StaffMember
	nextID int64
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{nextID: 1}
}

func (r *fakeStaffRepo) CreateStaffMember(_ repositories.SQLExecutor, staff *models.StaffMember) (int64, error) {
	stored := *staff
	stored.ID = r.nextID
	r.nextID++
	r.staff = append(r.staff, &stored)
	return stored.ID, nil
}

func (r *fakeStaffRepo) GetStaffMemberByID(id int64) (*models.StaffMember, error) {
	for _, s := range r.staff {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeStaffRepo) GetStaffMembers() ([]models.StaffMember, error) {
	out := make([]models.StaffMember, 0, len(r.staff))
	for i := len(r.staff) - 1; i >= 0; i-- {
		out = append(out, *r.staff[i])
	}
	return out, nil
}

func (r *fakeStaffRepo) UpdateStaffMember(_ repositories.SQLExecutor, staff *models.StaffMember) error {
	for i, s := range r.staff {
		if s.ID == staff.ID {
			stored := *staff
			r.staff[i] = &stored
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeStaffRepo) DeleteStaffMember(_ repositories.SQLExecutor, id int64) error {
	for i, s := range r.staff {
		if s.ID == id {
			r.staff = append(r.staff[:i], r.staff[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func newStaffServiceForTest() StaffService {
	return NewStaffService(newFakeStaffRepo(), nil)
}

func TestCreateStaffMember(t *testing.T) {
	svc := newStaffServiceForTest()

	staff, err := svc.CreateStaffMember(CreateStaffRequest{
		Name:      "Minh",
		Role:      models.StaffRolePT,
		Phone:     "0911",
		Specialty: strPtr("Strength"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StaffRolePT, staff.Role)
	require.NotNil(t, staff.Specialty)
	assert.Equal(t, "Strength", *staff.Specialty)
}

func TestCreateStaffMember_DefaultRole(t *testing.T) {
	svc := newStaffServiceForTest()

	staff, err := svc.CreateStaffMember(CreateStaffRequest{Name: "Lan", Phone: "0912"})
	require.NoError(t, err)
	assert.Equal(t, models.StaffRoleStaff, staff.Role)
}

func TestCreateStaffMember_Validation(t *testing.T) {
	svc := newStaffServiceForTest()

	_, err := svc.CreateStaffMember(CreateStaffRequest{Name: "", Phone: "0911"})
	assert.ErrorIs(t, err, ErrStaffValidation)

	_, err = svc.CreateStaffMember(CreateStaffRequest{Name: "Minh", Phone: " "})
	assert.ErrorIs(t, err, ErrStaffValidation)

	_, err = svc.CreateStaffMember(CreateStaffRequest{Name: "Minh", Phone: "0911", Role: "Janitor"})
	assert.ErrorIs(t, err, ErrStaffValidation)
}

func TestUpdateStaffMember(t *testing.T) {
	svc := newStaffServiceForTest()

	created, err := svc.CreateStaffMember(CreateStaffRequest{Name: "Minh", Phone: "0911"})
	require.NoError(t, err)

	updated, err := svc.UpdateStaffMember(created.ID, UpdateStaffRequest{
		Role:  strPtr(models.StaffRoleManager),
		Shift: strPtr("Morning"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StaffRoleManager, updated.Role)
	require.NotNil(t, updated.Shift)
	assert.Equal(t, "Morning", *updated.Shift)
	assert.Equal(t, "Minh", updated.Name)

	_, err = svc.UpdateStaffMember(created.ID, UpdateStaffRequest{Role: strPtr("Janitor")})
	assert.ErrorIs(t, err, ErrStaffValidation)
}

func TestStaffMember_NotFound(t *testing.T) {
	svc := newStaffServiceForTest()

	_, err := svc.GetStaffMemberByID(404)
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = svc.UpdateStaffMember(404, UpdateStaffRequest{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	assert.ErrorIs(t, svc.DeleteStaffMember(404), ErrStaffNotFound)
}
