package services

import (
	"fmt"
	"sort"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

// In-memory repository fakes. The executor argument is ignored; the fakes
// stand in for the whole storage layer.

type fakeCustomerRepo struct {
	customers []*models.Customer
	nextID    int64
	failWith  error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{nextID: 1}
}

func (r *fakeCustomerRepo) CreateCustomer(_ repositories.SQLExecutor, customer *models.Customer) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	for _, c := range r.customers {
		if c.Code == customer.Code {
			return 0, fmt.Errorf("%w: customer code '%s' already exists", repositories.ErrDuplicateKey, customer.Code)
		}
	}
	stored := *customer
	stored.ID = r.nextID
	r.nextID++
	if stored.Avatar == "" {
		stored.Avatar = models.DefaultAvatar
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.UpdatedAt = stored.CreatedAt
	r.customers = append(r.customers, &stored)
	return stored.ID, nil
}

func (r *fakeCustomerRepo) GetCustomerByID(id int64) (*models.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeCustomerRepo) GetCustomerByCode(code string) (*models.Customer, error) {
	for _, c := range r.customers {
		if c.Code == code {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeCustomerRepo) GetLatestCustomer() (*models.Customer, error) {
	if len(r.customers) == 0 {
		return nil, repositories.ErrNotFound
	}
	latest := r.customers[0]
	for _, c := range r.customers[1:] {
		if c.CreatedAt.After(latest.CreatedAt) || (c.CreatedAt.Equal(latest.CreatedAt) && c.ID > latest.ID) {
			latest = c
		}
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeCustomerRepo) GetCustomers() ([]models.Customer, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *fakeCustomerRepo) UpdateCustomer(_ repositories.SQLExecutor, customer *models.Customer) error {
	for i, c := range r.customers {
		if c.ID == customer.ID {
			stored := *customer
			stored.CreatedAt = c.CreatedAt
			stored.UpdatedAt = time.Now()
			r.customers[i] = &stored
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeCustomerRepo) DeleteCustomer(_ repositories.SQLExecutor, id int64) error {
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakePackageRepo struct {
	packages []*models.Package
	nextID   int64
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{nextID: 1}
}

func (r *fakePackageRepo) CreatePackage(_ repositories.SQLExecutor, pkg *models.Package) (int64, error) {
	for _, p := range r.packages {
		if p.Name == pkg.Name {
			return 0, fmt.Errorf("%w: package name '%s' already exists", repositories.ErrDuplicateKey, pkg.Name)
		}
	}
	stored := *pkg
	stored.ID = r.nextID
	r.nextID++
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.packages = append(r.packages, &stored)
	return stored.ID, nil
}

func (r *fakePackageRepo) GetPackageByID(id int64) (*models.Package, error) {
	for _, p := range r.packages {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePackageRepo) GetPackageByName(name string) (*models.Package, error) {
	for _, p := range r.packages {
		if p.Name == name {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePackageRepo) GetPackages() ([]models.Package, error) {
	out := make([]models.Package, 0, len(r.packages))
	for i := len(r.packages) - 1; i >= 0; i-- {
		out = append(out, *r.packages[i])
	}
	return out, nil
}

func (r *fakePackageRepo) UpdatePackage(_ repositories.SQLExecutor, pkg *models.Package) error {
	for _, p := range r.packages {
		if p.Name == pkg.Name && p.ID != pkg.ID {
			return fmt.Errorf("%w: package name '%s' already exists", repositories.ErrDuplicateKey, pkg.Name)
		}
	}
	for i, p := range r.packages {
		if p.ID == pkg.ID {
			stored := *pkg
			stored.CreatedAt = p.CreatedAt
			stored.UpdatedAt = time.Now()
			r.packages[i] = &stored
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakePackageRepo) DeletePackage(_ repositories.SQLExecutor, id int64) error {
	for i, p := range r.packages {
		if p.ID == id {
			r.packages = append(r.packages[:i], r.packages[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeCheckInRepo struct {
	checkIns []*models.CheckIn
	nextID   int64
}

func newFakeCheckInRepo() *fakeCheckInRepo {
	return &fakeCheckInRepo{nextID: 1}
}

func (r *fakeCheckInRepo) CreateCheckIn(_ repositories.SQLExecutor, checkIn *models.CheckIn) (int64, error) {
	now := time.Now()
	if checkIn.Time.IsZero() {
		checkIn.Time = now
	}
	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = now
	}
	checkIn.ID = r.nextID
	r.nextID++
	stored := *checkIn
	r.checkIns = append(r.checkIns, &stored)
	return stored.ID, nil
}

func (r *fakeCheckInRepo) sortedDesc(in []models.CheckIn) []models.CheckIn {
	sort.Slice(in, func(i, j int) bool {
		if !in[i].Time.Equal(in[j].Time) {
			return in[i].Time.After(in[j].Time)
		}
		return in[i].ID > in[j].ID
	})
	return in
}

func (r *fakeCheckInRepo) GetCheckIns(limit int) ([]models.CheckIn, error) {
	out := make([]models.CheckIn, 0, len(r.checkIns))
	for _, c := range r.checkIns {
		out = append(out, *c)
	}
	out = r.sortedDesc(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeCheckInRepo) GetCheckInsBetween(start, end time.Time) ([]models.CheckIn, error) {
	out := []models.CheckIn{}
	for _, c := range r.checkIns {
		if !c.Time.Before(start) && !c.Time.After(end) {
			out = append(out, *c)
		}
	}
	return r.sortedDesc(out), nil
}
