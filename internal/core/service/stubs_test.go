package service

import (
	"context"
	"sort"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// In-memory repository stubs shared by the service tests. They mirror the
// repository contracts: clones in and out, *domain.NotFoundError on misses.

type stubUnitOfWork struct{}

func (stubUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubDenylist struct {
	revoked map[int64]bool
	err     error
}

func (d *stubDenylist) IsRevoked(_ context.Context, subjectID int64) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.revoked[subjectID], nil
}

func (d *stubDenylist) Revoke(_ context.Context, subjectID int64) error {
	if d.err != nil {
		return d.err
	}
	if d.revoked == nil {
		d.revoked = make(map[int64]bool)
	}
	d.revoked[subjectID] = true
	return nil
}

// --- staff ---

type stubStaffRepo struct {
	users  map[int64]*domain.StaffUser
	nextID int64
}

func newStubStaffRepo() *stubStaffRepo {
	return &stubStaffRepo{users: make(map[int64]*domain.StaffUser)}
}

func cloneStaff(u *domain.StaffUser) *domain.StaffUser {
	clone := *u
	return &clone
}

func (r *stubStaffRepo) seed(u *domain.StaffUser) *domain.StaffUser {
	if u.ID == 0 {
		r.nextID++
		u.ID = r.nextID
	} else if u.ID > r.nextID {
		r.nextID = u.ID
	}
	r.users[u.ID] = cloneStaff(u)
	return cloneStaff(u)
}

func (r *stubStaffRepo) FindByID(_ context.Context, id int64) (*domain.StaffUser, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: domain.KindStaff, ID: id}
	}
	return cloneStaff(u), nil
}

func (r *stubStaffRepo) FindByLogin(_ context.Context, login string) (*domain.StaffUser, error) {
	for _, u := range r.users {
		if u.Username == login || u.Email == login {
			return cloneStaff(u), nil
		}
	}
	return nil, &domain.NotFoundError{Entity: domain.KindStaff}
}

func (r *stubStaffRepo) FindByUsername(_ context.Context, username string) (*domain.StaffUser, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneStaff(u), nil
		}
	}
	return nil, &domain.NotFoundError{Entity: domain.KindStaff}
}

func (r *stubStaffRepo) FindByEmail(_ context.Context, email string) (*domain.StaffUser, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneStaff(u), nil
		}
	}
	return nil, &domain.NotFoundError{Entity: domain.KindStaff}
}

func (r *stubStaffRepo) List(_ context.Context) ([]domain.StaffUser, error) {
	out := make([]domain.StaffUser, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubStaffRepo) Insert(_ context.Context, user *domain.StaffUser) (*domain.StaffUser, error) {
	r.nextID++
	clone := cloneStaff(user)
	clone.ID = r.nextID
	r.users[clone.ID] = cloneStaff(clone)
	return clone, nil
}

func (r *stubStaffRepo) Update(_ context.Context, user *domain.StaffUser) error {
	if _, ok := r.users[user.ID]; !ok {
		return &domain.NotFoundError{Entity: domain.KindStaff, ID: user.ID}
	}
	r.users[user.ID] = cloneStaff(user)
	return nil
}

func (r *stubStaffRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return &domain.NotFoundError{Entity: domain.KindStaff, ID: id}
	}
	delete(r.users, id)
	return nil
}

// --- clients ---

type stubClientRepo struct {
	clients map[int64]*domain.Client
	nextID  int64
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[int64]*domain.Client)}
}

func cloneClient(c *domain.Client) *domain.Client {
	clone := *c
	return &clone
}

func (r *stubClientRepo) seed(c *domain.Client) *domain.Client {
	if c.ID == 0 {
		r.nextID++
		c.ID = r.nextID
	} else if c.ID > r.nextID {
		r.nextID = c.ID
	}
	r.clients[c.ID] = cloneClient(c)
	return cloneClient(c)
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: domain.KindClient, ID: id}
	}
	return cloneClient(c), nil
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			return cloneClient(c), nil
		}
	}
	return nil, &domain.NotFoundError{Entity: domain.KindClient}
}

func (r *stubClientRepo) List(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClientRepo) Insert(_ context.Context, client *domain.Client) (*domain.Client, error) {
	r.nextID++
	clone := cloneClient(client)
	clone.ID = r.nextID
	r.clients[clone.ID] = cloneClient(clone)
	return clone, nil
}

func (r *stubClientRepo) Update(_ context.Context, client *domain.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return &domain.NotFoundError{Entity: domain.KindClient, ID: client.ID}
	}
	r.clients[client.ID] = cloneClient(client)
	return nil
}

// --- contracts ---

type stubContractRepo struct {
	contracts map[int64]*domain.Contract
	nextID    int64
}

func newStubContractRepo() *stubContractRepo {
	return &stubContractRepo{contracts: make(map[int64]*domain.Contract)}
}

func cloneContract(c *domain.Contract) *domain.Contract {
	clone := *c
	return &clone
}

func (r *stubContractRepo) seed(c *domain.Contract) *domain.Contract {
	if c.ID == 0 {
		r.nextID++
		c.ID = r.nextID
	} else if c.ID > r.nextID {
		r.nextID = c.ID
	}
	r.contracts[c.ID] = cloneContract(c)
	return cloneContract(c)
}

func (r *stubContractRepo) FindByID(_ context.Context, id int64) (*domain.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: domain.KindContract, ID: id}
	}
	return cloneContract(c), nil
}

func (r *stubContractRepo) List(_ context.Context) ([]domain.Contract, error) {
	out := make([]domain.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubContractRepo) Insert(_ context.Context, contract *domain.Contract) (*domain.Contract, error) {
	r.nextID++
	clone := cloneContract(contract)
	clone.ID = r.nextID
	r.contracts[clone.ID] = cloneContract(clone)
	return clone, nil
}

func (r *stubContractRepo) Update(_ context.Context, contract *domain.Contract) error {
	if _, ok := r.contracts[contract.ID]; !ok {
		return &domain.NotFoundError{Entity: domain.KindContract, ID: contract.ID}
	}
	r.contracts[contract.ID] = cloneContract(contract)
	return nil
}

// --- events ---

type stubEventRepo struct {
	events map[int64]*domain.Event
	nextID int64
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[int64]*domain.Event)}
}

func cloneEvent(e *domain.Event) *domain.Event {
	clone := *e
	return &clone
}

func (r *stubEventRepo) seed(e *domain.Event) *domain.Event {
	if e.ID == 0 {
		r.nextID++
		e.ID = r.nextID
	} else if e.ID > r.nextID {
		r.nextID = e.ID
	}
	r.events[e.ID] = cloneEvent(e)
	return cloneEvent(e)
}

func (r *stubEventRepo) FindByID(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: domain.KindEvent, ID: id}
	}
	return cloneEvent(e), nil
}

func (r *stubEventRepo) List(_ context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubEventRepo) Insert(_ context.Context, event *domain.Event) (*domain.Event, error) {
	r.nextID++
	clone := cloneEvent(event)
	clone.ID = r.nextID
	r.events[clone.ID] = cloneEvent(clone)
	return clone, nil
}

func (r *stubEventRepo) Update(_ context.Context, event *domain.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return &domain.NotFoundError{Entity: domain.KindEvent, ID: event.ID}
	}
	r.events[event.ID] = cloneEvent(event)
	return nil
}

// --- helpers ---

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func boolPtr(b bool) *bool { return &b }

func float64Ptr(f float64) *float64 { return &f }

func principal(id int64, role domain.Role) *domain.Principal {
	return &domain.Principal{ID: id, Username: "user", Role: role}
}
