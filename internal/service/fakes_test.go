package service

import (
	"context"
	"sync"

	"github.com/iliyamo/job-board-api/internal/model"
	"github.com/iliyamo/job-board-api/internal/repository"
)

// In-memory stores standing in for the repositories. Error fields force
// a failure on the next matching call so best-effort paths can be
// exercised.

type memUserStore struct {
	byID    map[string]*model.User
	listErr error
	updErr  error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byID: map[string]*model.User{}}
}

func (m *memUserStore) add(u model.User) { cp := u; m.byID[u.ID] = &cp }

func (m *memUserStore) List(ctx context.Context) ([]model.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []model.User{}
	for _, u := range m.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	if u, ok := m.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) Update(ctx context.Context, id string, cols map[string]any) (*model.User, error) {
	if m.updErr != nil {
		return nil, m.updErr
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	for col, v := range cols {
		s, _ := v.(string)
		switch col {
		case "first_name":
			u.FirstName = s
		case "last_name":
			u.LastName = s
		case "email":
			u.Email = s
		case "address":
			u.Address = s
		case "phone":
			u.Phone = s
		case "password_hash":
			u.PasswordHash = s
		case "description":
			u.Description = s
		}
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) Delete(ctx context.Context, id string) (*model.DeletedUser, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	delete(m.byID, id)
	return &model.DeletedUser{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}, nil
}

func (m *memUserStore) Create(ctx context.Context, u *model.User) error {
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	m.add(*u)
	return nil
}

func (m *memUserStore) CredentialsByEmail(ctx context.Context, email string) (string, string, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u.ID, u.PasswordHash, nil
		}
	}
	return "", "", repository.ErrUserNotFound
}

type memApplicationStore struct {
	byID      map[string]*model.Application
	createErr error
}

func newMemApplicationStore() *memApplicationStore {
	return &memApplicationStore{byID: map[string]*model.Application{}}
}

func (m *memApplicationStore) Create(ctx context.Context, a *model.Application) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}

func (m *memApplicationStore) UpdateStatus(ctx context.Context, id, status string) (*model.Application, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrApplicationNotFound
	}
	a.Status = status
	cp := *a
	return &cp, nil
}

type memJobStore struct {
	byID   map[string]*model.Job
	getErr error
}

func newMemJobStore() *memJobStore {
	return &memJobStore{byID: map[string]*model.Job{}}
}

func (m *memJobStore) Create(ctx context.Context, j *model.Job) error {
	cp := *j
	m.byID[j.ID] = &cp
	return nil
}

func (m *memJobStore) GetByID(ctx context.Context, id string) (*model.Job, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	j, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (m *memJobStore) Update(ctx context.Context, id string, cols map[string]any) (*model.Job, error) {
	j, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrJobNotFound
	}
	for col, v := range cols {
		switch col {
		case "title":
			j.Title = v.(string)
		case "description":
			j.Description = v.(string)
		case "salary":
			j.Salary = v.(float64)
		case "job_type":
			j.JobType = v.(string)
		}
	}
	cp := *j
	return &cp, nil
}

func (m *memJobStore) Delete(ctx context.Context, id string) (*model.Job, error) {
	j, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrJobNotFound
	}
	delete(m.byID, id)
	return j, nil
}

type memCompanyStore struct {
	companies map[string]*model.Company        // keyed by company id
	profiles  map[string]*model.CompanyProfile // keyed by owner user id
	jobs      map[string][]model.JobSummary
	apps      map[string][]model.ApplicationDetail
}

func newMemCompanyStore() *memCompanyStore {
	return &memCompanyStore{
		companies: map[string]*model.Company{},
		profiles:  map[string]*model.CompanyProfile{},
		jobs:      map[string][]model.JobSummary{},
		apps:      map[string][]model.ApplicationDetail{},
	}
}

func (m *memCompanyStore) GetByID(ctx context.Context, id string) (*model.Company, error) {
	if c, ok := m.companies[id]; ok {
		return c, nil
	}
	return nil, repository.ErrCompanyNotFound
}

func (m *memCompanyStore) GetByOwner(ctx context.Context, userID string) (*model.CompanyProfile, error) {
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	return nil, repository.ErrCompanyNotFound
}

func (m *memCompanyStore) ListJobsByOwner(ctx context.Context, userID string) ([]model.JobSummary, error) {
	return m.jobs[userID], nil
}

func (m *memCompanyStore) ListApplicationsByOwner(ctx context.Context, userID string) ([]model.ApplicationDetail, error) {
	return m.apps[userID], nil
}

// memLocationStore keys rows by (entity_type, entity_id) in addition to
// id, mirroring the unique index on the real table.
type memLocationStore struct {
	mu        sync.Mutex
	byID      map[string]*model.Location
	byEntity  map[model.EntityRef]string
	createErr error
	getErr    error
	updateErr error
	deleteErr error
}

func newMemLocationStore() *memLocationStore {
	return &memLocationStore{byID: map[string]*model.Location{}, byEntity: map[model.EntityRef]string{}}
}

func (m *memLocationStore) Create(ctx context.Context, l *model.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	ref := model.EntityRef{Kind: l.EntityType, ID: l.EntityID}
	if _, ok := m.byEntity[ref]; ok {
		return repository.ErrLocationExists
	}
	cp := *l
	m.byID[l.ID] = &cp
	m.byEntity[ref] = l.ID
	return nil
}

func (m *memLocationStore) GetByID(ctx context.Context, id string) (*model.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.byID[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, repository.ErrLocationNotFound
}

func (m *memLocationStore) GetByEntity(ctx context.Context, ref model.EntityRef) (*model.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if id, ok := m.byEntity[ref]; ok {
		cp := *m.byID[id]
		return &cp, nil
	}
	return nil, repository.ErrLocationNotFound
}

func (m *memLocationStore) Update(ctx context.Context, id string, cols map[string]any) (*model.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	l, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}
	for col, v := range cols {
		switch col {
		case "entity_type":
			l.EntityType = v.(string)
		case "entity_id":
			l.EntityID = v.(string)
		case "latitude":
			l.Latitude = v.(float64)
		case "longitude":
			l.Longitude = v.(float64)
		case "address":
			l.Address = v.(string)
		case "cp":
			l.PostalCode = v.(string)
		}
	}
	cp := *l
	return &cp, nil
}

func (m *memLocationStore) Delete(ctx context.Context, id string) (*model.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}
	delete(m.byID, id)
	delete(m.byEntity, model.EntityRef{Kind: l.EntityType, ID: l.EntityID})
	return l, nil
}

func (m *memLocationStore) DeleteByEntity(ctx context.Context, ref model.EntityRef) (*model.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	id, ok := m.byEntity[ref]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}
	l := m.byID[id]
	delete(m.byID, id)
	delete(m.byEntity, ref)
	return l, nil
}

// capturingPublisher records published events; err forces failures.
type capturingPublisher struct {
	queues []string
	events []any
	err    error
}

func (p *capturingPublisher) Publish(ctx context.Context, queueName string, event any) error {
	if p.err != nil {
		return p.err
	}
	p.queues = append(p.queues, queueName)
	p.events = append(p.events, event)
	return nil
}
