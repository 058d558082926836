package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/carnicero52/CONTRATA2/pkg/model"
)

// MemoryStore keeps companies and candidates in process memory. It backs
// STORE_DRIVER=memory and the tests.
type MemoryStore struct {
	mu         sync.RWMutex
	companies  map[string]*model.Company
	bySlug     map[string]string
	byEmail    map[string]string
	candidates map[string]*model.Candidate
	// insertion order, used as the tie-break for equal applied_at values
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		companies:  make(map[string]*model.Company),
		bySlug:     make(map[string]string),
		byEmail:    make(map[string]string),
		candidates: make(map[string]*model.Candidate),
	}
}

func cloneCompany(c *model.Company) *model.Company {
	out := *c
	out.Positions = append([]string(nil), c.Positions...)
	return &out
}

func (m *MemoryStore) CreateCompany(_ context.Context, company *model.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(company.Email)
	if _, ok := m.byEmail[email]; ok {
		return ErrDuplicateEmail
	}
	if _, ok := m.bySlug[company.Slug]; ok {
		return ErrDuplicateSlug
	}
	m.companies[company.CompanyID] = cloneCompany(company)
	m.bySlug[company.Slug] = company.CompanyID
	m.byEmail[email] = company.CompanyID
	return nil
}

func (m *MemoryStore) GetCompanyByID(_ context.Context, id string) (*model.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneCompany(c), nil
}

func (m *MemoryStore) GetCompanyBySlug(ctx context.Context, slug string) (*model.Company, error) {
	m.mu.RLock()
	id, ok := m.bySlug[slug]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return m.GetCompanyByID(ctx, id)
}

func (m *MemoryStore) GetCompanyByEmail(ctx context.Context, email string) (*model.Company, error) {
	m.mu.RLock()
	id, ok := m.byEmail[strings.ToLower(email)]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return m.GetCompanyByID(ctx, id)
}

func (m *MemoryStore) SlugExists(_ context.Context, slug string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.bySlug[slug]
	return ok, nil
}

func (m *MemoryStore) UpdateCompany(_ context.Context, id string, patch model.CompanyPatch) (*model.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(c)
	return cloneCompany(c), nil
}

func (m *MemoryStore) CreateCandidate(_ context.Context, candidate *model.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := *candidate
	m.candidates[c.CandidateID] = &c
	m.order = append(m.order, c.CandidateID)
	return nil
}

func (m *MemoryStore) GetCandidateByID(_ context.Context, id string) (*model.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.candidates[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *c
	return &out, nil
}

func (m *MemoryStore) ListCandidatesByCompany(_ context.Context, companyID string) ([]model.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Candidate, 0, 16)
	for _, id := range m.order {
		c, ok := m.candidates[id]
		if !ok || c.CompanyID != companyID {
			continue
		}
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppliedAt.After(out[j].AppliedAt)
	})
	return out, nil
}

func (m *MemoryStore) CountCandidatesByStatus(_ context.Context, companyID string) (map[model.CandidateStatus]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[model.CandidateStatus]int, len(model.Statuses))
	for _, c := range m.candidates {
		if c.CompanyID == companyID {
			out[c.Status]++
		}
	}
	return out, nil
}

func (m *MemoryStore) UpdateCandidateStatus(_ context.Context, id string, status model.CandidateStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.candidates[id]
	if !ok {
		return ErrNotFound
	}
	c.Status = status
	return nil
}

func (m *MemoryStore) UpdateCandidateNotes(_ context.Context, id string, notes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.candidates[id]
	if !ok {
		return ErrNotFound
	}
	c.Notes = notes
	return nil
}

func (m *MemoryStore) DeleteCandidate(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.candidates[id]; !ok {
		return ErrNotFound
	}
	delete(m.candidates, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored candidates.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.candidates)
}
