package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartjob/job-board/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Identity store
// ---------------------------------------------------------------------------

type stubIdentityRepo struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	findErr error
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubIdentityRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("user-%d", len(r.byEmail)+1)
	r.byEmail[stored.Email] = stored
	return cloneUser(stored), nil
}

func (r *stubIdentityRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubIdentityRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// ---------------------------------------------------------------------------
// Skill store with a uniqueness constraint on name
// ---------------------------------------------------------------------------

type stubSkillRepo struct {
	mu          sync.Mutex
	byName      map[string]*domain.Skill
	seq         int
	findCalls   int
	createCalls int

	// loseRace makes the first Create of a name fail as if another writer had
	// inserted it a moment earlier.
	loseRace map[string]bool
	// phantom makes every Create conflict without the record ever becoming visible.
	phantom   bool
	findErr   error
	createErr error
}

func newStubSkillRepo() *stubSkillRepo {
	return &stubSkillRepo{byName: make(map[string]*domain.Skill), loseRace: make(map[string]bool)}
}

func (r *stubSkillRepo) insertLocked(name string) *domain.Skill {
	r.seq++
	s := &domain.Skill{ID: fmt.Sprintf("skill-%d", r.seq), Name: name, CreatedAt: time.Now().UTC()}
	r.byName[name] = s
	return s
}

func (r *stubSkillRepo) FindByName(_ context.Context, name string) (*domain.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	s, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrSkillNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSkillRepo) Create(_ context.Context, name string) (*domain.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.phantom {
		return nil, domain.ErrSkillExists
	}
	if r.loseRace[name] {
		delete(r.loseRace, name)
		r.insertLocked(name)
		return nil, domain.ErrSkillExists
	}
	if _, exists := r.byName[name]; exists {
		return nil, domain.ErrSkillExists
	}
	clone := *r.insertLocked(name)
	return &clone, nil
}

func (r *stubSkillRepo) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.byName))
	for n := range r.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

type stubSkillCache struct {
	mu     sync.Mutex
	byName map[string]*domain.Skill
	getErr error
	putErr error
}

func newStubSkillCache() *stubSkillCache {
	return &stubSkillCache{byName: make(map[string]*domain.Skill)}
}

func (c *stubSkillCache) Get(_ context.Context, name string) (*domain.Skill, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.byName[name], nil
}

func (c *stubSkillCache) Put(_ context.Context, s *domain.Skill) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.putErr != nil {
		return c.putErr
	}
	clone := *s
	c.byName[s.Name] = &clone
	return nil
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

type stubJobRepo struct {
	jobs      []*domain.Job
	createErr error
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) error {
	if r.createErr != nil {
		return r.createErr
	}
	job.ID = fmt.Sprintf("job-%d", len(r.jobs)+1)
	r.jobs = append(r.jobs, job)
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) List(_ context.Context) ([]*domain.Job, error) {
	out := make([]*domain.Job, 0, len(r.jobs))
	for i := len(r.jobs) - 1; i >= 0; i-- {
		out = append(out, r.jobs[i])
	}
	return out, nil
}

type stubProfileRepo struct {
	profiles []*domain.Profile
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	for _, existing := range r.profiles {
		if existing.UserID == p.UserID {
			return domain.ErrProfileExists
		}
	}
	p.ID = fmt.Sprintf("profile-%d", len(r.profiles)+1)
	r.profiles = append(r.profiles, p)
	return nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}
