package mongo

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartjob/job-board/internal/core/domain"
	"github.com/smartjob/job-board/internal/core/service"
)

// newTestDB connects to the server named by MONGO_URI and returns a fresh database
// with indexes in place. The database is dropped when the test ends.
func newTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx := context.Background()

	client, db, err := Connect(ctx, Config{
		URI:      uri,
		Database: fmt.Sprintf("job_board_test_%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	require.NoError(t, EnsureIndexes(ctx, db))
	// Indexes are idempotent.
	require.NoError(t, EnsureIndexes(ctx, db))
	return db
}

func TestIdentityRepository(t *testing.T) {
	users := NewIdentityRepository(newTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	created, err := users.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "digest", Role: domain.RoleUser, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = users.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "other", Role: domain.RoleAdmin})
	require.ErrorIs(t, err, domain.ErrUserExists)

	// Handles are matched exactly.
	_, err = users.Create(ctx, &domain.User{Email: "A@x.com", PasswordHash: "digest", Role: domain.RoleUser})
	require.NoError(t, err)

	found, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)
	require.Equal(t, "digest", found.PasswordHash)
	require.Equal(t, domain.RoleUser, found.Role)

	byID, err := users.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", byID.Email)

	_, err = users.FindByEmail(ctx, "ghost@x.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = users.FindByID(ctx, "not-an-object-id")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSkillRepository(t *testing.T) {
	skills := NewSkillRepository(newTestDB(t))
	ctx := context.Background()

	_, err := skills.FindByName(ctx, "Go")
	require.ErrorIs(t, err, domain.ErrSkillNotFound)

	golang, err := skills.Create(ctx, "Go")
	require.NoError(t, err)
	require.NotEmpty(t, golang.ID)

	_, err = skills.Create(ctx, "Go")
	require.ErrorIs(t, err, domain.ErrSkillExists)

	lower, err := skills.Create(ctx, "go")
	require.NoError(t, err)
	require.NotEqual(t, golang.ID, lower.ID)

	found, err := skills.FindByName(ctx, "Go")
	require.NoError(t, err)
	require.Equal(t, golang.ID, found.ID)
}

func TestJobRepository(t *testing.T) {
	db := newTestDB(t)
	skills := NewSkillRepository(db)
	jobs := NewJobRepository(db)
	ctx := context.Background()

	rust, err := skills.Create(ctx, "Rust")
	require.NoError(t, err)
	golang, err := skills.Create(ctx, "Go")
	require.NoError(t, err)

	base := time.Now().UTC()
	older := &domain.Job{Title: "Backend", Company: "Acme", PostedAt: base.Add(-time.Hour), Skills: []domain.SkillRef{rust.Ref(), golang.Ref()}}
	newer := &domain.Job{Title: "Platform", Company: "Acme", PostedAt: base}
	require.NoError(t, jobs.Create(ctx, older))
	require.NoError(t, jobs.Create(ctx, newer))

	got, err := jobs.FindByID(ctx, older.ID)
	require.NoError(t, err)
	require.Equal(t, "Backend", got.Title)
	require.Equal(t, []domain.SkillRef{rust.Ref(), golang.Ref()}, got.Skills)

	list, err := jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, newer.ID, list[0].ID)
	require.Equal(t, older.ID, list[1].ID)

	_, err = jobs.FindByID(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestProfileRepository(t *testing.T) {
	db := newTestDB(t)
	skills := NewSkillRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	golang, err := skills.Create(ctx, "Go")
	require.NoError(t, err)

	p := &domain.Profile{UserID: "user-1", Name: "Ada", YearsExperience: 4, Skills: []domain.SkillRef{golang.Ref()}}
	require.NoError(t, profiles.Create(ctx, p))
	require.NotEmpty(t, p.ID)

	err = profiles.Create(ctx, &domain.Profile{UserID: "user-1", Name: "again"})
	require.ErrorIs(t, err, domain.ErrProfileExists)

	byUser, err := profiles.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, p.ID, byUser.ID)
	require.Equal(t, []domain.SkillRef{golang.Ref()}, byUser.Skills)

	_, err = profiles.FindByID(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
	_, err = profiles.FindByUserID(ctx, "user-2")
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestSkillRegistry_ConcurrentResolveAgainstMongo(t *testing.T) {
	db := newTestDB(t)
	registry := service.NewSkillRegistry(NewSkillRepository(db), nil, zerolog.Nop())
	ctx := context.Background()

	const callers = 10
	results := make([][]domain.SkillRef, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = registry.ResolveOrCreate(ctx, []string{"Go", "Go", "Rust"})
		}(i)
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		require.Equal(t, results[0], results[i])
	}
	require.Len(t, results[0], 2)

	count, err := db.Collection(collectionSkills).CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestPinger(t *testing.T) {
	p := NewPinger(newTestDB(t))
	require.Equal(t, "mongodb", p.Name())
	require.NoError(t, p.Ping(context.Background()))
}
