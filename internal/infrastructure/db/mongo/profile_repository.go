package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartjob/job-board/internal/core/domain"
)

type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(collectionProfiles)}
}

type profileDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          string             `bson:"user_id"`
	Name            string             `bson:"name"`
	YearsExperience int                `bson:"years_experience"`
	Location        string             `bson:"location"`
	DesiredSalary   int                `bson:"desired_salary"`
	CreatedAt       time.Time          `bson:"created_at"`
	Skills          []domain.SkillRef  `bson:"skills"`
}

func (d *profileDocument) toDomain() *domain.Profile {
	skills := d.Skills
	if skills == nil {
		skills = []domain.SkillRef{}
	}
	return &domain.Profile{
		ID:              d.ID.Hex(),
		UserID:          d.UserID,
		Name:            d.Name,
		YearsExperience: d.YearsExperience,
		Location:        d.Location,
		DesiredSalary:   d.DesiredSalary,
		CreatedAt:       d.CreatedAt.UTC(),
		Skills:          skills,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := profileDocument{
		ID:              primitive.NewObjectID(),
		UserID:          profile.UserID,
		Name:            profile.Name,
		YearsExperience: profile.YearsExperience,
		Location:        profile.Location,
		DesiredSalary:   profile.DesiredSalary,
		CreatedAt:       profile.CreatedAt,
		Skills:          profile.Skills,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	profile.ID = doc.ID.Hex()
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *ProfileRepository) findOne(ctx context.Context, filter bson.M) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc profileDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return doc.toDomain(), nil
}
