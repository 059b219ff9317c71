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

type SkillRepository struct {
	coll *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{coll: db.Collection(collectionSkills)}
}

type skillDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *skillDocument) toDomain() *domain.Skill {
	return &domain.Skill{ID: d.ID.Hex(), Name: d.Name, CreatedAt: d.CreatedAt.UTC()}
}

func (r *SkillRepository) FindByName(ctx context.Context, name string) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc skillDocument
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}
	return doc.toDomain(), nil
}

// Create inserts a skill. A concurrent insert of the same name trips the unique
// index and is reported as domain.ErrSkillExists.
func (r *SkillRepository) Create(ctx context.Context, name string) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := skillDocument{ID: primitive.NewObjectID(), Name: name, CreatedAt: time.Now().UTC()}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSkillExists
		}
		return nil, fmt.Errorf("insert skill: %w", err)
	}
	return doc.toDomain(), nil
}
