package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartjob/job-board/internal/core/domain"
)

// listLimit caps GET /api/jobs until pagination exists.
const listLimit = 200

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(collectionJobs)}
}

// jobDocument embeds skill references. Skills are immutable once created, so the
// copied names never go stale.
type jobDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Company       string             `bson:"company"`
	Description   string             `bson:"description"`
	MinExperience int                `bson:"min_experience"`
	Location      string             `bson:"location"`
	SalaryMin     int                `bson:"salary_min"`
	SalaryMax     int                `bson:"salary_max"`
	PostedAt      time.Time          `bson:"posted_at"`
	PostedBy      string             `bson:"posted_by,omitempty"`
	Skills        []domain.SkillRef  `bson:"skills"`
}

func (d *jobDocument) toDomain() *domain.Job {
	skills := d.Skills
	if skills == nil {
		skills = []domain.SkillRef{}
	}
	return &domain.Job{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Company:       d.Company,
		Description:   d.Description,
		MinExperience: d.MinExperience,
		Location:      d.Location,
		SalaryMin:     d.SalaryMin,
		SalaryMax:     d.SalaryMax,
		PostedAt:      d.PostedAt.UTC(),
		PostedBy:      d.PostedBy,
		Skills:        skills,
	}
}

// Create inserts job and assigns its ID.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := jobDocument{
		ID:            primitive.NewObjectID(),
		Title:         job.Title,
		Company:       job.Company,
		Description:   job.Description,
		MinExperience: job.MinExperience,
		Location:      job.Location,
		SalaryMin:     job.SalaryMin,
		SalaryMax:     job.SalaryMax,
		PostedAt:      job.PostedAt,
		PostedBy:      job.PostedBy,
		Skills:        job.Skills,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	job.ID = doc.ID.Hex()
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *JobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}}).SetLimit(listLimit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var docs []jobDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}

	jobs := make([]*domain.Job, 0, len(docs))
	for i := range docs {
		jobs = append(jobs, docs[i].toDomain())
	}
	return jobs, nil
}
