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

	"github.com/societyhub/society-api/internal/core/domain"
	"github.com/societyhub/society-api/internal/core/ports"
)

const collectionComplaints = "complaints"

type ComplaintRepository struct {
	col *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{col: db.Collection(collectionComplaints)}
}

type complaintDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Reference   string             `bson:"reference"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Status      string             `bson:"status"`
	RaisedBy    string             `bson:"raised_by"`
	AssignedTo  string             `bson:"assigned_to,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *complaintDocument) toDomain() *domain.Complaint {
	return &domain.Complaint{
		ID:          d.ID.Hex(),
		Reference:   d.Reference,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Status:      domain.ComplaintStatus(d.Status),
		RaisedBy:    d.RaisedBy,
		AssignedTo:  d.AssignedTo,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := complaintDocument{
		Reference:   c.Reference,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Status:      string(c.Status),
		RaisedBy:    c.RaisedBy,
		AssignedTo:  c.AssignedTo,
		CreatedAt:   c.CreatedAt.UTC(),
		UpdatedAt:   c.UpdatedAt.UTC(),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert complaint: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc complaintDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns matching complaints, newest first.
func (r *ComplaintRepository) List(ctx context.Context, f ports.ComplaintFilter) ([]*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.RaisedBy != "" {
		filter["raised_by"] = f.RaisedBy
	}
	if f.AssignedTo != "" {
		filter["assigned_to"] = f.AssignedTo
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []complaintDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode complaints: %w", err)
	}
	out := make([]*domain.Complaint, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// SetStatus applies the transition only if the stored status is still from,
// so two concurrent updates cannot both move the same complaint.
func (r *ComplaintRepository) SetStatus(ctx context.Context, id string, from, to domain.ComplaintStatus, assignee string) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"status": string(to), "updated_at": time.Now().UTC()}
	if assignee != "" {
		set["assigned_to"] = assignee
	}

	var doc complaintDocument
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "status": string(from)},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update complaint: %w", err)
	}

	n, countErr := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if countErr != nil {
		return nil, fmt.Errorf("update complaint: %w", countErr)
	}
	if n == 0 {
		return nil, domain.ErrComplaintNotFound
	}
	return nil, domain.ErrInvalidTransition
}

func (r *ComplaintRepository) Delete(ctx context.Context, id string, status domain.ComplaintStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid}
	if status != "" {
		filter["status"] = string(status)
	}

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete complaint: %w", err)
	}
	if res.DeletedCount > 0 {
		return nil
	}
	if status == "" {
		return domain.ErrComplaintNotFound
	}

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete complaint: %w", err)
	}
	if n == 0 {
		return domain.ErrComplaintNotFound
	}
	return domain.ErrInvalidTransition
}

func (r *ComplaintRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "raised_by", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "assigned_to", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
