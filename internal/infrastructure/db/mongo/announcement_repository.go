package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/societyhub/society-api/internal/core/domain"
)

const collectionAnnouncements = "announcements"

type AnnouncementRepository struct {
	col *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{col: db.Collection(collectionAnnouncements)}
}

type announcementDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	Author    string             `bson:"author"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *announcementDocument) toDomain() *domain.Announcement {
	return &domain.Announcement{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Body:      d.Body,
		Author:    d.Author,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := announcementDocument{Title: a.Title, Body: a.Body, Author: a.Author, CreatedAt: a.CreatedAt.UTC()}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert announcement: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *AnnouncementRepository) List(ctx context.Context, limit int64) ([]*domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []announcementDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode announcements: %w", err)
	}
	out := make([]*domain.Announcement, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAnnouncementNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAnnouncementNotFound
	}
	return nil
}

func (r *AnnouncementRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}})
	return err
}
