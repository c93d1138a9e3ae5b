package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

type ReviewRepository struct {
	col      *mongo.Collection
	comments *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{
		col:      db.Collection(collectionReviews),
		comments: db.Collection(collectionComments),
	}
}

type mongoReview struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Rating    int                `bson:"rating"`
	UserID    primitive.ObjectID `bson:"user_id"`
	ItemID    primitive.ObjectID `bson:"item_id"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`

	// Author is only present on documents produced by withAuthor.
	Author *mongoUser `bson:"author,omitempty"`
}

func (mr mongoReview) toDomain() *domain.Review {
	r := &domain.Review{
		ID:        mr.ID.Hex(),
		Content:   mr.Content,
		Rating:    mr.Rating,
		UserID:    mr.UserID.Hex(),
		ItemID:    mr.ItemID.Hex(),
		CreatedAt: mr.CreatedAt.UTC(),
		UpdatedAt: mr.UpdatedAt.UTC(),
	}
	if mr.Author != nil {
		r.Author = &domain.Author{ID: mr.Author.ID.Hex(), Username: mr.Author.Username}
	}
	return r
}

// withAuthor builds an aggregation that matches reviews and joins the author.
func withAuthor(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionUsers,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$author", "preserveNullAndEmptyArrays": true}}},
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	userID, ok := objectID(review.UserID)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	itemID, ok := objectID(review.ItemID)
	if !ok {
		return nil, domain.ErrItemNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReview{
		Content:   review.Content,
		Rating:    review.Rating,
		UserID:    userID,
		ItemID:    itemID,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrReviewNotFound
	}

	reviews, err := r.aggregate(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, domain.ErrReviewNotFound
	}
	return reviews[0], nil
}

// ListByItem returns the item's reviews oldest first, each with its author.
func (r *ReviewRepository) ListByItem(ctx context.Context, itemID string) ([]*domain.Review, error) {
	oid, ok := objectID(itemID)
	if !ok {
		return []*domain.Review{}, nil
	}
	return r.aggregate(ctx, bson.M{"item_id": oid})
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	oid, ok := objectID(review.ID)
	if !ok {
		return nil, domain.ErrReviewNotFound
	}

	updateCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(updateCtx, oid, bson.M{"$set": bson.M{
		"content":    review.Content,
		"rating":     review.Rating,
		"updated_at": review.UpdatedAt,
	}})
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrReviewNotFound
	}
	return r.FindByID(ctx, review.ID)
}

// Delete removes the review and then its comments. The two writes are not
// atomic; a failure between them leaves orphaned comments that no route can
// reach.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrReviewNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReviewNotFound
	}

	if _, err := r.comments.DeleteMany(ctx, bson.M{"review_id": oid}); err != nil {
		return fmt.Errorf("delete review comments: %w", err)
	}
	return nil
}

func (r *ReviewRepository) aggregate(ctx context.Context, match bson.M) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, withAuthor(match))
	if err != nil {
		return nil, fmt.Errorf("aggregate reviews: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoReview
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	reviews := make([]*domain.Review, len(docs))
	for i, d := range docs {
		reviews[i] = d.toDomain()
	}
	return reviews, nil
}
