package mongodb

import (
	"context"

	apperrors "snapfeed/internal/shared/errors"
	"snapfeed/internal/social/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSavedPostRepository implements SavedPostRepository using MongoDB.
type MongoSavedPostRepository struct {
	collection *mongo.Collection
}

// NewMongoSavedPostRepository creates a new MongoDB saved-post repository.
func NewMongoSavedPostRepository(db *mongo.Database, collectionName string) (*MongoSavedPostRepository, error) {
	repo := &MongoSavedPostRepository{
		collection: db.Collection(collectionName),
	}

	// One save per (user, post) pair
	pairIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "postId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.collection.Indexes().CreateOne(context.Background(), pairIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// Create inserts a new saved-post join record.
func (r *MongoSavedPostRepository) Create(ctx context.Context, save *model.SavedPost) error {
	_, err := r.collection.InsertOne(ctx, save)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// Delete removes a join record by ID. The referenced post is untouched.
func (r *MongoSavedPostRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrSaveNotFound
	}
	return nil
}

// ListByUser returns a user's saves, newest first.
func (r *MongoSavedPostRepository) ListByUser(ctx context.Context, userID string) ([]*model.SavedPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var saves []*model.SavedPost
	if err := cursor.All(ctx, &saves); err != nil {
		return nil, err
	}
	return saves, nil
}

// GetByUserAndPost returns the join record for a (user, post) pair.
func (r *MongoSavedPostRepository) GetByUserAndPost(ctx context.Context, userID, postID string) (*model.SavedPost, error) {
	var save model.SavedPost
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "postId": postID}).Decode(&save)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrSaveNotFound
		}
		return nil, err
	}
	return &save, nil
}
