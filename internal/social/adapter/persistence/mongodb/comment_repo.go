package mongodb

import (
	"context"

	apperrors "snapfeed/internal/shared/errors"
	"snapfeed/internal/social/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCommentRepository implements CommentRepository using MongoDB. The
// client-generated uuid doubles as the document key.
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoDB comment repository.
func NewMongoCommentRepository(db *mongo.Database, collectionName string) (*MongoCommentRepository, error) {
	repo := &MongoCommentRepository{
		collection: db.Collection(collectionName),
	}

	postIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "postId", Value: 1}, {Key: "created_at", Value: -1}},
	}
	if _, err := repo.collection.Indexes().CreateOne(context.Background(), postIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// Create inserts a new comment document.
func (r *MongoCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	_, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// GetByID retrieves a comment by ID.
func (r *MongoCommentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// List returns every comment across all posts, newest first.
func (r *MongoCommentRepository) List(ctx context.Context) ([]*model.Comment, error) {
	return r.find(ctx, bson.M{})
}

// ListByPost returns the comments on a single post, newest first.
func (r *MongoCommentRepository) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	return r.find(ctx, bson.M{"postId": postID})
}

// UpdateText persists only the commentText field and returns the stored
// record after the update.
func (r *MongoCommentRepository) UpdateText(ctx context.Context, id, text string) (*model.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var comment model.Comment
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"commentText": text}},
		opts,
	).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment by ID.
func (r *MongoCommentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}

func (r *MongoCommentRepository) find(ctx context.Context, filter bson.M) ([]*model.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []*model.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
