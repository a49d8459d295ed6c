package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

const commentCollection = "comments"

type MongoCommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{coll: db.Collection(commentCollection)}
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PostID    string             `bson:"post_id"`
	Sender    string             `bson:"sender"`
	Content   string             `bson:"content"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *MongoCommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	doc := mongoComment{
		PostID:    comment.PostID,
		Sender:    comment.Sender,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Unix(),
		UpdatedAt: comment.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	var mc mongoComment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *MongoCommentRepository) FindByPostID(ctx context.Context, postID string) ([]domain.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find comments: %w", err)
	}
	defer cur.Close(ctx)

	comments := make([]domain.Comment, 0)
	for cur.Next(ctx) {
		var mc mongoComment
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, *mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

func (r *MongoCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	oid, err := primitive.ObjectIDFromHex(comment.ID)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	doc := mongoComment{
		ID:        oid,
		PostID:    comment.PostID,
		Sender:    comment.Sender,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Unix(),
		UpdatedAt: comment.UpdatedAt.Unix(),
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("replace comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *MongoCommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (mc mongoComment) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        mc.ID.Hex(),
		PostID:    mc.PostID,
		Sender:    mc.Sender,
		Content:   mc.Content,
		CreatedAt: unixToTime(mc.CreatedAt),
		UpdatedAt: unixToTime(mc.UpdatedAt),
	}
}
