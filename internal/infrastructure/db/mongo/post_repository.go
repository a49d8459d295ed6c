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

const postCollection = "posts"

type MongoPostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{coll: db.Collection(postCollection)}
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Sender    string             `bson:"sender"`
	Title     string             `bson:"title,omitempty"`
	Content   string             `bson:"content"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *MongoPostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	doc := mongoPost{
		Sender:    post.Sender,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt.Unix(),
		UpdatedAt: post.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

// FindAll returns every post, newest first. An empty collection yields an
// empty slice, never nil, so handlers render [] rather than null.
func (r *MongoPostRepository) FindAll(ctx context.Context) ([]domain.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := make([]domain.Post, 0)
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, *mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *MongoPostRepository) Update(ctx context.Context, post *domain.Post) error {
	oid, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return domain.ErrPostNotFound
	}

	doc := mongoPost{
		ID:        oid,
		Sender:    post.Sender,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt.Unix(),
		UpdatedAt: post.UpdatedAt.Unix(),
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("replace post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (mp mongoPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:        mp.ID.Hex(),
		Sender:    mp.Sender,
		Title:     mp.Title,
		Content:   mp.Content,
		CreatedAt: unixToTime(mp.CreatedAt),
		UpdatedAt: unixToTime(mp.UpdatedAt),
	}
}
