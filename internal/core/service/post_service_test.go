package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quickpost/quickpost-api/internal/core/domain"
	"github.com/quickpost/quickpost-api/internal/core/ports"
)

type stubPostRepo struct {
	seq   int
	posts map[string]*domain.Post
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.seq++
	clone := clonePost(post)
	clone.ID = fmt.Sprintf("post-%d", r.seq)
	r.posts[clone.ID] = clone
	return clonePost(clone), nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) FindAll(_ context.Context) ([]domain.Post, error) {
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *clonePost(p))
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return domain.ErrPostNotFound
	}
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func TestPostService_CreateAndGet(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Sender:  "user-1",
		Title:   "hello",
		Content: "first post",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.ID == "" || post.Sender != "user-1" {
		t.Fatalf("unexpected post: %+v", post)
	}

	got, err := svc.Get(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Content != "first post" {
		t.Fatalf("unexpected content: %s", got.Content)
	}
}

func TestPostService_Create_MissingContent(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreatePostInput{Sender: "user-1"}); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestPostService_List_EmptyIsNotNil(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", posts)
	}
}

func TestPostService_Update_OwnerOnly(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	post, _ := svc.Create(context.Background(), ports.CreatePostInput{Sender: "user-1", Content: "mine"})

	if _, err := svc.Update(context.Background(), post.ID, "user-2", ports.UpdatePostInput{Content: "hijack"}); err != domain.ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	// record must be unchanged after the rejected mutation
	stored, _ := repo.FindByID(context.Background(), post.ID)
	if stored.Content != "mine" {
		t.Fatalf("rejected update must not mutate the record: %s", stored.Content)
	}

	updated, err := svc.Update(context.Background(), post.ID, "user-1", ports.UpdatePostInput{Content: "edited"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("unexpected content: %s", updated.Content)
	}
}

func TestPostService_Update_NotFoundBeforeOwnership(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	// a non-owner probing a missing id learns only that it does not exist
	if _, err := svc.Update(context.Background(), "missing", "user-2", ports.UpdatePostInput{Content: "x"}); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Delete_OwnerOnly(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	post, _ := svc.Create(context.Background(), ports.CreatePostInput{Sender: "user-1", Content: "mine"})

	if err := svc.Delete(context.Background(), post.ID, "user-2"); err != domain.ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), post.ID); err != nil {
		t.Fatalf("post must survive a rejected delete: %v", err)
	}

	if err := svc.Delete(context.Background(), post.ID, "user-1"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), post.ID); err != domain.ErrPostNotFound {
		t.Fatalf("expected post gone, got %v", err)
	}
}
