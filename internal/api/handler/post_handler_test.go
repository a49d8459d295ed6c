package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/quickpost/quickpost-api/internal/api/middleware"
	"github.com/quickpost/quickpost-api/internal/core/domain"
	"github.com/quickpost/quickpost-api/internal/core/ports"
)

type stubPostService struct {
	createFn func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error)
	listFn   func(ctx context.Context) ([]domain.Post, error)
	getFn    func(ctx context.Context, id string) (*domain.Post, error)
	updateFn func(ctx context.Context, id, actorID string, input ports.UpdatePostInput) (*domain.Post, error)
	deleteFn func(ctx context.Context, id, actorID string) error
}

func (s *stubPostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, input)
}

func (s *stubPostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.listFn(ctx)
}

func (s *stubPostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.getFn(ctx, id)
}

func (s *stubPostService) Update(ctx context.Context, id, actorID string, input ports.UpdatePostInput) (*domain.Post, error) {
	return s.updateFn(ctx, id, actorID, input)
}

func (s *stubPostService) Delete(ctx context.Context, id, actorID string) error {
	return s.deleteFn(ctx, id, actorID)
}

func TestPostHandler_List_EmptyArray(t *testing.T) {
	stub := &stubPostService{
		listFn: func(ctx context.Context) ([]domain.Post, error) {
			return []domain.Post{}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec, _ := newTestContext(t, http.MethodGet, "/post", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestPostHandler_Create_UsesAuthedSender(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			if input.Sender != "user-1" {
				t.Fatalf("sender must come from the access token, got %s", input.Sender)
			}
			return &domain.Post{ID: "post-1", Sender: input.Sender, Content: input.Content}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec, _ := newTestContext(t, http.MethodPost, "/post", `{"content":"hello","sender":"forged-id"}`)
	c.Set(middleware.UserIDKey, "user-1")
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["_id"] != "post-1" || resp["sender"] != "user-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPostHandler_Create_NoIdentity(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec, e := newTestContext(t, http.MethodPost, "/post", `{"content":"hello"}`)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPostHandler_Update_OwnershipErrorPropagates(t *testing.T) {
	stub := &stubPostService{
		updateFn: func(ctx context.Context, id, actorID string, input ports.UpdatePostInput) (*domain.Post, error) {
			return nil, domain.ErrNotOwner
		},
	}
	h := NewPostHandler(stub)

	c, _, _ := newTestContext(t, http.MethodPut, "/post/post-1", `{"content":"hijack"}`)
	c.SetParamNames("id")
	c.SetParamValues("post-1")
	c.Set(middleware.UserIDKey, "user-2")

	err := h.Update(c)
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner to propagate, got %v", err)
	}
}
