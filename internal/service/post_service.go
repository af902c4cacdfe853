package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/events"
	"github.com/spec-kit/post-service/internal/repository"
)

// PostService coordinates post workflows.
type PostService struct {
	posts      repository.PostRepository
	dispatcher events.Dispatcher
	cache      *PostCache
}

// PostInput describes create/update payloads.
type PostInput struct {
	Title string
	Body  string
}

// NewPostService constructs the service.
func NewPostService(posts repository.PostRepository, dispatcher events.Dispatcher, cache *PostCache) *PostService {
	return &PostService{posts: posts, dispatcher: dispatcher, cache: cache}
}

// Create stores a new post authored by the principal.
func (s *PostService) Create(ctx context.Context, principal *auth.Principal, input PostInput) (*domain.Post, error) {
	post := &domain.Post{
		ID:       uuid.NewString(),
		AuthorID: principal.UserID,
		Title:    input.Title,
		Body:     input.Body,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventPostCreated, post.ID, principal)
	return post, nil
}

// Update replaces the mutable fields of an existing post. Authorization
// (ownership or admin) has already happened at the route gate.
func (s *PostService) Update(ctx context.Context, principal *auth.Principal, postID string, input PostInput) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Title = input.Title
	post.Body = input.Body
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventPostUpdated, post.ID, principal)
	return post, nil
}

// GetByID returns a single post.
func (s *PostService) GetByID(ctx context.Context, postID string) (*domain.Post, error) {
	return s.posts.GetByID(ctx, postID)
}

// List returns all posts, served from cache when possible.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	if cached, ok := s.cache.GetList(ctx); ok {
		return cached, nil
	}
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(ctx, posts)
	return posts, nil
}

// ListByAuthor returns the posts owned by one author.
func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID)
}

// Delete removes a post.
func (s *PostService) Delete(ctx context.Context, principal *auth.Principal, postID string) error {
	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}
	s.publish(ctx, events.EventPostDeleted, postID, principal)
	return nil
}

// AuthorID resolves the owning identity of a post, for route guards.
func (s *PostService) AuthorID(ctx context.Context, postID string) (string, error) {
	return s.posts.GetAuthorID(ctx, postID)
}

func (s *PostService) publish(ctx context.Context, eventType events.EventType, postID string, principal *auth.Principal) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		PostID:    postID,
		Actor:     events.Actor{UserID: principal.UserID, Role: principal.Role},
		Timestamp: time.Now(),
	})
}
