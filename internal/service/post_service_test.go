package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/events"
)

type fakePostRepo struct {
	posts map[string]*domain.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*domain.Post)}
}

func (f *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) Update(_ context.Context, post *domain.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id string) (*domain.Post, error) {
	if post, ok := f.posts[id]; ok {
		copied := *post
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePostRepo) GetAuthorID(_ context.Context, id string) (string, error) {
	if post, ok := f.posts[id]; ok {
		return post.AuthorID, nil
	}
	return "", pgx.ErrNoRows
}

func (f *fakePostRepo) List(_ context.Context) ([]domain.Post, error) {
	posts := make([]domain.Post, 0, len(f.posts))
	for _, post := range f.posts {
		posts = append(posts, *post)
	}
	return posts, nil
}

func (f *fakePostRepo) ListByAuthor(_ context.Context, authorID string) ([]domain.Post, error) {
	var posts []domain.Post
	for _, post := range f.posts {
		if post.AuthorID == authorID {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

func (f *fakePostRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.posts, id)
	return nil
}

func TestPostLifecycle(t *testing.T) {
	t.Parallel()

	repo := newFakePostRepo()
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.EventType
	for _, eventType := range []events.EventType{events.EventPostCreated, events.EventPostUpdated, events.EventPostDeleted} {
		et := eventType
		dispatcher.Subscribe(et, func(_ context.Context, event events.Event) error {
			published = append(published, event.Type)
			return nil
		})
	}

	svc := NewPostService(repo, dispatcher, nil)
	ctx := context.Background()
	author := &auth.Principal{UserID: "user-1", Role: domain.RoleUser}

	post, err := svc.Create(ctx, author, PostInput{Title: "first", Body: "hello"})
	require.NoError(t, err)
	require.Equal(t, "user-1", post.AuthorID)

	ownerID, err := svc.AuthorID(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, "user-1", ownerID)

	updated, err := svc.Update(ctx, author, post.ID, PostInput{Title: "edited", Body: "hello"})
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Title)

	mine, err := svc.ListByAuthor(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, svc.Delete(ctx, author, post.ID))
	_, err = svc.GetByID(ctx, post.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	require.Equal(t, []events.EventType{
		events.EventPostCreated,
		events.EventPostUpdated,
		events.EventPostDeleted,
	}, published)
}

func TestPostListWithoutCache(t *testing.T) {
	t.Parallel()

	repo := newFakePostRepo()
	svc := NewPostService(repo, events.NewInMemoryDispatcher(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, &auth.Principal{UserID: "user-1", Role: domain.RoleUser}, PostInput{Title: "a"})
	require.NoError(t, err)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
}
