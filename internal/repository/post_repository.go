package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/post-service/internal/domain"
)

// PostRepository defines persistence access for posts. GetAuthorID is
// the ownership lookup consulted by my-posts route guards.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	GetAuthorID(ctx context.Context, id string) (string, error)
	List(ctx context.Context) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository returns a Postgres-backed implementation.
func NewPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postRepository{pool: pool}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	const query = `
        INSERT INTO posts (id, author_id, title, body)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		post.ID,
		post.AuthorID,
		post.Title,
		post.Body,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	const query = `
        UPDATE posts SET title=$1, body=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		post.Title,
		post.Body,
		post.ID,
	).Scan(&post.UpdatedAt)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	const query = `
        SELECT id, author_id, title, body, created_at, updated_at
        FROM posts WHERE id=$1`

	var post domain.Post
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Body,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetAuthorID(ctx context.Context, id string) (string, error) {
	const query = `SELECT author_id FROM posts WHERE id=$1`

	var authorID string
	if err := r.pool.QueryRow(ctx, query, id).Scan(&authorID); err != nil {
		return "", err
	}
	return authorID, nil
}

func (r *postRepository) List(ctx context.Context) ([]domain.Post, error) {
	const query = `
        SELECT id, author_id, title, body, created_at, updated_at
        FROM posts ORDER BY created_at DESC`

	return r.queryMany(ctx, query)
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	const query = `
        SELECT id, author_id, title, body, created_at, updated_at
        FROM posts WHERE author_id=$1 ORDER BY created_at DESC`

	return r.queryMany(ctx, query, authorID)
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Body,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
