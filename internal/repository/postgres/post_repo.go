package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/inkwell-blog/inkwell/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID, publicOnly bool) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.author_id, u.username, p.title, p.body, p.status, p.created_at
		FROM posts p
		JOIN users u ON p.author_id = u.id
		WHERE p.author_id = $1`
	if publicOnly {
		query += ` AND p.status = 'Public'`
	}
	query += ` ORDER BY p.created_at DESC`

	return r.listPosts(ctx, query, authorID)
}

func (r *PostRepo) ListLikedBy(ctx context.Context, userID uuid.UUID, publicOnly bool) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.author_id, u.username, p.title, p.body, p.status, p.created_at
		FROM posts p
		JOIN users u ON p.author_id = u.id
		JOIN post_likes l ON l.post_id = p.id
		WHERE l.user_id = $1`
	if publicOnly {
		query += ` AND p.status = 'Public'`
	}
	query += ` ORDER BY p.created_at DESC`

	return r.listPosts(ctx, query, userID)
}

func (r *PostRepo) listPosts(ctx context.Context, query string, arg any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.AuthorID, &p.AuthorUsername,
			&p.Title, &p.Body, &p.Status, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
