package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FollowRepo struct {
	pool *pgxpool.Pool
}

func NewFollowRepo(pool *pgxpool.Pool) *FollowRepo {
	return &FollowRepo{pool: pool}
}

// Follow inserts the edge and bumps both follower counters inside a single
// transaction, so a half-applied edge is never visible. ON CONFLICT makes a
// repeat follow a no-op.
func (r *FollowRepo) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (follower_id, followee_id) DO NOTHING`,
		followerID, followeeID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 1 {
		if _, err := tx.Exec(ctx,
			`UPDATE users SET followers_count = followers_count + 1 WHERE id = $1`,
			followeeID,
		); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE users SET following_count = following_count + 1 WHERE id = $1`,
			followerID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *FollowRepo) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 1 {
		if _, err := tx.Exec(ctx,
			`UPDATE users SET followers_count = followers_count - 1 WHERE id = $1`,
			followeeID,
		); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE users SET following_count = following_count - 1 WHERE id = $1`,
			followerID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *FollowRepo) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`,
		followerID, followeeID,
	).Scan(&exists)
	return exists, err
}

func (r *FollowRepo) Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.listEdges(ctx,
		`SELECT follower_id FROM follows WHERE followee_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *FollowRepo) Following(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.listEdges(ctx,
		`SELECT followee_id FROM follows WHERE follower_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *FollowRepo) listEdges(ctx context.Context, query string, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
