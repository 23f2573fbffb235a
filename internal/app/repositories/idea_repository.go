package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/db"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// PostgresIdeaRepository handles feedback rows
type PostgresIdeaRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

func NewIdeaRepository(pg *db.PostgresDB) *PostgresIdeaRepository {
	return &PostgresIdeaRepository{db: pg, sb: statementBuilder()}
}

// CreateForStudent resolves studentNumber and appends an idea stamped with at.
func (r *PostgresIdeaRepository) CreateForStudent(ctx context.Context, studentNumber, content string, at time.Time) (*models.Idea, error) {
	idea := &models.Idea{Content: content, Timestamp: at}

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Select("id").
			From("students").
			Where(squirrel.Eq{"student_number": studentNumber}).
			Limit(1).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build student lookup query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&idea.StudentID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrUnknownStudent
			}
			return fmt.Errorf("error resolving student: %w", err)
		}

		sql, args, err = r.sb.Insert("ideas").
			Columns("content", "created_at", "student_id").
			Values(idea.Content, idea.Timestamp, idea.StudentID).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create idea query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&idea.ID); err != nil {
			return fmt.Errorf("error creating idea: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idea, nil
}

// ListNewestFirst returns every idea in descending timestamp order.
func (r *PostgresIdeaRepository) ListNewestFirst(ctx context.Context) ([]*models.Idea, error) {
	sql, args, err := r.sb.Select("id", "content", "created_at", "student_id").
		From("ideas").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list ideas query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing ideas: %w", err)
	}
	defer rows.Close()

	var ideas []*models.Idea
	for rows.Next() {
		var idea models.Idea
		if err := rows.Scan(&idea.ID, &idea.Content, &idea.Timestamp, &idea.StudentID); err != nil {
			return nil, fmt.Errorf("error scanning idea: %w", err)
		}
		ideas = append(ideas, &idea)
	}
	return ideas, rows.Err()
}
