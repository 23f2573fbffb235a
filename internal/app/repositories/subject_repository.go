package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/db"
)

type PostgresSubjectRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

func NewSubjectRepository(pg *db.PostgresDB) *PostgresSubjectRepository {
	return &PostgresSubjectRepository{db: pg, sb: statementBuilder()}
}

func (r *PostgresSubjectRepository) List(ctx context.Context) ([]*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "block").
		From("subjects").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Block); err != nil {
			return nil, fmt.Errorf("error scanning subject: %w", err)
		}
		subjects = append(subjects, &s)
	}
	return subjects, rows.Err()
}

// Upsert inserts a subject or refreshes the one with the same name.
func (r *PostgresSubjectRepository) Upsert(ctx context.Context, subject *models.Subject) error {
	sql, args, err := r.sb.Insert("subjects").
		Columns("name", "description", "block").
		Values(subject.Name, subject.Description, subject.Block).
		Suffix("ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description, block = EXCLUDED.block RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert subject query: %w", err)
	}
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&subject.ID); err != nil {
		return fmt.Errorf("error upserting subject: %w", err)
	}
	return nil
}
