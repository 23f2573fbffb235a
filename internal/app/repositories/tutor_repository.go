package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/db"
)

type PostgresTutorRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

func NewTutorRepository(pg *db.PostgresDB) *PostgresTutorRepository {
	return &PostgresTutorRepository{db: pg, sb: statementBuilder()}
}

// List returns all tutors joined with their student's name and email.
func (r *PostgresTutorRepository) List(ctx context.Context) ([]*models.Tutor, error) {
	sql, args, err := r.sb.Select("t.id", "t.student_id", "t.subjects", "t.year",
		"s.student_number", "s.name", "s.email").
		From("tutors t").
		Join("students s ON s.id = t.student_id").
		OrderBy("s.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list tutors query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing tutors: %w", err)
	}
	defer rows.Close()

	var tutors []*models.Tutor
	for rows.Next() {
		t := &models.Tutor{Student: &models.Student{}}
		if err := rows.Scan(&t.ID, &t.StudentID, &t.Subjects, &t.Year,
			&t.Student.StudentNumber, &t.Student.Name, &t.Student.Email); err != nil {
			return nil, fmt.Errorf("error scanning tutor: %w", err)
		}
		t.Student.ID = t.StudentID
		tutors = append(tutors, t)
	}
	return tutors, rows.Err()
}

// GetByStudentID returns ErrNotFound for students without a tutor profile.
func (r *PostgresTutorRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.Tutor, error) {
	sql, args, err := r.sb.Select("id", "student_id", "subjects", "year").
		From("tutors").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get tutor query: %w", err)
	}

	var t models.Tutor
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.StudentID, &t.Subjects, &t.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving tutor: %w", err)
	}
	return &t, nil
}
