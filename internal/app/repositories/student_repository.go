package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/db"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/dberrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

const studentNumberConstraint = "students_student_number_key"

var studentColumns = []string{
	"id", "student_number", "name", "password_hash", "email",
	"hobbies", "destination", "credits", "created_at",
}

// PostgresStudentRepository handles student database operations
type PostgresStudentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new PostgresStudentRepository
func NewStudentRepository(pg *db.PostgresDB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: pg, sb: statementBuilder()}
}

// Register inserts the student and, when tutor is non-nil, its tutor profile.
func (r *PostgresStudentRepository) Register(ctx context.Context, student *models.Student, tutor *models.Tutor) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		exists, err := r.exists(ctx, tx, student.StudentNumber)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrDuplicateStudent
		}

		sql, args, err := r.sb.Insert("students").
			Columns("student_number", "name", "password_hash", "email", "hobbies", "destination", "credits").
			Values(student.StudentNumber, student.Name, student.PasswordHash, student.Email,
				student.Hobbies, student.Destination, student.Credits).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create student query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt); err != nil {
			if dberrors.IsDuplicateConstraintError(err, studentNumberConstraint) {
				return apperrors.ErrDuplicateStudent
			}
			return fmt.Errorf("error creating student: %w", err)
		}

		if tutor == nil {
			return nil
		}
		tutor.StudentID = student.ID
		sql, args, err = r.sb.Insert("tutors").
			Columns("student_id", "subjects", "year").
			Values(tutor.StudentID, tutor.Subjects, tutor.Year).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create tutor query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&tutor.ID); err != nil {
			return fmt.Errorf("error creating tutor: %w", err)
		}
		return nil
	})

	switch {
	case errors.Is(err, apperrors.ErrDuplicateStudent):
		logger.Warn().Str("studentNumber", student.StudentNumber).Msg("Attempted to register duplicate student number")
		return err
	case err != nil:
		logger.Error().Err(err).Str("studentNumber", student.StudentNumber).Msg("Error registering student")
		return err
	}

	logger.Info().Int64("studentID", student.ID).Bool("tutor", tutor != nil).Msg("Student registered")
	return nil
}

func (r *PostgresStudentRepository) exists(ctx context.Context, q querier, studentNumber string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{"student_number": studentNumber}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build student exists query: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking student number: %w", err)
	}
	return exists, nil
}

// GetByStudentNumber retrieves a student by its external number
func (r *PostgresStudentRepository) GetByStudentNumber(ctx context.Context, studentNumber string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_number": studentNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var s models.Student
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.StudentNumber, &s.Name, &s.PasswordHash, &s.Email,
		&s.Hobbies, &s.Destination, &s.Credits, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUnknownStudent
		}
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &s, nil
}
