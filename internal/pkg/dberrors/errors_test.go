package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	studentNumberTaken := &pgconn.PgError{Code: "23505", ConstraintName: "students_student_number_key"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", studentNumberTaken, true},
		{"wrapped", fmt.Errorf("insert student: %w", studentNumberTaken), true},
		{"other constraint", &pgconn.PgError{Code: "23505", ConstraintName: "tutors_student_id_key"}, false},
		{"other code", &pgconn.PgError{Code: "23503", ConstraintName: "students_student_number_key"}, false},
		{"not a pg error", errors.New("connection reset"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateConstraintError(tt.err, "students_student_number_key"))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("tx: %w", &pgconn.PgError{Code: "23505", ConstraintName: "subjects_name_key"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
