package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/db"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

// StudentRepository persists students. Register writes the student and the
// optional tutor profile atomically and reports apperrors.ErrDuplicateStudent
// for a taken student number, including a lost race on the unique constraint.
type StudentRepository interface {
	Register(ctx context.Context, student *models.Student, tutor *models.Tutor) error
	GetByStudentNumber(ctx context.Context, studentNumber string) (*models.Student, error)
}

// IdeaRepository persists feedback. CreateForStudent resolves the author and
// inserts in one transaction, returning apperrors.ErrUnknownStudent when the
// number matches nobody.
type IdeaRepository interface {
	CreateForStudent(ctx context.Context, studentNumber, content string, at time.Time) (*models.Idea, error)
	ListNewestFirst(ctx context.Context) ([]*models.Idea, error)
}

type TutorRepository interface {
	List(ctx context.Context) ([]*models.Tutor, error)
	GetByStudentID(ctx context.Context, studentID int64) (*models.Tutor, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Product, error)
}

type SubjectRepository interface {
	List(ctx context.Context) ([]*models.Subject, error)
	Upsert(ctx context.Context, subject *models.Subject) error
}

// Repositories holds all the repository instances
type Repositories struct {
	Students StudentRepository
	Ideas    IdeaRepository
	Tutors   TutorRepository
	Products ProductRepository
	Subjects SubjectRepository

	// Ping reports store health.
	Ping func(ctx context.Context) error
}

// NewPostgresRepositories initializes all repositories on one pool
func NewPostgresRepositories(pg *db.PostgresDB) *Repositories {
	return &Repositories{
		Students: NewStudentRepository(pg),
		Ideas:    NewIdeaRepository(pg),
		Tutors:   NewTutorRepository(pg),
		Products: NewProductRepository(pg),
		Subjects: NewSubjectRepository(pg),
		Ping:     pg.Ping,
	}
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
