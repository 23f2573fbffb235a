// Package memory keeps every repository in process memory. It backs the
// "memory" database driver and the handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// DB is the shared table set. One mutex covers all tables so multi-row
// writes are atomic.
type DB struct {
	mutex    sync.RWMutex
	pk       int64
	students map[string]*models.Student // by student number
	tutors   map[int64]*models.Tutor    // by student id
	ideas    []*models.Idea
	products []*models.Product
	subjects map[string]*models.Subject // by name
}

// NewDB returns an empty store.
func NewDB() *DB {
	return &DB{
		students: make(map[string]*models.Student),
		tutors:   make(map[int64]*models.Tutor),
		subjects: make(map[string]*models.Subject),
	}
}

// NewRepositories wires every repository to one fresh DB.
func NewRepositories() (*repositories.Repositories, *DB) {
	db := NewDB()
	return &repositories.Repositories{
		Students: &studentRepository{db: db},
		Ideas:    &ideaRepository{db: db},
		Tutors:   &tutorRepository{db: db},
		Products: &productRepository{db: db},
		Subjects: &subjectRepository{db: db},
		Ping:     func(context.Context) error { return nil },
	}, db
}

func (db *DB) nextID() int64 {
	db.pk++
	return db.pk
}

// StudentCount reports how many students are stored.
func (db *DB) StudentCount() int {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return len(db.students)
}

// IdeaCount reports how many ideas are stored.
func (db *DB) IdeaCount() int {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return len(db.ideas)
}

type studentRepository struct {
	db *DB
}

func (repo *studentRepository) Register(ctx context.Context, student *models.Student, tutor *models.Tutor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.students[student.StudentNumber]; ok {
		return apperrors.ErrDuplicateStudent
	}

	student.ID = repo.db.nextID()
	student.CreatedAt = time.Now().UTC()
	stored := *student
	repo.db.students[student.StudentNumber] = &stored

	if tutor != nil {
		tutor.ID = repo.db.nextID()
		tutor.StudentID = student.ID
		t := *tutor
		t.Student = nil
		repo.db.tutors[student.ID] = &t
	}
	return nil
}

func (repo *studentRepository) GetByStudentNumber(ctx context.Context, studentNumber string) (*models.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	s, ok := repo.db.students[studentNumber]
	if !ok {
		return nil, apperrors.ErrUnknownStudent
	}
	out := *s
	return &out, nil
}

type ideaRepository struct {
	db *DB
}

func (repo *ideaRepository) CreateForStudent(ctx context.Context, studentNumber, content string, at time.Time) (*models.Idea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	s, ok := repo.db.students[studentNumber]
	if !ok {
		return nil, apperrors.ErrUnknownStudent
	}
	idea := &models.Idea{
		ID:        repo.db.nextID(),
		Content:   content,
		Timestamp: at,
		StudentID: s.ID,
	}
	repo.db.ideas = append(repo.db.ideas, idea)
	out := *idea
	return &out, nil
}

func (repo *ideaRepository) ListNewestFirst(ctx context.Context) ([]*models.Idea, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	ideas := make([]*models.Idea, 0, len(repo.db.ideas))
	for _, idea := range repo.db.ideas {
		out := *idea
		ideas = append(ideas, &out)
	}
	sort.SliceStable(ideas, func(i, j int) bool {
		if ideas[i].Timestamp.Equal(ideas[j].Timestamp) {
			return ideas[i].ID > ideas[j].ID
		}
		return ideas[i].Timestamp.After(ideas[j].Timestamp)
	})
	return ideas, nil
}

type tutorRepository struct {
	db *DB
}

func (repo *tutorRepository) List(ctx context.Context) ([]*models.Tutor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	tutors := make([]*models.Tutor, 0, len(repo.db.tutors))
	for _, s := range repo.db.students {
		t, ok := repo.db.tutors[s.ID]
		if !ok {
			continue
		}
		out := *t
		out.Student = &models.Student{
			ID:            s.ID,
			StudentNumber: s.StudentNumber,
			Name:          s.Name,
			Email:         s.Email,
		}
		tutors = append(tutors, &out)
	}
	sort.Slice(tutors, func(i, j int) bool { return tutors[i].Student.Name < tutors[j].Student.Name })
	return tutors, nil
}

func (repo *tutorRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.Tutor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	t, ok := repo.db.tutors[studentID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := *t
	return &out, nil
}

type productRepository struct {
	db *DB
}

func (repo *productRepository) Create(ctx context.Context, product *models.Product) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	product.ID = repo.db.nextID()
	out := *product
	repo.db.products = append(repo.db.products, &out)
	return nil
}

func (repo *productRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Product, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var products []*models.Product
	for _, p := range repo.db.products {
		if p.StudentID == studentID {
			out := *p
			products = append(products, &out)
		}
	}
	return products, nil
}

type subjectRepository struct {
	db *DB
}

func (repo *subjectRepository) List(ctx context.Context) ([]*models.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	subjects := make([]*models.Subject, 0, len(repo.db.subjects))
	for _, s := range repo.db.subjects {
		out := *s
		subjects = append(subjects, &out)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].Name < subjects[j].Name })
	return subjects, nil
}

func (repo *subjectRepository) Upsert(ctx context.Context, subject *models.Subject) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if existing, ok := repo.db.subjects[subject.Name]; ok {
		subject.ID = existing.ID
	} else {
		subject.ID = repo.db.nextID()
	}
	out := *subject
	repo.db.subjects[subject.Name] = &out
	return nil
}
