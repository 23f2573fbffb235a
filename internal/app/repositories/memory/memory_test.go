package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

func TestRegister_DuplicateUnderConcurrency(t *testing.T) {
	repos, db := NewRepositories()
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repos.Students.Register(ctx, &models.Student{StudentNumber: "12345", Name: "Jo Lee"}, nil)
		}()
	}
	wg.Wait()
	close(results)

	var ok, dup int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, apperrors.ErrDuplicateStudent):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 19, dup)
	assert.Equal(t, 1, db.StudentCount())
}

func TestRegister_WithTutorListsJoinedStudent(t *testing.T) {
	repos, _ := NewRepositories()
	ctx := context.Background()

	student := &models.Student{StudentNumber: "777", Name: "Ana Tui", Email: "ana@x.com"}
	tutor := &models.Tutor{Subjects: "Maths, Physics", Year: 12}
	require.NoError(t, repos.Students.Register(ctx, student, tutor))
	require.NoError(t, repos.Students.Register(ctx, &models.Student{StudentNumber: "778", Name: "No Tutor"}, nil))

	tutors, err := repos.Tutors.List(ctx)
	require.NoError(t, err)
	require.Len(t, tutors, 1)
	assert.Equal(t, "Ana Tui", tutors[0].Student.Name)
	assert.Equal(t, []string{"Maths", "Physics"}, tutors[0].SubjectList())

	got, err := repos.Tutors.GetByStudentID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Year)

	_, err = repos.Tutors.GetByStudentID(ctx, 9999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestIdeas_NewestFirstAndUnknownStudent(t *testing.T) {
	repos, db := NewRepositories()
	ctx := context.Background()
	require.NoError(t, repos.Students.Register(ctx, &models.Student{StudentNumber: "1"}, nil))

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := repos.Ideas.CreateForStudent(ctx, "1", "older", base)
	require.NoError(t, err)
	_, err = repos.Ideas.CreateForStudent(ctx, "1", "newer", base.Add(time.Minute))
	require.NoError(t, err)

	_, err = repos.Ideas.CreateForStudent(ctx, "404", "ghost", base)
	assert.ErrorIs(t, err, apperrors.ErrUnknownStudent)
	assert.Equal(t, 2, db.IdeaCount())

	ideas, err := repos.Ideas.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, "newer", ideas[0].Content)
	assert.Equal(t, "older", ideas[1].Content)
}

func TestSubjects_UpsertKeepsOneRowPerName(t *testing.T) {
	repos, _ := NewRepositories()
	ctx := context.Background()

	require.NoError(t, repos.Subjects.Upsert(ctx, &models.Subject{Name: "Maths", Block: "M"}))
	require.NoError(t, repos.Subjects.Upsert(ctx, &models.Subject{Name: "Art", Block: "A"}))
	require.NoError(t, repos.Subjects.Upsert(ctx, &models.Subject{Name: "Maths", Block: "M2"}))

	subjects, err := repos.Subjects.List(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Art", subjects[0].Name)
	assert.Equal(t, "M2", subjects[1].Block)
}

func TestProducts_ListByStudent(t *testing.T) {
	repos, _ := NewRepositories()
	ctx := context.Background()

	require.NoError(t, repos.Products.Create(ctx, &models.Product{Name: "Calculator", Price: 12.5, StudentID: 1}))
	require.NoError(t, repos.Products.Create(ctx, &models.Product{Name: "Blazer", Price: 40, StudentID: 2}))

	products, err := repos.Products.ListByStudent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Calculator", products[0].Name)
}
