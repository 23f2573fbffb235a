package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

func joLee() dto.RegisterForm {
	return dto.RegisterForm{
		StudentNumber: "12345",
		Password:      "pw",
		Name:          "Jo Lee",
		Email:         "jo@x.com",
	}
}

func TestRegister_ThenDuplicate(t *testing.T) {
	svc, _, db := newTestAuth(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, joLee())
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "12345", session.Identity.StudentNumber)
	assert.Equal(t, "Jo Lee", session.Identity.Name)

	_, err = svc.Register(ctx, joLee())
	assert.ErrorIs(t, err, apperrors.ErrDuplicateStudent)
	assert.Equal(t, 1, db.StudentCount())
}

func TestRegister_DuplicateCheckedBeforeTutorFields(t *testing.T) {
	svc, _, db := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, joLee())
	require.NoError(t, err)

	form := joLee()
	form.IsTutor = "on"
	_, err = svc.Register(ctx, form)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateStudent)

	form.Subjects = "Maths"
	form.Year = "ten"
	_, err = svc.Register(ctx, form)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateStudent)
	assert.Equal(t, 1, db.StudentCount())
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	svc, repos, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, joLee())
	require.NoError(t, err)

	stored, err := repos.Students.GetByStudentNumber(ctx, "12345")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *dto.RegisterForm)
		message string
	}{
		{"empty number", func(f *dto.RegisterForm) { f.StudentNumber = "  " }, MsgInvalidRegistration},
		{"number with two words", func(f *dto.RegisterForm) { f.StudentNumber = "123 45" }, MsgInvalidRegistration},
		{"number only tags", func(f *dto.RegisterForm) { f.StudentNumber = "<b></b>" }, MsgInvalidRegistration},
		{"name over ten words", func(f *dto.RegisterForm) { f.Name = "a b c d e f g h i j k" }, MsgInvalidRegistration},
		{"tutor without subjects", func(f *dto.RegisterForm) { f.IsTutor = "on"; f.Year = "12" }, MsgTutorDetails},
		{"tutor without year", func(f *dto.RegisterForm) { f.IsTutor = "on"; f.Subjects = "Maths" }, MsgTutorDetails},
		{"tutor with word year", func(f *dto.RegisterForm) { f.IsTutor = "on"; f.Subjects = "Maths"; f.Year = "ten" }, MsgTutorYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, db := newTestAuth(t)
			form := joLee()
			tt.mutate(&form)

			_, err := svc.Register(context.Background(), form)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tt.message, apperrors.UserMessage(err, ""))
			assert.Zero(t, db.StudentCount())
		})
	}
}

func TestRegister_TutorProfileStoredTogether(t *testing.T) {
	svc, repos, _ := newTestAuth(t)
	ctx := context.Background()

	form := joLee()
	form.IsTutor = "on"
	form.Subjects = "Maths, <i>Physics</i>"
	form.Year = "12"
	_, err := svc.Register(ctx, form)
	require.NoError(t, err)

	tutors, err := repos.Tutors.List(ctx)
	require.NoError(t, err)
	require.Len(t, tutors, 1)
	assert.Equal(t, "Maths, Physics", tutors[0].Subjects)
	assert.Equal(t, 12, tutors[0].Year)
	assert.Equal(t, "Jo Lee", tutors[0].Student.Name)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAuth(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, joLee())
	require.NoError(t, err)

	session, err := svc.Login(ctx, dto.LoginForm{StudentNumber: "12345", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Jo Lee", session.Identity.Name)

	for _, form := range []dto.LoginForm{
		{StudentNumber: "12345", Password: "wrong"},
		{StudentNumber: "99999", Password: "pw"},
		{StudentNumber: "", Password: "pw"},
	} {
		_, err := svc.Login(ctx, form)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "form %+v", form)
	}
}

func TestProfile(t *testing.T) {
	svc, repos, _ := newTestAuth(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, joLee())
	require.NoError(t, err)

	student, err := repos.Students.GetByStudentNumber(ctx, "12345")
	require.NoError(t, err)
	require.NoError(t, repos.Products.Create(ctx, &models.Product{Name: "Calculator", Price: 10, StudentID: student.ID}))

	profile, err := svc.Profile(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, "jo@x.com", profile.Student.Email)
	assert.Nil(t, profile.Tutor)
	require.Len(t, profile.Products, 1)

	_, err = svc.Profile(ctx, "00000")
	assert.ErrorIs(t, err, apperrors.ErrUnknownStudent)
}
