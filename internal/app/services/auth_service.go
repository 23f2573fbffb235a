package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/sanitize"
)

// User-facing messages
const (
	MsgInvalidRegistration = "Invalid input: please check your details."
	MsgTutorDetails        = "Please provide subjects and year for tutor registration."
	MsgTutorYear           = "Year must be a number."
	MsgRegisterFailed      = "An error occurred while registering. Please try again."
)

// Session is a freshly issued login.
type Session struct {
	Token    string
	Identity auth.Identity
}

// Profile is everything shown on the profile page.
type Profile struct {
	Student  *models.Student
	Tutor    *models.Tutor
	Products []*models.Product
}

// AuthService handles login, registration and profile lookups
type AuthService struct {
	students repositories.StudentRepository
	tutors   repositories.TutorRepository
	products repositories.ProductRepository
	sessions *auth.SessionService
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	students repositories.StudentRepository,
	tutors repositories.TutorRepository,
	products repositories.ProductRepository,
	sessions *auth.SessionService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		students: students,
		tutors:   tutors,
		products: products,
		sessions: sessions,
		logger:   logger,
	}
}

// Login checks the credentials and issues a session. Every mismatch,
// including an unknown number, is reported as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, form dto.LoginForm) (*Session, error) {
	number := sanitize.Required(form.StudentNumber, sanitize.StudentNumber)
	password := sanitize.Required(form.Password, sanitize.Password)
	if number == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	student, err := s.students.GetByStudentNumber(ctx, number)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownStudent) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("Login lookup failed")
		return nil, apperrors.NewStorageError("Login is unavailable right now. Please try again.", err)
	}

	if !auth.CheckPassword(student.PasswordHash, password) {
		s.logger.Debug().Str("studentNumber", number).Msg("Password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(student)
}

// Register validates the form, stores the student (and tutor profile) and
// logs the new student in.
func (s *AuthService) Register(ctx context.Context, form dto.RegisterForm) (*Session, error) {
	number := sanitize.Required(form.StudentNumber, sanitize.StudentNumber)
	password := sanitize.Required(form.Password, sanitize.Password)
	name := sanitize.Required(form.FullName(), sanitize.Name)
	email := sanitize.Required(form.Email, sanitize.Email)
	if number == "" || password == "" || name == "" || email == "" {
		return nil, apperrors.NewValidationError(MsgInvalidRegistration)
	}

	// a taken number wins over any tutor field problem
	switch _, err := s.students.GetByStudentNumber(ctx, number); {
	case err == nil:
		return nil, apperrors.ErrDuplicateStudent
	case !errors.Is(err, apperrors.ErrUnknownStudent):
		s.logger.Error().Err(err).Str("studentNumber", number).Msg("Registration lookup failed")
		return nil, apperrors.NewStorageError(MsgRegisterFailed, err)
	}

	var tutor *models.Tutor
	if form.Tutor() {
		subjects := sanitize.Required(form.Subjects, sanitize.Subjects)
		yearText := sanitize.Required(form.Year, sanitize.Year)
		if subjects == "" || yearText == "" {
			return nil, apperrors.NewValidationError(MsgTutorDetails)
		}
		year, err := strconv.Atoi(yearText)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, MsgTutorYear).WithField("year")
		}
		tutor = &models.Tutor{Subjects: subjects, Year: year}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.NewStorageError(MsgRegisterFailed, err)
	}

	student := &models.Student{
		StudentNumber: number,
		Name:          name,
		PasswordHash:  hash,
		Email:         email,
	}
	if err := s.students.Register(ctx, student, tutor); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateStudent) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("studentNumber", number).Msg("Registration failed")
		return nil, apperrors.NewStorageError(MsgRegisterFailed, err)
	}

	s.logger.Info().Str("studentNumber", number).Bool("tutor", tutor != nil).Msg("Student registered")
	return s.issue(student)
}

// Profile loads the student behind a session together with the optional
// tutor profile and owned products.
func (s *AuthService) Profile(ctx context.Context, studentNumber string) (*Profile, error) {
	student, err := s.students.GetByStudentNumber(ctx, studentNumber)
	if err != nil {
		return nil, err
	}

	profile := &Profile{Student: student}

	tutor, err := s.tutors.GetByStudentID(ctx, student.ID)
	switch {
	case err == nil:
		profile.Tutor = tutor
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, apperrors.NewStorageError("Could not load your profile.", err)
	}

	profile.Products, err = s.products.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, apperrors.NewStorageError("Could not load your profile.", err)
	}
	return profile, nil
}

func (s *AuthService) issue(student *models.Student) (*Session, error) {
	id := auth.Identity{StudentNumber: student.StudentNumber, Name: student.Name}
	token, err := s.sessions.Issue(id)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, Identity: id}, nil
}
