package services

import (
	"context"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// TutorService lists the tutor directory.
type TutorService struct {
	tutors repositories.TutorRepository
}

func NewTutorService(tutors repositories.TutorRepository) *TutorService {
	return &TutorService{tutors: tutors}
}

func (s *TutorService) List(ctx context.Context) ([]*models.Tutor, error) {
	tutors, err := s.tutors.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("Could not load tutors.", err)
	}
	return tutors, nil
}

// SubjectService reads the subject reference data.
type SubjectService struct {
	subjects repositories.SubjectRepository
}

func NewSubjectService(subjects repositories.SubjectRepository) *SubjectService {
	return &SubjectService{subjects: subjects}
}

func (s *SubjectService) List(ctx context.Context) ([]*models.Subject, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("Could not load subjects.", err)
	}
	return subjects, nil
}
