package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/repositories"
)

// DefaultSubjects is the subject reference data every deployment starts with.
var DefaultSubjects = []models.Subject{
	{Name: "English", Description: "Reading, writing and speaking across NCEA levels.", Block: "E Block"},
	{Name: "Mathematics", Description: "Algebra, calculus and statistics.", Block: "M Block"},
	{Name: "Science", Description: "General science for years 9 and 10.", Block: "L Block"},
	{Name: "Physics", Description: "Mechanics, electricity and waves.", Block: "L Block"},
	{Name: "Chemistry", Description: "Atoms, reactions and the periodic table.", Block: "L Block"},
	{Name: "Biology", Description: "Cells, genetics and ecology.", Block: "L Block"},
	{Name: "Digital Technologies", Description: "Programming and digital design.", Block: "X Block"},
	{Name: "History", Description: "Aotearoa and world history.", Block: "A Block"},
	{Name: "Geography", Description: "Natural and cultural environments.", Block: "A Block"},
	{Name: "Te Reo Maori", Description: "Language and tikanga.", Block: "C1 Block"},
	{Name: "Physical Education", Description: "Sport, health and movement.", Block: "Hunter Gym"},
	{Name: "Music", Description: "Performance, composition and theory.", Block: "P Block"},
	{Name: "Dance", Description: "Choreography and performance.", Block: "Dance Hall"},
	{Name: "Visual Arts", Description: "Painting, printmaking and design.", Block: "G Block"},
}

// CreateDefaultData upserts the default subjects. It keeps going after a
// failed row and returns every error joined.
func CreateDefaultData(ctx context.Context, subjects repositories.SubjectRepository, lgr zerolog.Logger) error {
	lgr.Info().Int("subjects", len(DefaultSubjects)).Msg("Checking/Creating default subjects...")

	var finalErr error
	for _, s := range DefaultSubjects {
		subject := s
		if err := subjects.Upsert(ctx, &subject); err != nil {
			lgr.Error().Err(err).Str("subject", subject.Name).Msg("Error creating subject")
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}
