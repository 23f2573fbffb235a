package models

import (
	"strings"
	"time"
)

// Student is a registered member of the school, identified externally by
// StudentNumber.
type Student struct {
	ID            int64     `json:"id" db:"id"`
	StudentNumber string    `json:"studentNumber" db:"student_number"`
	Name          string    `json:"name" db:"name"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	Email         string    `json:"email" db:"email"`
	Hobbies       *string   `json:"hobbies,omitempty" db:"hobbies"`
	Destination   *string   `json:"destination,omitempty" db:"destination"`
	Credits       int       `json:"credits" db:"credits"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// Subject is static reference data shown on the subjects page.
type Subject struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Block       string `json:"block" db:"block"`
}

// Idea is one feedback entry. Content is stored already sanitized.
type Idea struct {
	ID        int64     `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	Timestamp time.Time `json:"timestamp" db:"created_at"`
	StudentID int64     `json:"studentId" db:"student_id"`
}

// Product is owned by a student. Only stored and listed.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	StudentID   int64   `json:"studentId" db:"student_id"`
}

// Tutor is the optional one-to-one tutoring profile of a student.
type Tutor struct {
	ID        int64  `json:"id" db:"id"`
	StudentID int64  `json:"studentId" db:"student_id"`
	Subjects  string `json:"subjects" db:"subjects"` // comma separated labels
	Year      int    `json:"year" db:"year"`

	Student *Student `json:"student,omitempty"` // populated by listings
}

// SubjectList splits the comma separated subject labels.
func (t *Tutor) SubjectList() []string {
	var out []string
	for _, label := range strings.Split(t.Subjects, ",") {
		if label = strings.TrimSpace(label); label != "" {
			out = append(out, label)
		}
	}
	return out
}
