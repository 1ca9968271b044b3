package interviews

import (
	"errors"
	"time"
)

// TypeResumeBased is the only interview type this pipeline produces.
const TypeResumeBased = "resume-based"

// Collection is the store collection interview records are written to.
const Collection = "interviews"

// Record is a finalized interview derived from a resume. It is created once
// at the end of a successful pipeline run and never mutated after insertion.
type Record struct {
	Role       string    `json:"role"`
	Type       string    `json:"type"`
	Level      string    `json:"level"`
	TechStack  []string  `json:"techstack"`
	Questions  []string  `json:"questions"`
	UserID     string    `json:"userId"`
	Finalized  bool      `json:"finalized"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ErrPersistence indicates the store failed to accept a record.
var ErrPersistence = errors.New("persistence failure")
