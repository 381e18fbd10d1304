package domain

import (
	"time"

	"github.com/google/uuid"
)

// Content is an immutable snapshot of a movie or series from the catalog.
type Content struct {
	ID           int64       `json:"id"`
	Title        string      `json:"title"`
	Type         ContentType `json:"type"`
	Genres       []string    `json:"genres"`
	Streaming    []string    `json:"streaming"`
	Overview     string      `json:"overview"`
	PosterPath   *string     `json:"posterPath"`
	BackdropPath *string     `json:"backdropPath,omitempty"`
	ReleaseDate  string      `json:"releaseDate,omitempty"`
	Rating       float64     `json:"rating"`
	Year         int         `json:"year,omitempty"`
}

// Validate checks the fields a client must supply when storing content.
func (c Content) Validate() error {
	var errs []FieldError
	if c.ID <= 0 {
		errs = append(errs, FieldError{Field: "content.id", Message: "id must be a positive integer"})
	}
	if c.Title == "" {
		errs = append(errs, FieldError{Field: "content.title", Message: "title is required"})
	}
	if !c.Type.IsValid() {
		errs = append(errs, FieldError{Field: "content.type", Message: "type must be 'movie' or 'series'"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// HasAnyGenre reports whether the content carries at least one of names.
// An empty names set matches everything.
func (c Content) HasAnyGenre(names []string) bool {
	if len(names) == 0 {
		return true
	}
	return containsAny(c.Genres, names)
}

// HasAnyProvider reports whether the content streams on at least one of providers.
func (c Content) HasAnyProvider(providers []string) bool {
	if len(providers) == 0 {
		return true
	}
	return containsAny(c.Streaming, providers)
}

func containsAny(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// UserContent is a list entry: a content snapshot and when it was added.
type UserContent struct {
	Content Content   `json:"content"`
	AddedAt time.Time `json:"addedAt"`
}

// HistoryItem is one recorded draw. The same content may appear many times.
type HistoryItem struct {
	HistoryID uuid.UUID `json:"historyId"`
	Content   Content   `json:"content"`
	Watched   bool      `json:"watched"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHistoryItem creates an unwatched history item for content.
func NewHistoryItem(c Content, now time.Time) HistoryItem {
	return HistoryItem{
		HistoryID: uuid.New(),
		Content:   c,
		Timestamp: now,
	}
}

// Genre is a catalog genre. Virtual genres carry negative IDs.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Provider is a streaming service known to the catalog.
type Provider struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
