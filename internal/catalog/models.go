// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// Author is a stored author. All string fields are opaque.
type Author struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Address   string
	Language  string
}

// EntityID implements store.Entity.
func (a Author) EntityID() uuid.UUID { return a.ID }

// Book is a stored book. AuthorID is kept as given and is not checked
// against the author catalog.
type Book struct {
	ID       uuid.UUID
	AuthorID uuid.NullUUID
	Title    string
	Pages    int
}

// EntityID implements store.Entity.
func (b Book) EntityID() uuid.UUID { return b.ID }

// CreateAuthorCommand is the request body for creating an author.
type CreateAuthorCommand struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Language  string `json:"language"`
}

// CreateBookCommand is the request body for creating a book.
type CreateBookCommand struct {
	AuthorID string `json:"authorId" validate:"omitempty,uuid"`
	Title    string `json:"title"`
	Pages    int    `json:"pages" validate:"gte=0"`
}

// AuthorResponse is the public projection of an Author.
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Address   string    `json:"address"`
	Language  string    `json:"language"`
}

// BookResponse is the public projection of a Book. A missing author is
// encoded as null.
type BookResponse struct {
	ID       uuid.UUID     `json:"id"`
	AuthorID uuid.NullUUID `json:"authorId"`
	Title    string        `json:"title"`
	Pages    int           `json:"pages"`
}

func buildAuthor(id uuid.UUID, cmd CreateAuthorCommand) (Author, error) {
	return Author{
		ID:        id,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Address:   cmd.Address,
		Language:  cmd.Language,
	}, nil
}

func buildBook(id uuid.UUID, cmd CreateBookCommand) (Book, error) {
	book := Book{ID: id, Title: cmd.Title, Pages: cmd.Pages}
	if cmd.AuthorID != "" {
		authorID, err := uuid.Parse(cmd.AuthorID)
		if err != nil {
			return Book{}, fmt.Errorf("parse authorId: %w", err)
		}
		book.AuthorID = uuid.NullUUID{UUID: authorID, Valid: true}
	}
	return book, nil
}

// ToAuthorResponse builds the public projection of a.
func ToAuthorResponse(a Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address:   a.Address,
		Language:  a.Language,
	}
}

// ToBookResponse builds the public projection of b.
func ToBookResponse(b Book) BookResponse {
	return BookResponse{
		ID:       b.ID,
		AuthorID: b.AuthorID,
		Title:    b.Title,
		Pages:    b.Pages,
	}
}
