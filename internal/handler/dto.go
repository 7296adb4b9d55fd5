package handler

import (
	"time"

	"daybook/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash is never
// part of any response shape.
type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	LastLogin string `json:"lastLogin"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		LastLogin: u.LastLogin.Format(time.RFC3339),
	}
}

// EntryDTO is the JSON representation of a journal entry.
type EntryDTO struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Sentiment string `json:"sentiment"`
	CreatedAt string `json:"createdAt"`
}

func toEntryDTO(e *domain.Entry) EntryDTO {
	return EntryDTO{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		Content:   e.Content,
		Sentiment: e.Sentiment,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func toEntryDTOs(entries []domain.Entry) []EntryDTO {
	dtos := make([]EntryDTO, len(entries))
	for i := range entries {
		dtos[i] = toEntryDTO(&entries[i])
	}
	return dtos
}
