package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"-"`
	IsStaff      bool      `json:"-"`
	IsSuperuser  bool      `json:"-"`
	Created      time.Time `json:"-"`
}

type Document struct {
	UUID    uuid.UUID `json:"uuid"`
	Pages   int       `json:"pages"`
	Text    string    `json:"text"`
	Tags    []string  `json:"tags"`
	DocType string    `json:"doc_type"`
	OwnerID int64     `json:"-"`
	Created time.Time `json:"created"`
}
