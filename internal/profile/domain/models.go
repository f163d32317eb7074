package domain

import "green-wheels/internal/storage"

type Profile struct {
	storage.Record
	UserID  int    `json:"userId"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Bio     string `json:"bio,omitempty"`
}
