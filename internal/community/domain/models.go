package domain

import "green-wheels/internal/storage"

type Community struct {
	storage.Record
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
