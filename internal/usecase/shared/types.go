package shared

import "github.com/google/uuid"

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type BookSnapshot struct {
	ID      uuid.UUID
	Title   string
	Author  string
	Price   float64
	Stock   int32
	GenreID *uuid.UUID
}

type GenreSnapshot struct {
	ID   uuid.UUID
	Name string
}
