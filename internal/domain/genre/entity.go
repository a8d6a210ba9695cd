package genre

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("genre name cannot be empty")
	ErrNameTooLong = errors.New("genre name is too long (max 100 characters)")
)

const MaxNameLength = 100

type Genre struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewGenre(name string) (*Genre, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Genre{
		id:   uuid.New(),
		name: strings.TrimSpace(name),
	}, nil
}

func Reconstruct(id uuid.UUID, name string) (*Genre, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Genre{id: id, name: strings.TrimSpace(name)}, nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (g *Genre) ID() uuid.UUID        { return g.id }
func (g *Genre) Name() string         { return g.name }
func (g *Genre) CreatedAt() time.Time { return g.createdAt }
func (g *Genre) UpdatedAt() time.Time { return g.updatedAt }
