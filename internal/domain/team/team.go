// Package team is the read model of maintenance teams requests can be assigned to.
package team

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

const DefaultColor = "#3B82F6"

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type Team struct {
	id        uint
	name      string
	color     string
	createdAt time.Time
}

func NewTeam(name, color string, now time.Time) (*Team, error) {
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}
	if color == "" {
		color = DefaultColor
	}
	if !colorPattern.MatchString(color) {
		return nil, fmt.Errorf("invalid team color: %s", color)
	}
	return &Team{name: name, color: color, createdAt: now}, nil
}

func ReconstructTeam(id uint, name, color string, createdAt time.Time) *Team {
	if color == "" {
		color = DefaultColor
	}
	return &Team{id: id, name: name, color: color, createdAt: createdAt}
}

func (t *Team) ID() uint             { return t.id }
func (t *Team) Name() string         { return t.name }
func (t *Team) Color() string        { return t.color }
func (t *Team) CreatedAt() time.Time { return t.createdAt }

func (t *Team) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("team ID is already set")
	}
	t.id = id
	return nil
}

type Repository interface {
	// GetByID returns nil, nil when the team does not exist.
	GetByID(ctx context.Context, id uint) (*Team, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Team, error)
	Create(ctx context.Context, t *Team) error
}
