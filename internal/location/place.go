package location

import (
	"fmt"
	"strings"

	"github.com/osse101/catchpool/internal/domain"
)

// Place is a physical location the actor can fish in. The set of variants is
// closed: DepthPlace, FarmPlace, IslandPlace and OtherPlace.
type Place interface {
	Name() string
	isPlace()
}

// DepthPlace is a place with numbered floors, such as a mine level.
type DepthPlace struct {
	RawName string
	Family  string
	Depth   int
}

// FarmPlace is a farm whose layout is chosen by a selector.
type FarmPlace struct {
	RawName string
	Layout  int
}

// IslandPlace is any place that belongs to the island family.
type IslandPlace struct {
	RawName string
}

// OtherPlace is a place known only by its own name.
type OtherPlace struct {
	RawName string
}

func (p DepthPlace) Name() string  { return p.RawName }
func (p FarmPlace) Name() string   { return p.RawName }
func (p IslandPlace) Name() string { return p.RawName }
func (p OtherPlace) Name() string  { return p.RawName }

func (DepthPlace) isPlace()  {}
func (FarmPlace) isPlace()   {}
func (IslandPlace) isPlace() {}
func (OtherPlace) isPlace()  {}

// Spec is the wire form of a Place.
type Spec struct {
	Kind   string `json:"kind" validate:"omitempty,oneof=depth farm island other"`
	Name   string `json:"name" validate:"required,max=128"`
	Family string `json:"family,omitempty" validate:"max=128"`
	Depth  int    `json:"depth,omitempty" validate:"gte=0"`
	Layout int    `json:"layout,omitempty"`
}

// Place converts the wire form. An empty kind is treated as "other"; a depth
// place without a family uses the default mine family.
func (s Spec) Place() (Place, error) {
	if strings.TrimSpace(s.Name) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPlace, ErrMsgPlaceNameRequired)
	}

	switch strings.ToLower(s.Kind) {
	case KindDepth:
		family := s.Family
		if family == "" {
			family = FamilyMine
		}
		return DepthPlace{RawName: s.Name, Family: family, Depth: s.Depth}, nil
	case KindFarm:
		return FarmPlace{RawName: s.Name, Layout: s.Layout}, nil
	case KindIsland:
		return IslandPlace{RawName: s.Name}, nil
	case KindOther, "":
		return OtherPlace{RawName: s.Name}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidPlace, s.Kind)
	}
}
