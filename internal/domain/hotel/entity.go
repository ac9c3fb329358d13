package hotel

import (
	"errors"
	"slices"
	"strings"

	"hotel-booking/internal/domain/money"
)

var (
	ErrEmptyID           = errors.New("catalog id cannot be empty")
	ErrInvalidOccupancy  = errors.New("max occupancy must be at least 1")
	ErrNegativePrice     = errors.New("price per night cannot be negative")
	ErrInvalidRating     = errors.New("rating must be between 0 and 5")
	ErrDuplicateRoomType = errors.New("duplicate room type id")
)

type RoomTypeParams struct {
	ID            string
	Name          string
	Description   string
	PricePerNight money.Money
	MaxOccupancy  int
	Amenities     []string
	ImageURLs     []string
}

// RoomType belongs to exactly one Hotel and is immutable once built.
type RoomType struct {
	id            string
	name          string
	description   string
	pricePerNight money.Money
	maxOccupancy  int
	amenities     []string
	imageURLs     []string
}

func NewRoomType(p RoomTypeParams) (*RoomType, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, ErrEmptyID
	}
	if p.MaxOccupancy < 1 {
		return nil, ErrInvalidOccupancy
	}
	if p.PricePerNight.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &RoomType{
		id:            p.ID,
		name:          p.Name,
		description:   p.Description,
		pricePerNight: p.PricePerNight,
		maxOccupancy:  p.MaxOccupancy,
		amenities:     slices.Clone(p.Amenities),
		imageURLs:     slices.Clone(p.ImageURLs),
	}, nil
}

func (r *RoomType) ID() string                 { return r.id }
func (r *RoomType) Name() string               { return r.name }
func (r *RoomType) Description() string        { return r.description }
func (r *RoomType) PricePerNight() money.Money { return r.pricePerNight }
func (r *RoomType) MaxOccupancy() int          { return r.maxOccupancy }
func (r *RoomType) Amenities() []string        { return slices.Clone(r.amenities) }
func (r *RoomType) ImageURLs() []string        { return slices.Clone(r.imageURLs) }

// ClampGuests bounds n to [1, MaxOccupancy].
func (r *RoomType) ClampGuests(n int) int {
	return min(max(n, 1), r.maxOccupancy)
}

type Params struct {
	ID            string
	Name          string
	Description   string
	ImageURL      string
	PricePerNight money.Money
	Rating        float64
	Location      string
	Amenities     []string
}

// Hotel is a read-only catalog entry owning its room types.
type Hotel struct {
	id            string
	name          string
	description   string
	imageURL      string
	pricePerNight money.Money
	rating        float64
	location      string
	amenities     []string
	roomTypes     []*RoomType
}

func NewHotel(p Params, roomTypes ...*RoomType) (*Hotel, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, ErrEmptyID
	}
	if p.PricePerNight.IsNegative() {
		return nil, ErrNegativePrice
	}
	if p.Rating < 0 || p.Rating > 5 {
		return nil, ErrInvalidRating
	}

	seen := make(map[string]struct{}, len(roomTypes))
	for _, rt := range roomTypes {
		if _, dup := seen[rt.id]; dup {
			return nil, ErrDuplicateRoomType
		}
		seen[rt.id] = struct{}{}
	}

	return &Hotel{
		id:            p.ID,
		name:          p.Name,
		description:   p.Description,
		imageURL:      p.ImageURL,
		pricePerNight: p.PricePerNight,
		rating:        p.Rating,
		location:      p.Location,
		amenities:     slices.Clone(p.Amenities),
		roomTypes:     slices.Clone(roomTypes),
	}, nil
}

func (h *Hotel) ID() string                 { return h.id }
func (h *Hotel) Name() string               { return h.name }
func (h *Hotel) Description() string        { return h.description }
func (h *Hotel) ImageURL() string           { return h.imageURL }
func (h *Hotel) PricePerNight() money.Money { return h.pricePerNight }
func (h *Hotel) Rating() float64            { return h.rating }
func (h *Hotel) Location() string           { return h.location }
func (h *Hotel) Amenities() []string        { return slices.Clone(h.amenities) }
func (h *Hotel) RoomTypes() []*RoomType     { return slices.Clone(h.roomTypes) }

func (h *Hotel) FindRoomType(id string) (*RoomType, bool) {
	for _, rt := range h.roomTypes {
		if rt.id == id {
			return rt, true
		}
	}
	return nil, false
}

// MatchesQuery reports a case-insensitive substring match on name or location.
func (h *Hotel) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(h.name), q) ||
		strings.Contains(strings.ToLower(h.location), q)
}
