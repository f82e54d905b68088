package venue

import (
	"strings"

	"venue-boxoffice/internal/pkg/errs"
)

var ErrUnknownVenue = errs.New("unknown venue")

type Category string

const (
	CategoryWholeVenue     Category = "WHOLE_VENUE"
	CategoryMainHall       Category = "MAIN_HALL"
	CategorySmallHall      Category = "SMALL_HALL"
	CategoryRehearsalSpace Category = "REHEARSAL_SPACE"
	CategoryRoom           Category = "ROOM"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryWholeVenue, CategoryMainHall, CategorySmallHall, CategoryRehearsalSpace, CategoryRoom:
		return true
	default:
		return false
	}
}

const (
	EntireVenue    = "Entire Venue"
	MainHall       = "Main Hall"
	SmallHall      = "Small Hall"
	RehearsalSpace = "Rehearsal Space"

	GreenRoom       = "The Green Room"
	BronteBoardroom = "Brontë Boardroom"
	DickensDen      = "Dickens Den"
	PoeParlor       = "Poe Parlor"
	GlobeRoom       = "Globe Room"
	ChekhovChamber  = "Chekhov Chamber"
)

// Report selectors understood by revenue filtering.
const (
	SelectorAllVenues = "All Venues"
	SelectorRooms     = "Rooms"
)

type Venue struct {
	Name     string
	Category Category
}

func (v Venue) IsRoom() bool {
	return v.Category == CategoryRoom
}

var registry = []Venue{
	{Name: EntireVenue, Category: CategoryWholeVenue},
	{Name: MainHall, Category: CategoryMainHall},
	{Name: SmallHall, Category: CategorySmallHall},
	{Name: RehearsalSpace, Category: CategoryRehearsalSpace},
	{Name: GreenRoom, Category: CategoryRoom},
	{Name: BronteBoardroom, Category: CategoryRoom},
	{Name: DickensDen, Category: CategoryRoom},
	{Name: PoeParlor, Category: CategoryRoom},
	{Name: GlobeRoom, Category: CategoryRoom},
	{Name: ChekhovChamber, Category: CategoryRoom},
}

var byKey = func() map[string]Venue {
	m := make(map[string]Venue, len(registry))
	for _, v := range registry {
		m[Key(v.Name)] = v
	}
	return m
}()

// Key normalizes a venue name for comparisons.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func Lookup(name string) (Venue, error) {
	v, ok := byKey[Key(name)]
	if !ok {
		return Venue{}, errs.Wrap(ErrUnknownVenue, name)
	}
	return v, nil
}

func All() []Venue {
	out := make([]Venue, len(registry))
	copy(out, registry)
	return out
}

func Rooms() []Venue {
	var out []Venue
	for _, v := range registry {
		if v.IsRoom() {
			out = append(out, v)
		}
	}
	return out
}

// IsRoom reports whether name is one of the six rooms reported together as "Rooms".
func IsRoom(name string) bool {
	v, ok := byKey[Key(name)]
	return ok && v.IsRoom()
}

func SameVenue(a, b string) bool {
	return Key(a) == Key(b)
}
