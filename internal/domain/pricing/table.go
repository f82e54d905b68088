package pricing

import (
	"sort"

	"venue-boxoffice/internal/domain/venue"

	"github.com/shopspring/decimal"
)

type RuleKind string

const (
	RuleFlat   RuleKind = "flat"
	RuleHourly RuleKind = "hourly"
	RuleTiered RuleKind = "tiered"
)

// Tier applies while the requested hours are at most MaxHours.
type Tier struct {
	MaxHours decimal.Decimal
	Price    decimal.Decimal
}

// Rule prices one (venue, day type, booking type) combination.
// Flat rules use Price; hourly rules use Rate and MinHours; tiered rules walk
// Tiers in ascending MaxHours order and fall back to Price (full access).
type Rule struct {
	Kind     RuleKind
	Price    decimal.Decimal
	Rate     decimal.Decimal
	MinHours decimal.Decimal
	Tiers    []Tier
}

func Flat(price int64) Rule {
	return Rule{Kind: RuleFlat, Price: decimal.NewFromInt(price)}
}

func PerHour(rate, minHours int64) Rule {
	return Rule{Kind: RuleHourly, Rate: decimal.NewFromInt(rate), MinHours: decimal.NewFromInt(minHours)}
}

func Tiered(fullAccess int64, tiers ...Tier) Rule {
	sorted := append([]Tier(nil), tiers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MaxHours.LessThan(sorted[j].MaxHours) })
	return Rule{Kind: RuleTiered, Price: decimal.NewFromInt(fullAccess), Tiers: sorted}
}

func UpTo(maxHours, price int64) Tier {
	return Tier{MaxHours: decimal.NewFromInt(maxHours), Price: decimal.NewFromInt(price)}
}

type Key struct {
	Venue       string
	DayType     DayType
	BookingType BookingType
}

type Entry struct {
	Key  Key
	Rule Rule
}

// Table is read-only after construction.
type Table struct {
	rules map[Key]Rule
}

func NewTable(entries []Entry) *Table {
	rules := make(map[Key]Rule, len(entries))
	for _, e := range entries {
		k := e.Key
		k.Venue = venue.Key(k.Venue)
		rules[k] = e.Rule
	}
	return &Table{rules: rules}
}

func (t *Table) Lookup(venueName string, day DayType, bt BookingType) (Rule, bool) {
	r, ok := t.rules[Key{Venue: venue.Key(venueName), DayType: day, BookingType: bt}]
	return r, ok
}

// Entries lists every rule in a stable order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.rules))
	for k, r := range t.rules {
		out = append(out, Entry{Key: k, Rule: r})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Key, out[j].Key
		if a.Venue != b.Venue {
			return a.Venue < b.Venue
		}
		if a.DayType != b.DayType {
			return a.DayType < b.DayType
		}
		return a.BookingType < b.BookingType
	})
	return out
}

func (t *Table) Len() int {
	return len(t.rules)
}

// byDay expands a (Mon-Thu, Fri-Sat, Sun) triple into table entries.
func byDay(venueName string, bt BookingType, monThu, friSat, sun Rule) []Entry {
	return []Entry{
		{Key: Key{Venue: venueName, DayType: MondayToThursday, BookingType: bt}, Rule: monThu},
		{Key: Key{Venue: venueName, DayType: FridayToSaturday, BookingType: bt}, Rule: friSat},
		{Key: Key{Venue: venueName, DayType: Sunday, BookingType: bt}, Rule: sun},
	}
}

func everyDay(venueName string, bt BookingType, r Rule) []Entry {
	return byDay(venueName, bt, r, r, r)
}

const hallMinHours = 3

type roomRates struct {
	halfDay [3]int64
	fullDay [3]int64
}

func roomEntries(name string, rates roomRates) []Entry {
	var out []Entry
	for _, bt := range []BookingType{Morning, Afternoon} {
		out = append(out, byDay(name, bt, Flat(rates.halfDay[0]), Flat(rates.halfDay[1]), Flat(rates.halfDay[2]))...)
	}
	out = append(out, byDay(name, FullDay, Flat(rates.fullDay[0]), Flat(rates.fullDay[1]), Flat(rates.fullDay[2]))...)
	return out
}

func defaultEntries() []Entry {
	var e []Entry

	e = append(e, byDay(venue.MainHall, Hourly, PerHour(325, hallMinHours), PerHour(375, hallMinHours), PerHour(350, hallMinHours))...)
	e = append(e, byDay(venue.MainHall, Evening, Flat(1850), Flat(2200), Flat(1950))...)
	e = append(e, byDay(venue.MainHall, FullDay, Flat(3800), Flat(4200), Flat(3900))...)

	e = append(e, byDay(venue.SmallHall, Hourly, PerHour(225, hallMinHours), PerHour(250, hallMinHours), PerHour(240, hallMinHours))...)
	e = append(e, byDay(venue.SmallHall, Evening, Flat(950), Flat(1300), Flat(1100))...)
	e = append(e, byDay(venue.SmallHall, FullDay, Flat(2200), Flat(2500), Flat(2300))...)

	e = append(e, byDay(venue.RehearsalSpace, Hourly, PerHour(60, hallMinHours), PerHour(75, hallMinHours), PerHour(70, hallMinHours))...)
	e = append(e, byDay(venue.RehearsalSpace, FullDay, Flat(240), Flat(320), Flat(280))...)
	e = append(e, everyDay(venue.RehearsalSpace, Weekly, Tiered(2400, UpTo(8, 1000)))...)

	e = append(e, byDay(venue.EntireVenue, Evening, Flat(7000), Flat(9500), Flat(8500))...)
	e = append(e, byDay(venue.EntireVenue, FullDay, Flat(12000), Flat(16000), Flat(14000))...)

	large := roomRates{halfDay: [3]int64{120, 140, 130}, fullDay: [3]int64{200, 240, 220}}
	medium := roomRates{halfDay: [3]int64{95, 110, 100}, fullDay: [3]int64{160, 190, 175}}
	small := roomRates{halfDay: [3]int64{75, 90, 85}, fullDay: [3]int64{130, 150, 140}}

	e = append(e, roomEntries(venue.GreenRoom, large)...)
	e = append(e, roomEntries(venue.GlobeRoom, large)...)
	e = append(e, roomEntries(venue.BronteBoardroom, medium)...)
	e = append(e, roomEntries(venue.ChekhovChamber, medium)...)
	e = append(e, roomEntries(venue.DickensDen, small)...)
	e = append(e, roomEntries(venue.PoeParlor, small)...)

	return e
}

var defaultTable = NewTable(defaultEntries())

// DefaultTable is the venue's published rate card, exclusive of VAT.
func DefaultTable() *Table {
	return defaultTable
}
