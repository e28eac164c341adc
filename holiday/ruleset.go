package holiday

import (
	"fmt"
	"time"
)

type Holiday struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

// Ruleset produces the public holidays of one country (or region) for a year.
type Ruleset interface {
	Name() string
	Holidays(year int) []Holiday
}

type fixed struct {
	month time.Month
	day   int
	name  string
}

// movable holidays are offsets in days from Easter Sunday.
type movable struct {
	offset int
	name   string
}

type rules struct {
	name    string
	fixed   []fixed
	movable []movable
}

func (r *rules) Name() string {
	return r.name
}

func (r *rules) Holidays(year int) []Holiday {
	hs := make([]Holiday, 0, len(r.fixed)+len(r.movable))
	for _, f := range r.fixed {
		hs = append(hs, Holiday{
			Date: time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC),
			Name: f.name,
		})
	}
	if len(r.movable) == 0 {
		return hs
	}
	easter := Easter(year)
	for _, m := range r.movable {
		hs = append(hs, Holiday{
			Date: easter.AddDate(0, 0, m.offset),
			Name: m.name,
		})
	}
	return hs
}

var franceFixed = []fixed{
	{time.January, 1, "Jour de l'an"},
	{time.May, 1, "Fête du Travail"},
	{time.May, 8, "Victoire 1945"},
	{time.July, 14, "Fête nationale"},
	{time.August, 15, "Assomption"},
	{time.November, 1, "Toussaint"},
	{time.November, 11, "Armistice"},
	{time.December, 25, "Noël"},
}

var franceMovable = []movable{
	{1, "Lundi de Pâques"},
	{39, "Ascension"},
	{50, "Lundi de Pentecôte"},
}

var (
	France Ruleset = &rules{
		name:    "fr",
		fixed:   franceFixed,
		movable: franceMovable,
	}

	// AlsaceMoselle adds the two local holidays of Bas-Rhin, Haut-Rhin and Moselle.
	AlsaceMoselle Ruleset = &rules{
		name:    "fr-alsace-moselle",
		fixed:   append(append([]fixed{}, franceFixed...), fixed{time.December, 26, "Saint-Étienne"}),
		movable: append(append([]movable{}, franceMovable...), movable{-2, "Vendredi saint"}),
	}

	// None has no public holidays; only weekends are non-working.
	None Ruleset = &rules{name: "none"}
)

var rulesets = map[string]Ruleset{
	France.Name():        France,
	AlsaceMoselle.Name(): AlsaceMoselle,
	None.Name():          None,
}

func Lookup(code string) (Ruleset, error) {
	rs, ok := rulesets[code]
	if !ok {
		return nil, fmt.Errorf("unknown holiday ruleset: %q", code)
	}
	return rs, nil
}
