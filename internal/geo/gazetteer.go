package geo

import (
	"sort"
	"strings"

	"stayquery/internal/domain"
)

type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

// Gazetteer is an immutable name -> place table. Keys are lower-cased and
// iterated in declaration order.
type Gazetteer struct {
	keys   []string
	places map[string]Place
}

func New(ds []domain.Destination) *Gazetteer {
	sorted := make([]domain.Destination, len(ds))
	copy(sorted, ds)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	g := &Gazetteer{places: make(map[string]Place, len(sorted))}
	for _, d := range sorted {
		k := normalize(d.Key)
		if k == "" {
			continue
		}
		if _, dup := g.places[k]; dup {
			continue
		}
		g.keys = append(g.keys, k)
		g.places[k] = Place{Name: d.Name, Latitude: d.Latitude, Longitude: d.Longitude, Country: d.Country}
	}
	return g
}

// Default returns the built-in table.
func Default() *Gazetteer { return New(Destinations()) }

func (g *Gazetteer) Lookup(name string) (Place, bool) {
	p, ok := g.places[normalize(name)]
	return p, ok
}

// Keys returns a copy of the keys in declaration order.
func (g *Gazetteer) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

func (g *Gazetteer) Len() int { return len(g.keys) }

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
