package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownRestaurant = errors.New("restaurant not found")
	ErrUnknownItem       = errors.New("menu item not found")
)

// Store is an immutable snapshot of the catalog. All lookups are read-only;
// construction validates the data and fails hard on programmer error.
type Store struct {
	restaurants []Restaurant
	byID        map[string]*Restaurant
}

func NewStore(restaurants []Restaurant) (*Store, error) {
	if err := validate(restaurants); err != nil {
		return nil, err
	}

	s := &Store{
		restaurants: restaurants,
		byID:        make(map[string]*Restaurant, len(restaurants)),
	}
	for i := range s.restaurants {
		s.byID[s.restaurants[i].ID] = &s.restaurants[i]
	}
	return s, nil
}

func (s *Store) Restaurants() []Restaurant {
	return s.restaurants
}

func (s *Store) FindRestaurant(id string) (*Restaurant, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, ErrUnknownRestaurant
	}
	return r, nil
}

func (s *Store) FindItem(restaurantID, itemID string) (*MenuItem, error) {
	r, err := s.FindRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	for i := range r.Menu {
		if r.Menu[i].ID == itemID {
			return &r.Menu[i], nil
		}
	}
	return nil, ErrUnknownItem
}

// --------------------------------------------------
// Ranked name search
// --------------------------------------------------

// Match ranks: exact name first, then prefix, then substring.
// Ties keep catalog declaration order.
const (
	matchExact = iota
	matchPrefix
	matchSubstring
	matchNone
)

func rank(name, query string) int {
	name = strings.ToLower(name)
	switch {
	case name == query:
		return matchExact
	case strings.HasPrefix(name, query):
		return matchPrefix
	case strings.Contains(name, query):
		return matchSubstring
	default:
		return matchNone
	}
}

// RestaurantMatch is one ranked hit from SearchRestaurants.
type RestaurantMatch struct {
	Restaurant *Restaurant
	Rank       int
}

// ItemMatch is one ranked hit from SearchItems.
type ItemMatch struct {
	Restaurant *Restaurant
	Item       *MenuItem
	Rank       int
}

// SearchRestaurants returns restaurants whose name contains the query,
// case-insensitive, best rank first.
func (s *Store) SearchRestaurants(query string) []RestaurantMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []RestaurantMatch
	for tier := matchExact; tier <= matchSubstring; tier++ {
		for i := range s.restaurants {
			if rank(s.restaurants[i].Name, query) == tier {
				out = append(out, RestaurantMatch{Restaurant: &s.restaurants[i], Rank: tier})
			}
		}
	}
	return out
}

// SearchItems returns menu items whose name contains the query. When
// restaurantID is non-empty the search is scoped to that restaurant.
func (s *Store) SearchItems(query, restaurantID string) []ItemMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []ItemMatch
	for tier := matchExact; tier <= matchSubstring; tier++ {
		for i := range s.restaurants {
			r := &s.restaurants[i]
			if restaurantID != "" && r.ID != restaurantID {
				continue
			}
			for j := range r.Menu {
				if rank(r.Menu[j].Name, query) == tier {
					out = append(out, ItemMatch{Restaurant: r, Item: &r.Menu[j], Rank: tier})
				}
			}
		}
	}
	return out
}

// --------------------------------------------------
// Construction-time invariants
// --------------------------------------------------

func validate(restaurants []Restaurant) error {
	seenRestaurants := map[string]bool{}
	for _, r := range restaurants {
		if r.ID == "" || r.Name == "" {
			return fmt.Errorf("catalog: restaurant missing id or name")
		}
		if seenRestaurants[r.ID] {
			return fmt.Errorf("catalog: duplicate restaurant id %q", r.ID)
		}
		seenRestaurants[r.ID] = true

		seenItems := map[string]bool{}
		for _, item := range r.Menu {
			if item.ID == "" || item.Name == "" {
				return fmt.Errorf("catalog: %s: item missing id or name", r.ID)
			}
			if seenItems[item.ID] {
				return fmt.Errorf("catalog: %s: duplicate item id %q", r.ID, item.ID)
			}
			seenItems[item.ID] = true

			seenSets := map[string]bool{}
			for _, set := range item.OptionSets {
				if seenSets[set.ID] {
					return fmt.Errorf("catalog: %s/%s: duplicate option set id %q", r.ID, item.ID, set.ID)
				}
				seenSets[set.ID] = true

				if set.Kind != SingleChoice && set.Kind != MultiChoice {
					return fmt.Errorf("catalog: %s/%s/%s: bad option set kind %q", r.ID, item.ID, set.ID, set.Kind)
				}
				if len(set.Options) == 0 {
					return fmt.Errorf("catalog: %s/%s/%s: option set has no options", r.ID, item.ID, set.ID)
				}
				seenOptions := map[string]bool{}
				for _, opt := range set.Options {
					if seenOptions[opt.ID] {
						return fmt.Errorf("catalog: %s/%s/%s: duplicate option id %q", r.ID, item.ID, set.ID, opt.ID)
					}
					seenOptions[opt.ID] = true
				}
			}
		}
	}
	return nil
}
