package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

const nearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

// Place is the slice of a Places result the app consumes. The ordering core
// only cross-references Name and ID when matching voice-selected restaurants.
type Place struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Vicinity         string  `json:"vicinity"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
	PriceLevel       int     `json:"price_level"`
	PhotoRef         string  `json:"photo_ref,omitempty"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

type Client struct {
	apiKey string
	apiURL string
	http   *http.Client
}

func NewClient() *Client {
	return &Client{
		apiKey: os.Getenv("GOOGLE_API_KEY"),
		apiURL: nearbySearchURL,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NearbySearch looks up restaurants around a point. Radius defaults to 1500m,
// matching the parser defaults on the voice side.
func (c *Client) NearbySearch(ctx context.Context, lat, lng float64, keyword string, radius int) ([]Place, error) {
	if c.apiKey == "" {
		return nil, errors.New("missing GOOGLE_API_KEY")
	}
	if radius <= 0 {
		radius = 1500
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("type", "restaurant")
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api error: %s", string(raw))
	}

	var parsed struct {
		Results []struct {
			PlaceID          string  `json:"place_id"`
			Name             string  `json:"name"`
			Vicinity         string  `json:"vicinity"`
			Rating           float64 `json:"rating"`
			UserRatingsTotal int     `json:"user_ratings_total"`
			PriceLevel       int     `json:"price_level"`
			Photos           []struct {
				PhotoReference string `json:"photo_reference"`
			} `json:"photos"`
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		p := Place{
			ID:               r.PlaceID,
			Name:             r.Name,
			Vicinity:         r.Vicinity,
			Rating:           r.Rating,
			UserRatingsTotal: r.UserRatingsTotal,
			PriceLevel:       r.PriceLevel,
			Lat:              r.Geometry.Location.Lat,
			Lng:              r.Geometry.Location.Lng,
		}
		if len(r.Photos) > 0 {
			p.PhotoRef = r.Photos[0].PhotoReference
		}
		places = append(places, p)
	}
	return places, nil
}

// PhotoURL builds the Maps photo URL for a photo reference.
func (c *Client) PhotoURL(photoRef string) string {
	if photoRef == "" {
		return ""
	}
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/photo?maxwidth=400&photoreference=%s&key=%s",
		photoRef,
		c.apiKey,
	)
}

// PriceRange turns a Places price level into a display label.
func PriceRange(priceLevel int) string {
	switch priceLevel {
	case 0:
		return "Free"
	case 1:
		return "₹ (Inexpensive)"
	case 2:
		return "₹₹ (Moderate)"
	case 3:
		return "₹₹₹ (Expensive)"
	case 4:
		return "₹₹₹₹ (Very Expensive)"
	default:
		return "N/A"
	}
}
