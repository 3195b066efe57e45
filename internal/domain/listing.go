package domain

type GenderType string

const (
	GenderBoys  GenderType = "boys"
	GenderGirls GenderType = "girls"
	GenderCoed  GenderType = "co-ed"
)

// GenderAll is the criteria value that disables the gender predicate.
const GenderAll = "all"

type Owner struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type Room struct {
	Type          string   `json:"type"`
	PricePerMonth *float64 `json:"pricePerMonth,omitempty"`
	PricePerDay   *float64 `json:"pricePerDay,omitempty"`
	TotalBeds     int      `json:"totalBeds"`
	AvailableBeds int      `json:"availableBeds"`
}

// Listing is a PG property as returned by the backend. The backend owns the
// bed-count invariant (0 <= availableBeds <= totalBeds); the client displays
// whatever it is given.
type Listing struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Area        string     `json:"area"`
	City        *string    `json:"city,omitempty"`
	Address     *string    `json:"address,omitempty"`
	GenderType  GenderType `json:"genderType"`
	HasFood     bool       `json:"hasFood"`
	Amenities   []string   `json:"amenities,omitempty"`
	Rooms       []Room     `json:"rooms,omitempty"`
	Description *string    `json:"description,omitempty"`
	Photos      []string   `json:"photos,omitempty"`
	Owner       *Owner     `json:"owner,omitempty"`
}

// FilterCriteria is the per-screen filter state. MaxBudget keeps the raw text
// the user typed: anything that does not parse to a positive number simply
// deactivates the budget predicate.
type FilterCriteria struct {
	Area      string
	Gender    string // GenderAll or a GenderType value
	FoodOnly  bool
	MaxBudget string
}

// ListingDraft is the owner-side create payload.
type ListingDraft struct {
	Name        string     `json:"name"`
	Area        string     `json:"area"`
	Address     string     `json:"address"`
	GenderType  GenderType `json:"genderType"`
	HasFood     bool       `json:"hasFood"`
	Amenities   []string   `json:"amenities,omitempty"`
	Description string     `json:"description,omitempty"`
	Rooms       []Room     `json:"rooms,omitempty"`
	Photos      []string   `json:"photos,omitempty"`
}
