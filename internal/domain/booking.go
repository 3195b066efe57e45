package domain

type StayType string

const (
	StayDaily   StayType = "daily"
	StayMonthly StayType = "monthly"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingDraft is the client-local form state. It is validated, turned into a
// BookingRequest and submitted once; it is never retried automatically.
type BookingDraft struct {
	ListingID   string
	RoomType    string
	StayType    StayType
	CheckInDate string // YYYY-MM-DD
	Days        int    // stayType=daily
	Months      int    // stayType=monthly
}

// BookingRequest is the wire form of a submission. Days and Months are
// mutually exclusive: exactly one is set, per the draft's stay type.
type BookingRequest struct {
	ListingID   string   `json:"pgId"`
	RoomType    string   `json:"roomType"`
	StayType    StayType `json:"stayType"`
	CheckInDate string   `json:"checkInDate"`
	Days        *int     `json:"days,omitempty"`
	Months      *int     `json:"months,omitempty"`
}

// BookingUser is the booking maker as shown to owners.
type BookingUser struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// Booking is the server's authoritative record: status and totalAmount are
// computed remotely and never recomputed on the client.
type Booking struct {
	ID          string        `json:"_id"`
	Listing     *Listing      `json:"pg"`
	RoomType    string        `json:"roomType"`
	StayType    StayType      `json:"stayType"`
	CheckInDate string        `json:"checkInDate"`
	Days        *int          `json:"days,omitempty"`
	Months      *int          `json:"months,omitempty"`
	TotalAmount float64       `json:"totalAmount"`
	Status      BookingStatus `json:"status"`
	User        *BookingUser  `json:"user,omitempty"`
}
