package models

// Destination is one place on the shared map. Records are JSON-shaped to
// stay byte-compatible with the states written by earlier app versions.
type Destination struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Country     string     `json:"country"`
	Coordinates [2]float64 `json:"coordinates"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	BestTime    string     `json:"bestTime,omitempty"`
	Image       string     `json:"image,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Visited     bool       `json:"visited"`
	Wishlist    bool       `json:"wishlist"`
	Plans       []Plan     `json:"plans,omitempty"`
	CreatedAt   string     `json:"createdAt,omitempty"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	SharedWith  string     `json:"sharedWith,omitempty"`
}

// Plan is one concrete itinerary attached to a destination.
type Plan struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Date           string `json:"date,omitempty"`
	Duration       string `json:"duration,omitempty"`
	Budget         string `json:"budget,omitempty"`
	Participants   string `json:"participants,omitempty"`
	Description    string `json:"description,omitempty"`
	Activities     string `json:"activities,omitempty"`
	Accommodation  string `json:"accommodation,omitempty"`
	Transportation string `json:"transportation,omitempty"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

// Clone returns a copy of the destination whose plan list shares no memory
// with the receiver. Plans carry only value fields, so copying the slice is
// enough to break aliasing.
func (destination Destination) Clone() Destination {
	cloned := destination
	cloned.Plans = ClonePlans(destination.Plans)
	return cloned
}

// ClonePlans copies a plan list, preserving nil for nil.
func ClonePlans(plans []Plan) []Plan {
	if plans == nil {
		return nil
	}
	cloned := make([]Plan, len(plans))
	copy(cloned, plans)
	return cloned
}

// CloneDestinations deep-copies a destination list so live session state
// never aliases the base catalog or another session's snapshot.
func CloneDestinations(destinations []Destination) []Destination {
	cloned := make([]Destination, 0, len(destinations))
	for _, destination := range destinations {
		cloned = append(cloned, destination.Clone())
	}
	return cloned
}
