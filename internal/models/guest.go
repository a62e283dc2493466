package models

// Attendance is a guest member's reply state. Members start out pending and
// move to attending or declining through the RSVP form.
type Attendance string

const (
	AttendancePending   Attendance = "pending"
	AttendanceAttending Attendance = "attending"
	AttendanceDeclining Attendance = "declining"
)

// Valid reports whether a is one of the three known reply states.
func (a Attendance) Valid() bool {
	switch a {
	case AttendancePending, AttendanceAttending, AttendanceDeclining:
		return true
	}
	return false
}

// Dietary preference values offered by the RSVP form.
const (
	DietaryNone       = "None"
	DietaryVegetarian = "Vegetarian"
	DietaryVegan      = "Vegan"
	DietaryJain       = "Jain"
)

// Travel modes offered by the RSVP form.
const (
	TravelFlight = "Flight"
	TravelTrain  = "Train"
	TravelCar    = "Car"
	TravelLocal  = "Local"
)

// AllergenOther is the multi-select entry that unlocks the free-text
// elaboration field on a member.
const AllergenOther = "Other"

// Allergens is the canonical allergy multi-select list shown by the form.
// Guests may also add free-text entries that are not on it.
var Allergens = []string{
	"Dairy", "Egg", "Gluten", "Peanuts", "Tree Nuts",
	"Shellfish", "Fish", "Soy", "Wheat", "Sesame",
	"Corn", "Mustard", "Sulfites", AllergenOther,
}

// GuestMember is one person within a guest party. Members have no identity
// of their own; they live and die with their parent Guest.
type GuestMember struct {
	Name              string     `json:"name" yaml:"name" firestore:"name"`
	Attendance        Attendance `json:"attendance" yaml:"attendance" firestore:"attendance"`
	DietaryPreference string     `json:"dietaryPreference" yaml:"dietaryPreference" firestore:"dietaryPreference"`
	Allergies         []string   `json:"allergies" yaml:"allergies" firestore:"allergies"`
	OtherAllergies    string     `json:"otherAllergies" yaml:"otherAllergies" firestore:"otherAllergies"`
	IsOutOfTown       bool       `json:"isOutOfTown,omitempty" yaml:"isOutOfTown,omitempty" firestore:"isOutOfTown"`
	TravelMode        string     `json:"travelMode" yaml:"travelMode" firestore:"travelMode"`
	TransportNumber   string     `json:"transportNumber,omitempty" yaml:"transportNumber,omitempty" firestore:"transportNumber"`
	ArrivalDate       string     `json:"arrivalDate,omitempty" yaml:"arrivalDate,omitempty" firestore:"arrivalDate"`
	ArrivalTime       string     `json:"arrivalTime,omitempty" yaml:"arrivalTime,omitempty" firestore:"arrivalTime"`
	ArrivalDetails    string     `json:"arrivalDetails" yaml:"arrivalDetails" firestore:"arrivalDetails"`
}

// Clone returns a copy of the member that shares no slices with the original.
func (m GuestMember) Clone() GuestMember {
	c := m
	if m.Allergies != nil {
		c.Allergies = make([]string, len(m.Allergies))
		copy(c.Allergies, m.Allergies)
	}
	return c
}

// GuestRSVP is the free-text guestbook response attached to a party.
// UpdatedAt is an RFC 3339 UTC timestamp string.
type GuestRSVP struct {
	Message      string `json:"message" yaml:"message" firestore:"message"`
	Relationship string `json:"relationship,omitempty" yaml:"relationship,omitempty" firestore:"relationship"`
	Tone         string `json:"tone,omitempty" yaml:"tone,omitempty" firestore:"tone"`
	UpdatedAt    string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty" firestore:"updatedAt"`
}

// Guest is a party sharing one invitation code. RSVP stays null until a
// response has been submitted.
type Guest struct {
	Code      string        `json:"code" yaml:"code" firestore:"code"`
	GroupName string        `json:"groupName" yaml:"groupName" firestore:"groupName"`
	Members   []GuestMember `json:"members" yaml:"members" firestore:"members"`
	RSVP      *GuestRSVP    `json:"rsvp" yaml:"rsvp" firestore:"rsvp"`
}

// Clone returns a deep copy of the guest.
func (g *Guest) Clone() *Guest {
	c := *g
	c.Members = make([]GuestMember, len(g.Members))
	for i, m := range g.Members {
		c.Members[i] = m.Clone()
	}
	if g.RSVP != nil {
		r := *g.RSVP
		c.RSVP = &r
	}
	return &c
}

// GuestUpdate carries a partial update for a stored guest. A nil field is
// left untouched; Members replaces the stored sequence wholesale, RSVP is
// field-merged into the stored response.
type GuestUpdate struct {
	Members []GuestMember
	RSVP    *GuestRSVP
}

// Apply merges the update into g in place.
func (u GuestUpdate) Apply(g *Guest) {
	if u.Members != nil {
		g.Members = u.Members
	}
	if u.RSVP != nil {
		g.RSVP = mergeRSVP(g.RSVP, u.RSVP)
	}
}

// mergeRSVP overlays non-empty submitted fields on the stored response.
// UpdatedAt is always taken from the submission so a member-only save still
// refreshes the stamp.
func mergeRSVP(stored, submitted *GuestRSVP) *GuestRSVP {
	var merged GuestRSVP
	if stored != nil {
		merged = *stored
	}
	if submitted.Message != "" {
		merged.Message = submitted.Message
	}
	if submitted.Relationship != "" {
		merged.Relationship = submitted.Relationship
	}
	if submitted.Tone != "" {
		merged.Tone = submitted.Tone
	}
	merged.UpdatedAt = submitted.UpdatedAt
	return &merged
}

// SeedGuests returns the fixed guest list written once when a storage
// backend starts out empty.
func SeedGuests() []Guest {
	return []Guest{
		{
			Code:      "GUEST001",
			GroupName: "Priya Sharma",
			Members: []GuestMember{
				{Name: "Priya Sharma", Attendance: AttendancePending, DietaryPreference: DietaryNone, Allergies: []string{}},
			},
		},
		{
			Code:      "GUEST002",
			GroupName: "Rahul & Anjali",
			Members: []GuestMember{
				{Name: "Rahul", Attendance: AttendancePending, DietaryPreference: DietaryNone, Allergies: []string{}},
				{Name: "Anjali", Attendance: AttendancePending, DietaryPreference: DietaryNone, Allergies: []string{}},
			},
		},
		{
			Code:      "FAMILY",
			GroupName: "The Patel Family",
			Members: []GuestMember{
				{Name: "Rajesh Patel", Attendance: AttendanceAttending, DietaryPreference: DietaryVegetarian, Allergies: []string{}, TravelMode: TravelCar},
				{Name: "Sunita Patel", Attendance: AttendanceAttending, DietaryPreference: DietaryVegetarian, Allergies: []string{}, TravelMode: TravelCar},
			},
			RSVP: &GuestRSVP{
				Message:      "We are so happy for you!",
				Relationship: "Family Member",
				Tone:         "Heartfelt",
				UpdatedAt:    "2026-01-01T00:00:00Z",
			},
		},
	}
}
