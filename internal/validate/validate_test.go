package validate

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"wedding-site/internal/models"
)

func member(name string, att models.Attendance) models.GuestMember {
	return models.GuestMember{Name: name, Attendance: att, Allergies: []string{}}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		sub     Submission
		wantErr string
	}{
		{
			name:    "empty member list",
			sub:     Submission{Members: []models.GuestMember{}},
			wantErr: "non-empty",
		},
		{
			name:    "nil member list",
			sub:     Submission{},
			wantErr: "non-empty",
		},
		{
			name:    "blank name",
			sub:     Submission{Members: []models.GuestMember{member("   ", models.AttendanceAttending)}},
			wantErr: "member 1: name",
		},
		{
			name: "blank name names the failing member",
			sub: Submission{Members: []models.GuestMember{
				member("Priya", models.AttendanceAttending),
				member("", models.AttendancePending),
			}},
			wantErr: "member 2: name",
		},
		{
			name:    "unknown attendance",
			sub:     Submission{Members: []models.GuestMember{member("Priya", "perhaps")}},
			wantErr: "member 1: attendance",
		},
		{
			name: "valid single member",
			sub:  Submission{Members: []models.GuestMember{member("Priya", models.AttendancePending)}},
		},
		{
			name: "valid with rsvp",
			sub: Submission{
				Members: []models.GuestMember{member("Priya", models.AttendanceDeclining)},
				RSVP:    &models.GuestRSVP{Message: "So sorry to miss it"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.sub)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Check() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Check() = nil, want error containing %q", tt.wantErr)
			}
			var verr *Error
			if !errors.As(err, &verr) {
				t.Errorf("Check() error type = %T, want *Error", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Check() = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeTrimsMembers(t *testing.T) {
	sub := Submission{Members: []models.GuestMember{{
		Name:              "  Priya Sharma  ",
		Attendance:        models.AttendanceAttending,
		DietaryPreference: " Vegan ",
		Allergies:         []string{" Dairy ", "", "  ", "Other"},
		OtherAllergies:    " kiwi ",
		TravelMode:        " Flight ",
		TransportNumber:   " AI-202 ",
		ArrivalDate:       " 2026-10-24 ",
		ArrivalTime:       " 14:30 ",
		ArrivalDetails:    "  arriving with the Mehtas ",
	}}}

	upd := Normalize(sub, time.Now())
	got := upd.Members[0]

	want := models.GuestMember{
		Name:              "Priya Sharma",
		Attendance:        models.AttendanceAttending,
		DietaryPreference: "Vegan",
		Allergies:         []string{"Dairy", "Other"},
		OtherAllergies:    "kiwi",
		TravelMode:        "Flight",
		TransportNumber:   "AI-202",
		ArrivalDate:       "2026-10-24",
		ArrivalTime:       "14:30",
		ArrivalDetails:    "arriving with the Mehtas",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalized member = %+v, want %+v", got, want)
	}
	if upd.RSVP != nil {
		t.Errorf("upd.RSVP = %+v, want nil when absent", upd.RSVP)
	}
}

func TestNormalizeStampsRSVP(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	sub := Submission{
		Members: []models.GuestMember{member("Priya", models.AttendanceAttending)},
		RSVP:    &models.GuestRSVP{Message: "  With all our love  ", Relationship: " Friend ", Tone: " Playful "},
	}

	upd := Normalize(sub, now)
	if upd.RSVP == nil {
		t.Fatal("upd.RSVP = nil, want stamped rsvp")
	}
	if upd.RSVP.Message != "With all our love" || upd.RSVP.Relationship != "Friend" || upd.RSVP.Tone != "Playful" {
		t.Errorf("rsvp fields not trimmed: %+v", upd.RSVP)
	}
	if upd.RSVP.UpdatedAt != "2026-03-15T13:00:00Z" {
		t.Errorf("updatedAt = %q, want UTC RFC 3339 stamp", upd.RSVP.UpdatedAt)
	}
}

func TestNormalizeIsPure(t *testing.T) {
	orig := []string{" Dairy ", ""}
	sub := Submission{Members: []models.GuestMember{{
		Name:       " Priya ",
		Attendance: models.AttendancePending,
		Allergies:  orig,
	}}}

	Normalize(sub, time.Now())

	if orig[0] != " Dairy " || orig[1] != "" {
		t.Errorf("input allergies mutated: %v", orig)
	}
}
