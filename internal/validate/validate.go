// Package validate checks and normalizes inbound RSVP submissions before
// they reach storage. Everything here is pure; the only clock involved is
// passed in by the caller.
package validate

import (
	"fmt"
	"strings"
	"time"

	"wedding-site/internal/models"
)

// Submission is the decoded body of an RSVP update request. RSVP is
// optional; a nil value leaves the stored response untouched.
type Submission struct {
	Members []models.GuestMember `json:"members"`
	RSVP    *models.GuestRSVP    `json:"rsvp"`
}

// Error is a client-correctable validation failure. The message names the
// failing member and requirement.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errorf(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Check validates the submission shape. Each member must have a non-empty
// trimmed name and a known attendance value; the member list itself must not
// be empty.
func Check(sub Submission) error {
	if len(sub.Members) == 0 {
		return errorf("members must be a non-empty list")
	}
	for i, m := range sub.Members {
		if strings.TrimSpace(m.Name) == "" {
			return errorf("member %d: name must not be empty", i+1)
		}
		if !m.Attendance.Valid() {
			return errorf("member %d: attendance must be one of pending, attending or declining", i+1)
		}
	}
	return nil
}

// Normalize trims every string field, drops empty allergy entries, and, when
// an RSVP is present, trims its fields and stamps UpdatedAt with now.
func Normalize(sub Submission, now time.Time) models.GuestUpdate {
	members := make([]models.GuestMember, len(sub.Members))
	for i, m := range sub.Members {
		m.Name = strings.TrimSpace(m.Name)
		m.DietaryPreference = strings.TrimSpace(m.DietaryPreference)
		m.OtherAllergies = strings.TrimSpace(m.OtherAllergies)
		m.TravelMode = strings.TrimSpace(m.TravelMode)
		m.TransportNumber = strings.TrimSpace(m.TransportNumber)
		m.ArrivalDate = strings.TrimSpace(m.ArrivalDate)
		m.ArrivalTime = strings.TrimSpace(m.ArrivalTime)
		m.ArrivalDetails = strings.TrimSpace(m.ArrivalDetails)

		allergies := make([]string, 0, len(m.Allergies))
		for _, a := range m.Allergies {
			if t := strings.TrimSpace(a); t != "" {
				allergies = append(allergies, t)
			}
		}
		m.Allergies = allergies
		members[i] = m
	}

	upd := models.GuestUpdate{Members: members}
	if sub.RSVP != nil {
		r := models.GuestRSVP{
			Message:      strings.TrimSpace(sub.RSVP.Message),
			Relationship: strings.TrimSpace(sub.RSVP.Relationship),
			Tone:         strings.TrimSpace(sub.RSVP.Tone),
			UpdatedAt:    now.UTC().Format(time.RFC3339),
		}
		upd.RSVP = &r
	}
	return upd
}
