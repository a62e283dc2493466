// Package rsvpform holds the client-side state of the RSVP form: one
// editable draft per guest member, decoupled from the record it was loaded
// from, with submission scoped to a single member at a time.
package rsvpform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"wedding-site/internal/models"
	"wedding-site/internal/storage"
)

// SubmitState is a member card's display state.
type SubmitState string

const (
	StateIdle    SubmitState = "idle"
	StateSaving  SubmitState = "saving"
	StateSuccess SubmitState = "success"
	StateError   SubmitState = "error"
)

// ErrConnectivity is the generic error shown when a submission fails for
// any reason; the card never surfaces backend detail.
var ErrConnectivity = errors.New("could not connect to the server")

// DemoCodes are the invitation codes that simulate a successful save when
// no live backend is reachable. Only honored when demo mode is enabled.
var DemoCodes = []string{"GUEST001", "GUEST002", "FAMILY"}

// Submitter sends an RSVP submission to the backend.
type Submitter interface {
	SubmitRSVP(ctx context.Context, code string, members []models.GuestMember, rsvp *models.GuestRSVP) (*models.Guest, error)
}

// MemberState pairs the last server-confirmed value of a member with the
// guest's editable draft. Submission replaces Confirmed only on success.
type MemberState struct {
	Confirmed models.GuestMember
	Draft     models.GuestMember
	State     SubmitState
	Err       error
}

// Dropdown identifies the single field-level dropdown that may be open
// across all member cards.
type Dropdown struct {
	Card  int
	Field string
}

// Form is the state controller for one guest party's RSVP form. All methods
// are safe for concurrent use; each member's submission runs independently.
type Form struct {
	mu        sync.Mutex
	code      string
	groupName string
	members   []MemberState
	active    *Dropdown

	api       Submitter
	demoCodes map[string]struct{}
	demoDelay time.Duration
}

// Option configures a Form.
type Option func(*Form)

// WithDemoCodes enables the demo fallback for the given invitation codes:
// a failed submission is treated as a success after a short delay. Meant
// for demonstrations without a live backend, never for production.
func WithDemoCodes(codes ...string) Option {
	return func(f *Form) {
		for _, c := range codes {
			f.demoCodes[storage.NormalizeCode(c)] = struct{}{}
		}
	}
}

// WithDemoDelay overrides the artificial delay of the demo fallback.
func WithDemoDelay(d time.Duration) Option {
	return func(f *Form) { f.demoDelay = d }
}

// New deep-copies the guest's members into editable drafts. The form does
// not re-sync with the server while open.
func New(guest *models.Guest, api Submitter, opts ...Option) *Form {
	f := &Form{
		code:      guest.Code,
		groupName: guest.GroupName,
		api:       api,
		demoCodes: make(map[string]struct{}),
		demoDelay: 800 * time.Millisecond,
	}
	f.members = make([]MemberState, len(guest.Members))
	for i, m := range guest.Members {
		f.members[i] = MemberState{
			Confirmed: m.Clone(),
			Draft:     m.Clone(),
			State:     StateIdle,
		}
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Code() string      { return f.code }
func (f *Form) GroupName() string { return f.groupName }

func (f *Form) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.members)
}

// Member returns a snapshot of one member's state.
func (f *Form) Member(i int) (MemberState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.state(i)
	if err != nil {
		return MemberState{}, err
	}
	return snapshot(s), nil
}

// Members returns a snapshot of every member's state in display order.
func (f *Form) Members() []MemberState {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]MemberState, len(f.members))
	for i := range f.members {
		out[i] = snapshot(&f.members[i])
	}
	return out
}

// SetAttendance flips a member to attending or declining. There is no path
// back to pending once a reply has been chosen.
func (f *Form) SetAttendance(i int, att models.Attendance) error {
	if att != models.AttendanceAttending && att != models.AttendanceDeclining {
		return fmt.Errorf("attendance can only be set to %s or %s", models.AttendanceAttending, models.AttendanceDeclining)
	}
	return f.edit(i, func(m *models.GuestMember) {
		m.Attendance = att
	})
}

// SetDietaryPreference records the member's dietary choice.
func (f *Form) SetDietaryPreference(i int, pref string) error {
	return f.edit(i, func(m *models.GuestMember) {
		m.DietaryPreference = pref
	})
}

// ToggleAllergy adds the label to the member's allergy set, or removes it
// when already present. The set never holds duplicates.
func (f *Form) ToggleAllergy(i int, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errors.New("allergy label must not be empty")
	}
	return f.edit(i, func(m *models.GuestMember) {
		for j, a := range m.Allergies {
			if a == label {
				m.Allergies = append(m.Allergies[:j], m.Allergies[j+1:]...)
				return
			}
		}
		m.Allergies = append(m.Allergies, label)
	})
}

// SetOtherAllergies records the free-text elaboration shown when the
// "Other" allergy tag is selected.
func (f *Form) SetOtherAllergies(i int, text string) error {
	return f.edit(i, func(m *models.GuestMember) {
		m.OtherAllergies = text
	})
}

// SetOutOfTown gates the travel block. Turning it off hides the travel
// fields but keeps their values.
func (f *Form) SetOutOfTown(i int, outOfTown bool) error {
	return f.edit(i, func(m *models.GuestMember) {
		m.IsOutOfTown = outOfTown
	})
}

func (f *Form) SetTravelMode(i int, mode string) error {
	return f.edit(i, func(m *models.GuestMember) { m.TravelMode = mode })
}

func (f *Form) SetTransportNumber(i int, number string) error {
	return f.edit(i, func(m *models.GuestMember) { m.TransportNumber = number })
}

func (f *Form) SetArrivalDate(i int, date string) error {
	return f.edit(i, func(m *models.GuestMember) { m.ArrivalDate = date })
}

func (f *Form) SetArrivalTime(i int, t string) error {
	return f.edit(i, func(m *models.GuestMember) { m.ArrivalTime = t })
}

func (f *Form) SetArrivalDetails(i int, details string) error {
	return f.edit(i, func(m *models.GuestMember) { m.ArrivalDetails = details })
}

// ResetSuccess puts a saved card back into the editable state without
// changing any field ("Modify Response").
func (f *Form) ResetSuccess(i int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.state(i)
	if err != nil {
		return err
	}
	if s.State == StateSuccess {
		s.State = StateIdle
	}
	return nil
}

// ToggleDropdown opens the dropdown for (card, field), closing whatever was
// open anywhere else, or closes it when it is already the active one. The
// owning card is elevated while its dropdown is open.
func (f *Form) ToggleDropdown(card int, field string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.state(card); err != nil {
		return err
	}
	if f.active != nil && f.active.Card == card && f.active.Field == field {
		f.active = nil
		return nil
	}
	f.active = &Dropdown{Card: card, Field: field}
	return nil
}

// CloseDropdowns models a click outside any card.
func (f *Form) CloseDropdowns() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = nil
}

// ActiveDropdown reports the single open dropdown, if any.
func (f *Form) ActiveDropdown() (Dropdown, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active == nil {
		return Dropdown{}, false
	}
	return *f.active, true
}

// CardElevated reports whether card i owns the open dropdown and should sit
// above its siblings.
func (f *Form) CardElevated(i int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active != nil && f.active.Card == i
}

// Submit saves member i's response. The request carries every member's
// current draft plus an empty guestbook placeholder, but only card i moves
// through saving/success/error. Submissions for different members may run
// concurrently; a member with a submission in flight cannot be resubmitted.
func (f *Form) Submit(ctx context.Context, i int) error {
	f.mu.Lock()
	s, err := f.state(i)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	if s.State == StateSaving {
		f.mu.Unlock()
		return fmt.Errorf("member %d: submission already in progress", i+1)
	}
	s.State = StateSaving
	s.Err = nil
	drafts := make([]models.GuestMember, len(f.members))
	for j := range f.members {
		drafts[j] = f.members[j].Draft.Clone()
	}
	code := f.code
	f.mu.Unlock()

	guest, err := f.api.SubmitRSVP(ctx, code, drafts, &models.GuestRSVP{})
	if err != nil {
		if f.isDemoCode(code) {
			// Demo sites have no live backend; pretend the save took a
			// moment and went through.
			time.Sleep(f.demoDelay)
			f.confirm(i, drafts[i])
			return nil
		}
		f.mu.Lock()
		f.members[i].State = StateError
		f.members[i].Err = ErrConnectivity
		f.mu.Unlock()
		return ErrConnectivity
	}

	confirmed := drafts[i]
	if guest != nil && i < len(guest.Members) {
		// Adopt the server's sanitized copy as the confirmed value.
		confirmed = guest.Members[i].Clone()
	}
	f.confirm(i, confirmed)
	return nil
}

func (f *Form) confirm(i int, confirmed models.GuestMember) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &f.members[i]
	s.Confirmed = confirmed
	s.State = StateSuccess
	s.Err = nil
}

// edit applies a draft change and clears a stale success or error state for
// that member. A submission already in flight is left alone.
func (f *Form) edit(i int, apply func(*models.GuestMember)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.state(i)
	if err != nil {
		return err
	}
	apply(&s.Draft)
	if s.State == StateSuccess || s.State == StateError {
		s.State = StateIdle
		s.Err = nil
	}
	return nil
}

func (f *Form) state(i int) (*MemberState, error) {
	if i < 0 || i >= len(f.members) {
		return nil, fmt.Errorf("no member at index %d", i)
	}
	return &f.members[i], nil
}

func (f *Form) isDemoCode(code string) bool {
	_, ok := f.demoCodes[storage.NormalizeCode(code)]
	return ok
}

func snapshot(s *MemberState) MemberState {
	return MemberState{
		Confirmed: s.Confirmed.Clone(),
		Draft:     s.Draft.Clone(),
		State:     s.State,
		Err:       s.Err,
	}
}
