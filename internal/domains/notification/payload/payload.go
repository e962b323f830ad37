// Package payload builds the JSON documents posted to the automation webhook.
// Builders are pure: the same record, meta and location give the same payload.
package payload

import (
	"desk/internal/domains/record/model"
	"time"
)

const (
	Version = 1

	TypeBookingCreated = "booking_created"
	TypeContactCreated = "contact_created"

	// StartLocalLayout is the minute-precision form of start_local_iso.
	StartLocalLayout = "2006-01-02T15:04"

	startInputLayout = model.DateLayout + " " + model.TimeLayout
)

// Meta describes the sender.
type Meta struct {
	SentAt   string `json:"sent_at"`
	AppTitle string `json:"app_title"`
	Source   string `json:"source"`
}

// Derived carries the booking start; both fields are null when date and
// time do not parse.
type Derived struct {
	StartLocalISO *string `json:"start_local_iso"`
	StartEpochMs  *int64  `json:"start_epoch_ms"`
}

type Payload struct {
	Type           string         `json:"type"`
	Version        int            `json:"version"`
	Booking        *model.Booking `json:"booking,omitempty"`
	Contact        *model.Contact `json:"contact,omitempty"`
	Derived        *Derived       `json:"derived,omitempty"`
	PreviousStatus model.Status   `json:"previous_status,omitempty"`
	Meta           Meta           `json:"meta"`
}

// NewMeta stamps sentAt in loc using the second-precision local layout.
func NewMeta(sentAt time.Time, loc *time.Location, appTitle, source string) Meta {
	return Meta{
		SentAt:   sentAt.In(loc).Format("2006-01-02T15:04:05"),
		AppTitle: appTitle,
		Source:   source,
	}
}

// Derive combines a booking date and time of day in loc.
func Derive(date, clock string, loc *time.Location) Derived {
	start, err := time.ParseInLocation(startInputLayout, date+" "+clock, loc)
	if err != nil {
		return Derived{}
	}

	iso := start.Format(StartLocalLayout)
	epoch := start.UnixMilli()

	return Derived{
		StartLocalISO: &iso,
		StartEpochMs:  &epoch,
	}
}

func Booking(booking model.Booking, meta Meta, loc *time.Location) Payload {
	derived := Derive(booking.Date, booking.Time, loc)

	return Payload{
		Type:    TypeBookingCreated,
		Version: Version,
		Booking: &booking,
		Derived: &derived,
		Meta:    meta,
	}
}

func Contact(contact model.Contact, meta Meta) Payload {
	return Payload{
		Type:    TypeContactCreated,
		Version: Version,
		Contact: &contact,
		Meta:    meta,
	}
}

// StatusChangedType names the event sent after a status update of kind.
func StatusChangedType(kind model.Kind) string {
	return string(kind) + "_status_changed"
}

func BookingStatusChanged(booking model.Booking, previous model.Status, meta Meta, loc *time.Location) Payload {
	res := Booking(booking, meta, loc)
	res.Type = StatusChangedType(model.KindBooking)
	res.PreviousStatus = previous

	return res
}

func ContactStatusChanged(contact model.Contact, previous model.Status, meta Meta) Payload {
	res := Contact(contact, meta)
	res.Type = StatusChangedType(model.KindContact)
	res.PreviousStatus = previous

	return res
}
