package dto

import (
	"desk/infras/webhook"
	"desk/internal/domains/record/model"
	"strings"
)

type CreateBookingRequest struct {
	Customer     string `json:"customer"     validate:"required,max=255"`
	Task         string `json:"task"         validate:"required,max=255"`
	Date         string `json:"date"         validate:"required,datetime=2006-01-02"`
	Time         string `json:"time"         validate:"required,datetime=15:04"`
	Location     string `json:"location"     validate:"required,max=255"`
	Compensation string `json:"compensation" validate:"max=255"`
}

func (r *CreateBookingRequest) Normalize() {
	r.Customer = strings.TrimSpace(r.Customer)
	r.Task = strings.TrimSpace(r.Task)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Location = strings.TrimSpace(r.Location)
	r.Compensation = strings.TrimSpace(r.Compensation)
}

func (r *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		Customer:     r.Customer,
		Task:         r.Task,
		Date:         r.Date,
		Time:         r.Time,
		Location:     r.Location,
		Compensation: r.Compensation,
		Status:       model.StatusNew,
	}
}

type CreateContactRequest struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Phone   string `json:"phone"   validate:"max=64"`
	Company string `json:"company" validate:"max=255"`
	Email   string `json:"email"   validate:"required,email"`
	Comment string `json:"comment" validate:"max=5000"`
}

// Normalize trims single-line fields; the comment keeps its inner line breaks.
func (r *CreateContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Company = strings.TrimSpace(r.Company)
	r.Email = strings.TrimSpace(r.Email)
	r.Comment = model.NormalizeLineBreaks(strings.TrimSpace(r.Comment))
}

func (r *CreateContactRequest) ToModel() model.Contact {
	return model.Contact{
		Name:    r.Name,
		Phone:   r.Phone,
		Company: r.Company,
		Email:   r.Email,
		Comment: r.Comment,
		Status:  model.StatusNew,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=New InProgress Done Archived"`
}

func (r *UpdateStatusRequest) Normalize() {
	if status, ok := model.ParseStatus(r.Status); ok {
		r.Status = string(status)
	}
}

func (r *UpdateStatusRequest) ToModel() model.Status {
	return model.Status(r.Status)
}

type BookingResponse struct {
	Booking model.Booking   `json:"booking"`
	Webhook webhook.Outcome `json:"webhook"`
}

type ContactResponse struct {
	Contact model.Contact   `json:"contact"`
	Webhook webhook.Outcome `json:"webhook"`
}

type GetBookingsResponse struct {
	Bookings []model.Booking `json:"bookings"`
	Total    int             `json:"total"`
}

type GetContactsResponse struct {
	Contacts []model.Contact `json:"contacts"`
	Total    int             `json:"total"`
}

type ImportResponse struct {
	Kind     model.Kind `json:"kind"`
	Imported int        `json:"imported"`
}

type ArchiveResponse struct {
	Kind model.Kind `json:"kind"`
	URL  string     `json:"url"`
}

type StoreSettings struct {
	Driver   string `json:"driver"`
	Bookings string `json:"bookings"`
	Contacts string `json:"contacts"`
}

type WebhookSettings struct {
	Configured         bool   `json:"configured"`
	Host               string `json:"host,omitempty"`
	HeaderName         string `json:"header_name,omitempty"`
	HeaderConfigured   bool   `json:"header_configured"`
	Source             string `json:"source"`
	NotifyStatusChange bool   `json:"notify_status_change"`
}

// SettingsResponse never includes the webhook header value or the full
// webhook URL.
type SettingsResponse struct {
	AppTitle string          `json:"app_title"`
	Timezone string          `json:"timezone"`
	Store    StoreSettings   `json:"store"`
	Webhook  WebhookSettings `json:"webhook"`
	Events   bool            `json:"events"`
	Archive  bool            `json:"archive"`
}

type StatusResponse struct {
	Kind     model.Kind      `json:"kind"`
	ID       string          `json:"id"`
	Status   model.Status    `json:"status"`
	Previous model.Status    `json:"previous"`
	Changed  bool            `json:"changed"`
	Webhook  webhook.Outcome `json:"webhook"`
}
