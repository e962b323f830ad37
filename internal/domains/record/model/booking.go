package model

const (
	BookingTableName  = "bookings"
	BookingEntityName = "booking"

	FieldID           = "id"
	FieldCreatedAt    = "created_at"
	FieldCustomer     = "customer"
	FieldTask         = "task"
	FieldDate         = "date"
	FieldTime         = "time"
	FieldLocation     = "location"
	FieldCompensation = "compensation"
	FieldStatus       = "status"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	bookingColumns = []string{
		FieldID, FieldCreatedAt, FieldCustomer, FieldTask, FieldDate,
		FieldTime, FieldLocation, FieldCompensation, FieldStatus,
	}
	bookingRequired = []string{FieldCustomer, FieldTask, FieldDate, FieldTime, FieldLocation}
)

// Booking keeps date and time as the submitted text so a status change or an
// export/import round trip never rewrites them.
type Booking struct {
	ID           string `db:"id"           json:"id"`
	CreatedAt    string `db:"created_at"   json:"created_at"`
	Customer     string `db:"customer"     json:"customer"`
	Task         string `db:"task"         json:"task"`
	Date         string `db:"date"         json:"date"`
	Time         string `db:"time"         json:"time"`
	Location     string `db:"location"     json:"location"`
	Compensation string `db:"compensation" json:"compensation"`
	Status       Status `db:"status"       json:"status"`
}

func (Booking) Kind() Kind          { return KindBooking }
func (Booking) Columns() []string   { return bookingColumns }
func (Booking) Required() []string  { return bookingRequired }
func (b Booking) GetID() string     { return b.ID }
func (b Booking) GetStatus() Status { return b.Status }

func (b Booking) Values() []string {
	return []string{
		b.ID, b.CreatedAt, b.Customer, b.Task, b.Date,
		b.Time, b.Location, b.Compensation, string(b.Status),
	}
}

func (Booking) FromValues(values map[string]string) Booking {
	return Booking{
		ID:           values[FieldID],
		CreatedAt:    values[FieldCreatedAt],
		Customer:     values[FieldCustomer],
		Task:         values[FieldTask],
		Date:         values[FieldDate],
		Time:         values[FieldTime],
		Location:     values[FieldLocation],
		Compensation: values[FieldCompensation],
		Status:       NormalizeStatus(values[FieldStatus]),
	}
}

func (b Booking) WithIdentity(id, createdAt string) Booking {
	b.ID = id
	b.CreatedAt = createdAt

	return b
}

func (b Booking) WithStatus(status Status) Booking {
	b.Status = status

	return b
}
