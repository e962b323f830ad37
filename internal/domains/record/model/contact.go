package model

const (
	ContactTableName  = "contacts"
	ContactEntityName = "contact"

	FieldName    = "name"
	FieldPhone   = "phone"
	FieldCompany = "company"
	FieldEmail   = "email"
	FieldComment = "comment"
)

var (
	contactColumns = []string{
		FieldID, FieldCreatedAt, FieldName, FieldPhone, FieldCompany,
		FieldEmail, FieldComment, FieldStatus,
	}
	contactRequired = []string{FieldName, FieldEmail}
)

type Contact struct {
	ID        string `db:"id"         json:"id"`
	CreatedAt string `db:"created_at" json:"created_at"`
	Name      string `db:"name"       json:"name"`
	Phone     string `db:"phone"      json:"phone"`
	Company   string `db:"company"    json:"company"`
	Email     string `db:"email"      json:"email"`
	Comment   string `db:"comment"    json:"comment"`
	Status    Status `db:"status"     json:"status"`
}

func (Contact) Kind() Kind          { return KindContact }
func (Contact) Columns() []string   { return contactColumns }
func (Contact) Required() []string  { return contactRequired }
func (c Contact) GetID() string     { return c.ID }
func (c Contact) GetStatus() Status { return c.Status }

func (c Contact) Values() []string {
	return []string{
		c.ID, c.CreatedAt, c.Name, c.Phone, c.Company,
		c.Email, c.Comment, string(c.Status),
	}
}

func (Contact) FromValues(values map[string]string) Contact {
	return Contact{
		ID:        values[FieldID],
		CreatedAt: values[FieldCreatedAt],
		Name:      values[FieldName],
		Phone:     values[FieldPhone],
		Company:   values[FieldCompany],
		Email:     values[FieldEmail],
		Comment:   values[FieldComment],
		Status:    NormalizeStatus(values[FieldStatus]),
	}
}

func (c Contact) WithIdentity(id, createdAt string) Contact {
	c.ID = id
	c.CreatedAt = createdAt

	return c
}

func (c Contact) WithStatus(status Status) Contact {
	c.Status = status

	return c
}
