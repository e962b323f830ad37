package model

import record "desk/internal/domains/record/model"

const (
	TitleSeparator = " – "

	IconDate         = "📅"
	IconLocation     = "📍"
	IconCompensation = "💰"
	IconPhone        = "📞"
	IconEmail        = "✉️"
)

// Card is a read-only view of one record on the board.
type Card struct {
	Kind        record.Kind   `json:"kind"`
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      record.Status `json:"status"`
}

type Column struct {
	Status record.Status `json:"status"`
	Cards  []Card        `json:"cards"`
}

// Board holds one column per status in display order.
type Board struct {
	Columns []Column `json:"columns"`
	Total   int      `json:"total"`
}

// Column returns the cards filed under status.
func (b Board) Column(status record.Status) []Card {
	for _, column := range b.Columns {
		if column.Status == status {
			return column.Cards
		}
	}

	return nil
}
