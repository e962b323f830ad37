package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"desk/infras/otel"
	"desk/internal/domains/board/model"
	record "desk/internal/domains/record/model"
	"desk/internal/domains/record/model/dto"
	"desk/internal/domains/record/repository"
	recordService "desk/internal/domains/record/service"
	"desk/shared/constant"
	"fmt"
	"strings"
)

type Board interface {
	Get(ctx context.Context) (model.Board, error)
	RequestStatusChange(ctx context.Context, kind record.Kind, id string, status record.Status) (dto.StatusResponse, error)
}

type serviceImpl struct {
	bookings repository.Booking
	contacts repository.Contact
	records  recordService.Record
	otel     otel.Otel
}

func New(
	bookings repository.Booking,
	contacts repository.Contact,
	records recordService.Record,
	otel otel.Otel,
) Board {
	return &serviceImpl{
		bookings: bookings,
		contacts: contacts,
		records:  records,
		otel:     otel,
	}
}

// Get projects a fresh load of both tables.
func (s *serviceImpl) Get(ctx context.Context) (res model.Board, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".board.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.bookings.Load(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	contacts, err := s.contacts.Load(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to load contacts: %w", err)
	}

	return Project(bookings, contacts), nil
}

// RequestStatusChange is the only mutation reachable from the board.
func (s *serviceImpl) RequestStatusChange(ctx context.Context, kind record.Kind, id string, status record.Status) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".board.RequestStatusChange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.records.UpdateStatus(ctx, kind, id, status) //nolint:wrapcheck
}

// Project groups bookings then contacts into the four status columns,
// keeping load order inside each column. The inputs are not modified.
func Project(bookings []record.Booking, contacts []record.Contact) model.Board {
	cards := make(map[record.Status][]model.Card, len(record.Statuses))

	for _, booking := range bookings {
		card := BookingCard(booking)
		cards[card.Status] = append(cards[card.Status], card)
	}

	for _, contact := range contacts {
		card := ContactCard(contact)
		cards[card.Status] = append(cards[card.Status], card)
	}

	board := model.Board{
		Columns: make([]model.Column, 0, len(record.Statuses)),
		Total:   len(bookings) + len(contacts),
	}

	for _, status := range record.Statuses {
		column := model.Column{Status: status, Cards: cards[status]}
		if column.Cards == nil {
			column.Cards = []model.Card{}
		}

		board.Columns = append(board.Columns, column)
	}

	return board
}

func BookingCard(booking record.Booking) model.Card {
	lines := []string{
		fmt.Sprintf("%s %s %s", model.IconDate, booking.Date, booking.Time),
		fmt.Sprintf("%s %s", model.IconLocation, booking.Location),
	}

	if booking.Compensation != constant.Empty {
		lines = append(lines, fmt.Sprintf("%s %s", model.IconCompensation, booking.Compensation))
	}

	return model.Card{
		Kind:        record.KindBooking,
		ID:          booking.ID,
		Title:       booking.Customer + model.TitleSeparator + booking.Task,
		Description: strings.Join(lines, "\n"),
		Status:      record.NormalizeStatus(string(booking.Status)),
	}
}

func ContactCard(contact record.Contact) model.Card {
	lines := []string{
		fmt.Sprintf("%s %s", model.IconPhone, contact.Phone),
		fmt.Sprintf("%s %s", model.IconEmail, contact.Email),
		contact.Comment,
	}

	return model.Card{
		Kind:        record.KindContact,
		ID:          contact.ID,
		Title:       contact.Name + model.TitleSeparator + contact.Company,
		Description: strings.Join(lines, "\n"),
		Status:      record.NormalizeStatus(string(contact.Status)),
	}
}
