package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"desk/config"
	"desk/infras/otel"
	"desk/infras/s3"
	"desk/infras/webhook"
	notification "desk/internal/domains/notification/service"
	"desk/internal/domains/record/model"
	"desk/internal/domains/record/model/dto"
	"desk/internal/domains/record/repository"
	"desk/shared/constant"
	"desk/shared/failure"
	"desk/shared/timezone"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	MessageStatusUnchanged = "status unchanged"

	archiveDirectory   = "exports"
	archiveStampLayout = "20060102T150405"
)

type Record interface {
	EnsureInitialized(ctx context.Context) error
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CreateContact(ctx context.Context, req dto.CreateContactRequest) (dto.ContactResponse, error)
	ListBookings(ctx context.Context, sort string) (dto.GetBookingsResponse, error)
	ListContacts(ctx context.Context) (dto.GetContactsResponse, error)
	UpdateStatus(ctx context.Context, kind model.Kind, id string, status model.Status) (dto.StatusResponse, error)
	Import(ctx context.Context, kind model.Kind, r io.Reader) (dto.ImportResponse, error)
	Export(ctx context.Context, kind model.Kind, w io.Writer) error
	Archive(ctx context.Context, kind model.Kind) (dto.ArchiveResponse, error)
	Settings(ctx context.Context) dto.SettingsResponse
}

type serviceImpl struct {
	bookings repository.Booking
	contacts repository.Contact
	notifier notification.Notifier
	archive  s3.S3
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	bookings repository.Booking,
	contacts repository.Contact,
	notifier notification.Notifier,
	archive s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Record {
	return &serviceImpl{
		bookings: bookings,
		contacts: contacts,
		notifier: notifier,
		archive:  archive,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) EnsureInitialized(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureInitialized")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.bookings.EnsureInitialized(ctx); err != nil {
		return fmt.Errorf("failed to initialize bookings: %w", err)
	}

	if err = s.contacts.EnsureInitialized(ctx); err != nil {
		return fmt.Errorf("failed to initialize contacts: %w", err)
	}

	return nil
}

// CreateBooking persists the booking and then notifies. The webhook outcome
// is reported alongside the saved record and never fails the call.
func (s *serviceImpl) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.bookings.Append(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.Booking = booking
	res.Webhook = s.notifier.BookingCreated(ctx, booking)

	return res, nil
}

func (s *serviceImpl) CreateContact(ctx context.Context, req dto.CreateContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contact, err := s.contacts.Append(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create contact")

		return res, fmt.Errorf("failed to create contact: %w", err)
	}

	res.Contact = contact
	res.Webhook = s.notifier.ContactCreated(ctx, contact)

	return res, nil
}

// ListBookings returns bookings in storage order, or newest first when sort
// is "newest".
func (s *serviceImpl) ListBookings(ctx context.Context, sort string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.bookings.Load(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	if strings.EqualFold(sort, constant.SortNewest) {
		slices.SortStableFunc(bookings, func(a, b model.Booking) int {
			return strings.Compare(b.CreatedAt, a.CreatedAt)
		})
	}

	res.Bookings = bookings
	res.Total = len(bookings)

	return res, nil
}

func (s *serviceImpl) ListContacts(ctx context.Context) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListContacts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contacts, err := s.contacts.Load(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to load contacts: %w", err)
	}

	res.Contacts = contacts
	res.Total = len(contacts)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, kind model.Kind, id string, status model.Status) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	switch kind {
	case model.KindBooking:
		res, err = updateStatus[model.Booking](ctx, s.bookings, id, status, s.notifier.BookingStatusChanged)
	case model.KindContact:
		res, err = updateStatus[model.Contact](ctx, s.contacts, id, status, s.notifier.ContactStatusChanged)
	default:
		err = unknownKind(kind)
	}

	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Str("id", id).Msg("failed to update status")

		return res, fmt.Errorf("failed to update %s status: %w", kind, err)
	}

	return res, nil
}

func updateStatus[T model.Record[T]](
	ctx context.Context,
	store repository.Store[T],
	id string,
	status model.Status,
	notify func(context.Context, T, model.Status) webhook.Outcome,
) (dto.StatusResponse, error) {
	change, err := store.UpdateStatus(ctx, id, status)
	if err != nil {
		return dto.StatusResponse{}, err //nolint:wrapcheck
	}

	res := dto.StatusResponse{
		Kind:     change.Record.Kind(),
		ID:       change.Record.GetID(),
		Status:   change.Record.GetStatus(),
		Previous: change.Previous,
		Changed:  change.Changed(),
		Webhook:  webhook.Skipped(MessageStatusUnchanged),
	}

	if res.Changed {
		res.Webhook = notify(ctx, change.Record, change.Previous)
	}

	return res, nil
}

func (s *serviceImpl) Import(ctx context.Context, kind model.Kind, r io.Reader) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Import")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Kind = kind

	switch kind {
	case model.KindBooking:
		res.Imported, err = s.bookings.Import(ctx, r)
	case model.KindContact:
		res.Imported, err = s.contacts.Import(ctx, r)
	default:
		err = unknownKind(kind)
	}

	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to import records")

		return res, fmt.Errorf("failed to import %s records: %w", kind, err)
	}

	return res, nil
}

func (s *serviceImpl) Export(ctx context.Context, kind model.Kind, w io.Writer) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	switch kind {
	case model.KindBooking:
		err = s.bookings.Export(ctx, w)
	case model.KindContact:
		err = s.contacts.Export(ctx, w)
	default:
		err = unknownKind(kind)
	}

	if err != nil {
		return fmt.Errorf("failed to export %s records: %w", kind, err)
	}

	return nil
}

// Archive uploads a timestamped export of kind to the configured bucket.
func (s *serviceImpl) Archive(ctx context.Context, kind model.Kind) (res dto.ArchiveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Archive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if s.archive == nil || !s.archive.Configured() {
		return res, failure.BadRequestFromString("export archive storage is not configured") //nolint:wrapcheck
	}

	var buf bytes.Buffer
	if err = s.Export(ctx, kind, &buf); err != nil {
		return res, err
	}

	fileName := fmt.Sprintf("%s-%s.csv",
		strings.TrimSuffix(repository.FileName(kind), ".csv"), timezone.Now().Format(archiveStampLayout))

	url, err := s.archive.UploadFileBytes(ctx, constant.Empty, archiveDirectory, fileName, constant.ContentTypeCSV, buf.Bytes())
	if err != nil {
		return res, failure.StorageWrite(err) //nolint:wrapcheck
	}

	log.Info().Str("kind", string(kind)).Str("url", url).Msg("export archived")

	return dto.ArchiveResponse{Kind: kind, URL: url}, nil
}

func (s *serviceImpl) Settings(ctx context.Context) dto.SettingsResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settings")
	defer scope.End()

	return dto.SettingsResponse{
		AppTitle: s.cfg.App.Title,
		Timezone: timezone.GetLocation().String(),
		Store: dto.StoreSettings{
			Driver:   s.cfg.Store.Driver,
			Bookings: s.bookings.Location(),
			Contacts: s.contacts.Location(),
		},
		Webhook: dto.WebhookSettings{
			Configured:         s.cfg.Webhook.URL != constant.Empty,
			Host:               webhookHost(s.cfg.Webhook.URL),
			HeaderName:         s.cfg.Webhook.HeaderName,
			HeaderConfigured:   s.cfg.Webhook.HeaderValue != constant.Empty,
			Source:             s.cfg.Webhook.Source,
			NotifyStatusChange: s.cfg.Webhook.NotifyStatusChange,
		},
		Events:  s.cfg.Kafka.Enable,
		Archive: s.archive != nil && s.archive.Configured(),
	}
}

// webhookHost keeps only host[:port]; path, query and userinfo can carry
// credentials.
func webhookHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return constant.Empty
	}

	return u.Host
}

func unknownKind(kind model.Kind) error {
	return failure.BadRequestFromString(fmt.Sprintf("unknown record kind %q", kind)) //nolint:wrapcheck
}
