package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=application.go -destination=mock_application.go -package=services

var (
	// ErrApplicationNotFound covers both missing ids and ids owned by another user.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrDuplicateCompanyRole is returned when the owner already tracks the same company and role.
	ErrDuplicateCompanyRole = errors.New("application with this company and role already exists")
)

const (
	maxApplicationFieldLength = 100

	// eventPublishTimeout bounds how long a write request waits on the broker.
	eventPublishTimeout = 2 * time.Second
)

// ApplicationReader defines owner-scoped read operations for applications.
type ApplicationReader interface {
	GetByID(ctx context.Context, userID, id int64) (*models.ApplicationDB, error)
	List(ctx context.Context, userID int64, filter models.ApplicationFilter) ([]models.ApplicationDB, int, error)
	ExistsByCompanyRole(ctx context.Context, userID int64, company, role string, excludeID int64) (bool, error)
}

// ApplicationWriter defines owner-scoped write operations for applications.
type ApplicationWriter interface {
	Save(ctx context.Context, userID int64, company, role string, status models.ApplicationStatus) (*models.ApplicationDB, error)
	Update(ctx context.Context, userID, id int64, company, role string, status models.ApplicationStatus) (*models.ApplicationDB, error)
	Delete(ctx context.Context, userID, id int64) (*models.ApplicationDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ApplicationService implements the job application use cases and
// publishes an audit event for every change.
type ApplicationService struct {
	readRepo    ApplicationReader
	writeRepo   ApplicationWriter
	kafkaWriter KafkaWriter
}

// NewApplicationService creates a new ApplicationService. kafkaWriter may be nil.
func NewApplicationService(readRepo ApplicationReader, writeRepo ApplicationWriter, kafkaWriter KafkaWriter) *ApplicationService {
	return &ApplicationService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

func validateApplication(company, role string, status models.ApplicationStatus) error {
	if n := utf8.RuneCountInString(company); n < 1 || n > maxApplicationFieldLength {
		return ErrInvalidCompany
	}
	if n := utf8.RuneCountInString(role); n < 1 || n > maxApplicationFieldLength {
		return ErrInvalidRole
	}
	if _, err := models.ParseApplicationStatus(string(status)); err != nil {
		return ErrInvalidStatus
	}
	return nil
}

func validateFilter(filter models.ApplicationFilter) error {
	if !lo.Contains(models.SortFields, filter.SortBy) {
		return ErrInvalidSortField
	}
	if filter.SortOrder != models.SortAsc && filter.SortOrder != models.SortDesc {
		return ErrInvalidSortOrder
	}
	if filter.Page < 1 {
		return ErrInvalidPage
	}
	if filter.Limit < 1 || filter.Limit > 50 {
		return ErrInvalidLimit
	}
	// The offset must fit in an int.
	if filter.Page-1 > math.MaxInt/filter.Limit {
		return ErrPageOutOfRange
	}
	if filter.Query != nil {
		if n := utf8.RuneCountInString(*filter.Query); n < 1 || n > 100 {
			return ErrInvalidQuery
		}
	}
	if filter.Status != nil {
		if _, err := models.ParseApplicationStatus(string(*filter.Status)); err != nil {
			return ErrInvalidStatus
		}
	}
	return nil
}

// Create stores a new application for userID. An empty status means APPLIED.
func (s *ApplicationService) Create(ctx context.Context, userID int64, company, role string, status models.ApplicationStatus) (*models.Application, error) {
	if status == "" {
		status = models.StatusApplied
	}
	if err := validateApplication(company, role, status); err != nil {
		return nil, err
	}

	if err := s.ensureUniquePair(ctx, userID, company, role, 0); err != nil {
		return nil, err
	}

	app, err := s.writeRepo.Save(ctx, userID, company, role, status)
	if errors.Is(err, models.ErrAlreadyExists) {
		return nil, ErrDuplicateCompanyRole
	}
	// A token can outlive its account.
	if errors.Is(err, models.ErrNotFound) {
		logger.Log.Warnw("application owner does not exist", "userID", userID)
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to save application", "userID", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.EventApplicationCreated, app)

	out := app.ToApplication()
	return &out, nil
}

// Get returns one of the caller's applications.
func (s *ApplicationService) Get(ctx context.Context, userID, id int64) (*models.Application, error) {
	app, err := s.readRepo.GetByID(ctx, userID, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get application", "userID", userID, "id", id, "error", err)
		return nil, err
	}

	out := app.ToApplication()
	return &out, nil
}

// List returns one page of the caller's applications. The filter is fully
// validated before any query runs.
func (s *ApplicationService) List(ctx context.Context, userID int64, filter models.ApplicationFilter) (*models.ApplicationPage, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	apps, total, err := s.readRepo.List(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list applications", "userID", userID, "error", err)
		return nil, err
	}

	return &models.ApplicationPage{
		Items: lo.Map(apps, func(a models.ApplicationDB, _ int) models.Application {
			return a.ToApplication()
		}),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Update overwrites company, role and status of one of the caller's applications.
func (s *ApplicationService) Update(ctx context.Context, userID, id int64, company, role string, status models.ApplicationStatus) (*models.Application, error) {
	if err := validateApplication(company, role, status); err != nil {
		return nil, err
	}

	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := s.ensureUniquePair(ctx, userID, company, role, id); err != nil {
		return nil, err
	}

	app, err := s.writeRepo.Update(ctx, userID, id, company, role, status)
	switch {
	case errors.Is(err, models.ErrNotFound):
		return nil, ErrApplicationNotFound
	case errors.Is(err, models.ErrAlreadyExists):
		return nil, ErrDuplicateCompanyRole
	case err != nil:
		logger.Log.Errorw("failed to update application", "userID", userID, "id", id, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.EventApplicationUpdated, app)

	out := app.ToApplication()
	return &out, nil
}

// Delete permanently removes one of the caller's applications.
func (s *ApplicationService) Delete(ctx context.Context, userID, id int64) error {
	app, err := s.writeRepo.Delete(ctx, userID, id)
	if errors.Is(err, models.ErrNotFound) {
		return ErrApplicationNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete application", "userID", userID, "id", id, "error", err)
		return err
	}

	s.publishEvent(ctx, models.EventApplicationDeleted, app)
	return nil
}

func (s *ApplicationService) ensureUniquePair(ctx context.Context, userID int64, company, role string, excludeID int64) error {
	exists, err := s.readRepo.ExistsByCompanyRole(ctx, userID, company, role, excludeID)
	if err != nil {
		logger.Log.Errorw("failed to check company and role", "userID", userID, "error", err)
		return err
	}
	if exists {
		logger.Log.Warnw("duplicate company and role", "userID", userID, "company", company, "role", role)
		return ErrDuplicateCompanyRole
	}
	return nil
}

// publishEvent is best-effort: failures are logged and never surfaced.
func (s *ApplicationService) publishEvent(ctx context.Context, eventType string, app *models.ApplicationDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping event", "type", eventType, "application_id", app.ID)
		return
	}

	event := models.ApplicationEvent{
		EventID:       uuid.New().String(),
		Type:          eventType,
		ApplicationID: app.ID,
		UserID:        app.UserID,
		Company:       app.Company,
		Role:          app.Role,
		Status:        app.Status,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal application event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(app.ID, 10)),
		Value: data,
	}

	ctx, cancel := context.WithTimeout(ctx, eventPublishTimeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish application event", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("Application event published", "event_id", event.EventID, "type", eventType, "application_id", app.ID)
}
