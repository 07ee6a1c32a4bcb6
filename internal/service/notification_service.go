package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CSAbhinav3/IWP-CIA3/internal/config"
	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
	"github.com/CSAbhinav3/IWP-CIA3/internal/events"
	"github.com/CSAbhinav3/IWP-CIA3/internal/repository"
)

// NotificationService fans job announcements out to eligible students
// and reacts to portal events.
type NotificationService struct {
	notifications repository.NotificationRepository
	students      repository.StudentRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	cfg           config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(
	notifications repository.NotificationRepository,
	students repository.StudentRepository,
	dispatcher events.Dispatcher,
	logger *zap.Logger,
	cfg config.NotificationConfig,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		students:      students,
		dispatcher:    dispatcher,
		logger:        logger,
		cfg:           cfg,
	}
}

// NotifyStudentsInput selects the audience for a job announcement.
type NotifyStudentsInput struct {
	JobID    int64
	Year     int
	Branches []string
	Message  string
}

// NotifyStudents inserts one notification per matching student and
// returns how many were notified.
func (n *NotificationService) NotifyStudents(ctx context.Context, actor events.Actor, input NotifyStudentsInput) (int, error) {
	students, err := n.students.ListByYearBranch(ctx, input.Year, input.Branches...)
	if err != nil {
		return 0, err
	}
	if len(students) == 0 {
		return 0, nil
	}

	message := input.Message
	if message == "" {
		message = fmt.Sprintf("New job posted with ID %d", input.JobID)
	}

	jobID := input.JobID
	batch := make([]domain.Notification, 0, len(students))
	for _, student := range students {
		batch = append(batch, domain.Notification{
			StudentID: student.ID,
			JobID:     &jobID,
			Message:   message,
		})
	}
	if err := n.notifications.CreateBatch(ctx, batch); err != nil {
		return 0, err
	}

	_ = n.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventStudentsNotified,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload: events.StudentsNotifiedPayload{
			JobID:    input.JobID,
			Year:     input.Year,
			Branches: input.Branches,
			Count:    len(students),
		},
	})
	return len(students), nil
}

// StudentNotifications lists the caller's notifications, newest first.
func (n *NotificationService) StudentNotifications(ctx context.Context, studentID int64) ([]domain.Notification, error) {
	return n.notifications.ListByStudent(ctx, studentID)
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventJobApproved, n.handleJobModerated)
	n.dispatcher.Subscribe(events.EventJobRejected, n.handleJobModerated)
	n.dispatcher.Subscribe(events.EventApplicationStatusChanged, n.handleApplicationStatusChanged)
	n.dispatcher.Subscribe(events.EventStudentsNotified, n.handleStudentsNotified)
}

func (n *NotificationService) handleJobModerated(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleApplicationStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicationStatusChanged", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStudentsNotified(ctx context.Context, event events.Event) error {
	n.logger.Info("StudentsNotified", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
