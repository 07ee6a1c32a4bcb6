package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
)

// NotificationRepository handles persistence for student notifications.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, notifications []domain.Notification) error
	ListByStudent(ctx context.Context, studentID int64) ([]domain.Notification, error)
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository instantiates the repository.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	const query = `
        INSERT INTO notifications (student_id, job_id, message)
        VALUES ($1, $2, $3)`

	batch := &pgx.Batch{}
	for _, n := range notifications {
		batch.Queue(query, n.StudentID, n.JobID, n.Message)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range notifications {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *notificationRepository) ListByStudent(ctx context.Context, studentID int64) ([]domain.Notification, error) {
	const query = `
        SELECT id, student_id, job_id, message, read, notified_at
        FROM notifications WHERE student_id=$1 ORDER BY notified_at DESC`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID,
			&n.StudentID,
			&n.JobID,
			&n.Message,
			&n.Read,
			&n.NotifiedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, rows.Err()
}
