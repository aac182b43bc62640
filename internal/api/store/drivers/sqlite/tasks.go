package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/taskdesk/taskdesk/internal/api/domain"
)

type tasksRepo struct {
	q querier
}

const taskColumns = `id, user_id, title, description, status, created_at, updated_at`

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO tasks (id, user_id, title, description, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, t.Description, string(t.Status), now, now,
	)
	return err
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, status = ?, updated_at = ? WHERE id = ?`,
		t.Title, t.Description, string(t.Status), time.Now().UTC(), t.ID,
	)
	return err
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListTasks orders by id: ULIDs embed the creation timestamp, so id order is
// (created_at, id) order and stays stable between reads absent writes.
func (r *tasksRepo) ListTasks(
	ctx context.Context,
	ownerUserID string,
	status *domain.TaskStatus,
	afterID string,
	limit, offset int,
) ([]domain.Task, error) {
	query, args := buildTaskQuery(`SELECT `+taskColumns+` FROM tasks`, ownerUserID, status, afterID)
	query += ` ORDER BY id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	if offset > 0 {
		query += ` OFFSET ?`
		args = append(args, offset)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) CountTasks(ctx context.Context, ownerUserID string, status *domain.TaskStatus) (int, error) {
	query, args := buildTaskQuery(`SELECT COUNT(*) FROM tasks`, ownerUserID, status, "")
	var count int
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func buildTaskQuery(base, ownerUserID string, status *domain.TaskStatus, afterID string) (string, []any) {
	var conds []string
	var args []any
	if ownerUserID != "" {
		conds = append(conds, `user_id = ?`)
		args = append(args, ownerUserID)
	}
	if status != nil {
		conds = append(conds, `status = ?`)
		args = append(args, string(*status))
	}
	if afterID != "" {
		conds = append(conds, `id > ?`)
		args = append(args, afterID)
	}
	if len(conds) > 0 {
		base += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	return base, args
}

func scanTask(row rowScanner) (domain.Task, error) {
	var t domain.Task
	var status string
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	t.Status = domain.TaskStatus(status)
	return t, nil
}
