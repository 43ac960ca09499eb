package jobs

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, employer_id, title, company, location, description, salary, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.EmployerID,
		job.Title,
		job.Company,
		nullable(job.Location),
		nullable(job.Description),
		nullable(job.Salary),
		job.Status,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, job Job) error {
	const query = `
UPDATE jobs SET
  title = $2,
  company = $3,
  location = $4,
  description = $5,
  salary = $6,
  status = $7,
  moderated_by = $8,
  updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.Title,
		job.Company,
		nullable(job.Location),
		nullable(job.Description),
		nullable(job.Salary),
		job.Status,
		nullable(job.ModeratedBy),
	)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PGRepo) Delete(ctx context.Context, jobID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, jobID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PGRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	const query = `
SELECT id, employer_id, title, company, location, description, salary, status, moderated_by, created_at, updated_at
FROM jobs
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, jobID)
	job, err := scanJob(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

func (r *PGRepo) List(ctx context.Context, filter ListFilter) ([]Job, error) {
	var sb strings.Builder
	sb.WriteString(`
SELECT id, employer_id, title, company, location, description, salary, status, moderated_by, created_at, updated_at
FROM jobs`)

	args := make([]any, 0, 4)
	conds := make([]string, 0, 2)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.EmployerID != "" {
		args = append(args, filter.EmployerID)
		conds = append(conds, "employer_id = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	args = append(args, filter.Limit)
	sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	args = append(args, filter.Offset)
	sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Job, 0)
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, job)
	}
	return list, rows.Err()
}

func (r *PGRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status, count(*) FROM jobs GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func scanJob(scan func(dest ...any) error) (Job, error) {
	var job Job
	var location, description, salary, moderatedBy sql.NullString
	err := scan(
		&job.ID,
		&job.EmployerID,
		&job.Title,
		&job.Company,
		&location,
		&description,
		&salary,
		&job.Status,
		&moderatedBy,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return Job{}, err
	}
	if location.Valid {
		job.Location = location.String
	}
	if description.Valid {
		job.Description = description.String
	}
	if salary.Valid {
		job.Salary = salary.String
	}
	if moderatedBy.Valid {
		job.ModeratedBy = moderatedBy.String
	}
	return job, nil
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}
