package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/topraga-donus/backend/internal/domain"
)

// CompostLogRepo defines the read surface of the classroom compost experiment.
// Writes go through the admin table controller like every other resource.
type CompostLogRepo interface {
	// List returns all measurements ordered by log date ascending, the order
	// the lab charts consume them in.
	List(ctx context.Context) ([]domain.CompostLog, error)
}

type pgCompostLogRepo struct {
	db db
}

// NewCompostLogRepo constructs a CompostLogRepo backed by the provided db connection.
func NewCompostLogRepo(db db) CompostLogRepo {
	return &pgCompostLogRepo{db: db}
}

func (r *pgCompostLogRepo) List(ctx context.Context) ([]domain.CompostLog, error) {
	const q = `
		SELECT id, log_date, arm, plant_height, leaf_count, notes, created_at
		FROM compost_logs
		ORDER BY log_date ASC, arm ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CompostLogRepo.List: %w", classify(err))
	}
	defer rows.Close()

	var logs []domain.CompostLog
	for rows.Next() {
		l, err := scanCompostLog(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CompostLogRepo.List: scan: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CompostLogRepo.List: rows: %w", err)
	}

	return logs, nil
}

// scanCompostLog maps a single database row into a domain.CompostLog.
func scanCompostLog(s scanner) (domain.CompostLog, error) {
	var (
		l       domain.CompostLog
		id      pgtype.UUID
		logDate pgtype.Date
	)

	err := s.Scan(&id, &logDate, &l.Arm, &l.PlantHeight, &l.LeafCount, &l.Notes, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CompostLog{}, domain.ErrNotFound
		}
		return domain.CompostLog{}, err
	}

	l.ID = uuid.UUID(id.Bytes)
	l.LogDate = openapi_types.Date{Time: logDate.Time}

	return l, nil
}
