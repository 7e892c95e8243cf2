package repository

import (
	"context"
	"fmt"

	"bus-reservation/internal/data/entity"
	"bus-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BusRepository interface {
	Create(ctx context.Context, bus *entity.Bus) error
	FindAll(ctx context.Context) ([]*entity.Bus, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type busRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBusRepository(db database.PgxIface, log *zap.Logger) BusRepository {
	return &busRepository{
		db:  db,
		log: log.With(zap.String("repository", "bus")),
	}
}

func (r *busRepository) Create(ctx context.Context, bus *entity.Bus) error {
	query := `
		INSERT INTO buses (id, bus_name, number, origin, destination, features,
		                   start_time, reach_time, no_of_seats, price_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		bus.ID,
		bus.BusName,
		bus.Number,
		bus.Origin,
		bus.Destination,
		bus.Features,
		bus.StartTime,
		bus.ReachTime,
		bus.NoOfSeats,
		bus.PriceCents,
		bus.CreatedAt,
		bus.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create bus",
			zap.Error(err),
			zap.String("number", bus.Number),
		)
		return fmt.Errorf("create bus %s: %w", bus.Number, err)
	}

	return nil
}

func (r *busRepository) FindAll(ctx context.Context) ([]*entity.Bus, error) {
	query := `
		SELECT id, bus_name, number, origin, destination, features,
		       start_time, reach_time, no_of_seats, price_cents, created_at, updated_at
		FROM buses
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find buses", zap.Error(err))
		return nil, fmt.Errorf("find buses: %w", err)
	}
	defer rows.Close()

	var buses []*entity.Bus
	for rows.Next() {
		var bus entity.Bus
		err := rows.Scan(
			&bus.ID,
			&bus.BusName,
			&bus.Number,
			&bus.Origin,
			&bus.Destination,
			&bus.Features,
			&bus.StartTime,
			&bus.ReachTime,
			&bus.NoOfSeats,
			&bus.PriceCents,
			&bus.CreatedAt,
			&bus.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan bus row", zap.Error(err))
			return nil, fmt.Errorf("scan bus row: %w", err)
		}
		buses = append(buses, &bus)
	}

	return buses, nil
}

func (r *busRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error) {
	query := `
		SELECT id, bus_name, number, origin, destination, features,
		       start_time, reach_time, no_of_seats, price_cents, created_at, updated_at
		FROM buses
		WHERE id = $1
	`

	var bus entity.Bus
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bus.ID,
		&bus.BusName,
		&bus.Number,
		&bus.Origin,
		&bus.Destination,
		&bus.Features,
		&bus.StartTime,
		&bus.ReachTime,
		&bus.NoOfSeats,
		&bus.PriceCents,
		&bus.CreatedAt,
		&bus.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bus by ID",
			zap.Error(err),
			zap.String("bus_id", id.String()),
		)
		return nil, fmt.Errorf("find bus by ID %s: %w", id.String(), err)
	}

	return &bus, nil
}

func (r *busRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM buses WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete bus",
			zap.Error(err),
			zap.String("bus_id", id.String()),
		)
		return fmt.Errorf("delete bus %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrBusNotFound
	}

	r.log.Info("Bus deleted", zap.String("bus_id", id.String()))
	return nil
}
