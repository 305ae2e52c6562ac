package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"shipyard/internal/domain/vessel"
)

const vesselColumns = `id, nombre, capacidad, descripcion, fecha_programada`

type VesselRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewVesselRepository(pool *pgxpool.Pool, log *slog.Logger) *VesselRepository {
	return &VesselRepository{
		pool: pool,
		log:  log.With("component", "vessel_repository"),
	}
}

func (r *VesselRepository) List(ctx context.Context) ([]vessel.Vessel, error) {
	const query = `SELECT ` + vesselColumns + ` FROM embarcaciones ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list vessels", "error", err)
		return nil, fmt.Errorf("list vessels: %w", err)
	}
	defer rows.Close()

	vessels := make([]vessel.Vessel, 0)
	for rows.Next() {
		v, err := scanVessel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vessel: %w", err)
		}
		vessels = append(vessels, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vessels: %w", err)
	}

	return vessels, nil
}

func (r *VesselRepository) Get(ctx context.Context, id int) (*vessel.Vessel, error) {
	const query = `SELECT ` + vesselColumns + ` FROM embarcaciones WHERE id = $1`

	v, err := scanVessel(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vessel.ErrNotFound
		}
		r.log.Error("failed to get vessel", "id", id, "error", err)
		return nil, fmt.Errorf("get vessel: %w", err)
	}

	return v, nil
}

func (r *VesselRepository) Create(ctx context.Context, in vessel.Input) (*vessel.Vessel, error) {
	const query = `
		INSERT INTO embarcaciones (nombre, capacidad, descripcion, fecha_programada)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + vesselColumns

	v, err := scanVessel(r.pool.QueryRow(ctx, query,
		in.Name, in.Capacity, in.Description, in.ScheduledDate.Time,
	))
	if err != nil {
		r.log.Error("failed to create vessel", "nombre", in.Name, "error", err)
		return nil, fmt.Errorf("create vessel: %w", err)
	}

	return v, nil
}

func (r *VesselRepository) Update(ctx context.Context, id int, in vessel.Input) (*vessel.Vessel, error) {
	const query = `
		UPDATE embarcaciones
		SET nombre = $1, capacidad = $2, descripcion = $3, fecha_programada = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + vesselColumns

	v, err := scanVessel(r.pool.QueryRow(ctx, query,
		in.Name, in.Capacity, in.Description, in.ScheduledDate.Time, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vessel.ErrNotFound
		}
		r.log.Error("failed to update vessel", "id", id, "error", err)
		return nil, fmt.Errorf("update vessel: %w", err)
	}

	return v, nil
}

func (r *VesselRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM embarcaciones WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete vessel", "id", id, "error", err)
		return fmt.Errorf("delete vessel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vessel.ErrNotFound
	}

	return nil
}

func scanVessel(row pgx.Row) (*vessel.Vessel, error) {
	var (
		v    vessel.Vessel
		date time.Time
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Capacity, &v.Description, &date); err != nil {
		return nil, err
	}
	v.ScheduledDate = vessel.DateOf(date)
	return &v, nil
}
