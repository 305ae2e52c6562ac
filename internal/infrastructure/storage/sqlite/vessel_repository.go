package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"shipyard/internal/domain/vessel"
)

const vesselColumns = `id, nombre, capacidad, descripcion, fecha_programada`

type VesselRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewVesselRepository(db *sql.DB, log *slog.Logger) *VesselRepository {
	return &VesselRepository{
		db:  db,
		log: log.With("component", "vessel_repository"),
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *VesselRepository) List(ctx context.Context) ([]vessel.Vessel, error) {
	const query = `SELECT ` + vesselColumns + ` FROM embarcaciones ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
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
	const query = `SELECT ` + vesselColumns + ` FROM embarcaciones WHERE id = ?`

	v, err := scanVessel(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
		VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		in.Name, in.Capacity, in.Description, in.ScheduledDate.String(),
	)
	if err != nil {
		r.log.Error("failed to create vessel", "nombre", in.Name, "error", err)
		return nil, fmt.Errorf("create vessel: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create vessel: %w", err)
	}

	v := in.Vessel(int(id))
	return &v, nil
}

func (r *VesselRepository) Update(ctx context.Context, id int, in vessel.Input) (*vessel.Vessel, error) {
	const query = `
		UPDATE embarcaciones
		SET nombre = ?, capacidad = ?, descripcion = ?, fecha_programada = ?,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		in.Name, in.Capacity, in.Description, in.ScheduledDate.String(), id,
	)
	if err != nil {
		r.log.Error("failed to update vessel", "id", id, "error", err)
		return nil, fmt.Errorf("update vessel: %w", err)
	}
	if err := affected(res); err != nil {
		return nil, err
	}

	v := in.Vessel(id)
	return &v, nil
}

func (r *VesselRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM embarcaciones WHERE id = ?`, id)
	if err != nil {
		r.log.Error("failed to delete vessel", "id", id, "error", err)
		return fmt.Errorf("delete vessel: %w", err)
	}
	return affected(res)
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return vessel.ErrNotFound
	}
	return nil
}

func scanVessel(row scanner) (*vessel.Vessel, error) {
	var (
		v    vessel.Vessel
		date string
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Capacity, &v.Description, &date); err != nil {
		return nil, err
	}

	d, err := vessel.ParseDate(date)
	if err != nil {
		return nil, err
	}
	v.ScheduledDate = d
	return &v, nil
}
