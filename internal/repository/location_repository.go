package repository

import (
	"context"

	"gazelle/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LocationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLocationRepository(db *pgxpool.Pool, logger *zap.Logger) *LocationRepository {
	return &LocationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *LocationRepository) Create(ctx context.Context, loc *models.Location) (int64, error) {
	query := squirrel.Insert("locations").
		Columns("name", "address", "latitude", "longitude").
		Values(loc.Name, loc.Address, loc.Latitude, loc.Longitude).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *LocationRepository) List(ctx context.Context) ([]models.Location, error) {
	query := squirrel.Select("id", "name", "address", "latitude", "longitude", "created_at").
		From("locations").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Latitude, &l.Longitude, &l.CreatedAt); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	return locations, rows.Err()
}
