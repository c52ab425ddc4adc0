package repository

import (
	"context"

	"gazelle/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SupplyRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSupplyRepository(db *pgxpool.Pool, logger *zap.Logger) *SupplyRepository {
	return &SupplyRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts one donation record and returns its generated ID. There is
// no idempotency constraint; duplicate submissions produce duplicate rows.
func (r *SupplyRepository) Create(ctx context.Context, supply *models.Supply) (int64, error) {
	query := squirrel.Insert("supplies").
		Columns("name", "category_id", "location_id", "quantity", "added_by_user_id", "status", "expiration_date").
		Values(supply.Name, supply.CategoryID, supply.LocationID, supply.Quantity, supply.AddedByUserID, supply.Status, supply.ExpirationDate).
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

// SearchAvailable returns available, positive-quantity supplies in the given
// categories joined to their locations, most recent first, capped at limit.
func (r *SupplyRepository) SearchAvailable(ctx context.Context, categoryIDs []int, limit int) ([]models.AvailableSupply, error) {
	query := squirrel.Select(
		"s.id", "s.name", "s.category_id", "s.quantity",
		"l.name", "l.latitude", "l.longitude").
		From("supplies s").
		Join("locations l ON l.id = s.location_id").
		Where(squirrel.Eq{"s.category_id": categoryIDs}).
		Where(squirrel.Eq{"s.status": models.SupplyStatusAvailable}).
		Where(squirrel.Gt{"s.quantity": 0}).
		OrderBy("s.created_at DESC").
		Limit(uint64(limit)).
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

	var supplies []models.AvailableSupply
	for rows.Next() {
		var s models.AvailableSupply
		if err := rows.Scan(
			&s.ID, &s.Name, &s.CategoryID, &s.Quantity, &s.LocationName, &s.Latitude, &s.Longitude,
		); err != nil {
			return nil, err
		}
		supplies = append(supplies, s)
	}

	return supplies, rows.Err()
}
