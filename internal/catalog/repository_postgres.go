package catalog

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository loads the catalog snapshot from Postgres. Each restaurant
// is stored as one JSONB document; position preserves declaration order, which
// the search ranking depends on.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// SCHEMA + SEED
// --------------------------------------------------

func (r *PostgresRepository) InitSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS catalog_restaurants (
			id VARCHAR(64) PRIMARY KEY,
			position INT NOT NULL,
			data JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// SeedIfEmpty inserts the built-in catalog when the table has no rows.
func (r *PostgresRepository) SeedIfEmpty(ctx context.Context) error {
	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM catalog_restaurants
	`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, restaurant := range Seed() {
		data, err := json.Marshal(restaurant)
		if err != nil {
			return err
		}
		_, err = r.db.Exec(ctx, `
			INSERT INTO catalog_restaurants (id, position, data)
			VALUES ($1, $2, $3)
		`, restaurant.ID, i, data)
		if err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------
// SNAPSHOT LOAD (once, at startup)
// --------------------------------------------------

func (r *PostgresRepository) LoadSnapshot(ctx context.Context) (*Store, error) {
	rows, err := r.db.Query(ctx, `
		SELECT data
		FROM catalog_restaurants
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []Restaurant
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var restaurant Restaurant
		if err := json.Unmarshal(data, &restaurant); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return NewStore(restaurants)
}
