package mysql

import (
	"context"
	"database/sql"
	"strings"

	"stayquery/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func normKey(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (r *Repo) UpsertDestination(ctx context.Context, d domain.Destination) error {
	_, err := r.db.ExecContext(ctx, upsertDestinationSQL,
		normKey(d.Key),
		d.Name,
		d.Latitude,
		d.Longitude,
		d.Country,
		d.Position,
	)
	return err
}

func (r *Repo) UpsertCityPrice(ctx context.Context, city string, base float64) error {
	_, err := r.db.ExecContext(ctx, upsertCityPriceSQL, normKey(city), base)
	return err
}

func (r *Repo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, listDestinationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(&d.Key, &d.Name, &d.Latitude, &d.Longitude, &d.Country, &d.Position); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *Repo) ListCityPrices(ctx context.Context) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx, listCityPricesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]float64{}
	for rows.Next() {
		var (
			city string
			base float64
		)
		if err := rows.Scan(&city, &base); err != nil {
			return nil, err
		}
		out[city] = base
	}
	return out, rows.Err()
}
