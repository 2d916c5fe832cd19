// File: database/repository/partner/search.go
package partnerRepo

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"tallerlink/models"
)

var pgDialect = goqu.Dialect("postgres")

// Search runs the dashboard/map partner search with optional speciality,
// city and free-text filters. The query is assembled with goqu and executed
// through the pgx pool.
func (r *postgresPartnerRepo) Search(ctx context.Context, filter models.PartnerSearchFilter) ([]models.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ds := pgDialect.
		From("partners").
		Select(
			"id", "name", "email", "phone", "address", "city",
			"latitude", "longitude", "specialities", "active",
			"created_at", "updated_at",
		).
		Where(goqu.C("active").IsTrue())

	if filter.Speciality != "" {
		ds = ds.Where(goqu.L("? = ANY(specialities)", filter.Speciality))
	}
	if filter.City != "" {
		ds = ds.Where(goqu.C("city").Eq(filter.City))
	}
	if filter.Query != "" {
		ds = ds.Where(goqu.C("name").ILike("%" + filter.Query + "%"))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	ds = ds.Order(goqu.C("name").Asc()).Limit(uint(limit)).Offset(uint(offset))

	sqlStr, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []models.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, *p)
	}
	return partners, rows.Err()
}
