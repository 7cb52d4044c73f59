package repository

import (
	"context"
	"errors"

	"github.com/firstoffice/officebooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OfficeRepository interface {
	List(ctx context.Context) ([]domain.Office, error)
	GetByID(ctx context.Context, id int64) (*domain.Office, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Office, error)
	ListCities(ctx context.Context) ([]domain.City, error)
	GetCityBySlug(ctx context.Context, slug string) (*domain.City, error)
}

type PGOfficeRepository struct {
	db *pgxpool.Pool
}

func NewOfficeRepository(db *pgxpool.Pool) OfficeRepository {
	return &PGOfficeRepository{db: db}
}

const officeColumns = `o.id, o.city_id, o.name, o.slug, o.price, o.duration, o.thumbnail, o.about, o.address, o.created_at, o.updated_at,
	c.id, c.name, c.slug, c.photo, c.created_at, c.updated_at`

func (r *PGOfficeRepository) List(ctx context.Context) ([]domain.Office, error) {
	rows, err := r.db.Query(ctx, `SELECT `+officeColumns+` FROM office_spaces o JOIN cities c ON c.id = o.city_id ORDER BY o.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offices := make([]domain.Office, 0)
	for rows.Next() {
		o, err := scanOffice(rows)
		if err != nil {
			return nil, err
		}
		offices = append(offices, *o)
	}
	return offices, rows.Err()
}

func (r *PGOfficeRepository) GetByID(ctx context.Context, id int64) (*domain.Office, error) {
	return r.getOne(ctx, `o.id=$1`, id)
}

func (r *PGOfficeRepository) GetBySlug(ctx context.Context, slug string) (*domain.Office, error) {
	return r.getOne(ctx, `o.slug=$1`, slug)
}

func (r *PGOfficeRepository) getOne(ctx context.Context, where string, arg interface{}) (*domain.Office, error) {
	row := r.db.QueryRow(ctx, `SELECT `+officeColumns+` FROM office_spaces o JOIN cities c ON c.id = o.city_id WHERE `+where, arg)
	office, err := scanOffice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := r.loadRelations(ctx, office); err != nil {
		return nil, err
	}
	return office, nil
}

func (r *PGOfficeRepository) loadRelations(ctx context.Context, office *domain.Office) error {
	rows, err := r.db.Query(ctx, `SELECT id, office_space_id, photo FROM office_space_photos WHERE office_space_id=$1 ORDER BY id`, office.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var p domain.Photo
		if err := rows.Scan(&p.ID, &p.OfficeSpaceID, &p.Photo); err != nil {
			return err
		}
		office.Photos = append(office.Photos, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	benefitRows, err := r.db.Query(ctx, `SELECT id, office_space_id, name FROM office_space_benefits WHERE office_space_id=$1 ORDER BY id`, office.ID)
	if err != nil {
		return err
	}
	defer benefitRows.Close()
	for benefitRows.Next() {
		var b domain.Benefit
		if err := benefitRows.Scan(&b.ID, &b.OfficeSpaceID, &b.Name); err != nil {
			return err
		}
		office.Benefits = append(office.Benefits, b)
	}
	return benefitRows.Err()
}

func (r *PGOfficeRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	rows, err := r.db.Query(ctx, `SELECT c.id, c.name, c.slug, c.photo, c.created_at, c.updated_at, COUNT(o.id)
		FROM cities c LEFT JOIN office_spaces o ON o.city_id = c.id
		GROUP BY c.id ORDER BY c.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]domain.City, 0)
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Photo, &c.CreatedAt, &c.UpdatedAt, &c.OfficeSpacesCount); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *PGOfficeRepository) GetCityBySlug(ctx context.Context, slug string) (*domain.City, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, slug, photo, created_at, updated_at FROM cities WHERE slug=$1`, slug)
	var c domain.City
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Photo, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+officeColumns+` FROM office_spaces o JOIN cities c ON c.id = o.city_id WHERE o.city_id=$1 ORDER BY o.name`, c.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		o, err := scanOffice(rows)
		if err != nil {
			return nil, err
		}
		c.OfficeSpaces = append(c.OfficeSpaces, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	c.OfficeSpacesCount = len(c.OfficeSpaces)
	return &c, nil
}

func scanOffice(row pgx.Row) (*domain.Office, error) {
	var o domain.Office
	var city domain.City
	if err := row.Scan(&o.ID, &o.CityID, &o.Name, &o.Slug, &o.Price, &o.Duration, &o.Thumbnail, &o.About, &o.Address, &o.CreatedAt, &o.UpdatedAt,
		&city.ID, &city.Name, &city.Slug, &city.Photo, &city.CreatedAt, &city.UpdatedAt); err != nil {
		return nil, err
	}
	o.City = &city
	return &o, nil
}

var _ OfficeRepository = (*PGOfficeRepository)(nil)
