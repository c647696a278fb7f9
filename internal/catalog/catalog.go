// Package catalog provides data access for the framing material catalog:
// frame mouldings, mat boards, glazing options, and special services.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/framecraft/framepos/internal/pricing"
)

// ErrNotFound is returned when a catalog record does not exist.
var ErrNotFound = errors.New("catalog record not found")

// Frame is one moulding in the catalog. Wholesale price is per foot;
// MouldingWidth is the face width in inches.
type Frame struct {
	ID               int64
	Name             string
	Vendor           string
	SKU              string
	WholesalePerFoot float64
	MouldingWidth    float64
	Active           bool
}

// Mat is one mat board color/stock, priced per square inch wholesale.
type Mat struct {
	ID                     int64
	Name                   string
	Vendor                 string
	WholesalePerSquareInch float64
	Active                 bool
}

// Glazing is one glass or acrylic option. Vendors quote in either area unit,
// so the price carries its unit tag.
type Glazing struct {
	ID     int64
	Name   string
	Price  pricing.UnitPrice
	Active bool
}

// Service is a flat-priced special service (fitting, stretching, mounting).
type Service struct {
	ID     int64
	Name   string
	Price  float64
	Active bool
}

// Store wraps catalog queries over a sql.DB.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListFrames() ([]Frame, error) {
	rows, err := s.db.Query(`
		SELECT id, name, COALESCE(vendor, ''), COALESCE(sku, ''), wholesale_per_foot, moulding_width, active
		FROM frames
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query frames: %w", err)
	}
	defer rows.Close()

	frames := make([]Frame, 0)
	for rows.Next() {
		var f Frame
		if err := rows.Scan(&f.ID, &f.Name, &f.Vendor, &f.SKU, &f.WholesalePerFoot, &f.MouldingWidth, &f.Active); err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}
		frames = append(frames, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate frames: %w", err)
	}

	return frames, nil
}

func (s *Store) GetFrame(id int64) (Frame, error) {
	var f Frame
	err := s.db.QueryRow(`
		SELECT id, name, COALESCE(vendor, ''), COALESCE(sku, ''), wholesale_per_foot, moulding_width, active
		FROM frames
		WHERE id = ?
	`, id).Scan(&f.ID, &f.Name, &f.Vendor, &f.SKU, &f.WholesalePerFoot, &f.MouldingWidth, &f.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return Frame{}, ErrNotFound
	}
	if err != nil {
		return Frame{}, fmt.Errorf("query frame %d: %w", id, err)
	}
	return f, nil
}

func (s *Store) CreateFrame(f Frame) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO frames (name, vendor, sku, wholesale_per_foot, moulding_width, active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, f.Name, f.Vendor, f.SKU, f.WholesalePerFoot, f.MouldingWidth, f.Active)
	if err != nil {
		return 0, fmt.Errorf("insert frame: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("frame insert id: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateFrame(f Frame) error {
	result, err := s.db.Exec(`
		UPDATE frames
		SET
			name = ?,
			vendor = ?,
			sku = ?,
			wholesale_per_foot = ?,
			moulding_width = ?,
			active = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, f.Name, f.Vendor, f.SKU, f.WholesalePerFoot, f.MouldingWidth, f.Active, f.ID)
	if err != nil {
		return fmt.Errorf("update frame %d: %w", f.ID, err)
	}
	return checkAffected(result)
}

func (s *Store) ListMats() ([]Mat, error) {
	rows, err := s.db.Query(`
		SELECT id, name, COALESCE(vendor, ''), wholesale_per_square_inch, active
		FROM mats
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query mats: %w", err)
	}
	defer rows.Close()

	mats := make([]Mat, 0)
	for rows.Next() {
		var m Mat
		if err := rows.Scan(&m.ID, &m.Name, &m.Vendor, &m.WholesalePerSquareInch, &m.Active); err != nil {
			return nil, fmt.Errorf("scan mat: %w", err)
		}
		mats = append(mats, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mats: %w", err)
	}

	return mats, nil
}

func (s *Store) GetMat(id int64) (Mat, error) {
	var m Mat
	err := s.db.QueryRow(`
		SELECT id, name, COALESCE(vendor, ''), wholesale_per_square_inch, active
		FROM mats
		WHERE id = ?
	`, id).Scan(&m.ID, &m.Name, &m.Vendor, &m.WholesalePerSquareInch, &m.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return Mat{}, ErrNotFound
	}
	if err != nil {
		return Mat{}, fmt.Errorf("query mat %d: %w", id, err)
	}
	return m, nil
}

func (s *Store) CreateMat(m Mat) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO mats (name, vendor, wholesale_per_square_inch, active)
		VALUES (?, ?, ?, ?)
	`, m.Name, m.Vendor, m.WholesalePerSquareInch, m.Active)
	if err != nil {
		return 0, fmt.Errorf("insert mat: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("mat insert id: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateMat(m Mat) error {
	result, err := s.db.Exec(`
		UPDATE mats
		SET
			name = ?,
			vendor = ?,
			wholesale_per_square_inch = ?,
			active = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, m.Name, m.Vendor, m.WholesalePerSquareInch, m.Active, m.ID)
	if err != nil {
		return fmt.Errorf("update mat %d: %w", m.ID, err)
	}
	return checkAffected(result)
}

func (s *Store) ListGlazing() ([]Glazing, error) {
	rows, err := s.db.Query(`
		SELECT id, name, price_amount, price_unit, active
		FROM glazing
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query glazing: %w", err)
	}
	defer rows.Close()

	options := make([]Glazing, 0)
	for rows.Next() {
		var g Glazing
		var unit string
		if err := rows.Scan(&g.ID, &g.Name, &g.Price.Amount, &unit, &g.Active); err != nil {
			return nil, fmt.Errorf("scan glazing: %w", err)
		}
		g.Price.Unit = pricing.PriceUnit(unit)
		options = append(options, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate glazing: %w", err)
	}

	return options, nil
}

func (s *Store) GetGlazing(id int64) (Glazing, error) {
	var g Glazing
	var unit string
	err := s.db.QueryRow(`
		SELECT id, name, price_amount, price_unit, active
		FROM glazing
		WHERE id = ?
	`, id).Scan(&g.ID, &g.Name, &g.Price.Amount, &unit, &g.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return Glazing{}, ErrNotFound
	}
	if err != nil {
		return Glazing{}, fmt.Errorf("query glazing %d: %w", id, err)
	}
	g.Price.Unit = pricing.PriceUnit(unit)
	return g, nil
}

func (s *Store) CreateGlazing(g Glazing) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO glazing (name, price_amount, price_unit, active)
		VALUES (?, ?, ?, ?)
	`, g.Name, g.Price.Amount, string(g.Price.Unit), g.Active)
	if err != nil {
		return 0, fmt.Errorf("insert glazing: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("glazing insert id: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateGlazing(g Glazing) error {
	result, err := s.db.Exec(`
		UPDATE glazing
		SET
			name = ?,
			price_amount = ?,
			price_unit = ?,
			active = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, g.Name, g.Price.Amount, string(g.Price.Unit), g.Active, g.ID)
	if err != nil {
		return fmt.Errorf("update glazing %d: %w", g.ID, err)
	}
	return checkAffected(result)
}

func (s *Store) ListServices() ([]Service, error) {
	rows, err := s.db.Query(`
		SELECT id, name, price, active
		FROM special_services
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query special services: %w", err)
	}
	defer rows.Close()

	services := make([]Service, 0)
	for rows.Next() {
		var svc Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Price, &svc.Active); err != nil {
			return nil, fmt.Errorf("scan special service: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate special services: %w", err)
	}

	return services, nil
}

func (s *Store) GetService(id int64) (Service, error) {
	var svc Service
	err := s.db.QueryRow(`
		SELECT id, name, price, active
		FROM special_services
		WHERE id = ?
	`, id).Scan(&svc.ID, &svc.Name, &svc.Price, &svc.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return Service{}, ErrNotFound
	}
	if err != nil {
		return Service{}, fmt.Errorf("query special service %d: %w", id, err)
	}
	return svc, nil
}

func (s *Store) CreateService(svc Service) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO special_services (name, price, active)
		VALUES (?, ?, ?)
	`, svc.Name, svc.Price, svc.Active)
	if err != nil {
		return 0, fmt.Errorf("insert special service: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("special service insert id: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateService(svc Service) error {
	result, err := s.db.Exec(`
		UPDATE special_services
		SET
			name = ?,
			price = ?,
			active = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, svc.Name, svc.Price, svc.Active, svc.ID)
	if err != nil {
		return fmt.Errorf("update special service %d: %w", svc.ID, err)
	}
	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
