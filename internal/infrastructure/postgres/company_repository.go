package postgres

import (
	"context"
	"fmt"

	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db DB
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, tax_id, contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.TaxID, company.Contact,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID; nil sin error si no existe.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, contact, created_at, updated_at
		FROM companies WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id), "get company")
}

// GetByName obtiene una empresa por nombre exacto; nil sin error si no existe.
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, contact, created_at, updated_at
		FROM companies WHERE lower(name) = lower($1)`
	return r.scanOne(r.db.QueryRow(context.Background(), query, name), "get company by name")
}

// List devuelve empresas ordenadas por nombre, con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, contact, created_at, updated_at
		FROM companies ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Contact, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, tax_id = $3, contact = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.TaxID, company.Contact, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) scanOne(row interface{ Scan(dest ...any) error }, op string) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.Name, &c.TaxID, &c.Contact, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
