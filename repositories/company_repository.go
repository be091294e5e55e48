package repositories

import (
	"context"
	"errors"
	"time"

	"pharmacy-shop/config"
	"pharmacy-shop/models"
)

type CompanyRepository struct{}

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{}
}

const companyColumns = `id, name, email, phone, address, status, license_number, type, employee_count, created_at, updated_at`

func (r *CompanyRepository) FindAll(page, limit int) ([]models.Company, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(context.Background(), `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT `+companyColumns+` FROM companies ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var co models.Company
		if err := rows.Scan(
			&co.ID, &co.Name, &co.Email, &co.Phone, &co.Address, &co.Status,
			&co.LicenseNumber, &co.Type, &co.EmployeeCount, &co.CreatedAt, &co.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		companies = append(companies, co)
	}
	return companies, total, nil
}

func (r *CompanyRepository) FindByID(id int) (*models.Company, error) {
	co := &models.Company{}
	err := config.DB.QueryRow(context.Background(),
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id).Scan(
		&co.ID, &co.Name, &co.Email, &co.Phone, &co.Address, &co.Status,
		&co.LicenseNumber, &co.Type, &co.EmployeeCount, &co.CreatedAt, &co.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return co, nil
}

func (r *CompanyRepository) Create(co *models.Company) error {
	now := time.Now()
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO companies (name, email, phone, address, status, license_number, type, employee_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		co.Name, co.Email, co.Phone, co.Address, co.Status, co.LicenseNumber, co.Type, co.EmployeeCount, now, now,
	).Scan(&co.ID, &co.CreatedAt, &co.UpdatedAt)
}

func (r *CompanyRepository) Update(co *models.Company) error {
	result, err := config.DB.Exec(context.Background(),
		`UPDATE companies SET name = $1, email = $2, phone = $3, address = $4, status = $5,
		 license_number = $6, type = $7, employee_count = $8, updated_at = $9 WHERE id = $10`,
		co.Name, co.Email, co.Phone, co.Address, co.Status, co.LicenseNumber, co.Type,
		co.EmployeeCount, time.Now(), co.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("company not found")
	}
	return nil
}

func (r *CompanyRepository) Delete(id int) error {
	result, err := config.DB.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("company not found")
	}
	return nil
}
