package models

import "time"

const (
	CompanyTypeManufacturer = "manufacturer"
	CompanyTypeDistributor  = "distributor"
	CompanyTypePharmacy     = "pharmacy"
)

type Company struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Status        string    `json:"status"`
	LicenseNumber string    `json:"license_number"`
	Type          string    `json:"type"`
	EmployeeCount int       `json:"employee_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
