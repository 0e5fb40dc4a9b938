package partner

import (
	"strings"
	"time"

	"github.com/chemstock/backend/internal/domain/shared"
)

// Client represents a company the business sells to
type Client struct {
	shared.BaseEntity
	CompanyName string `gorm:"type:varchar(200);not null"`
	Address     string `gorm:"type:varchar(500);not null"`
	Phone       string `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client. All three fields are required.
func NewClient(companyName, address, phone string) (*Client, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Company name cannot be empty")
	}
	if strings.TrimSpace(address) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Address cannot be empty")
	}
	if strings.TrimSpace(phone) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Phone cannot be empty")
	}

	return &Client{
		BaseEntity:  shared.NewBaseEntity(),
		CompanyName: strings.TrimSpace(companyName),
		Address:     strings.TrimSpace(address),
		Phone:       strings.TrimSpace(phone),
	}, nil
}

// Update replaces the client's details
func (c *Client) Update(companyName, address, phone string) error {
	if strings.TrimSpace(companyName) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Company name cannot be empty")
	}

	c.CompanyName = strings.TrimSpace(companyName)
	c.Address = strings.TrimSpace(address)
	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now()

	return nil
}
