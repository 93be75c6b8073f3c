package storage

import (
	"time"

	"github.com/vulnlab/accesslab/internal/models"
)

// Seed возвращает фиксированный стартовый набор записей.
// Каждый вызов отдает свежие копии: Reset не должен делить структуры
// с уже выданными наружу указателями.
func Seed() []*models.User {
	return []*models.User{
		{
			ID:       1,
			Username: "admin",
			Email:    "admin@demo.com",
			Password: "admin123",
			Role:     "admin",
			Profile: &models.Profile{
				FullName:   "System Administrator",
				Phone:      "+1-555-0001",
				Department: "IT Security",
				Salary:     120000,
				SSN:        "123-45-6789",
			},
			CreatedAt: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:       2,
			Username: "john",
			Email:    "john@demo.com",
			Password: "user123",
			Role:     "user",
			Profile: &models.Profile{
				FullName:   "John Doe",
				Phone:      "+1-555-0002",
				Department: "Marketing",
				Salary:     65000,
				SSN:        "987-65-4321",
			},
			CreatedAt: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:       3,
			Username: "jane",
			Email:    "jane@demo.com",
			Password: "user123",
			Role:     "user",
			Profile: &models.Profile{
				FullName:   "Jane Smith",
				Phone:      "+1-555-0003",
				Department: "Sales",
				Salary:     70000,
				SSN:        "456-78-9012",
			},
			CreatedAt: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:       4,
			Username: "bob",
			Email:    "bob@demo.com",
			Password: "user123",
			Role:     "user",
			Profile: &models.Profile{
				FullName:   "Bob Wilson",
				Phone:      "+1-555-0004",
				Department: "HR",
				Salary:     60000,
				SSN:        "789-01-2345",
			},
			CreatedAt: time.Date(2024, 1, 4, 11, 0, 0, 0, time.UTC),
		},
	}
}
