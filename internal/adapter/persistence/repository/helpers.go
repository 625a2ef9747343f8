package repository

import (
	"errors"
	"os"

	"insurance_portal/internal/domain/entities"

	"gorm.io/gorm"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// addressCols is embedded in every row that stores a postal address.
type addressCols struct {
	AddressLine1 string `gorm:"size:200"`
	AddressLine2 string `gorm:"size:200"`
	City         string `gorm:"size:120"`
	Province     string `gorm:"size:120"`
	PostalCode   string `gorm:"size:20"`
	Country      string `gorm:"size:80"`
}

func toAddressCols(a entities.Address) addressCols {
	return addressCols(a)
}

func fromAddressCols(a addressCols) entities.Address {
	return entities.Address(a)
}

// first loads one row into dest and reports whether it existed.
func first(db *gorm.DB, dest any, conds ...any) (bool, error) {
	err := db.First(dest, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
