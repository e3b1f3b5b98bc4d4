package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&StaffUser{},
		&Member{},
		&Product{},
		&Transaction{},
		&TransactionItem{},
	)
}
