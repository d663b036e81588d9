package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255)"`
	Role         string    `gorm:"type:varchar(10);not null;default:'USER'"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Preferences *UserPreferencesModel `gorm:"foreignKey:UserID"`
	Orders      []OrderModel          `gorm:"foreignKey:UserID"`
	Reviews     []ReviewModel         `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
