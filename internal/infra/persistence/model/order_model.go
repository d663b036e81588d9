package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Rows are insert-only. UserID is null
// for orders placed through the deprecated guest flow, which records the
// customer's name and phone inline instead.
type OrderModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        *uuid.UUID `gorm:"type:uuid;index"`
	PerfumeID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quantity      int        `gorm:"not null;default:1;check:quantity > 0"`
	Message       string     `gorm:"type:text;column:order_message"`
	Address       string     `gorm:"type:text;column:order_address"`
	CustomerName  string     `gorm:"type:varchar(100)"`
	CustomerPhone string     `gorm:"type:varchar(30)"`
	CreatedAt     time.Time

	Perfume *PerfumeModel `gorm:"foreignKey:PerfumeID"`
	User    *UserModel    `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
