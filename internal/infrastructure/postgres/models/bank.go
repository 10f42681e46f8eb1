package models

import "time"

type BankModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:200;not null"`
	Logo      *string   `gorm:"size:500"`
	CreatedAt time.Time `gorm:"not null"`
}

func (BankModel) TableName() string {
	return "banks"
}
