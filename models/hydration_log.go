package models

import "time"

// HydrationLog is append-only; the daily total is always a live sum.
type HydrationLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	AmountML int       `gorm:"column:amount_ml;not null" json:"amount_ml"`
	LogDate  time.Time `gorm:"type:date;index" json:"log_date"`
	LoggedAt time.Time `gorm:"autoCreateTime" json:"logged_at"`
}
