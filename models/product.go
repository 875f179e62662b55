package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Category    string    `gorm:"index;not null" json:"category"`
	Image       string    `json:"image"`
	Price       float64   `gorm:"not null" json:"price"`
	RatingRate  float64   `json:"rating_rate"`
	RatingCount int       `json:"rating_count"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
