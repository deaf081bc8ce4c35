// File: internal/model/user_profile.go
package model

import "time"

// UserProfile 隸屬於 User，User 刪除時一併刪除
type UserProfile struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Nickname    string    `db:"nickname" json:"nickname"`
	Email       string    `db:"email" json:"email"`
	Location    string    `db:"location" json:"location"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
