package storage

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UserUpdate struct {
	FullName     *string `json:"fullName"`
	IsAdmin      *bool   `json:"isAdmin"`
	PasswordHash *string `json:"-"`
}

type LoginLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	IPAddress string    `json:"ipAddress"`
	LoginAt   time.Time `json:"loginAt"`
}
