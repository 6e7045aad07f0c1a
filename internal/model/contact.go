package model

import "time"

const (
	RoleStudent = "ученик"
	RoleAdmin   = "админ"
	RoleTeacher = "учитель"
)

// Contact represents a directory entry
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Role  string `json:"role" binding:"required,oneof=ученик админ учитель"`
}

type UpdateContactRequest struct {
	ID    int64  `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Role  string `json:"role" binding:"required,oneof=ученик админ учитель"`
}
