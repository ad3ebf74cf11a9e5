package models

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RoleKitchen UserRole = "Kitchen"
	RoleWaiter  UserRole = "Waiter"
)

type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

type User struct {
	ID        string     `json:"id" bson:"id"`
	Name      string     `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email     string     `json:"email" bson:"email" validate:"required,email"`
	Password  string     `json:"password,omitempty" bson:"password" validate:"required,min=4"`
	Role      UserRole   `json:"role" bson:"role" validate:"required,eq=Admin|eq=Kitchen|eq=Waiter"`
	Status    UserStatus `json:"status" bson:"status" validate:"required,eq=Active|eq=Inactive"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}
