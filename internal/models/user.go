package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID     string    `json:"id" yaml:"id"`
	Name   string    `json:"name" yaml:"name"`
	Email  string    `json:"email" yaml:"email"`
	Avatar string    `json:"avatar,omitempty" yaml:"avatar"`
	Role   string    `json:"role" yaml:"role"`
	Orders int       `json:"orders,omitempty" yaml:"orders"`
	Joined time.Time `json:"joined,omitzero" yaml:"joined"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
