// Package user is the read model of people the lifecycle engine refers to.
// Accounts are managed by the identity service; this side only looks them up.
package user

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleTechnician Role = "TECHNICIAN"
	RoleUser       Role = "USER"
)

// ElevatedRoles receive overdue alerts and the manager digest.
var ElevatedRoles = []Role{RoleAdmin, RoleManager}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTechnician, RoleUser:
		return true
	}
	return false
}

func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleManager
}

func (r Role) String() string { return string(r) }

type User struct {
	id        uint
	fullName  string
	email     string
	role      Role
	active    bool
	createdAt time.Time
}

func NewUser(fullName, email string, role Role, now time.Time) (*User, error) {
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{fullName: fullName, email: email, role: role, active: true, createdAt: now}, nil
}

func ReconstructUser(id uint, fullName, email string, role Role, active bool, createdAt time.Time) *User {
	return &User{id: id, fullName: fullName, email: email, role: role, active: active, createdAt: createdAt}
}

func (u *User) ID() uint             { return u.id }
func (u *User) FullName() string     { return u.fullName }
func (u *User) Email() string        { return u.email }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.active }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	u.id = id
	return nil
}
