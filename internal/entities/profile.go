package entities

import "time"

type Profile struct {
	ID        string
	Email     string
	FullName  string
	Phone     string
	Role      RoleType
	Status    ProfileStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoleType string

const (
	RoleCustomer RoleType = "customer"
	RoleRider    RoleType = "rider"
	RoleAdmin    RoleType = "admin"
)

func (r RoleType) String() string {
	return string(r)
}

type ProfileStatusType string

const (
	ProfileActive    ProfileStatusType = "active"
	ProfileSuspended ProfileStatusType = "suspended"
	ProfilePending   ProfileStatusType = "pending"
)

func (s ProfileStatusType) String() string {
	return string(s)
}

type ProfileModify struct {
	ID       *string
	Email    *string
	FullName *string
	Phone    *string
	Role     *RoleType
	Status   *ProfileStatusType
}

// Actor — разрешённая сессия вызывающего. Передается явно через контекст
// запроса, сервисы перепроверяют роль и владение на каждой операции.
type Actor struct {
	ProfileID string
	Role      RoleType
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsRider() bool {
	return a.Role == RoleRider
}

func (a Actor) IsCustomer() bool {
	return a.Role == RoleCustomer
}
