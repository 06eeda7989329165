package profile

import "time"

type ProfileDB struct {
	ID        string
	Email     string
	FullName  string
	Phone     string
	Role      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProfileModifyDB struct {
	ID       *string
	Email    *string
	FullName *string
	Phone    *string
	Role     *string
	Status   *string
}
