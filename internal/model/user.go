package model

import "time"

// Role tags what a user may administer.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole resolves a role tag. An empty tag means RoleUser.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case "":
		return RoleUser, true
	case RoleAdmin, RoleUser:
		return Role(s), true
	default:
		return "", false
	}
}

// User is the stored user record, credential hash included.
// Use Public before handing it to anything outside the service layer.
type User struct {
	ID           uint      `json:"id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone        string    `json:"phone" gorm:"size:50;not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName keeps the table name used by the existing rental schema.
func (User) TableName() string { return "Users" }

// PublicUser is the only user shape returned to callers.
type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  Role   `json:"role"`
}

// Public strips credential material from the record.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

// UserFields are the non-credential columns of a user.
type UserFields struct {
	Name  string
	Email string
	Phone string
	Role  Role
}

// Fields returns the non-credential columns of the projection.
func (p PublicUser) Fields() UserFields {
	return UserFields{Name: p.Name, Email: p.Email, Phone: p.Phone, Role: p.Role}
}

// Credential is an optional replacement credential hash.
// The zero value leaves the stored hash untouched.
type Credential struct {
	hash string
	set  bool
}

// NewCredential wraps a freshly derived hash for storage.
func NewCredential(hash string) Credential {
	return Credential{hash: hash, set: hash != ""}
}

// Hash returns the replacement hash and whether there is one.
func (c Credential) Hash() (string, bool) {
	return c.hash, c.set
}

// UserUpdate describes a single-record update.
type UserUpdate struct {
	Fields     UserFields
	Credential Credential
}
