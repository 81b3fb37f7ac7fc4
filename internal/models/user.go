package models

import "jobdesk/internal/common"

// User is the account record returned by the job-board API. Role decides
// which operations the server permits: job seekers apply to jobs, employers
// post and manage them.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	Phone      string   `json:"phone,omitempty"`
	Company    string   `json:"company,omitempty"`
	Location   string   `json:"location,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Resume     string   `json:"resume,omitempty"`
}

func (u *User) IsEmployer() bool {
	return u != nil && u.Role == common.RoleEmployer
}

func (u *User) IsJobSeeker() bool {
	return u != nil && u.Role == common.RoleJobSeeker
}

// UserPatch is a partial profile update. Nil fields are left untouched when
// the patch is applied, giving shallow-merge semantics.
type UserPatch struct {
	Name       *string   `json:"name,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Company    *string   `json:"company,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	Skills     *[]string `json:"skills,omitempty"`
	Experience *string   `json:"experience,omitempty"`
	Resume     *string   `json:"resume,omitempty"`
}

// Apply merges the non-nil fields of the patch into u, leaving every other
// field unchanged.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Company != nil {
		u.Company = *p.Company
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Skills != nil {
		u.Skills = *p.Skills
	}
	if p.Experience != nil {
		u.Experience = *p.Experience
	}
	if p.Resume != nil {
		u.Resume = *p.Resume
	}
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Company  string `json:"company,omitempty"`
}

// AuthResponse is the body of successful login/register calls: a token plus
// the user's own fields flattened alongside it.
type AuthResponse struct {
	Token string `json:"token"`
	User
}
