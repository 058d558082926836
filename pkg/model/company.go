package model

import "time"

// DefaultPosition is the open position every new company starts with.
const DefaultPosition = "General"

type Company struct {
	CompanyID    string    `json:"company_id" db:"id"`
	Slug         string    `json:"slug" db:"slug"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Phone        string    `json:"phone" db:"phone"`
	Address      string    `json:"address" db:"address"`
	SocialMedia  string    `json:"social_media" db:"social_media"`
	Logo         string    `json:"logo" db:"logo"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Positions    []string  `json:"positions" db:"positions"`
}

// CompanyPatch carries a partial company update. Nil fields are left untouched.
type CompanyPatch struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Phone       *string   `json:"phone" validate:"omitempty,max=50"`
	Address     *string   `json:"address" validate:"omitempty,max=300"`
	SocialMedia *string   `json:"social_media" validate:"omitempty,max=200"`
	Logo        *string   `json:"logo"`
	Positions   *[]string `json:"positions" validate:"omitempty,min=1,dive,required,max=100"`
}

// Empty reports whether the patch carries no field at all.
func (p CompanyPatch) Empty() bool {
	return p.Name == nil && p.Phone == nil && p.Address == nil &&
		p.SocialMedia == nil && p.Logo == nil && p.Positions == nil
}

// Apply merges the patch into c, supplied fields win.
func (p CompanyPatch) Apply(c *Company) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.SocialMedia != nil {
		c.SocialMedia = *p.SocialMedia
	}
	if p.Logo != nil {
		c.Logo = *p.Logo
	}
	if p.Positions != nil {
		c.Positions = append([]string(nil), (*p.Positions)...)
	}
}

type RegisterCompanyReq struct {
	Name        string `json:"name" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Phone       string `json:"phone" validate:"max=50"`
	Address     string `json:"address" validate:"max=300"`
	SocialMedia string `json:"social_media" validate:"max=200"`
}

// RegisterResult mirrors the success/message pair shown on the sign-up screen.
type RegisterResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Company *Company `json:"-"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRes struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
	Company              Company   `json:"company"`
	PublicURL            string    `json:"public_url"`
}

type MeRes struct {
	Company   Company `json:"company"`
	PublicURL string  `json:"public_url"`
}

// PublicCompany is what the intake form is allowed to see.
type PublicCompany struct {
	Slug      string   `json:"slug"`
	Name      string   `json:"name"`
	Logo      string   `json:"logo"`
	Positions []string `json:"positions"`
}

func (c Company) Public() PublicCompany {
	return PublicCompany{
		Slug:      c.Slug,
		Name:      c.Name,
		Logo:      c.Logo,
		Positions: c.Positions,
	}
}
