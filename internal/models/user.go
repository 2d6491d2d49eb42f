package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the profile row for an identity-provider account. The id is the
// provider's subject id.
type User struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email              string         `gorm:"size:255;index" json:"email"`
	Name               string         `gorm:"size:255" json:"name"`
	AvatarURL          *string        `gorm:"type:text" json:"avatar_url"`
	Company            *string        `gorm:"size:255" json:"company"`
	JobTitle           *string        `gorm:"size:255" json:"job_title"`
	Role               string         `gorm:"size:20;default:'user'" json:"role"`
	SubscriptionStatus string         `gorm:"size:20;default:'trial'" json:"subscription_status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}
