package models

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is a logged touchpoint (email, call, meeting, note, file).
type Interaction struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          string     `gorm:"type:uuid;not null;index" json:"user_id"`
	InfluencerID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"influencer_id"`
	CampaignID      *uuid.UUID `gorm:"type:uuid;index" json:"campaign_id"`
	Type            string     `gorm:"size:20;not null" json:"type"`
	Subject         *string    `gorm:"size:500" json:"subject"`
	Content         *string    `gorm:"type:text" json:"content"`
	FileURL         *string    `gorm:"type:text" json:"file_url"`
	InteractionDate time.Time  `gorm:"not null;index" json:"interaction_date"`
	CreatedAt       time.Time  `json:"created_at"`
}
