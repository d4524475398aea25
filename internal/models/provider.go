package models

import "time"

// AIProviderSetting is an admin-managed LLM provider configuration.
// At most one row is active at any time; the registry enforces this
// by deactivating all others before activating a new one.
type AIProviderSetting struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	ProviderID string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"providerId"`
	Model      string     `gorm:"type:varchar(128);not null" json:"model"`
	APIKey     string     `gorm:"type:text;not null" json:"-"`
	IsActive   bool       `gorm:"default:false;not null" json:"isActive"`
	UsageCount int        `gorm:"default:0;not null" json:"usageCount"`
	LastUsed   *time.Time `json:"lastUsed"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
