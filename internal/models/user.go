package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnlimitedUsage is the sentinel stored in UsageLimit for plans without a
// monthly cap.
const UnlimitedUsage = -1

type User struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Username           string     `gorm:"unique;not null" json:"username"`
	Email              string     `gorm:"unique;not null" json:"email"`
	PasswordHash       string     `gorm:"not null" json:"-"`
	FullName           string     `json:"full_name"`
	SubscriptionPlan   string     `gorm:"default:free" json:"subscription_plan"`
	SubscriptionStatus string     `gorm:"default:active" json:"subscription_status"`
	UsageLimit         int        `gorm:"default:10" json:"usage_limit"`
	MonthlyUsage       int        `gorm:"default:0" json:"monthly_usage"`
	CreatedAt          time.Time  `json:"created_at"`
	LastLogin          *time.Time `json:"last_login"`
}

// SQLite has no server-side uuid generator, so assign one before insert.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// HasRemainingQuota reports whether the user may perform one more generation
// this billing period.
func (u *User) HasRemainingQuota() bool {
	return u.UsageLimit == UnlimitedUsage || u.MonthlyUsage < u.UsageLimit
}
