package models

import "time"

type BannerLevel string

const (
	BannerSuccess BannerLevel = "success"
	BannerInfo    BannerLevel = "info"
	BannerWarning BannerLevel = "warning"
	BannerDanger  BannerLevel = "danger"
)

// BannerTTL is how long a banner stays on the page before it expires.
const BannerTTL = 5 * time.Second

// Banner is a transient, dismissible on-page notification.
type Banner struct {
	Level   BannerLevel   `json:"level"`
	Message string        `json:"message"`
	TTL     time.Duration `json:"-"`
}

func NewBanner(level BannerLevel, message string) Banner {
	return Banner{Level: level, Message: message, TTL: BannerTTL}
}

// TTLMillis feeds the page script's auto-expiry timer.
func (b Banner) TTLMillis() int64 {
	return b.TTL.Milliseconds()
}
