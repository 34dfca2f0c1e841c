package model

import (
	"time"
)

// BaseEntity carries audit columns. GORM fills the timestamps; CreatedBy is
// the authenticated admin that issued the write.
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	CreatedBy *string   `gorm:"column:created_by;size:100"`
}

// StampCreator records actor as the creator. An empty actor leaves the column NULL.
func (b *BaseEntity) StampCreator(actor string) {
	if actor == "" {
		b.CreatedBy = nil
		return
	}
	b.CreatedBy = &actor
}
