package notify

import (
	"github.com/seniorconnect-sg/community-api/internal/models"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Save(msg Message) error {
	n := models.Notification{
		UserID:    msg.UserID,
		Type:      msg.Type,
		Message:   msg.Message,
		Link:      msg.Link,
		EventName: msg.EventName,
		DateTime:  msg.DateTime,
		Location:  msg.Location,
		Comments:  msg.Comments,
	}
	return s.db.Create(&n).Error
}
