package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SlotModel struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (SlotModel) TableName() string {
	return "slots"
}

// SQLSlot keeps slots in a single table through gorm, so it works on any
// dialect the application opens (sqlite, postgres).
type SQLSlot struct {
	db *gorm.DB
}

func NewSQLSlot(db *gorm.DB) (*SQLSlot, error) {
	if err := db.AutoMigrate(&SlotModel{}); err != nil {
		return nil, fmt.Errorf("slot: migrate slots table: %w", err)
	}
	return &SQLSlot{db: db}, nil
}

func (s *SQLSlot) Get(ctx context.Context, key string) (string, bool, error) {
	var model SlotModel
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("slot: sql get %s: %w", key, err)
	}
	return model.Value, true, nil
}

func (s *SQLSlot) Set(ctx context.Context, key, value string) error {
	model := SlotModel{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("slot: sql set %s: %w", key, err)
	}
	return nil
}

func (s *SQLSlot) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&SlotModel{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("slot: sql delete %s: %w", key, err)
	}
	return nil
}
