package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"growsphere/entities"
	"growsphere/pkg/store/repository"
)

type kvRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.KVRepository { return &kvRepo{db} }

func (r *kvRepo) Get(key string) (string, bool, error) {
	var e entities.KVEntry
	err := r.db.Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (r *kvRepo) Put(key, value string) error {
	e := entities.KVEntry{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (r *kvRepo) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.Where("key IN ?", keys).Delete(&entities.KVEntry{}).Error
}

func (r *kvRepo) Keys() ([]string, error) {
	var keys []string
	return keys, r.db.Model(&entities.KVEntry{}).Order("key ASC").Pluck("key", &keys).Error
}
