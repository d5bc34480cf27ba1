package repository

import (
	"github.com/fadilmartias/mentor-match/internal/model"
	"github.com/fadilmartias/mentor-match/internal/response"
	"gorm.io/gorm"
)

type MenteeRepository struct {
	db *gorm.DB
}

func NewMenteeRepository(db *gorm.DB) *MenteeRepository {
	return &MenteeRepository{db}
}

func (r *MenteeRepository) Create(mentee *model.MenteeProfile) error {
	return r.db.Create(mentee).Error
}

func (r *MenteeRepository) Update(mentee *model.MenteeProfile) error {
	return r.db.Save(mentee).Error
}

func (r *MenteeRepository) FindByID(id string) (*model.MenteeProfile, error) {
	var mentee model.MenteeProfile
	err := r.db.First(&mentee, "id = ?", id).Error
	return &mentee, err
}

func (r *MenteeRepository) List(page, pageSize int) ([]model.MenteeProfile, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := r.db.Model(&model.MenteeProfile{}).Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var mentees []model.MenteeProfile
	offset := (page - 1) * pageSize
	err := r.db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&mentees).Error
	if err != nil {
		return nil, nil, err
	}

	pagination := response.NewPagination(page, pageSize, total, len(mentees))
	return mentees, pagination, nil
}
