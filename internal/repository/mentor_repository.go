package repository

import (
	"github.com/fadilmartias/mentor-match/internal/model"
	"github.com/fadilmartias/mentor-match/internal/response"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type MentorRepository struct {
	db *gorm.DB
}

func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{db}
}

func (r *MentorRepository) Create(mentor *model.MentorProfile) error {
	return r.db.Create(mentor).Error
}

func (r *MentorRepository) Update(mentor *model.MentorProfile) error {
	return r.db.Save(mentor).Error
}

func (r *MentorRepository) FindByID(id string) (*model.MentorProfile, error) {
	var mentor model.MentorProfile
	err := r.db.First(&mentor, "id = ?", id).Error
	return &mentor, err
}

func (r *MentorRepository) GetAll() ([]model.MentorProfile, error) {
	var mentors []model.MentorProfile
	err := r.db.Find(&mentors).Error
	return mentors, err
}

func (r *MentorRepository) List(page, pageSize int) ([]model.MentorProfile, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := r.db.Model(&model.MentorProfile{}).Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var mentors []model.MentorProfile
	offset := (page - 1) * pageSize
	err := r.db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&mentors).Error
	if err != nil {
		return nil, nil, err
	}

	pagination := response.NewPagination(page, pageSize, total, len(mentors))
	return mentors, pagination, nil
}

// SearchByEmbedding returns the topK mentors nearest to the given bio
// embedding, excluding excludeID (pass "" to keep all).
func (r *MentorRepository) SearchByEmbedding(embedding pgvector.Vector, topK int, excludeID string) ([]model.MentorProfile, error) {
	var mentors []model.MentorProfile

	query := `
        SELECT *, embedding <-> ? AS distance
        FROM mentors
        WHERE embedding IS NOT NULL`
	args := []any{embedding}
	if excludeID != "" {
		query += ` AND id != ?`
		args = append(args, excludeID)
	}
	query += `
        ORDER BY embedding <-> ?
        LIMIT ?`
	args = append(args, embedding, topK)

	err := r.db.Raw(query, args...).Scan(&mentors).Error
	return mentors, err
}
