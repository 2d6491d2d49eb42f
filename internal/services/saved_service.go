package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/repository"
)

var (
	savedSort = listquery.NewSortSpec(listquery.CreatedAtDesc, "created_at", "updated_at", "priority", "relationship_strength")
	crmSort   = listquery.NewSortSpec(listquery.CreatedAtDesc,
		"created_at", "updated_at", "last_contacted_at", "follow_up_date", "relationship_strength", "priority")
)

// SavedInfluencerService manages a user's CRM list.
type SavedInfluencerService struct {
	saved       repository.SavedInfluencerRepository
	influencers repository.InfluencerRepository
}

func NewSavedInfluencerService(saved repository.SavedInfluencerRepository, influencers repository.InfluencerRepository) *SavedInfluencerService {
	return &SavedInfluencerService{saved: saved, influencers: influencers}
}

func (s *SavedInfluencerService) List(ctx context.Context, userID string, p listquery.Params, f dto.SavedFilter) ([]models.SavedInfluencer, listquery.Page, error) {
	return s.list(ctx, userID, p, f, savedSort)
}

// CRM is the list with the follow-up oriented sort keys.
func (s *SavedInfluencerService) CRM(ctx context.Context, userID string, p listquery.Params, f dto.SavedFilter) ([]models.SavedInfluencer, listquery.Page, error) {
	return s.list(ctx, userID, p, f, crmSort)
}

func (s *SavedInfluencerService) list(ctx context.Context, userID string, p listquery.Params, f dto.SavedFilter, spec listquery.SortSpec) ([]models.SavedInfluencer, listquery.Page, error) {
	q := listquery.New(p, spec).OwnedBy(userID)
	if f.Status != "" {
		q = q.Where(listquery.Eq("status", f.Status))
	}
	rows, total, err := s.saved.List(ctx, q)
	if err != nil {
		return nil, listquery.Page{}, fmt.Errorf("failed to list saved influencers: %w", err)
	}
	return rows, listquery.NewPage(q.Page, q.Limit, total), nil
}

func (s *SavedInfluencerService) Add(ctx context.Context, userID string, req *dto.SaveInfluencerRequest) (*models.SavedInfluencer, error) {
	influencerID, err := uuid.Parse(req.InfluencerID)
	if err != nil {
		return nil, ErrInfluencerNotFound
	}
	ok, err := s.influencers.Exists(ctx, influencerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check influencer: %w", err)
	}
	if !ok {
		return nil, ErrInfluencerNotFound
	}

	_, err = s.saved.Find(ctx, userID, influencerID)
	if err == nil {
		return nil, ErrAlreadySaved
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check saved influencer: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.SavedStatusSaved
	}
	tags := pq.StringArray(req.Tags)
	if tags == nil {
		tags = pq.StringArray{}
	}
	saved := &models.SavedInfluencer{
		UserID:       userID,
		InfluencerID: influencerID,
		Status:       status,
		Notes:        req.Notes,
		Priority:     req.Priority,
		Tags:         tags,
	}
	if err := s.saved.Create(ctx, saved); err != nil {
		if isDuplicate(err) {
			return nil, ErrAlreadySaved
		}
		return nil, fmt.Errorf("failed to save influencer: %w", err)
	}
	return saved, nil
}

func (s *SavedInfluencerService) Remove(ctx context.Context, userID string, influencerID uuid.UUID) error {
	n, err := s.saved.Delete(ctx, userID, influencerID)
	if err != nil {
		return fmt.Errorf("failed to remove saved influencer: %w", err)
	}
	if n == 0 {
		return ErrNotInList
	}
	return nil
}

func (s *SavedInfluencerService) Update(ctx context.Context, userID string, influencerID uuid.UUID, req *dto.UpdateSavedInfluencerRequest) (*models.SavedInfluencer, error) {
	return s.updateFields(ctx, userID, influencerID, req.Fields())
}

func (s *SavedInfluencerService) SetRelationshipStrength(ctx context.Context, userID string, influencerID uuid.UUID, strength int) (*models.SavedInfluencer, error) {
	return s.updateFields(ctx, userID, influencerID, map[string]any{"relationship_strength": strength})
}

func (s *SavedInfluencerService) SetFollowUp(ctx context.Context, userID string, influencerID uuid.UUID, at time.Time) (*models.SavedInfluencer, error) {
	return s.updateFields(ctx, userID, influencerID, map[string]any{"follow_up_date": at})
}

func (s *SavedInfluencerService) Check(ctx context.Context, userID string, influencerID uuid.UUID) (*dto.CheckSavedResponse, error) {
	saved, err := s.saved.Find(ctx, userID, influencerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.CheckSavedResponse{IsSaved: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check saved influencer: %w", err)
	}
	return &dto.CheckSavedResponse{IsSaved: true, Saved: saved}, nil
}

func (s *SavedInfluencerService) updateFields(ctx context.Context, userID string, influencerID uuid.UUID, fields map[string]any) (*models.SavedInfluencer, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	n, err := s.saved.Update(ctx, userID, influencerID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update saved influencer: %w", err)
	}
	if n == 0 {
		return nil, ErrNotInList
	}
	saved, err := s.saved.Find(ctx, userID, influencerID)
	if err != nil {
		return nil, notFound(err, ErrNotInList)
	}
	return saved, nil
}
