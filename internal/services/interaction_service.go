package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/storage"
)

var interactionSort = listquery.NewSortSpec(
	listquery.Sort{Field: "interaction_date", Desc: true},
	"interaction_date", "type", "created_at",
)

// InteractionService logs touchpoints with influencers.
type InteractionService struct {
	interactions repository.InteractionRepository
	influencers  repository.InfluencerRepository
	campaigns    repository.CampaignRepository
	files        storage.Uploader
}

// NewInteractionService builds the service. files may be nil when no object
// storage is configured.
func NewInteractionService(
	interactions repository.InteractionRepository,
	influencers repository.InfluencerRepository,
	campaigns repository.CampaignRepository,
	files storage.Uploader,
) *InteractionService {
	return &InteractionService{interactions: interactions, influencers: influencers, campaigns: campaigns, files: files}
}

func (s *InteractionService) Create(ctx context.Context, userID string, req *dto.CreateInteractionRequest) (*models.Interaction, error) {
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

	interaction := &models.Interaction{
		UserID:          userID,
		InfluencerID:    influencerID,
		Type:            req.Type,
		Subject:         req.Subject,
		Content:         req.Content,
		FileURL:         req.FileURL,
		InteractionDate: time.Now().UTC(),
	}
	if req.InteractionDate != nil {
		interaction.InteractionDate = req.InteractionDate.UTC()
	}
	if req.CampaignID != nil {
		campaignID, err := uuid.Parse(*req.CampaignID)
		if err != nil {
			return nil, ErrCampaignNotFound
		}
		if _, err := s.campaigns.FindOwned(ctx, userID, campaignID); err != nil {
			return nil, notFound(err, ErrCampaignNotFound)
		}
		interaction.CampaignID = &campaignID
	}

	if err := s.interactions.Create(ctx, interaction); err != nil {
		return nil, fmt.Errorf("failed to create interaction: %w", err)
	}
	return interaction, nil
}

func (s *InteractionService) List(ctx context.Context, userID string, p listquery.Params, f dto.InteractionFilter) ([]models.Interaction, listquery.Page, error) {
	q := listquery.New(p, interactionSort).OwnedBy(userID)
	if f.InfluencerID != "" {
		q = q.Where(listquery.Eq("influencer_id", f.InfluencerID))
	}
	if f.CampaignID != "" {
		q = q.Where(listquery.Eq("campaign_id", f.CampaignID))
	}
	if f.Type != "" {
		q = q.Where(listquery.Eq("type", f.Type))
	}
	rows, total, err := s.interactions.List(ctx, q)
	if err != nil {
		return nil, listquery.Page{}, fmt.Errorf("failed to list interactions: %w", err)
	}
	return rows, listquery.NewPage(q.Page, q.Limit, total), nil
}

func (s *InteractionService) Get(ctx context.Context, userID string, id uuid.UUID) (*models.Interaction, error) {
	i, err := s.interactions.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, notFound(err, ErrInteractionNotFound)
	}
	return i, nil
}

func (s *InteractionService) Update(ctx context.Context, userID string, id uuid.UUID, req *dto.UpdateInteractionRequest) (*models.Interaction, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	i, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.interactions.Update(ctx, i, fields); err != nil {
		return nil, fmt.Errorf("failed to update interaction: %w", err)
	}
	return s.Get(ctx, userID, id)
}

func (s *InteractionService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	n, err := s.interactions.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete interaction: %w", err)
	}
	if n == 0 {
		return ErrInteractionNotFound
	}
	return nil
}

// Attachment is an uploaded file on its way to object storage.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AttachFile uploads a file and points the interaction's file_url at it.
func (s *InteractionService) AttachFile(ctx context.Context, userID string, id uuid.UUID, file Attachment) (*models.Interaction, error) {
	if s.files == nil {
		return nil, ErrStorageDisabled
	}
	i, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	key := storage.ObjectKey(userID, i.ID.String(), file.Filename)
	url, err := s.files.Upload(ctx, key, file.Body, file.Size, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload attachment: %w", err)
	}

	if err := s.interactions.Update(ctx, i, map[string]any{"file_url": url}); err != nil {
		return nil, fmt.Errorf("failed to store attachment url: %w", err)
	}
	i.FileURL = &url
	return i, nil
}
