package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/repository"
)

var influencerSort = listquery.NewSortSpec(listquery.CreatedAtDesc,
	"name", "audience_size", "engagement_rate", "created_at", "updated_at")

// InfluencerService is the public influencer directory.
type InfluencerService struct {
	influencers repository.InfluencerRepository
	intent      repository.IntentRepository
}

func NewInfluencerService(influencers repository.InfluencerRepository, intent repository.IntentRepository) *InfluencerService {
	return &InfluencerService{influencers: influencers, intent: intent}
}

func (s *InfluencerService) List(ctx context.Context, p listquery.Params, f dto.InfluencerFilter) ([]models.Influencer, listquery.Page, error) {
	q := listquery.New(p, influencerSort)
	if f.Platform != "" {
		q = q.Where(listquery.Eq("platform", f.Platform))
	}
	if f.Industry != "" {
		q = q.Where(listquery.Eq("industry", f.Industry))
	}
	if f.MinFollowers != nil {
		q = q.Where(listquery.Gte("audience_size", *f.MinFollowers))
	}
	q = q.WithSearch(listquery.Search{
		Term:         f.Search,
		Columns:      []string{"name", "handle", "bio"},
		ArrayColumns: []string{"expertise_tags"},
	})

	rows, total, err := s.influencers.List(ctx, q)
	if err != nil {
		return nil, listquery.Page{}, fmt.Errorf("failed to list influencers: %w", err)
	}
	return rows, listquery.NewPage(q.Page, q.Limit, total), nil
}

func (s *InfluencerService) Get(ctx context.Context, id uuid.UUID) (*models.Influencer, error) {
	inf, err := s.influencers.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrInfluencerNotFound)
	}
	return inf, nil
}

// Create adds an influencer to the directory. When industry or tags are
// missing, the bio fills them and its score is stored as an alignment row.
func (s *InfluencerService) Create(ctx context.Context, req *dto.CreateInfluencerRequest) (*dto.CreateInfluencerResponse, error) {
	inf := &models.Influencer{
		Name:           req.Name,
		Platform:       req.Platform,
		Handle:         req.Handle,
		Bio:            req.Bio,
		AvatarURL:      req.AvatarURL,
		WebsiteURL:     req.WebsiteURL,
		Email:          req.Email,
		LinkedInURL:    req.LinkedInURL,
		TwitterURL:     req.TwitterURL,
		Industry:       req.Industry,
		AudienceSize:   req.AudienceSize,
		EngagementRate: req.EngagementRate,
		Location:       req.Location,
		ExpertiseTags:  pq.StringArray(req.ExpertiseTags),
		IsVerified:     req.IsVerified,
	}
	if inf.ExpertiseTags == nil {
		inf.ExpertiseTags = pq.StringArray{}
	}

	var analysis *BioAnalysis
	if req.Bio != nil && *req.Bio != "" && (req.Industry == nil || len(req.ExpertiseTags) == 0) {
		a := AnalyzeBio(*req.Bio)
		analysis = &a
		if inf.Industry == nil {
			inf.Industry = ptr(a.Industry)
		}
		if len(inf.ExpertiseTags) == 0 {
			inf.ExpertiseTags = a.ExpertiseTags
		}
	}

	if err := s.influencers.Create(ctx, inf); err != nil {
		return nil, fmt.Errorf("failed to create influencer: %w", err)
	}
	resp := &dto.CreateInfluencerResponse{Influencer: inf}
	if analysis == nil {
		return resp, nil
	}

	now := time.Now().UTC()
	score := &models.BuyerAlignmentScore{
		InfluencerID:   inf.ID,
		AlignmentScore: float64(analysis.Score) / 100,
		CalculatedAt:   now,
	}
	if err := s.intent.CreateAlignmentScore(ctx, score); err != nil {
		// The influencer row stands; the score can be recomputed.
		slog.Error("failed to store alignment score", "action", "create_influencer", "influencer_id", inf.ID, "error", err)
		return resp, nil
	}
	resp.Alignment = score
	return resp, nil
}
