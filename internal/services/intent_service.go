package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/repository"
)

// OverlapStrategy estimates how much of a segment an influencer reaches.
type OverlapStrategy interface {
	Overlap(ctx context.Context, influencer *models.Influencer, segment *models.AudienceSegment) (float64, error)
}

// TrustGraphStrategy builds the trust graph for a user's relationships.
type TrustGraphStrategy interface {
	Graph(ctx context.Context, relationships []models.TrustRelationship) (*dto.TrustGraphResponse, error)
}

// UnscoredOverlap is the default OverlapStrategy. No overlap model exists yet.
type UnscoredOverlap struct{}

func (UnscoredOverlap) Overlap(context.Context, *models.Influencer, *models.AudienceSegment) (float64, error) {
	return 0, apperrors.New(apperrors.ErrNotImplemented, "Audience overlap scoring is not implemented")
}

// UnscoredTrustGraph is the default TrustGraphStrategy.
type UnscoredTrustGraph struct{}

func (UnscoredTrustGraph) Graph(context.Context, []models.TrustRelationship) (*dto.TrustGraphResponse, error) {
	return nil, apperrors.New(apperrors.ErrNotImplemented, "Trust graph analysis is not implemented")
}

var (
	segmentSort   = listquery.NewSortSpec(listquery.CreatedAtDesc, "name", "created_at", "updated_at")
	alignmentSort = listquery.NewSortSpec(listquery.Sort{Field: "alignment_score", Desc: true},
		"alignment_score", "trust_score", "conversion_probability", "calculated_at")
)

// IntentService records buyer-intent data and fronts the scoring strategies.
type IntentService struct {
	intent      repository.IntentRepository
	influencers repository.InfluencerRepository
	overlap     OverlapStrategy
	trust       TrustGraphStrategy
}

func NewIntentService(
	intent repository.IntentRepository,
	influencers repository.InfluencerRepository,
	overlap OverlapStrategy,
	trust TrustGraphStrategy,
) *IntentService {
	if overlap == nil {
		overlap = UnscoredOverlap{}
	}
	if trust == nil {
		trust = UnscoredTrustGraph{}
	}
	return &IntentService{intent: intent, influencers: influencers, overlap: overlap, trust: trust}
}

func (s *IntentService) CreateSegment(ctx context.Context, userID string, req *dto.CreateSegmentRequest) (*models.AudienceSegment, error) {
	seg := &models.AudienceSegment{
		UserID:           userID,
		Name:             req.Name,
		Description:      req.Description,
		Demographics:     jsonOrEmpty(req.Demographics),
		Interests:        jsonOrEmpty(req.Interests),
		BehaviorPatterns: jsonOrEmpty(req.BehaviorPatterns),
	}
	if err := s.intent.CreateSegment(ctx, seg); err != nil {
		return nil, fmt.Errorf("failed to create audience segment: %w", err)
	}
	return seg, nil
}

func (s *IntentService) ListSegments(ctx context.Context, userID string, p listquery.Params) ([]models.AudienceSegment, listquery.Page, error) {
	q := listquery.New(p, segmentSort).OwnedBy(userID)
	rows, total, err := s.intent.ListSegments(ctx, q)
	if err != nil {
		return nil, listquery.Page{}, fmt.Errorf("failed to list audience segments: %w", err)
	}
	return rows, listquery.NewPage(q.Page, q.Limit, total), nil
}

func (s *IntentService) RecordSignal(ctx context.Context, userID string, req *dto.IntentSignalRequest) (*models.IntentSignal, error) {
	influencerID, err := s.requireInfluencer(ctx, req.InfluencerID)
	if err != nil {
		return nil, err
	}
	signal := &models.IntentSignal{
		UserID:                 userID,
		InfluencerID:           influencerID,
		SignalType:             req.SignalType,
		SignalData:             jsonOrEmpty(req.SignalData),
		AudienceDemographics:   jsonOrEmpty(req.AudienceDemographics),
		EngagementQualityScore: req.EngagementQualityScore,
		IntentScore:            req.IntentScore,
		CollectedAt:            time.Now().UTC(),
	}
	if err := s.intent.CreateSignal(ctx, signal); err != nil {
		return nil, fmt.Errorf("failed to record intent signal: %w", err)
	}
	return signal, nil
}

func (s *IntentService) RecordTrust(ctx context.Context, userID string, req *dto.TrustRelationshipRequest) (*models.TrustRelationship, error) {
	influencerID, err := s.requireInfluencer(ctx, req.InfluencerID)
	if err != nil {
		return nil, err
	}
	rel := &models.TrustRelationship{
		UserID:              userID,
		InfluencerID:        influencerID,
		CustomerID:          req.CustomerID,
		RelationshipType:    req.RelationshipType,
		Platform:            req.Platform,
		ConnectionStrength:  req.ConnectionStrength,
		EngagementFrequency: req.EngagementFrequency,
		LastInteraction:     req.LastInteraction,
		Verified:            req.Verified,
	}
	if err := s.intent.CreateTrust(ctx, rel); err != nil {
		return nil, fmt.Errorf("failed to record trust relationship: %w", err)
	}
	return rel, nil
}

func (s *IntentService) AlignmentScores(ctx context.Context, p listquery.Params, f dto.AlignmentFilter) ([]models.BuyerAlignmentScore, listquery.Page, error) {
	q := listquery.New(p, alignmentSort)
	if f.MinScore != nil {
		q = q.Where(listquery.Gte("alignment_score", *f.MinScore))
	}
	rows, total, err := s.intent.ListAlignmentScores(ctx, q)
	if err != nil {
		return nil, listquery.Page{}, fmt.Errorf("failed to list alignment scores: %w", err)
	}
	return rows, listquery.NewPage(q.Page, q.Limit, total), nil
}

// AudienceOverlap checks that both sides exist and are visible to the caller
// before asking the strategy.
func (s *IntentService) AudienceOverlap(ctx context.Context, userID string, req *dto.AudienceOverlapRequest) (*dto.AudienceOverlapResponse, error) {
	influencerID, err := uuid.Parse(req.InfluencerID)
	if err != nil {
		return nil, ErrInfluencerNotFound
	}
	inf, err := s.influencers.FindByID(ctx, influencerID)
	if err != nil {
		return nil, notFound(err, ErrInfluencerNotFound)
	}
	segmentID, err := uuid.Parse(req.AudienceSegmentID)
	if err != nil {
		return nil, ErrSegmentNotFound
	}
	seg, err := s.intent.FindSegment(ctx, userID, segmentID)
	if err != nil {
		return nil, notFound(err, ErrSegmentNotFound)
	}

	pct, err := s.overlap.Overlap(ctx, inf, seg)
	if err != nil {
		return nil, err
	}
	return &dto.AudienceOverlapResponse{
		InfluencerID:      inf.ID.String(),
		AudienceSegmentID: seg.ID.String(),
		OverlapPercentage: pct,
	}, nil
}

func (s *IntentService) TrustGraph(ctx context.Context, userID string) (*dto.TrustGraphResponse, error) {
	rels, err := s.intent.ListTrust(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trust relationships: %w", err)
	}
	return s.trust.Graph(ctx, rels)
}

func (s *IntentService) requireInfluencer(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInfluencerNotFound
	}
	ok, err := s.influencers.Exists(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to check influencer: %w", err)
	}
	if !ok {
		return uuid.Nil, ErrInfluencerNotFound
	}
	return id, nil
}

func jsonOrEmpty(j datatypes.JSON) datatypes.JSON {
	if len(j) == 0 || string(j) == "null" {
		return datatypes.JSON("{}")
	}
	return j
}
