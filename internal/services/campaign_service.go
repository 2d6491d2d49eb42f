package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/utm"
)

var (
	campaignSort   = listquery.NewSortSpec(listquery.CreatedAtDesc, "name", "start_date", "end_date", "budget", "status", "created_at", "updated_at")
	assignmentSort = listquery.NewSortSpec(listquery.CreatedAtDesc, "status", "created_at", "updated_at")
)

// CampaignService manages campaigns and the influencers assigned to them.
type CampaignService struct {
	campaigns   repository.CampaignRepository
	assignments repository.AssignmentRepository
	influencers repository.InfluencerRepository
	links       *utm.Generator
}

func NewCampaignService(
	campaigns repository.CampaignRepository,
	assignments repository.AssignmentRepository,
	influencers repository.InfluencerRepository,
	links *utm.Generator,
) *CampaignService {
	return &CampaignService{campaigns: campaigns, assignments: assignments, influencers: influencers, links: links}
}

func (s *CampaignService) Create(ctx context.Context, userID string, req *dto.CreateCampaignRequest) (*models.Campaign, error) {
	if err := checkBudget(req.Budget); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.CampaignStatusPlanning
	}
	goals := pq.StringArray(req.Goals)
	if goals == nil {
		goals = pq.StringArray{}
	}
	campaign := &models.Campaign{
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Budget:         req.Budget,
		TargetAudience: req.TargetAudience,
		Goals:          goals,
		Status:         status,
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

func (s *CampaignService) List(ctx context.Context, userID string, p listquery.Params, f dto.CampaignFilter) ([]models.Campaign, listquery.Page, error) {
	q := listquery.New(p, campaignSort).OwnedBy(userID)
	if f.Status != "" {
		q = q.Where(listquery.Eq("status", f.Status))
	}
	rows, total, err := s.campaigns.List(ctx, q)
	if err != nil {
		return nil, listquery.Page{}, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return rows, listquery.NewPage(q.Page, q.Limit, total), nil
}

func (s *CampaignService) Get(ctx context.Context, userID string, id uuid.UUID) (*models.Campaign, error) {
	campaign, err := s.campaigns.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, notFound(err, ErrCampaignNotFound)
	}
	return campaign, nil
}

func (s *CampaignService) Update(ctx context.Context, userID string, id uuid.UUID, req *dto.UpdateCampaignRequest) (*models.Campaign, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	if err := checkBudget(req.Budget); err != nil {
		return nil, err
	}
	campaign, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.campaigns.Update(ctx, campaign, fields); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return s.Get(ctx, userID, id)
}

func (s *CampaignService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	n, err := s.campaigns.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	if n == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

// AssignInfluencer links an influencer to one of the caller's campaigns. A
// pair can be assigned once; a second attempt creates nothing.
func (s *CampaignService) AssignInfluencer(ctx context.Context, userID string, campaignID uuid.UUID, req *dto.AssignInfluencerRequest) (*models.CampaignInfluencer, error) {
	if _, err := s.Get(ctx, userID, campaignID); err != nil {
		return nil, err
	}
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

	exists, err := s.assignments.Exists(ctx, userID, campaignID, influencerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}
	if exists {
		return nil, ErrAlreadyAssigned
	}

	status := req.Status
	if status == "" {
		status = models.AssignmentStatusPlanned
	}
	a := &models.CampaignInfluencer{
		UserID:       userID,
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		Status:       status,
		Notes:        req.Notes,
	}
	params := req.UTM()
	a.SetUTM(params, s.links.Generate(params))

	if err := s.assignments.Create(ctx, a); err != nil {
		if isDuplicate(err) {
			return nil, ErrAlreadyAssigned
		}
		return nil, fmt.Errorf("failed to assign influencer: %w", err)
	}
	return a, nil
}

func (s *CampaignService) ListAssignments(ctx context.Context, userID string, campaignID uuid.UUID, p listquery.Params) ([]models.CampaignInfluencer, listquery.Page, error) {
	if _, err := s.Get(ctx, userID, campaignID); err != nil {
		return nil, listquery.Page{}, err
	}
	q := listquery.New(p, assignmentSort).OwnedBy(userID).Where(listquery.Eq("campaign_id", campaignID))
	rows, total, err := s.assignments.List(ctx, q)
	if err != nil {
		return nil, listquery.Page{}, fmt.Errorf("failed to list assignments: %w", err)
	}
	return rows, listquery.NewPage(q.Page, q.Limit, total), nil
}

// UpdateAssignment applies a partial update. If any UTM field is touched, the
// link is rebuilt from all five merged fields.
func (s *CampaignService) UpdateAssignment(ctx context.Context, userID string, campaignID, influencerID uuid.UUID, req *dto.UpdateAssignmentRequest) (*models.CampaignInfluencer, error) {
	patch := req.UTMPatch()
	if !patch.Touched() && req.Status == nil && req.Notes == nil {
		return nil, ErrNoFields
	}
	if _, err := s.Get(ctx, userID, campaignID); err != nil {
		return nil, err
	}
	a, err := s.assignments.FindOwned(ctx, userID, campaignID, influencerID)
	if err != nil {
		return nil, notFound(err, ErrAssignmentNotFound)
	}

	fields := map[string]any{}
	if req.Status != nil {
		a.Status = *req.Status
		fields["status"] = a.Status
	}
	if req.Notes != nil {
		a.Notes = req.Notes
		fields["notes"] = *req.Notes
	}
	if patch.Touched() {
		merged, link := s.links.Regenerate(a.UTM(), patch)
		a.SetUTM(merged, link)
		fields["utm_source"] = a.UTMSource
		fields["utm_medium"] = a.UTMMedium
		fields["utm_campaign"] = a.UTMCampaign
		fields["utm_content"] = a.UTMContent
		fields["utm_term"] = a.UTMTerm
		fields["utm_url"] = a.UTMURL
	}

	if err := s.assignments.Update(ctx, a, fields); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}
	return a, nil
}

func (s *CampaignService) RemoveAssignment(ctx context.Context, userID string, campaignID, influencerID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, campaignID); err != nil {
		return err
	}
	n, err := s.assignments.Delete(ctx, userID, campaignID, influencerID)
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	if n == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func checkBudget(budget *decimal.Decimal) error {
	if budget != nil && budget.IsNegative() {
		return &apperrors.ValidationError{Fields: []apperrors.FieldError{{Field: "budget", Message: "must be greater than or equal to 0"}}}
	}
	return nil
}
