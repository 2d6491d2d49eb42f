package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
)

type llmProvider struct {
	name   string
	apiURL string
	apiKey string
	model  string
}

// AIService drafts outreach messages. Providers are tried in order and the
// template fallback answers whenever none of them produce a usable draft.
type AIService struct {
	providers []llmProvider
	client    *http.Client
}

func NewAIService(cfg *config.Config) *AIService {
	timeout := cfg.AITimeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	var providers []llmProvider
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, llmProvider{"openai", cfg.OpenAIAPIURL, cfg.OpenAIAPIKey, cfg.OpenAIModel})
	}
	if cfg.DeepSeekAPIKey != "" {
		providers = append(providers, llmProvider{"deepseek", cfg.DeepSeekAPIURL, cfg.DeepSeekAPIKey, cfg.DeepSeekModel})
	}
	return &AIService{
		providers: providers,
		client:    &http.Client{Timeout: timeout},
	}
}

func (s *AIService) Generate(ctx context.Context, req *dto.AIGenerationRequest) *dto.AIGenerationResponse {
	if len(s.providers) == 0 {
		return FallbackMessage(req)
	}
	resp, err := s.callLLM(ctx, req)
	if err != nil {
		slog.Warn("AI generation failed, using template", "action", "ai_generate", "error", err)
		return FallbackMessage(req)
	}
	return resp
}

// --- LLM integration ---

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
	MaxTokens   int          `json:"max_tokens"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type generatedMessage struct {
	Subject     string   `json:"subject"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

func (s *AIService) callLLM(ctx context.Context, req *dto.AIGenerationRequest) (*dto.AIGenerationResponse, error) {
	var err error
	for _, p := range s.providers {
		var resp *dto.AIGenerationResponse
		resp, err = s.callProvider(ctx, p, req)
		if err == nil {
			return resp, nil
		}
		slog.Warn("AI provider failed", "provider", p.name, "error", err)
	}
	return nil, fmt.Errorf("all LLM providers failed: %w", err)
}

func (s *AIService) callProvider(ctx context.Context, p llmProvider, req *dto.AIGenerationRequest) (*dto.AIGenerationResponse, error) {
	reqBody, err := json.Marshal(llmRequest{
		Model: p.model,
		Messages: []llmMessage{
			{Role: "system", Content: systemPrompt(req)},
			{Role: "user", Content: "Generate a message for: " + req.Prompt},
		},
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.Unmarshal(body, &llmResp); err != nil {
		return nil, err
	}
	if len(llmResp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API")
	}

	content := strings.TrimSpace(llmResp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var gen generatedMessage
	if err := json.Unmarshal([]byte(content), &gen); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if gen.Message == "" {
		return nil, fmt.Errorf("incomplete message from LLM")
	}
	if gen.Subject == "" {
		gen.Subject = "Partnership Opportunity - " + req.InfluencerName
	}
	if gen.Suggestions == nil {
		gen.Suggestions = []string{}
	}
	return &dto.AIGenerationResponse{Subject: gen.Subject, Message: gen.Message, Suggestions: gen.Suggestions}, nil
}

func systemPrompt(req *dto.AIGenerationRequest) string {
	extra := "No additional context provided"
	if req.Context != nil && strings.TrimSpace(*req.Context) != "" {
		extra = *req.Context
	}
	return fmt.Sprintf(`You are a professional B2B outreach specialist with expertise in influencer marketing and partnership development.

Write a personalized, professional email to an influencer.

Influencer:
- Name: %s
- Platform: %s
- Industry: %s
- Context: %s

User's request: %s

Rules:
1. Subject line of at most 60 characters
2. Professional but warm tone that uses the platform and industry
3. A clear, specific call-to-action
4. 150-300 words, ending with a signature placeholder
5. Return ONLY valid JSON, no markdown or explanation

Return JSON:
{"subject": "...", "message": "...", "suggestions": ["...", "..."]}`,
		req.InfluencerName, req.Platform, req.Industry, extra, req.Prompt)
}

// --- Template fallback ---

const (
	templatePartnership   = "partnership"
	templateCollaboration = "collaboration"
	templateFollowUp      = "followup"
	templateEvent         = "event"
)

// TemplateFor picks the template by keyword sniffing of the prompt.
func TemplateFor(prompt string) string {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "collaboration") || strings.Contains(p, "content"):
		return templateCollaboration
	case strings.Contains(p, "follow"):
		return templateFollowUp
	case strings.Contains(p, "event") || strings.Contains(p, "invite"):
		return templateEvent
	default:
		return templatePartnership
	}
}

// FallbackMessage fills a fixed template. It never fails.
func FallbackMessage(req *dto.AIGenerationRequest) *dto.AIGenerationResponse {
	name, platform, industry, prompt := req.InfluencerName, req.Platform, req.Industry, req.Prompt

	switch TemplateFor(prompt) {
	case templateCollaboration:
		return &dto.AIGenerationResponse{
			Subject: "Content Collaboration - " + name,
			Message: fmt.Sprintf(`Hi %s,

I hope you're doing well. I've been following your work in %s and I'm impressed by your expertise and unique perspective.

%s

I'd love to explore how we might work together on content creation. This could include guest posts, joint webinars, social media collaborations, or other creative partnerships that would benefit both our audiences.

Would you be open to a quick conversation to discuss the possibilities?

Looking forward to hearing from you.

Best regards,
[Your Name]`, name, industry, prompt),
			Suggestions: []string{
				"Be specific about the type of collaboration",
				"Mention mutual benefits",
				"Offer flexible options",
			},
		}
	case templateFollowUp:
		return &dto.AIGenerationResponse{
			Subject: "Following Up - " + name,
			Message: fmt.Sprintf(`Hi %s,

I wanted to follow up on my earlier message. I know things get busy, so I'm bringing this back to the top of your inbox.

%s

Your perspective on %s is exactly what our audience is looking for, and I think there's a real fit here.

Would you have 15 minutes this week or next for a quick call?

Best regards,
[Your Name]`, name, prompt, industry),
			Suggestions: []string{
				"Reference the date of your first message",
				"Add one new piece of value since your last note",
				"Keep it shorter than the original message",
			},
		}
	case templateEvent:
		return &dto.AIGenerationResponse{
			Subject: "Event Invitation - " + name,
			Message: fmt.Sprintf(`Hi %s,

I hope this message finds you well. Your content on %s has made you one of the voices people in %s pay attention to.

%s

We'd be honored to have you join us. I'm happy to share the agenda, audience profile and any logistics you need.

Could you let me know if you'd be interested?

Best regards,
[Your Name]`, name, platform, industry, prompt),
			Suggestions: []string{
				"Include the date, format and expected audience size",
				"Explain what the influencer gains from attending",
				"Give a clear RSVP deadline",
			},
		}
	default:
		return &dto.AIGenerationResponse{
			Subject: "Partnership Opportunity - " + name,
			Message: fmt.Sprintf(`Hi %s,

I hope this message finds you well. I've been following your excellent content on %s and I'm particularly impressed by your insights on %s.

%s

I believe there's a great opportunity for us to collaborate and create something valuable for both our audiences. Your expertise in %s would be a perfect complement to what we're building.

Would you be interested in a brief call to discuss this further? I'd love to learn more about your current projects and see how we might work together.

Best regards,
[Your Name]`, name, platform, industry, prompt, industry),
			Suggestions: []string{
				"Mention specific content they've created that impressed you",
				"Include a clear call-to-action",
				"Keep it concise but personal",
			},
		}
	}
}
