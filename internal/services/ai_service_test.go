package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
)

func aiRequest(prompt string) *dto.AIGenerationRequest {
	return &dto.AIGenerationRequest{
		Prompt:         prompt,
		InfluencerName: "Ada",
		Platform:       "LinkedIn",
		Industry:       "SaaS",
	}
}

func TestTemplateFor(t *testing.T) {
	tests := []struct {
		prompt string
		want   string
	}{
		{"Let's do a content series", templateCollaboration},
		{"COLLABORATION on a webinar", templateCollaboration},
		{"follow up on last week", templateFollowUp},
		{"Invite her to our summit", templateEvent},
		{"Speaking slot at our event", templateEvent},
		{"Sponsor the newsletter", templatePartnership},
		{"scale up the program", templatePartnership},
		{"Support our startup update", templatePartnership},
		{"", templatePartnership},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, TemplateFor(tt.prompt))
		})
	}
}

func TestFallbackMessage(t *testing.T) {
	resp := FallbackMessage(aiRequest("Sponsor our Q3 newsletter"))
	assert.Equal(t, "Partnership Opportunity - Ada", resp.Subject)
	assert.Contains(t, resp.Message, "Hi Ada,")
	assert.Contains(t, resp.Message, "content on LinkedIn")
	assert.Contains(t, resp.Message, "Sponsor our Q3 newsletter")
	assert.Len(t, resp.Suggestions, 3)

	assert.Equal(t, "Following Up - Ada", FallbackMessage(aiRequest("follow up")).Subject)
	assert.Equal(t, "Event Invitation - Ada", FallbackMessage(aiRequest("event")).Subject)
	assert.Equal(t, "Content Collaboration - Ada", FallbackMessage(aiRequest("content")).Subject)
}

func TestAIService_NoProvidersUsesTemplate(t *testing.T) {
	svc := NewAIService(&config.Config{})
	resp := svc.Generate(context.Background(), aiRequest("Partnership"))
	assert.Equal(t, "Partnership Opportunity - Ada", resp.Subject)
}

func fakeLLM(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req llmRequest
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) && assert.Len(t, req.Messages, 2) {
			assert.Contains(t, req.Messages[0].Content, "Name: Ada")
		}

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": content}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAIService_Generate(t *testing.T) {
	t.Run("provider draft", func(t *testing.T) {
		srv := fakeLLM(t, http.StatusOK, "```json\n{\"subject\":\"Hello Ada\",\"message\":\"Body\",\"suggestions\":[\"s1\"]}\n```")
		svc := NewAIService(&config.Config{OpenAIAPIKey: "sk-test", OpenAIAPIURL: srv.URL, AITimeout: 5 * time.Second})

		resp := svc.Generate(context.Background(), aiRequest("Partnership"))
		assert.Equal(t, &dto.AIGenerationResponse{Subject: "Hello Ada", Message: "Body", Suggestions: []string{"s1"}}, resp)
	})

	t.Run("provider error falls back", func(t *testing.T) {
		srv := fakeLLM(t, http.StatusTooManyRequests, "")
		svc := NewAIService(&config.Config{OpenAIAPIKey: "sk-test", OpenAIAPIURL: srv.URL})

		resp := svc.Generate(context.Background(), aiRequest("follow up please"))
		assert.Equal(t, "Following Up - Ada", resp.Subject)
	})

	t.Run("unparseable draft falls back", func(t *testing.T) {
		srv := fakeLLM(t, http.StatusOK, "Sure! Here is your email.")
		svc := NewAIService(&config.Config{OpenAIAPIKey: "sk-test", OpenAIAPIURL: srv.URL})

		resp := svc.Generate(context.Background(), aiRequest("event"))
		assert.Equal(t, "Event Invitation - Ada", resp.Subject)
	})

	t.Run("second provider answers", func(t *testing.T) {
		bad := fakeLLM(t, http.StatusInternalServerError, "")
		good := fakeLLM(t, http.StatusOK, `{"message":"From backup"}`)
		svc := NewAIService(&config.Config{
			OpenAIAPIKey: "sk-test", OpenAIAPIURL: bad.URL,
			DeepSeekAPIKey: "sk-test", DeepSeekAPIURL: good.URL,
		})

		resp := svc.Generate(context.Background(), aiRequest("Partnership"))
		assert.Equal(t, "From backup", resp.Message)
		assert.Equal(t, "Partnership Opportunity - Ada", resp.Subject)
		assert.Empty(t, resp.Suggestions)
	})
}
