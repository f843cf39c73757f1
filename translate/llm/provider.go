// Copyright 2025 Dachico Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package llm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/dachico/clausematch/translate"
)

const systemPrompt = `You translate insurance clause titles from English to Simplified Chinese.
Reply with the translated title only. No explanation, no quotes, no punctuation around it.
Use standard Chinese insurance terminology where one exists.`

// Provider implements translate.Provider against any OpenAI-compatible chat
// endpoint.
type Provider struct {
	client llms.Model
	logger *slog.Logger
}

var _ translate.Provider = (*Provider)(nil)

// Config holds the connection settings for the chat endpoint.
type Config struct {
	// Host is the base URL of the OpenAI-compatible API.
	Host string

	// Model is the chat model name.
	Model string

	// Token is the API token. Local services that skip authentication
	// accept any non-empty value.
	Token string
}

// NewProvider creates a provider for an OpenAI-compatible service.
//
// Returns translate.Provider interface (not *Provider) to enforce
// abstraction and prevent coupling to implementation details.
func NewProvider(config Config) (translate.Provider, error) {
	token := config.Token
	if token == "" {
		// Local OpenAI-compatible services don't require authentication
		token = "none"
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Provider{
		client: client,
		logger: slog.Default().With("component", "llm-translator"),
	}, nil
}

// TranslateText translates a clause title to Chinese via the chat model.
func (p *Provider) TranslateText(ctx context.Context, text string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	response, err := p.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		p.logger.Error("failed to generate translation", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		p.logger.Debug("no choices returned from model")
		return "", translate.ErrEmptyTranslation
	}

	translated := strings.TrimSpace(response.Choices[0].Content)
	translated = strings.Trim(translated, `"'`)
	if translated == "" {
		return "", translate.ErrEmptyTranslation
	}

	p.logger.Debug("translated title", "source", text, "translated", translated)
	return translated, nil
}

// Close is a no-op as the underlying client doesn't require explicit cleanup.
func (p *Provider) Close() error {
	return nil
}
