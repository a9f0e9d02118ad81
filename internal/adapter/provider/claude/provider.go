package claude

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/dictation-builder/internal/config"
	"github.com/heartmarshall/dictation-builder/internal/domain"
)

const defaultMaxTokens = 4000

// messageCreator is the subset of the SDK message service the provider uses.
type messageCreator interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Provider sends completion requests to the Anthropic Messages API.
type Provider struct {
	messages    messageCreator
	model       string
	visionModel string
	maxTokens   int64
	log         *slog.Logger
}

// NewProvider creates a Provider. SDK retries are disabled: a failed call
// surfaces to the caller as a generation failure.
func NewProvider(logger *slog.Logger, cfg config.LLMConfig) *Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.RequestTimeout))
	}
	client := anthropic.NewClient(opts...)

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	visionModel := cfg.VisionModel
	if visionModel == "" {
		visionModel = cfg.Model
	}

	return &Provider{
		messages:    &client.Messages,
		model:       cfg.Model,
		visionModel: visionModel,
		maxTokens:   maxTokens,
		log:         logger.With("adapter", "claude"),
	}
}

// Complete runs one request and returns the concatenated, trimmed text of the
// reply. A reply without text is "", nil; callers decide what that means.
// Every failure wraps domain.ErrGeneration.
func (p *Provider) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	model := p.model
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(req.Images)+1)
	for _, img := range req.Images {
		blocks = append(blocks, anthropic.NewImageBlockBase64(img.MediaType, base64.StdEncoding.EncodeToString(img.Data)))
		model = p.visionModel
	}
	blocks = append(blocks, anthropic.NewTextBlock(req.Prompt))

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.maxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	start := time.Now()
	msg, err := p.messages.New(ctx, params)
	if err != nil {
		p.log.ErrorContext(ctx, "claude request failed",
			slog.String("purpose", req.Purpose),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("claude: %s: %w: %w", req.Purpose, domain.ErrGeneration, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		p.log.WarnContext(ctx, "claude returned no text", slog.String("purpose", req.Purpose))
	}

	p.log.DebugContext(ctx, "claude request done",
		slog.String("purpose", req.Purpose),
		slog.String("model", model),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("duration", time.Since(start)),
	)
	return text, nil
}
