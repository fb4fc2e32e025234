package llm_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ait/internal/config"
	"ait/pkg/utils"
)

const (
	PlannerBackend = "planner"
	ChatBackend    = "chat"
)

// Module provides two named backends, `name:"planner"` and `name:"chat"`. A provider whose API key
// is missing yields an unconfigured backend and a warning, never a startup failure.
var Module = fx.Provide(
	fx.Annotate(providePlannerBackend, fx.ResultTags(`name:"planner"`)),
	fx.Annotate(provideChatBackend, fx.ResultTags(`name:"chat"`)),
)

func providePlannerBackend(lc fx.Lifecycle, cfg *config.AppConfig, logger *zap.Logger) (*utils.Backend, error) {
	return newBackend(lc, PlannerBackend, cfg.LLM.PlannerProvider, cfg.LLM, logger)
}

func provideChatBackend(lc fx.Lifecycle, cfg *config.AppConfig, logger *zap.Logger) (*utils.Backend, error) {
	return newBackend(lc, ChatBackend, cfg.LLM.ChatProvider, cfg.LLM, logger)
}

func newBackend(lc fx.Lifecycle, name, provider string, cfg config.LLMConfig, logger *zap.Logger) (*utils.Backend, error) {
	opts := utils.BackendOptions{
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}

	switch provider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			logger.Warn("OPENAI_API_KEY not found, backend disabled", zap.String("backend", name))
			return utils.UnconfiguredBackend(name, provider, logger), nil
		}
		logger.Info("initializing backend", zap.String("backend", name), zap.String("provider", provider), zap.String("model", cfg.OpenAIModel))
		return utils.NewBackend(name, provider, utils.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), opts, logger), nil

	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Warn("GEMINI_API_KEY not found, backend disabled", zap.String("backend", name))
			return utils.UnconfiguredBackend(name, provider, logger), nil
		}
		logger.Info("initializing backend", zap.String("backend", name), zap.String("provider", provider), zap.String("model", cfg.GeminiModel))
		client, err := utils.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return client.Close() },
		})
		return utils.NewBackend(name, provider, client, opts, logger), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
