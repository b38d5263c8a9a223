package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blogsmith/internal/domain/entity"
	"blogsmith/internal/handler/http/respond"
	"blogsmith/internal/observability/logging"
)

// GenerateService is the use case surface the generation handler depends on.
type GenerateService interface {
	Generate(ctx context.Context, topic string) (*entity.Post, error)
}

// GenerateHandler handles blog post generation requests.
type GenerateHandler struct {
	Svc GenerateService
}

// ServeHTTP generates a blog post for the submitted topic.
// @Summary      Generate a blog post
// @Description  Fetches recent news coverage for the topic and synthesizes a complete post with a title, a meta description, and the post body in a single AI call.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body generateRequest true "Generation request"
// @Success      200 {object} postResponse
// @Failure      400 {object} errorResponse "Missing or blank topic, or malformed JSON"
// @Failure      500 {object} errorResponse "Provider not configured or response unparseable"
// @Failure      502 {object} errorResponse "News or AI provider call failed"
// @Router       /generate-post [post]
func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("request body must be valid JSON"))
		return
	}

	post, err := h.Svc.Generate(r.Context(), req.Topic)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, postResponse{
		Title:           post.Title,
		MetaDescription: post.MetaDescription,
		PostContent:     post.PostContent,
	})
}

// respondError maps domain error kinds to HTTP statuses. Validation messages
// go back to the client verbatim; every other kind gets a fixed message with
// the details kept in the logs.
func (h GenerateHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())

	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		respond.Error(w, http.StatusBadRequest, errors.New(validationErr.Message))
		return
	}

	var configErr *entity.ConfigError
	if errors.As(err, &configErr) {
		logger.ErrorContext(r.Context(), "generation rejected: provider not configured",
			slog.String("provider", configErr.Provider),
			slog.String("env", configErr.EnvVar))
		respond.Error(w, http.StatusInternalServerError, errors.New("service is not configured for generation"))
		return
	}

	var upstreamErr *entity.UpstreamError
	if errors.As(err, &upstreamErr) {
		logger.ErrorContext(r.Context(), "generation failed: provider error",
			slog.String("provider", upstreamErr.Provider),
			slog.Int("upstream_status", upstreamErr.StatusCode),
			slog.String("error", respond.SanitizeError(err)))
		respond.Error(w, http.StatusBadGateway, errors.New(upstreamMessage(upstreamErr.Provider)))
		return
	}

	var parseErr *entity.ParseError
	if errors.As(err, &parseErr) {
		logger.ErrorContext(r.Context(), "generation failed: unparseable model response",
			slog.String("section", parseErr.Section),
			slog.String("error", err.Error()))
		respond.Error(w, http.StatusInternalServerError, errors.New("could not parse model response"))
		return
	}

	logger.ErrorContext(r.Context(), "generation failed: unexpected error",
		slog.String("error", respond.SanitizeError(err)))
	respond.SafeError(w, http.StatusInternalServerError, err)
}

// upstreamMessage returns the client-safe message for a failed provider call.
func upstreamMessage(provider string) string {
	switch provider {
	case "openai", "claude":
		return "content synthesis request failed"
	default:
		return "news provider request failed"
	}
}
