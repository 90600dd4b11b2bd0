package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-qa-board/internal/config"
	"github.com/MKhiriev/go-qa-board/internal/logger"
	"github.com/MKhiriev/go-qa-board/internal/utils"
	"github.com/MKhiriev/go-qa-board/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// request timeout and the API key from appCfg.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, appCfg.APIKey, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListQuestions implements [ServerAdapter] via GET /questions.
func (h *httpServerAdapter) ListQuestions(ctx context.Context) ([]models.Question, error) {
	questions := []models.Question{}

	resp, err := h.request(ctx).SetResult(&questions).Get("/questions")
	if err != nil {
		return nil, fmt.Errorf("list questions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return questions, nil
}

// CreateQuestion implements [ServerAdapter] via POST /questions.
func (h *httpServerAdapter) CreateQuestion(ctx context.Context, text string) (models.Question, error) {
	var question models.Question

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.QuestionRequest{Text: text}).
		SetResult(&question).
		Post("/questions")
	if err != nil {
		return models.Question{}, fmt.Errorf("create question request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Question{}, err
	}

	return question, nil
}

// GetQuestion implements [ServerAdapter] via GET /questions/{id}.
func (h *httpServerAdapter) GetQuestion(ctx context.Context, questionID int64) (models.QuestionDetails, error) {
	var details models.QuestionDetails

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(questionID, 10)).
		SetResult(&details).
		Get("/questions/{id}")
	if err != nil {
		return models.QuestionDetails{}, fmt.Errorf("get question request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.QuestionDetails{}, err
	}

	return details, nil
}

// DeleteQuestion implements [ServerAdapter] via DELETE /questions/{id}.
func (h *httpServerAdapter) DeleteQuestion(ctx context.Context, questionID int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(questionID, 10)).
		Delete("/questions/{id}")
	if err != nil {
		return fmt.Errorf("delete question request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateAnswer implements [ServerAdapter] via POST /questions/{id}/answers.
func (h *httpServerAdapter) CreateAnswer(ctx context.Context, questionID int64, text string) (models.Answer, error) {
	var answer models.Answer

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(questionID, 10)).
		SetBody(models.AnswerRequest{Text: text}).
		SetResult(&answer).
		Post("/questions/{id}/answers")
	if err != nil {
		return models.Answer{}, fmt.Errorf("create answer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Answer{}, err
	}

	return answer, nil
}

// GetAnswer implements [ServerAdapter] via GET /answers/{id}.
func (h *httpServerAdapter) GetAnswer(ctx context.Context, answerID int64) (models.Answer, error) {
	var answer models.Answer

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(answerID, 10)).
		SetResult(&answer).
		Get("/answers/{id}")
	if err != nil {
		return models.Answer{}, fmt.Errorf("get answer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Answer{}, err
	}

	return answer, nil
}

// DeleteAnswer implements [ServerAdapter] via DELETE /answers/{id}.
func (h *httpServerAdapter) DeleteAnswer(ctx context.Context, answerID int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(answerID, 10)).
		Delete("/answers/{id}")
	if err != nil {
		return fmt.Errorf("delete answer request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetServerVersion implements [ServerAdapter] via GET /version.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.request(ctx).SetResult(&info).Get("/version")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}
