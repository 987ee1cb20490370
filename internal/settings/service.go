package settings

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settings
type Repository interface {
	GetConfig(ctx context.Context) (*Config, error)
	SaveConfig(ctx context.Context, cfg *Config) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*Config, error) {
	cfg, err := s.repo.GetConfig(ctx)
	if errors.Is(err, ErrNotFound) {
		d := Defaults()
		return &d, nil
	}

	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (s *Service) Update(ctx context.Context, webhookURL string, autoSync bool) (*Config, error) {
	webhookURL = strings.TrimSpace(webhookURL)
	if err := validateURL(webhookURL); err != nil {
		return nil, err
	}

	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	cfg.WebhookURL = webhookURL
	cfg.AutoSync = autoSync

	if err := s.repo.SaveConfig(ctx, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateURL(raw string) error {
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrInvalidURL
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}

	return nil
}
