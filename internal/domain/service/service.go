package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"inovelli-led-manager/internal/domain/model"
	"inovelli-led-manager/internal/domain/translator"
	"inovelli-led-manager/internal/ports"
)

// Service owns one Manager per configured node.
type Service struct {
	repo     ports.PresetRepository
	factory  *translator.Factory
	sinks    Sinks
	logger   *slog.Logger
	managers map[string]*Manager
	order    []string
	mu       sync.RWMutex
}

func NewService(repo ports.PresetRepository, factory *translator.Factory, sinks Sinks, logger *slog.Logger) *Service {
	if factory == nil {
		factory = translator.NewFactory(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:     repo,
		factory:  factory,
		sinks:    sinks,
		logger:   logger,
		managers: make(map[string]*Manager),
	}
}

// Load reads the presets from the repository and (re)builds the managers.
func (s *Service) Load(ctx context.Context) error {
	presets, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}
	if err := validatePresets(presets); err != nil {
		return err
	}
	s.install(presets)
	return nil
}

func (s *Service) install(presets *model.Presets) {
	managers := make(map[string]*Manager, len(presets.Nodes))
	order := make([]string, 0, len(presets.Nodes))
	for _, p := range presets.Nodes {
		managers[p.Name] = NewManager(*p, s.factory, s.sinks, s.logger)
		order = append(order, p.Name)
	}

	s.mu.Lock()
	s.managers = managers
	s.order = order
	s.mu.Unlock()

	s.logger.Info("presets installed", "nodes", len(order))
}

func (s *Service) manager(node string) (*Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.managers[node]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, node)
	}
	return m, nil
}

func (s *Service) Process(ctx context.Context, node string, msg *model.Message) (*model.Result, error) {
	m, err := s.manager(node)
	if err != nil {
		return nil, err
	}
	return m.Process(ctx, msg), nil
}

// Reject records a message that could not even be decoded.
func (s *Service) Reject(ctx context.Context, node string, cause error) error {
	m, err := s.manager(node)
	if err != nil {
		return err
	}
	m.Reject(cause)
	return nil
}

func (s *Service) Status(ctx context.Context, node string) (model.Status, error) {
	m, err := s.manager(node)
	if err != nil {
		return model.Status{}, err
	}
	return m.Status(), nil
}

func (s *Service) Nodes(ctx context.Context) []*model.DeviceConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nodes := make([]*model.DeviceConfig, 0, len(s.order))
	for _, name := range s.order {
		p := s.managers[name].Preset()
		nodes = append(nodes, &p)
	}
	return nodes
}

func (s *Service) GetPresets(ctx context.Context) (*model.Presets, error) {
	return s.repo.Get(ctx)
}

func (s *Service) UpdatePresets(ctx context.Context, presets *model.Presets) error {
	if err := validatePresets(presets); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, presets); err != nil {
		return err
	}
	s.install(presets)
	return nil
}

func validatePresets(presets *model.Presets) error {
	if presets == nil {
		return fmt.Errorf("%w: no presets", ErrInvalidPresets)
	}
	seen := make(map[string]bool, len(presets.Nodes))
	for i, p := range presets.Nodes {
		if p == nil || p.Name == "" {
			return fmt.Errorf("%w: node %d has no name", ErrInvalidPresets, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate node name %q", ErrInvalidPresets, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
