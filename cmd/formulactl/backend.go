package main

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/client"
	"github.com/GriffinCanCode/formulary/internal/domain/service"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

type localBackend struct {
	*service.Registry
}

func (b localBackend) tools(_ context.Context, category string) ([]types.Tool, error) {
	if category == "" {
		return b.Tools(), nil
	}
	cat := types.Category(category)
	var tools []types.Tool
	for _, svc := range b.List(&cat) {
		tools = append(tools, svc.Tools...)
	}
	return tools, nil
}

func (b localBackend) discover(_ context.Context, query string, limit int) ([]types.Tool, error) {
	return b.DiscoverTools(query, limit), nil
}

type remoteBackend struct {
	*client.Client
}

func (b remoteBackend) tools(ctx context.Context, category string) ([]types.Tool, error) {
	if category == "" {
		return b.Tools(ctx)
	}
	resp, err := b.Services(ctx, category)
	if err != nil {
		return nil, err
	}
	var tools []types.Tool
	for _, svc := range resp.Services {
		tools = append(tools, svc.Tools...)
	}
	return tools, nil
}

func (b remoteBackend) discover(ctx context.Context, query string, limit int) ([]types.Tool, error) {
	resp, err := b.Discover(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return resp.Tools, nil
}
