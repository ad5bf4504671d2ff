// Package service provides the provider registry.
//
// Providers describe themselves with a types.Service and execute tools by
// ID. The registry routes "<service>.<tool>" IDs to the owning provider.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(station.NewTimeProvider())
//	result, err := registry.Execute(ctx, "time.round", map[string]interface{}{"time": "2457754.5", "n": 30.0})
package service
