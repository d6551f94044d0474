package core

import (
	"context"
	"fmt"
)

// Interface defines a common interface for all services
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

// Registry manages service lifecycles in registration order
type Registry struct {
	services []Interface
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		services: make([]Interface, 0),
	}
}

// Register adds a service; registration order is start order
func (r *Registry) Register(service Interface) {
	r.services = append(r.services, service)
}

// StartAll starts every registered service. If one fails, the services
// already started are stopped again before returning.
func (r *Registry) StartAll(ctx context.Context) error {
	for i, service := range r.services {
		if err := service.Start(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				r.services[j].Stop()
			}
			return fmt.Errorf("starting service %d: %w", i, err)
		}
	}
	return nil
}

// StopAll stops all services in reverse registration order, so
// dependents go down before their dependencies
func (r *Registry) StopAll() {
	for i := len(r.services) - 1; i >= 0; i-- {
		r.services[i].Stop()
	}
}
