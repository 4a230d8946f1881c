// Package di provides the dependency injection runtime shared by the root
// command and tests.
package di

import (
	"sync"

	"github.com/samber/do/v2"
)

// Injector aliases the samber/do injector used throughout the runtime.
type Injector = do.Injector

// Provider registers one or more dependencies with the injector.
type Provider func(Injector) error

// Runtime lazily builds the injector from its providers on first use, so
// constructing commands stays cheap and side-effect free.
type Runtime struct {
	providers []Provider

	once     sync.Once
	injector Injector
	initErr  error
}

// New creates a Runtime from the given providers.
func New(providers ...Provider) *Runtime {
	return &Runtime{providers: providers}
}

// Invoke initializes the injector if needed and runs fn against it.
func (r *Runtime) Invoke(fn func(Injector) error) error {
	r.once.Do(func() {
		r.injector = do.New()

		for _, provider := range r.providers {
			err := provider(r.injector)
			if err != nil {
				r.initErr = err

				return
			}
		}
	})

	if r.initErr != nil {
		return r.initErr
	}

	return fn(r.injector)
}
