// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/firmware-stamp/pkg/defaults"
)

// Config holds server configuration.
type Config struct {
	// Server identity, reported on the default route.
	Name    string
	Version string

	// Handlers are the application routes served under the middleware
	// chain, keyed by path.
	Handlers map[string]http.HandlerFunc

	// Listen address and port.
	Address string
	Port    int

	// Rate limiting.
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int

	// Timeouts.
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// NewConfig returns a Config with defaults applied and environment
// overrides resolved.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		Name:            "server",
		Version:         "undefined",
		Address:         "",
		Port:            8080,
		RateLimit:       100,
		RateLimitBurst:  200,
		ReadTimeout:     defaults.ServerReadTimeout,
		WriteTimeout:    defaults.ServerWriteTimeout,
		IdleTimeout:     defaults.ServerIdleTimeout,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil {
			cfg.Port = port
		}
	}

	// Allow matching the shutdown budget to an eviction grace period.
	if shutdownStr := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}

// Option customizes the server configuration.
type Option func(*Config)

// WithName sets the service name reported on the default route.
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithVersion sets the service version reported on the default route.
func WithVersion(version string) Option {
	return func(c *Config) { c.Version = version }
}

// WithHandler registers application routes, keyed by path. Handlers are
// served under the middleware chain.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(c *Config) { c.Handlers = handlers }
}

// WithAddress sets the listen address.
func WithAddress(address string) Option {
	return func(c *Config) { c.Address = address }
}

// WithPort sets the listen port, overriding PORT.
func WithPort(port int) Option {
	return func(c *Config) { c.Port = port }
}

// WithRateLimit sets the request rate limit and burst size.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Config) {
		c.RateLimit = limit
		c.RateLimitBurst = burst
	}
}

// WithShutdownTimeout sets the graceful shutdown budget.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *Config) { c.ShutdownTimeout = d }
}
