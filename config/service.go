/*
Copyright (c) The acdp Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// ServiceConfig is the daemon-level configuration read from a YAML file
// at startup (spec's ambient "Configuration" concern, distinct from the
// per-inspector Config wire type above). It is unrelated to the
// Config/Schema pair: this one governs acdpd itself, not an inspector.
//
// Grounded on fbclock/daemon/config.go's Config/ReadConfig pair.
type ServiceConfig struct {
	Source          string        `yaml:"source"`          // driver name to open at startup
	ListenAddr      string        `yaml:"listenaddr"`       // transport listen address
	QueueSize       int           `yaml:"queuesize"`        // queue.Queue buffer capacity
	ExpiryThreshold time.Duration `yaml:"expirythreshold"`  // queue.ExpiryTracker.Threshold override
	MonitoringAddr  string        `yaml:"monitoringaddr"`   // Prometheus /metrics listen address
	LogLevel        string        `yaml:"loglevel"`         // logrus level name
}

// Validate rejects a ServiceConfig missing required fields.
func (c *ServiceConfig) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("bad config: 'source'")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("bad config: 'listenaddr'")
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("bad config: 'queuesize' must be >= 0")
	}
	return nil
}

// ReadServiceConfig reads and strictly unmarshals a ServiceConfig from
// a YAML file.
func ReadServiceConfig(path string) (*ServiceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := ServiceConfig{
		QueueSize:       256,
		ExpiryThreshold: 50 * time.Millisecond,
		LogLevel:        "info",
	}
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}
