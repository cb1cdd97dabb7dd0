package doctor

import (
	"context"
	"fmt"

	"github.com/hay-kot/efie/internal/core/config"
)

// ConfigCheck validates the loaded configuration.
type ConfigCheck struct {
	config *config.Config
}

func NewConfigCheck(cfg *config.Config) *ConfigCheck {
	return &ConfigCheck{config: cfg}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if c.config == nil {
		result.add("Config loaded", StatusFail, "configuration not loaded")
		return result
	}

	err := c.config.Validate()
	if err != nil {
		result.addErr(err)
	}

	for _, w := range c.config.Warnings() {
		label := w.Category
		if w.Item != "" {
			label = fmt.Sprintf("%s (%s)", label, w.Item)
		}
		result.add(label, StatusWarn, w.Message)
	}

	if len(result.Items) == 0 {
		result.add("Config valid", StatusPass, fmt.Sprintf("endpoint %s, sink %s", c.config.Endpoint, c.config.Sink))
	}

	return result
}
