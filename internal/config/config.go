package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Inputs struct {
		PortStock      string `yaml:"port_stock"`
		SiteStock      string `yaml:"site_stock"`
		GenerationPlan string `yaml:"generation_plan"`
	} `yaml:"inputs"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Plan struct {
		SafetyStock      float64 `yaml:"safety_stock"`
		BulkSize         float64 `yaml:"bulk_size"`
		SiteContribution float64 `yaml:"site_contribution"`
		Phase1GCV        float64 `yaml:"phase1_gcv"`
		OtherGCV         float64 `yaml:"other_gcv"`
	} `yaml:"plan"`
	Schedule struct {
		PlanCron string `yaml:"plan_cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT_STOCK_CSV"); v != "" {
		cfg.Inputs.PortStock = v
	}
	if v := os.Getenv("SITE_STOCK_CSV"); v != "" {
		cfg.Inputs.SiteStock = v
	}
	if v := os.Getenv("GENERATION_PLAN_CSV"); v != "" {
		cfg.Inputs.GenerationPlan = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SAFETY_STOCK"); v != "" {
		var s float64
		if _, err := fmt.Sscanf(v, "%f", &s); err == nil {
			cfg.Plan.SafetyStock = s
		}
	}
	if v := os.Getenv("BULK_SIZE"); v != "" {
		var b float64
		if _, err := fmt.Sscanf(v, "%f", &b); err == nil {
			cfg.Plan.BulkSize = b
		}
	}
	if v := os.Getenv("PLAN_CRON"); v != "" {
		cfg.Schedule.PlanCron = v
	}

	// Defaults
	if cfg.Inputs.PortStock == "" {
		cfg.Inputs.PortStock = "data/port_stock.csv"
	}
	if cfg.Inputs.SiteStock == "" {
		cfg.Inputs.SiteStock = "data/site_stock.csv"
	}
	if cfg.Inputs.GenerationPlan == "" {
		cfg.Inputs.GenerationPlan = "data/generation_plan.csv"
	}
	if cfg.Plan.SafetyStock == 0 {
		cfg.Plan.SafetyStock = 550000
	}
	if cfg.Plan.BulkSize == 0 {
		cfg.Plan.BulkSize = 160000
	}
	if cfg.Plan.SiteContribution == 0 {
		cfg.Plan.SiteContribution = 200
	}
	if cfg.Plan.Phase1GCV == 0 {
		cfg.Plan.Phase1GCV = 4700
	}
	if cfg.Plan.OtherGCV == 0 {
		cfg.Plan.OtherGCV = 4200
	}
	if cfg.Schedule.PlanCron == "" {
		cfg.Schedule.PlanCron = "0 0 2 * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.Inputs.PortStock == "" {
		return fmt.Errorf("inputs.port_stock is required")
	}
	if c.Inputs.SiteStock == "" {
		return fmt.Errorf("inputs.site_stock is required")
	}
	if c.Inputs.GenerationPlan == "" {
		return fmt.Errorf("inputs.generation_plan is required")
	}
	if c.Plan.SafetyStock <= 0 {
		return fmt.Errorf("plan.safety_stock must be positive")
	}
	if c.Plan.BulkSize <= 0 {
		return fmt.Errorf("plan.bulk_size must be positive")
	}
	if c.Plan.SiteContribution < 0 {
		return fmt.Errorf("plan.site_contribution must not be negative")
	}
	if c.Plan.Phase1GCV <= 0 || c.Plan.OtherGCV <= 0 {
		return fmt.Errorf("plan GCV targets must be positive")
	}
	return nil
}
