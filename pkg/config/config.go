// Package config defines the server configuration
// for reading in files and environment variables with Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"go.minekube.com/stone/pkg/permission"
)

// Config is a validated server configuration.
type Config struct {
	*File
}

// File is for reading a config file into this struct.
type File struct {
	// Ops are the subject names granted operator status at startup.
	Ops []string
	// Permissions declares extra permissions to register at startup,
	// in addition to the ones plugins declare. Keyed by permission name.
	Permissions map[string]Permission
	Debug       bool
}

// Permission is one configured permission entry.
type Permission struct {
	Description string
	Default     string // granted | denied | operator
	Children    map[string]bool
}

// SetDefaults sets the config defaults to use with Viper.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("ops", []string{})
}

// NewValid validates the file and returns a usable Config.
func NewValid(f *File) (*Config, error) {
	if f == nil {
		return nil, fmt.Errorf("config file must not be nil")
	}
	for i, op := range f.Ops {
		if strings.TrimSpace(op) == "" {
			return nil, fmt.Errorf("ops entry %d is empty", i)
		}
	}
	for name, entry := range f.Permissions {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("permissions contains an entry with empty name")
		}
		if _, err := permission.ParseDefault(entry.Default); err != nil {
			return nil, fmt.Errorf("permission %q: %w", name, err)
		}
	}
	return &Config{File: f}, nil
}

// IsOp reports whether the given subject name is configured
// as an operator. Names compare case-insensitively.
func (c *Config) IsOp(name string) bool {
	for _, op := range c.Ops {
		if strings.EqualFold(op, name) {
			return true
		}
	}
	return false
}

// RegistryPermissions converts the configured permission entries for
// registration with a permission registry.
func (c *Config) RegistryPermissions() []*permission.Permission {
	perms := make([]*permission.Permission, 0, len(c.Permissions))
	for name, entry := range c.Permissions {
		def, _ := permission.ParseDefault(entry.Default) // validated by NewValid
		perms = append(perms, permission.New(name, entry.Description, def, entry.Children))
	}
	return perms
}
