package plugin

import "go.minekube.com/stone/pkg/permission"

// Description describes a plugin. It is provided once by the plugin
// implementation and must not change after the plugin is loaded.
type Description struct {
	// Name identifies the plugin; used for lookups, the plugin's
	// logger tag and command ownership. Required.
	Name string
	// Version of the plugin, free-form.
	Version string
	// Summary is a human-readable description of what the plugin does.
	Summary string
	// Authors of the plugin.
	Authors []string
	// Website with more information about the plugin.
	Website string
	// Permissions the plugin declares; registered with the server's
	// permission registry when the plugin is loaded.
	Permissions []*permission.Permission
}
