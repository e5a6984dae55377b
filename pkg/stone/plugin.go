package stone

import "go.minekube.com/stone/pkg/plugin"

// Plugins is used to register plugins with the server.
// All plugins are loaded and then enabled by Server.InitPlugins,
// in registration order.
//
// Quick notes on Go's plugin system:
//
// We don't support Go's plugin system as it is not a mature solution.
// It forces a plugin implementation to be highly-coupled with the
// server's build toolchain, the end-result would be very brittle, hard
// to maintain and the overhead would be much higher if the plugin
// author does not have any control over new versions of the server.
//
// Instead the server is used as a framework and plugins are compiled
// with it:
//
//   - Create your own Go project/module and `go get go.minekube.com/stone`
//   - Within your main function append your plugin to stone.Plugins
//   - And call cmd/stone.Execute (blocking your main until shutdown).
//   - Subscribe to stone.ShutdownEvent or use OnDisable for
//     de-initializing your plugin.
var Plugins []plugin.Plugin
