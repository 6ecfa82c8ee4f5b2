// Package logger builds the zap logger shared by commands, the registry and
// the HTTP features.
//
// Level "debug" selects zap's development config, anything else the
// production config. Format "console" switches to colored console output;
// the default is JSON.
//
// Two helpers scope a logger:
//   - WithManager names it "registry" and adds the project folder.
//   - WithRayID adds the ray_id set by the rayid middleware of a Fiber request.
//
// # Usage
//
//	log, err := logger.New(&cfg.Log)
//	m, err := manager.New(ctx, root, fsys, manager.WithLogger(logger.WithManager(log, root)))
package logger
