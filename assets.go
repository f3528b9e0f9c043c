// Package adminconsole provides embedded assets for production builds.
package adminconsole

import "embed"

// In development (APP_ENV=development) templates and static files are read
// from disk for hot reloading; otherwise these embedded copies are served.

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
