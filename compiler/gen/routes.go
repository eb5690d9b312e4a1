package gen

import (
	"strings"

	"github.com/syssam/scaffold/compiler/editor"
	"github.com/syssam/scaffold/compiler/writer"
)

// routeFile returns the routes file the entity registers in.
func (e *entity) routeFile() string {
	if e.req.Options.API {
		return e.cfg.Routes.APIFile
	}
	return e.cfg.Routes.File
}

// routeMarkers identify an existing registration of the entity routes,
// browser or API.
func (e *entity) routeMarkers() []string {
	return []string{
		"Route::resource('" + e.names.Route + "'",
		"Route::apiResource('" + e.names.Route + "'",
	}
}

// groupHeader returns the header of a route group.
func groupHeader(prefix string, middleware []string) string {
	var b strings.Builder
	b.WriteString("Route::")
	if prefix != "" {
		b.WriteString("prefix('" + prefix + "')->")
	}
	b.WriteString("middleware(['" + strings.Join(middleware, "', '") + "'])->group(function () {")
	return b.String()
}

// routeGroups returns every group header the entity routes may live in.
func (e *entity) routeGroups() []string {
	return []string{
		groupHeader("", e.cfg.Routes.Middleware),
		groupHeader(e.names.Route, e.cfg.Routes.Middleware),
		groupHeader(e.cfg.Routes.APIPrefix, e.cfg.Routes.APIMiddleware),
	}
}

// routeRegistration describes the resource route statement and its group.
func (e *entity) routeRegistration() editor.Registration {
	controller := `\` + qualify(e.cfg.Namespaces.Controllers, e.controllerClass()) + "::class"
	reg := editor.Registration{BlockClose: "});"}
	switch {
	case e.req.Options.API:
		reg.Statement = "Route::apiResource('" + e.names.Route + "', " + controller + ");"
		reg.Block = groupHeader(e.cfg.Routes.APIPrefix, e.cfg.Routes.APIMiddleware)
	case e.cfg.Routes.Prefix:
		reg.Statement = "Route::resource('" + e.names.Route + "', " + controller + ");"
		reg.Block = groupHeader(e.names.Route, e.cfg.Routes.Middleware)
	default:
		reg.Statement = "Route::resource('" + e.names.Route + "', " + controller + ");"
		reg.Block = groupHeader("", e.cfg.Routes.Middleware)
	}
	return reg
}

func (e *entity) genRoutes() ([]writer.Effect, error) {
	reg := e.routeRegistration()
	return []writer.Effect{writer.Merge{
		Path:   e.routeFile(),
		Marker: e.names.Route,
		Patch: func(src string) (string, bool, error) {
			for _, m := range e.routeMarkers() {
				if strings.Contains(src, m) {
					return src, false, nil
				}
			}
			return editor.EnsureRegistration(src, reg)
		},
	}}, nil
}

// unregisterRoutes removes the entity routes and prunes groups left empty.
func (e *entity) unregisterRoutes(src string) (string, bool, error) {
	removed := 0
	for _, m := range e.routeMarkers() {
		var n int
		src, n = editor.RemoveRegistration(src, m)
		removed += n
	}
	if removed == 0 {
		return src, false, nil
	}
	src, _ = editor.PruneEmptyBlocks(src, e.routeGroups()...)
	return src, true, nil
}
