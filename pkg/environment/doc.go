// Package environment names the deployment environment (development, staging,
// production) and carries it through context.Context.
//
// Parse turns a configured string into an Environment. Middleware stores the
// value on every request context; the error handler uses IsDevelopment to
// decide whether error details are shown to the user.
//
//	r.Use(environment.Middleware(environment.Parse(cfg.Env)))
//
//	if environment.IsDevelopment(ctx) {
//	    // show error details
//	}
package environment
