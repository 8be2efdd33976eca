// Package diag builds the zerolog.Logger that result.Result.Try reports
// failures through.
//
// Configuration comes from the environment (optionally seeded from .env
// files) under the ADT_ prefix:
//
//	ADT_ENV         deployment name; "test" turns reporting off
//	ADT_LOG_LEVEL   zerolog level name, default "error"
//	ADT_LOG_FORMAT  "json" (default) or "console"
//
// Attach the logger to a context with Context and pass that context to Try.
package diag
