// Package logger builds *slog.Logger values with functional options and
// injects attributes pulled from context.Context into every record.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on each Handle call. Attribute helpers in attr.go
// keep key names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "fizzbuzz"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "field validated",
//	    logger.Component("fizzbuzz_validator"),
//	    logger.Field("StopValue"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
