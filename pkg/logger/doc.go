// Package logger builds *slog.Logger values for formrules binaries and for
// callers that want compile diagnostics from the rules package.
//
// New takes functional options selecting the output format (text or json),
// the minimum level, static attributes and context extractors. Context
// extractors pull values such as the state file being validated out of a
// context.Context every time a record is handled.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "formcheck"),
//	    logger.WithContextValue("file", fileKey{}),
//	)
//	log.InfoContext(ctx, "validated", logger.Rule("EmailIsEmail"))
//
// Attribute helpers in attr.go keep attribute keys consistent.
package logger
