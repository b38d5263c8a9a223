// Package logging builds the service's structured loggers and carries a
// request-scoped logger through the context.
//
// Loggers write JSON to stdout via log/slog. LOG_LEVEL selects the minimum
// level (debug, info, warn, error). The HTTP logging middleware stores a
// logger carrying the request ID in each request's context; code below the
// handler retrieves it with FromContext so every line emitted while serving
// one request can be correlated.
//
// Example usage:
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("server starting", slog.Int("port", cfg.Port))
//	}
//
//	func (s *Service) GeneratePost(ctx context.Context, topic string) {
//	    logging.FromContext(ctx).Info("generating post", slog.String("topic", topic))
//	}
package logging
