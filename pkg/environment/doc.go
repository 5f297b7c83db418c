// Package environment names the deployment environment the tool runs in and
// carries it through context.Context into structured logs.
//
// Parse normalizes values read from APP_ENV ("prod", "stage" and "dev" are
// accepted as short forms). WithContext and FromContext attach and read the
// value, and LoggerExtractor feeds it to pkg/logger:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx := environment.WithContext(context.Background(), env)
//	log := logger.New(
//		logger.WithEnvironment(env, "unicleaner"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//
// Missing values resolve to the zero Environment ("").
package environment
