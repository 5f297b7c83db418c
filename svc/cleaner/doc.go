// Package cleaner reads a document from a store, runs an ordered rule list
// over it and writes the result back, logging what each run changed.
//
// Clean is the only mutating operation. It skips the write when the run
// changed nothing or when CleanOptions.DryRun is set, and reports BLAKE3
// checksums of the text before and after. InspectLine, Analyze and Scan are
// read-only diagnostics over the same store.
//
//	svc := cleaner.New(document.NewLocalStore(), cleaner.WithLogger(log))
//	res, err := svc.Clean(ctx, "src/index-site.js", sanitizer.MustPreset(sanitizer.PresetSpecific), cleaner.CleanOptions{})
package cleaner
