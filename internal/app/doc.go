// Package app wires the loader together: logging, telemetry, resolved file paths
// and the operations pipeline that turns a course roster into an Esploro
// research-activity load file.
//
// # Lifecycle
//
//	application, err := app.NewApplication(ctx, cfg, app.Options{})
//	if err != nil {
//	    return err
//	}
//	defer application.Shutdown(ctx)
//	_, err = application.Run(ctx)
//
// NewApplication never calls os.Exit; the command decides how to report failures.
// Shutdown writes the metrics textfile when one is configured.
package app
