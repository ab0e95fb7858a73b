//go:build (production || dev) && !linux

package gui

// checkGUIDependencies is a no-op outside Linux: macOS ships WebKit and
// Windows installs the WebView2 runtime on demand.
func checkGUIDependencies() error {
	return nil
}
