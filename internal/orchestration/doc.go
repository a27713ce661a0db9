// Package orchestration runs the selected renderers, collects their results
// and compares them byte for byte. It decouples that logic from presentation
// via the ProgressReporter and ResultPresenter interfaces.
package orchestration
