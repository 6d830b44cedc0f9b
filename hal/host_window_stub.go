//go:build !cgo

package hal

import "errors"

type windowBackend struct{}

// NewWindowBackend returns a Backend whose Open always fails: window mode
// requires cgo.
func NewWindowBackend(_ Logger) Backend { return windowBackend{} }

func (windowBackend) Open(WindowConfig) (Window, error) {
	return nil, errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
