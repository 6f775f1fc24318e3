package ports

import "context"

// HostTripleProbe discovers the target triple rustc builds for by default.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type HostTripleProbe interface {
	// DefaultTarget runs rustc and returns its host triple. Failures are logged
	// as warnings and reported as ok == false.
	DefaultTarget(ctx context.Context, rustc string) (triple string, ok bool)
}
