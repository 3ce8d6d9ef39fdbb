package model

// LoadState is the lifecycle of the task store's initial load.
type LoadState string

const (
	LoadStateUninitialized LoadState = "uninitialized"
	LoadStateLoading       LoadState = "loading"
	LoadStateReady         LoadState = "ready"
	LoadStateFailed        LoadState = "failed"
)

// Settled reports whether the initial load has finished, successfully or not.
func (s LoadState) Settled() bool {
	return s == LoadStateReady || s == LoadStateFailed
}
