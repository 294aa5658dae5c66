package ethereum

type txResult struct {
	Transaction map[string]any
	Error       error
}
