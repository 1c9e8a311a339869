package oracle

import "context"

// Static always answers with a fixed line. It backs deployments without an
// API key configured and keeps tests off the network.
type Static struct {
	Reply string
}

var _ Oracle = (*Static)(nil)

func (s *Static) Advise(_ context.Context, _ Request) (string, error) {
	return s.Reply, nil
}
