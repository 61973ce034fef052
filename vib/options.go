package vib

import "github.com/mbus-go/mbus/internal/options"

// Option configures Parse's resolution of the open questions flagged
// in the design notes.
type Option = options.Option[*config]

type config struct {
	normConformPlainText bool
}

func newConfig(opts []Option) (*config, error) {
	c := &config{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// WithNormConformPlainText selects the norm-conform plain-text VIF
// wire layout (VIF, VIFE…, LEN, ASCII…) instead of the default
// non-norm-conform layout (VIF, LEN, ASCII…, VIFE…).
func WithNormConformPlainText() Option {
	return options.NoError(func(c *config) {
		c.normConformPlainText = true
	})
}
