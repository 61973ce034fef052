package archive

import (
	"github.com/mbus-go/mbus/format"
	"github.com/mbus-go/mbus/internal/options"
)

// Option configures a Writer.
type Option = options.Option[*config]

type config struct {
	compression format.CompressionType
}

func newConfig(opts []Option) (*config, error) {
	c := &config{compression: format.CompressionNone}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// WithCompression selects the codec used to compress each column
// when the writer is finished. The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.NoError(func(c *config) {
		c.compression = compression
	})
}
