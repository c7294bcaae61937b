package tdb

import (
	"log/slog"

	"github.com/flarmnet/go-tdb/codec"
)

type options struct {
	policy codec.OffsetPolicy
	codec  codec.Codec
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		policy: codec.Offset32,
	}
}

type Option func(*options)

// WithOffsetPolicy selects which byte range of a record holds the pilot
// name. The default is codec.Offset32.
func WithOffsetPolicy(policy codec.OffsetPolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithCodec replaces the default record codec.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithLogger reports validation findings through logger. Without it the
// database is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func (o *options) buildCodec() codec.Codec {
	if o.codec != nil {
		return o.codec
	}
	return codec.NewRecordCodec(o.policy)
}
