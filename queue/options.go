package queue

// Option is a queue configuration option.
type Option interface {
	apply(*queueOptions)
}

type queueOptions struct {
	capacity int
}

func newDefaultQueueOptions() queueOptions {
	return queueOptions{
		capacity: 0,
	}
}

// WithCapacity option configures the queue with specified capacity.
//
// The zero value configures unbounded capacity.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *queueOptions) {
		if capacity < 0 {
			panic("queue: invalid capacity")
		}
		opts.capacity = capacity
	})
}

type funcOption func(*queueOptions)

func (o funcOption) apply(opts *queueOptions) {
	o(opts)
}
