package closer

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Closer collects named shutdown hooks and runs them in reverse
// registration order on CloseAll.

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type CloseFunc func(ctx context.Context) error

type namedCloseFunc struct {
	name string
	fn   CloseFunc
}

type closer struct {
	mu     sync.Mutex
	funcs  []namedCloseFunc
	logger Logger
}

var global = &closer{}

func SetLogger(l Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logger = l
}

func Add(fn CloseFunc) { AddNamed("", fn) }

func AddNamed(name string, fn CloseFunc) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.funcs = append(global.funcs, namedCloseFunc{name: name, fn: fn})
}

// CloseAll runs all registered hooks LIFO and joins their errors.
// Hooks are run at most once; repeated calls are no-ops.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	funcs := global.funcs
	global.funcs = nil
	logger := global.logger
	global.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		c := funcs[i]
		if err := c.fn(ctx); err != nil {
			if logger != nil {
				logger.Error(ctx, "closer hook failed",
					zap.String("name", c.name),
					zap.Error(err),
				)
			}
			errs = append(errs, err)
			continue
		}
		if logger != nil && c.name != "" {
			logger.Info(ctx, "closed", zap.String("name", c.name))
		}
	}

	return errors.Join(errs...)
}
