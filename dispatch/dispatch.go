package dispatch

import (
	"errors"

	"github.com/gogpu/cuosd"
	"github.com/gogpu/cuosd/internal/parallel"
	"github.com/gogpu/cuosd/kernel"
)

// Launch is the single entry point of spec.md §6: it runs the blur pass (if
// any) followed by the composite pass (if any) over the destination surface
// described by p, mutating it in place.
//
// Launch always returns to the caller; failure is advisory only (spec.md
// §7/§8): a degenerate or unsupported request logs a warning/error and
// leaves the surface untouched, never panics, and never reports a launch
// failure back to the caller beyond the log line.
func Launch(p Params, opts ...Option) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if err := validate(p); err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			cuosd.Logger().Error("cuosd: composite launch rejected", "err", err)
		} else {
			cuosd.Logger().Warn("cuosd: composite launch skipped", "err", err)
		}
		return
	}

	dst, err := buildDescriptor(p)
	if err != nil {
		cuosd.Logger().Error("cuosd: composite launch rejected", "err", err)
		return
	}

	pool := cfg.pool
	if pool == nil {
		pool = parallel.NewWorkerPool(cfg.workers)
		defer pool.Close()
	}

	if p.Commands.NumBlurCommands() > 0 {
		kernel.RunBlur(kernel.BlurParams{Dst: dst, Stream: p.Commands}, pool)
	}

	if p.Commands.NumCommands() > 0 {
		kernel.RunComposite(kernel.CompositeParams{
			Dst:        dst,
			Stream:     p.Commands,
			Atlas:      p.Atlas,
			AABB:       p.AABB,
			RotateMSAA: p.HaveRotateMSAA,
		}, pool)
	}

	cuosd.Logger().Debug("cuosd: composite launch complete",
		"format", p.Format,
		"commands", p.Commands.NumCommands(),
		"blur_commands", p.Commands.NumBlurCommands(),
		"rotate_msaa", p.HaveRotateMSAA,
		"queue_present", p.Queue != nil,
	)
}
