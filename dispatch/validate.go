package dispatch

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is the "unsupported configuration" error kind of
// spec.md §7: a format tag outside the enumerated set.
var ErrUnsupportedFormat = errors.New("dispatch: unsupported format")

// ErrDegenerate is the "degenerate request" error kind of spec.md §7: an
// empty draw list (no commands and no blur commands) or an empty bounding
// box. Launch's response is identical either way — warn and do nothing —
// but the two are distinguished by log level since an unsupported format is
// a caller bug while a degenerate request is routine (an empty frame).
var ErrDegenerate = errors.New("dispatch: degenerate request")

// validate implements spec.md §7's pre-launch checks. It is a real Go error
// so the logic is unit-testable independent of captured log output, even
// though Launch itself never returns it — §7 is explicit that "no
// exceptions cross the core boundary".
func validate(p Params) error {
	if !p.Format.Valid() {
		return fmt.Errorf("%w: tag %d", ErrUnsupportedFormat, p.Format)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: non-positive dimensions %dx%d", ErrDegenerate, p.Width, p.Height)
	}

	numCommands, numBlur := 0, 0
	if p.Commands != nil {
		numCommands = p.Commands.NumCommands()
		numBlur = p.Commands.NumBlurCommands()
	}
	if numCommands == 0 && numBlur == 0 {
		return fmt.Errorf("%w: empty draw list", ErrDegenerate)
	}

	if numCommands > 0 && (p.AABB.Right < p.AABB.Left || p.AABB.Bottom < p.AABB.Top) {
		return fmt.Errorf("%w: empty bounding box", ErrDegenerate)
	}

	return nil
}
