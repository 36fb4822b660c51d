package factor

import (
	"io"
	"slices"

	"github.com/Iron-Ham/factors/internal/errors"
	"github.com/Iron-Ham/factors/internal/logging"
)

// ZeroPolicy decides what happens when 0 is met as a candidate divisor.
type ZeroPolicy int

const (
	// ZeroPolicyError fails the computation with a DivisionByZeroError.
	ZeroPolicyError ZeroPolicy = iota
	// ZeroPolicySkip ignores zero candidates.
	ZeroPolicySkip
)

// String returns the configuration name of the policy.
func (p ZeroPolicy) String() string {
	switch p {
	case ZeroPolicyError:
		return "error"
	case ZeroPolicySkip:
		return "skip"
	default:
		return "unknown"
	}
}

// ParseZeroPolicy converts a configuration value into a ZeroPolicy.
func ParseZeroPolicy(s string) (ZeroPolicy, error) {
	switch s {
	case "error":
		return ZeroPolicyError, nil
	case "skip":
		return ZeroPolicySkip, nil
	default:
		return ZeroPolicyError, errors.NewValidationError("unknown zero policy").
			WithField("factor.zero_policy").
			WithValue(s)
	}
}

// Option configures a Finder.
type Option func(*Finder)

// WithZeroPolicy sets how zero candidate divisors are handled.
func WithZeroPolicy(p ZeroPolicy) Option {
	return func(f *Finder) {
		f.zeroPolicy = p
	}
}

// WithLogger sets the logger used to trace the scan. Each divisor found is
// logged at DEBUG, skipped zeros at WARN and the run summary at INFO.
func WithLogger(l *logging.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.logger = l
		}
	}
}

// Finder computes in-list factors for a fixed subject list.
type Finder struct {
	terms      []int
	zeroPolicy ZeroPolicy
	logger     *logging.Logger
}

// New returns a Finder over a copy of terms. terms may be empty.
func New(terms []int, opts ...Option) *Finder {
	f := &Finder{
		terms:      slices.Clone(terms),
		zeroPolicy: ZeroPolicyError,
		logger:     logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Terms returns a copy of the subject list.
func (f *Finder) Terms() []int {
	return slices.Clone(f.terms)
}

// ZeroPolicy returns the finder's zero policy.
func (f *Finder) ZeroPolicy() ZeroPolicy {
	return f.zeroPolicy
}

// ComputeFactors returns one TermResult per subject term, in subject order.
// Each result lists, in scan order, every subject value y with y != term and
// term % y == 0. Duplicates in the subject list are evaluated and reported
// independently.
func (f *Finder) ComputeFactors() (ResultSet, error) {
	log := f.logger.WithPhase("compute")
	log.Debug("computing factors", "terms", len(f.terms), "zero_policy", f.zeroPolicy.String())

	results := make(ResultSet, 0, len(f.terms))
	for _, x := range f.terms {
		factors, err := f.factorsOf(x, log.With("term", x))
		if err != nil {
			log.Error("factor scan failed", "term", x, "error", err.Error())
			return nil, err
		}
		results = append(results, TermResult{Term: x, Factors: factors})
	}

	log.Info("factors computed", "results", len(results))
	return results, nil
}

// factorsOf scans the whole subject list for divisors of x.
func (f *Finder) factorsOf(x int, log *logging.Logger) ([]int, error) {
	trace := log.Enabled(logging.LevelDebug)
	factors := []int{}
	for i, y := range f.terms {
		if y == 0 {
			if f.zeroPolicy == ZeroPolicySkip {
				log.Warn("skipping zero candidate", "index", i)
				continue
			}
			return nil, errors.NewDivisionByZeroError(x, i)
		}
		if y == x {
			continue
		}
		if x%y == 0 {
			if trace {
				log.Debug("factor found", "factor", y, "index", i)
			}
			factors = append(factors, y)
		}
	}
	return factors, nil
}

// Render computes the factors and writes them to w in the form
// "{term: [f, ...], ...}" without a trailing newline. Nothing is written
// when the computation fails.
func (f *Finder) Render(w io.Writer) error {
	results, err := f.ComputeFactors()
	if err != nil {
		return err
	}

	f.logger.WithPhase("render").Debug("rendering results", "results", len(results))
	if _, err := io.WriteString(w, results.String()); err != nil {
		return errors.Wrapf(err, "failed to write %d results", len(results))
	}
	return nil
}
