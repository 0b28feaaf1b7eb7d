// core/component/component.go
package component

import (
	"fmt"
	"io"
	"math"
	"os"
)

// Component holds the four physical parameters of one velocity component of
// an absorption profile: redshift z, broadening parameter b (km/s), column
// density logN (log10 cm^-2) and residual line flux rf. A component carries
// no ion label or index; callers identify it externally by (index, ion).
//
// b and rf have physical ranges enforced on every write: a negative b is
// replaced by |b| and rf is clamped into [0,1]. Corrections are reported on
// the warning writer and execution continues.
type Component struct {
	z, b, logN, rf float64

	options Options
	warnw   io.Writer // nil = os.Stderr
}

// Option configures a Component at construction time.
type Option func(*Component)

// WithOptions replaces the whole tie/var option bag.
func WithOptions(o Options) Option {
	return func(c *Component) { c.options = o }
}

// WithVarZ marks z as free (true) or frozen (false) during a fit.
func WithVarZ(v bool) Option { return func(c *Component) { c.options.VarZ = v } }

// WithVarB marks b as free or frozen during a fit.
func WithVarB(v bool) Option { return func(c *Component) { c.options.VarB = v } }

// WithVarN marks logN as free or frozen during a fit.
func WithVarN(v bool) Option { return func(c *Component) { c.options.VarN = v } }

// WithVarRF marks rf as free or frozen during a fit.
func WithVarRF(v bool) Option { return func(c *Component) { c.options.VarRF = v } }

// WithTieZ constrains z to the named parameter expression.
func WithTieZ(expr string) Option { return func(c *Component) { c.options.TieZ = expr } }

// WithTieB constrains b to the named parameter expression.
func WithTieB(expr string) Option { return func(c *Component) { c.options.TieB = expr } }

// WithTieN constrains logN to the named parameter expression.
func WithTieN(expr string) Option { return func(c *Component) { c.options.TieN = expr } }

// WithTieRF constrains rf to the named parameter expression.
func WithTieRF(expr string) Option { return func(c *Component) { c.options.TieRF = expr } }

// WithWarnings redirects correction warnings (default os.Stderr).
func WithWarnings(w io.Writer) Option { return func(c *Component) { c.warnw = w } }

// New builds a component from raw values. Options are applied first so that
// a redirected warning writer sees corrections made during construction;
// the values then pass through the same setters used for later mutation.
func New(z, b, logN, rf float64, opts ...Option) *Component {
	c := &Component{options: DefaultOptions()}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.SetZ(z)
	c.SetB(b)
	c.SetLogN(logN)
	c.SetRF(rf)
	return c
}

// Z returns the redshift.
func (c *Component) Z() float64 { return c.z }

// B returns the broadening parameter in km/s.
func (c *Component) B() float64 { return c.b }

// LogN returns the column density as log10(N / cm^-2).
func (c *Component) LogN() float64 { return c.logN }

// RF returns the residual line flux.
func (c *Component) RF() float64 { return c.rf }

// SetZ stores z unchanged; any real value is accepted.
func (c *Component) SetZ(v float64) { c.z = v }

// SetLogN stores logN unchanged; any real value is accepted.
func (c *Component) SetLogN(v float64) { c.logN = v }

// SetB stores v, replacing a negative value by its absolute value. Note the
// stored value does not record whether a correction happened.
func (c *Component) SetB(v float64) {
	if v < 0 {
		c.warnf("negative b = %g is non-physical; storing |b|", v)
		v = math.Abs(v)
	}
	c.b = v
}

// SetRF stores v clamped into [0,1].
func (c *Component) SetRF(v float64) {
	switch {
	case v > 1:
		c.warnf("residual flux %g outside [0,1]; clamping to 1", v)
		v = 1
	case v < 0:
		c.warnf("residual flux %g outside [0,1]; clamping to 0", v)
		v = 0
	}
	c.rf = v
}

// Pars returns the physical values in the fixed order [z, b, logN, rf].
func (c *Component) Pars() []float64 {
	return []float64{c.z, c.b, c.logN, c.rf}
}

// Options returns a copy of the tie/var option bag.
func (c *Component) Options() Options { return c.options }

// GetOption returns the tie or var field stored under key.
func (c *Component) GetOption(key string) (any, error) { return c.options.Get(key) }

// SetOption stores value under key; the key must be one of the eight
// recognized tie/var names and value must match the field type.
func (c *Component) SetOption(key string, value any) error { return c.options.Set(key, value) }

// String renders the component for diagnostics. The fixed precision makes it
// unsuitable for round-trip serialization.
func (c *Component) String() string {
	return fmt.Sprintf("<Component: z=%.5f  b=%.1f  logN=%.1f  rf=%.2f>", c.z, c.b, c.logN, c.rf)
}

func (c *Component) warnf(format string, a ...any) {
	w := c.warnw
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, "WARN: "+format+"\n", a...)
}
