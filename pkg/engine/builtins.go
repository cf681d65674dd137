package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/turboflow/geom/pkg/geometry"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms domain script source before passing it to
// zygomys: traditional Lisp ; line comments become the // comments that
// zygomys expects. String literal boundaries are respected so a ; inside
// a string is left alone.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source))
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// domainCollector accumulates the domain declared by a script. Each
// evaluation gets a fresh collector, so concurrent evaluations do not
// interfere.
type domainCollector struct {
	domain *geometry.Cartesian
}

// registerBuiltins installs the domain description builtins into a
// zygomys environment. The builtins close over the collector rather than
// writing engine state, keeping each sandbox independent.
func registerBuiltins(env *zygo.Zlisp, c *domainCollector) {

	// -----------------------------------------------------------------------
	// (domain x_min x_max y_min y_max z_min z_max)
	// -----------------------------------------------------------------------
	env.AddFunction("domain", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if c.domain != nil {
			return zygo.SexpNull, fmt.Errorf("domain already declared")
		}
		if len(args) != 6 {
			return zygo.SexpNull, fmt.Errorf(
				"domain expects 6 extents (x_min x_max y_min y_max z_min z_max), got %d", len(args))
		}

		var extents [6]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("domain: extent %d: %w", i+1, err)
			}
			extents[i] = f
		}

		d, err := geometry.NewCartesian(
			extents[0], extents[1],
			extents[2], extents[3],
			extents[4], extents[5],
		)
		if err != nil {
			return zygo.SexpNull, err
		}

		c.domain = d
		return zygo.SexpNull, nil
	})
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}
