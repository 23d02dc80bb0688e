// Package interval implements closed integer intervals and the
// three-valued comparisons range analysis needs.
//
// Interval is a plain closed range [lo, hi]. Checked is a range whose
// bounds are checked results, so a bound can record that the true bound
// is not representable in the bound type; the interval is then open on
// that side and arithmetic carries the openness forward instead of
// substituting a placeholder value. Ordering two overlapping ranges has
// no boolean answer, so the ordering operations return a Tribool.
package interval
