// Package dunits is a dimensional-analysis toolkit: numbers tagged with
// physical dimensions, checked arithmetic, and a unit registry that
// understands SI prefixes.
//
// What is in the box?
//
//	• dimension/ — Vector, the 7-component exponent vector (L, M, T, Θ, I, J, N)
//	• quantity/  — Value (magnitude + Vector) and its checked algebra
//	• units/     — Registry: names, aliases, abbreviations, SI-prefix resolution,
//	               the standard catalog and physical constants
//	• cmd/dunit  — a small CLI over the standard catalog
//
// Why?
//
//   - Adding metres to seconds is an error, not a number.
//   - "km", "kilometer", "μs" and "kPa" resolve without a hand-written table.
//   - Pure Go; registries are isolated values you can build per test.
//
// Quick example:
//
//	r := units.Default()
//	d, _ := r.Dim(42.195, "km")
//	t, _ := r.Dim(2, "hour")
//	v := d.Div(t)                // {5.86…: [1 0 -1 0 0 0 0]}
//	_, err := r.ValueIn(v, "km") // ErrDimensionMismatch: speed is not length
//
//	go get github.com/katalvlaran/dunits
package dunits
