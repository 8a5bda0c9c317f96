package units

// parallel combines two like quantities as a*b/(a+b). Two exact zeros give
// zero instead of 0/0.
func parallel[T ~float64](a, b T) T {
	if a == 0 && b == 0 {
		return 0
	}
	return a * b / (a + b)
}

// Parallel is the resistance of r and b in parallel.
func (r Ohm) Parallel(b Ohm) Ohm { return parallel(r, b) }

// Parallel is the conductance of g and b in series.
func (g Siemens) Parallel(b Siemens) Siemens { return parallel(g, b) }

// Parallel is the capacitance of c and b in series.
func (c Farad) Parallel(b Farad) Farad { return parallel(c, b) }
