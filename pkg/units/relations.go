package units

// Products. Each product is defined in both operand orders and can be
// divided back by either factor.

// Ohm x Farad = Second (RC time constant)
func (r Ohm) MulFarad(c Farad) Second { return Second(float64(r) * float64(c)) }
func (c Farad) MulOhm(r Ohm) Second   { return Second(float64(c) * float64(r)) }
func (t Second) DivOhm(r Ohm) Farad   { return Farad(float64(t) / float64(r)) }
func (t Second) DivFarad(c Farad) Ohm { return Ohm(float64(t) / float64(c)) }

// Amp x Ohm = Volt (Ohm's law)
func (i Amp) MulOhm(r Ohm) Volt { return Volt(float64(i) * float64(r)) }
func (r Ohm) MulAmp(i Amp) Volt { return Volt(float64(r) * float64(i)) }
func (v Volt) DivOhm(r Ohm) Amp { return Amp(float64(v) / float64(r)) }
func (v Volt) DivAmp(i Amp) Ohm { return Ohm(float64(v) / float64(i)) }

// Volt x Amp = Watt
func (v Volt) MulAmp(i Amp) Watt  { return Watt(float64(v) * float64(i)) }
func (i Amp) MulVolt(v Volt) Watt { return Watt(float64(i) * float64(v)) }
func (p Watt) DivVolt(v Volt) Amp { return Amp(float64(p) / float64(v)) }
func (p Watt) DivAmp(i Amp) Volt  { return Volt(float64(p) / float64(i)) }

// Reciprocals. Inverse returns 1/x in the dual kind; the product of a
// dual pair is dimensionless.

func (t Second) Inverse() Hertz            { return Hertz(1 / float64(t)) }
func (f Hertz) Inverse() Second            { return Second(1 / float64(f)) }
func (t Second) MulHertz(f Hertz) float64  { return float64(t) * float64(f) }
func (f Hertz) MulSecond(t Second) float64 { return float64(f) * float64(t) }

func (r Ohm) Inverse() Siemens             { return Siemens(1 / float64(r)) }
func (g Siemens) Inverse() Ohm             { return Ohm(1 / float64(g)) }
func (r Ohm) MulSiemens(g Siemens) float64 { return float64(r) * float64(g) }
func (g Siemens) MulOhm(r Ohm) float64     { return float64(g) * float64(r) }
