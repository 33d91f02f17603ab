package main

// Params holds the session wide formatting parameters.
type Params struct {
	Precision uint // fractional digits kept when formatting numbers
	IRadix    int  // base of numeric literals, 2 through 16
	ORadix    int  // base integers are printed in: 2, 8, 10 or 16
}

func defaultParams() Params {
	return Params{Precision: 0, IRadix: 10, ORadix: 10}
}

func (p *Params) SetPrecision(precision int) error {
	if precision < 0 {
		return errPrecision
	}
	p.Precision = uint(precision)
	return nil
}

func (p *Params) SetIRadix(radix int) error {
	if radix < 2 || radix > 16 {
		return errInputRadix
	}
	p.IRadix = radix
	return nil
}

func (p *Params) SetORadix(radix int) error {
	switch radix {
	case 2, 8, 10, 16:
		p.ORadix = radix
		return nil
	}
	return errOutputRadix
}
