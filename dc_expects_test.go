package main

// @generated from dc_test.go

//go:generate go run scripts/gen_dc_expects.go -- dc_test.go dc_expects_test.go

import "time"

func withDCOptions(opts ...VMOption) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withOptions(opts...)
	}
}

func withDCStack(values ...string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withStack(values...)
	}
}

func withDCRegister(name rune, values ...string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withRegister(name, values...)
	}
}

func withDCArray(name rune, index int, value string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withArray(name, index, value)
	}
}

func withDCParams(params Params) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withParams(params)
	}
}

func withDCMaxDepth(depth int) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withMaxDepth(depth)
	}
}

func withDCMemLimit(limit uint) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withMemLimit(limit)
	}
}

func withDCInput(input string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withInput(input)
	}
}

func withDCStdin(input string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withStdin(input)
	}
}

func withDCHaltOnError(halt bool) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withHaltOnError(halt)
	}
}

func withDCTimeout(timeout time.Duration) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withTimeout(timeout)
	}
}

func expectDCError(err error) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectError(err)
	}
}

func expectDCErrorMessage(mess string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectErrorMessage(mess)
	}
}

func expectDCStack(values ...string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectStack(values...)
	}
}

func expectDCLastX(value string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectLastX(value)
	}
}

func expectDCLastY(value string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectLastY(value)
	}
}

func expectDCLastZ(value string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectLastZ(value)
	}
}

func expectDCRegister(name rune, values ...string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectRegister(name, values...)
	}
}

func expectDCNoRegister(name rune) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectNoRegister(name)
	}
}

func expectDCArray(name rune, index int, value string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectArray(name, index, value)
	}
}

func expectDCParams(params Params) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectParams(params)
	}
}

func expectDCOutput(output string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectOutput(output)
	}
}

func expectDCErrorLog(output string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectErrorLog(output)
	}
}

func expectDCHalted(halted bool) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectHalted(halted)
	}
}

func expectDCDump(parts ...string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectDump(parts...)
	}
}
