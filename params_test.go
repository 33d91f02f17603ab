package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams(t *testing.T) {
	p := defaultParams()
	assert.Equal(t, Params{Precision: 0, IRadix: 10, ORadix: 10}, p)

	assert.NoError(t, p.SetPrecision(4))
	assert.Equal(t, errPrecision, p.SetPrecision(-1))
	assert.Equal(t, uint(4), p.Precision)

	for _, radix := range []int{2, 7, 16} {
		assert.NoError(t, p.SetIRadix(radix), "input radix %v", radix)
	}
	for _, radix := range []int{1, 17, -2} {
		assert.Equal(t, errInputRadix, p.SetIRadix(radix), "input radix %v", radix)
	}
	assert.Equal(t, 16, p.IRadix)

	for _, radix := range []int{2, 8, 10, 16} {
		assert.NoError(t, p.SetORadix(radix), "output radix %v", radix)
	}
	for _, radix := range []int{3, 12, 0} {
		assert.Equal(t, errOutputRadix, p.SetORadix(radix), "output radix %v", radix)
	}
	assert.Equal(t, 16, p.ORadix)
}
