package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLVMGenerator(t *testing.T) {
	cases := []struct {
		data   string
		expect []string
	}{
		{
			"2 + 3",
			[]string{"fadd"},
		},
		{
			"2 + 3 * 4",
			[]string{"fmul", "fadd"},
		},
		{
			"10 / 2",
			[]string{"fdiv"},
		},
		{
			"10 - 2",
			[]string{"fsub"},
		},
		{
			"-5",
			[]string{"fneg"},
		},
	}

	for _, c := range cases {
		p, err := NewParser(c.data)
		assert.NoError(t, err)

		expr, err := p.Parse()
		assert.NoError(t, err)

		got := NewLLVMGenerator(expr).Do().String()
		assert.Contains(t, got, "define double @calc()")
		for _, want := range c.expect {
			assert.Contains(t, got, want)
		}
	}
}

func TestLLVMGeneratorExponent(t *testing.T) {
	expr := &BinaryExpr{BinaryExponent, &LiteralExpr{2}, &LiteralExpr{10}}

	got := NewLLVMGenerator(expr).Do().String()
	assert.Contains(t, got, "llvm.pow.f64")
}
