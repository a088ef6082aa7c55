package arith

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
)

func defineBuiltins(b *LLVMIRBuilder) {
	b.pow = definePow(b.mod)
}

// definePow declares the llvm.pow.f64 intrinsic used to lower the
// exponentiation node.
func definePow(mod *ir.Module) *ir.Func {
	return mod.NewFunc("llvm.pow.f64", types.Double,
		ir.NewParam("base", types.Double),
		ir.NewParam("exponent", types.Double))
}
