package arith

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

type IRGenerator interface {
	Do() IR
}

type IR interface {
	fmt.Stringer
}

// LLVMIRBuilder lowers expression trees to double-precision LLVM IR. The
// translation is direct: division by zero and range guards stay a contract
// of the tree-walking evaluator.
type LLVMIRBuilder struct {
	mod *ir.Module
	pow *ir.Func
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod: ir.NewModule(),
	}

	defineBuiltins(builder)
	return builder
}

func (b *LLVMIRBuilder) function(name string, expr Expr) {
	f := b.mod.NewFunc(name, types.Double)
	block := f.NewBlock("")

	v, ins := b.recursiveLoad(expr)
	block.Insts = append(block.Insts, ins...)
	block.NewRet(v)
}

func (b *LLVMIRBuilder) recursiveLoad(expr Expr) (value.Value, []ir.Instruction) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return b.loadLiteral(e)
	case *BinaryExpr:
		return b.binaryExpression(e)
	case *UnaryExpr:
		return b.unaryExpression(e)
	default:
		panic("unknown expression node")
	}
}

func (b *LLVMIRBuilder) binaryExpression(expr *BinaryExpr) (value.Value, []ir.Instruction) {
	v1, i1 := b.recursiveLoad(expr.Op1)
	v2, i2 := b.recursiveLoad(expr.Op2)
	ins := append(i1, i2...)

	switch expr.Operation {
	case BinaryAddition:
		op := ir.NewFAdd(v1, v2)
		return op, append(ins, op)
	case BinarySubtraction:
		op := ir.NewFSub(v1, v2)
		return op, append(ins, op)
	case BinaryMultiplication:
		op := ir.NewFMul(v1, v2)
		return op, append(ins, op)
	case BinaryDivision:
		op := ir.NewFDiv(v1, v2)
		return op, append(ins, op)
	case BinaryExponent:
		op := ir.NewCall(b.pow, v1, v2)
		return op, append(ins, op)
	default:
		panic("unexpected binary op: " + string(expr.Operation))
	}
}

func (b *LLVMIRBuilder) unaryExpression(expr *UnaryExpr) (value.Value, []ir.Instruction) {
	v, ins := b.recursiveLoad(expr.Operand)

	switch expr.Operation {
	case UnaryNegative:
		op := ir.NewFNeg(v)
		return op, append(ins, op)
	default:
		panic("unexpected unary op: " + string(expr.Operation))
	}
}

func (b *LLVMIRBuilder) loadLiteral(expr *LiteralExpr) (value.Value, []ir.Instruction) {
	c := constant.NewFloat(types.Double, expr.Value)
	return c, []ir.Instruction{}
}

type LLVMGenerator struct {
	expr Expr
}

func NewLLVMGenerator(expr Expr) *LLVMGenerator {
	return &LLVMGenerator{
		expr: expr,
	}
}

// Do emits a module with a single calc() function returning the value of
// the expression.
func (g LLVMGenerator) Do() IR {
	builder := NewLLVMIRBuilder()
	builder.function("calc", g.expr)

	return builder.mod
}
