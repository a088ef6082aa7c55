package main

import (
	"flag"
	"fmt"

	"go.arith.dev/pkg"
)

var emitLLVM = flag.Bool("emit-llvm", false, "print the compiled LLVM module instead of evaluating")

var inputs = []string{
	"2 + 3",
	"2 + 3 * 4",
	"10 - 2 - 3",
	"(2 + 3) * 4",
	"-5",
	"--5",
	"2 * -3",
	"10 / 0", // Division by zero test
	"1 + @",  // Lexer error test
	"(2 + 3", // Unbalanced parenthesis test
}

func main() {
	flag.Parse()

	c := arith.NewCompiler()
	for _, input := range inputs {
		run(c, input)
	}
}

func run(c *arith.Compiler, input string) {
	fmt.Printf("Input: %q => ", input)

	if *emitLLVM {
		mod, err := c.Compile(input)
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Printf("\n%s", mod)
		return
	}

	parser, err := arith.NewParser(input)
	if err != nil {
		fmt.Println(err)
		return
	}

	expr, err := parser.Parse()
	if err != nil {
		fmt.Println(err)
		return
	}

	value, err := arith.Evaluate(expr)
	if err != nil {
		fmt.Println("evaluation error:", err)
		return
	}

	fmt.Printf("%s = %v\n", arith.Render(expr), value)
}
