package arith

type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile parses the source and lowers it to an LLVM module.
func (c *Compiler) Compile(input string) (IR, error) {
	expr, err := c.parse(input)
	if err != nil {
		return nil, err
	}

	return NewLLVMGenerator(expr).Do(), nil
}

// Evaluate parses the source and computes its value.
func (c *Compiler) Evaluate(input string) (float64, error) {
	expr, err := c.parse(input)
	if err != nil {
		return 0, err
	}

	return Evaluate(expr)
}

func (c *Compiler) parse(input string) (Expr, error) {
	parser, err := NewParser(input)
	if err != nil {
		return nil, err
	}

	return parser.Parse()
}
