package number

// Expr is a lazy arithmetic expression over Numbers.
//
// Expressions are immutable trees built from [Leaf], [Apply], [Combine],
// and [Power]; because every node is constructed from already-existing
// subtrees and can never be modified afterwards, a tree is acyclic by
// construction and materialization always terminates.
//
// Materialize first runs the rewrite-rule simplifier and then evaluates
// numerically, so algebraic inverses cancel before any fuzz can be
// introduced: the square of a square root materializes to the original
// number exactly, even though the eager evaluation of the same pipeline
// accumulates fuzz. Materializing an expression is pure and idempotent.
type Expr interface {
	// Materialize evaluates the expression to a Number.
	Materialize() (Number, error)

	simplify() Expr
}

// UnaryOp identifies a unary operation in an expression tree.
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
	OpAbs
	OpSqrt
	OpSin
	OpCos
	OpTan
	OpAtan
	OpExp
	OpLog
)

// BinaryOp identifies a binary operation in an expression tree.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

type leafExpr struct {
	n Number
}

type unaryExpr struct {
	op      UnaryOp
	operand Expr
}

type binaryExpr struct {
	op          BinaryOp
	left, right Expr
}

type powerExpr struct {
	base Expr
	exp  int
}

// Leaf returns the expression holding n.
func Leaf(n Number) Expr {
	return leafExpr{n: n}
}

// Apply returns the expression op(e).
func Apply(op UnaryOp, e Expr) Expr {
	return unaryExpr{op: op, operand: e}
}

// Combine returns the expression left op right.
func Combine(op BinaryOp, left, right Expr) Expr {
	return binaryExpr{op: op, left: left, right: right}
}

// Power returns the expression e^k for an integer exponent k.
func Power(e Expr, k int) Expr {
	return powerExpr{base: e, exp: k}
}

func (e leafExpr) Materialize() (Number, error) {
	return e.n, nil
}

func (e leafExpr) simplify() Expr { return e }

func (e unaryExpr) Materialize() (Number, error) {
	return materialize(e.simplify())
}

func (e unaryExpr) simplify() Expr {
	operand := e.operand.simplify()
	if inner, ok := operand.(unaryExpr); ok {
		switch {
		case e.op == OpNeg && inner.op == OpNeg:
			return inner.operand
		case e.op == OpLog && inner.op == OpExp:
			return inner.operand
		case e.op == OpExp && inner.op == OpLog:
			return inner.operand
		}
	}
	return unaryExpr{op: e.op, operand: operand}
}

func (e binaryExpr) Materialize() (Number, error) {
	return materialize(e.simplify())
}

func (e binaryExpr) simplify() Expr {
	left := e.left.simplify()
	right := e.right.simplify()
	switch e.op {
	case OpAdd:
		switch {
		case isExactConst(left, 0):
			return right
		case isExactConst(right, 0):
			return left
		}
	case OpSub:
		if isExactConst(right, 0) {
			return left
		}
	case OpMul:
		switch {
		case isExactConst(left, 1):
			return right
		case isExactConst(right, 1):
			return left
		}
	case OpDiv:
		if isExactConst(right, 1) {
			return left
		}
	}
	return binaryExpr{op: e.op, left: left, right: right}
}

func (e powerExpr) Materialize() (Number, error) {
	return materialize(e.simplify())
}

func (e powerExpr) simplify() Expr {
	base := e.base.simplify()
	if e.exp == 1 {
		return base
	}
	// sqrt(x)^2 rewrites to x before any numeric evaluation, keeping the
	// round trip exact.
	if inner, ok := base.(unaryExpr); ok && inner.op == OpSqrt && e.exp == 2 {
		return inner.operand
	}
	return powerExpr{base: base, exp: e.exp}
}

// isExactConst reports whether e is a leaf holding the exact scalar v.
func isExactConst(e Expr, v int64) bool {
	leaf, ok := e.(leafExpr)
	if !ok {
		return false
	}
	n, ok := leaf.n.(ExactNumber)
	if !ok || n.Factor() != Scalar {
		return false
	}
	i, ok := n.Value().Int64()
	return ok && i == v
}

// materialize evaluates an already-simplified tree.
func materialize(e Expr) (Number, error) {
	switch e := e.(type) {
	case leafExpr:
		return e.n, nil
	case unaryExpr:
		operand, err := materialize(e.operand)
		if err != nil {
			return nil, err
		}
		switch e.op {
		case OpNeg:
			return Neg(operand), nil
		case OpAbs:
			return Abs(operand), nil
		case OpSqrt:
			return Sqrt(operand), nil
		case OpSin:
			return Sin(operand), nil
		case OpCos:
			return Cos(operand), nil
		case OpTan:
			return Tan(operand), nil
		case OpAtan:
			return Atan(operand), nil
		case OpExp:
			return Exp(operand), nil
		case OpLog:
			return Log(operand), nil
		}
		return invalidNumber(), nil
	case binaryExpr:
		left, err := materialize(e.left)
		if err != nil {
			return nil, err
		}
		right, err := materialize(e.right)
		if err != nil {
			return nil, err
		}
		switch e.op {
		case OpAdd:
			return Add(left, right)
		case OpSub:
			return Sub(left, right)
		case OpMul:
			return Mul(left, right)
		case OpDiv:
			return Div(left, right)
		}
		return invalidNumber(), nil
	case powerExpr:
		base, err := materialize(e.base)
		if err != nil {
			return nil, err
		}
		return PowInt(base, e.exp), nil
	}
	return invalidNumber(), nil
}
