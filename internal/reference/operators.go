package reference

// operatorSpelling is the canonical token for each Operator, returned by
// GetOperatorName when no source spelling is given and consulted by
// IsBinaryOperator to tell known operators from unknown ones.
var operatorSpelling = map[Operator]string{
	OpPlus:             "+",
	OpMinus:            "-",
	OpStar:             "*",
	OpSlash:            "/",
	OpPercent:          "%",
	OpAmp:              "&",
	OpPipe:             "|",
	OpCaret:            "^",
	OpTilde:            "~",
	OpNot:              "!",
	OpAssign:           "=",
	OpLess:             "<",
	OpGreater:          ">",
	OpComma:            ",",
	OpSpaceship:        "<=>",
	OpLeftShift:        "<<",
	OpRightShift:       ">>",
	OpAnd:              "&&",
	OpOr:               "||",
	OpSubscript:        "[]",
	OpCall:             "()",
	OpArrow:            "->",
	OpArrowStar:        "->*",
	OpNew:              "new",
	OpNewArray:         "new[]",
	OpDelete:           "delete",
	OpDeleteArray:      "delete[]",
	OpCoAwait:          "co_await",
	OpConditional:      "?",
	OpIncrement:        "++",
	OpDecrement:        "--",
	OpEqual:            "==",
	OpNotEqual:         "!=",
	OpLessEqual:        "<=",
	OpGreaterEqual:     ">=",
	OpPlusAssign:       "+=",
	OpMinusAssign:      "-=",
	OpStarAssign:       "*=",
	OpSlashAssign:      "/=",
	OpPercentAssign:    "%=",
	OpAmpAssign:        "&=",
	OpPipeAssign:       "|=",
	OpCaretAssign:      "^=",
	OpLeftShiftAssign:  "<<=",
	OpRightShiftAssign: ">>=",
}

// readableName is the human-readable description used for overload-set
// brief synthesis and auto-generated function briefs, e.g. "Addition
// operators", "Stream insertion operators".
var readableName = map[Operator]string{
	OpPlus:             "Addition",
	OpMinus:            "Subtraction",
	OpStar:             "Multiplication",
	OpSlash:            "Division",
	OpPercent:          "Modulo",
	OpAmp:              "Bitwise AND",
	OpPipe:             "Bitwise OR",
	OpCaret:            "Bitwise XOR",
	OpTilde:            "Bitwise NOT",
	OpNot:              "Logical NOT",
	OpAssign:           "Assignment",
	OpLess:             "Less-than comparison",
	OpGreater:          "Greater-than comparison",
	OpComma:            "Comma",
	OpSpaceship:        "Three-way comparison",
	OpLeftShift:        "Stream insertion",
	OpRightShift:       "Stream extraction",
	OpAnd:              "Logical AND",
	OpOr:               "Logical OR",
	OpSubscript:        "Subscript",
	OpCall:             "Function call",
	OpArrow:            "Member access",
	OpArrowStar:        "Member pointer access",
	OpNew:              "Allocation",
	OpNewArray:         "Array allocation",
	OpDelete:           "Deallocation",
	OpDeleteArray:      "Array deallocation",
	OpCoAwait:          "Coroutine await",
	OpConditional:      "Conditional",
	OpIncrement:        "Increment",
	OpDecrement:        "Decrement",
	OpEqual:            "Equality comparison",
	OpNotEqual:         "Inequality comparison",
	OpLessEqual:        "Less-or-equal comparison",
	OpGreaterEqual:     "Greater-or-equal comparison",
	OpPlusAssign:       "Addition assignment",
	OpMinusAssign:      "Subtraction assignment",
	OpStarAssign:       "Multiplication assignment",
	OpSlashAssign:      "Division assignment",
	OpPercentAssign:    "Modulo assignment",
	OpAmpAssign:        "Bitwise AND assignment",
	OpPipeAssign:       "Bitwise OR assignment",
	OpCaretAssign:      "Bitwise XOR assignment",
	OpLeftShiftAssign:  "Left shift assignment",
	OpRightShiftAssign: "Right shift assignment",
}

// relationalOperators is the set used by the member sorter to place
// relational operators last, internally ordered by operator kind.
var relationalOperators = map[Operator]int{
	OpEqual:         0,
	OpNotEqual:      1,
	OpLess:          2,
	OpLessEqual:     3,
	OpGreater:       4,
	OpGreaterEqual:  5,
	OpSpaceship:     6,
}

// ambiguousArityOperators are the tokens that are both unary and binary in
// C++: *, &, +, - each denote a different operator depending on arity.
var ambiguousArityOperators = map[Operator]bool{
	OpPlus:  true,
	OpMinus: true,
	OpStar:  true,
	OpAmp:   true,
}

// unaryOnlyOperators never appear with the opposite arity.
var unaryOnlyOperators = map[Operator]bool{
	OpNot:       true,
	OpTilde:     true,
	OpIncrement: true,
	OpDecrement: true,
	OpArrow:     true,
	OpArrowStar: true,
	OpCoAwait:   true,
}

// GetOperatorName returns the canonical spelling for kind. If spelled is
// provided (the parser's matched token text) and non-empty, it is returned
// unchanged instead — operator new/delete and their array forms may be
// spelled with or without interior whitespace, and callers that already
// have the source spelling should prefer it over the canonical form.
func GetOperatorName(kind Operator, spelled string) string {
	if spelled != "" {
		return spelled
	}
	return operatorSpelling[kind]
}

// GetOperatorReadableName returns a human-readable name for kind, taking
// arity into account for operators that are both unary and binary — e.g.
// "*" is "Multiplication" at arity 2 but "Dereference" at arity 1.
func GetOperatorReadableName(kind Operator, arity int) string {
	if arity == 1 {
		switch kind {
		case OpStar:
			return "Dereference"
		case OpAmp:
			return "Address-of"
		case OpPlus:
			return "Unary plus"
		case OpMinus:
			return "Unary minus"
		}
	}
	if name, ok := readableName[kind]; ok {
		return name
	}
	return "Unknown operator"
}

// IsUnaryOperator reports whether kind can appear with one operand.
func IsUnaryOperator(kind Operator) bool {
	return unaryOnlyOperators[kind] || ambiguousArityOperators[kind]
}

// IsBinaryOperator reports whether kind can appear with two operands.
func IsBinaryOperator(kind Operator) bool {
	if ambiguousArityOperators[kind] {
		return true
	}
	switch kind {
	case OpNot, OpTilde, OpIncrement, OpDecrement, OpArrow, OpArrowStar, OpCoAwait:
		return false
	case OpNew, OpNewArray, OpDelete, OpDeleteArray, OpCall, OpSubscript, OpAssign:
		return false
	default:
		_, known := operatorSpelling[kind]
		return known
	}
}

// RelationalOrder returns the ordering key for relational operators used by
// the member sorter, and ok=false for non-relational operators.
func RelationalOrder(kind Operator) (order int, ok bool) {
	order, ok = relationalOperators[kind]
	return
}

// IsRelational reports whether kind is one of the relational comparison
// operators.
func IsRelational(kind Operator) bool {
	_, ok := relationalOperators[kind]
	return ok
}
