// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

// Expand lowers surface syntax into the core language: quote, if, define,
// set!, lambda, begin, and application. cond/and/or/let, the function form
// of define, and multi-expression lambda bodies are all gone once Expand
// returns successfully.
func (ctx *Context) Expand(v Value) (result Value, outErr ErrorCode) {
	defer catch(&outErr)
	result = ctx.expand(v)
	return result, ErrNone
}

func isSymbolNamed(v Value, name string) bool {
	return v.Type() == TypeSymbol && Symbol(v) == name
}

// opName returns the uppercased operator name of a pair-form's head if it
// is a symbol, else "".
func opName(v Value) string {
	head := Car(v)
	if head.Type() == TypeSymbol {
		return Symbol(head)
	}
	return ""
}

func (ctx *Context) expand(v Value) Value {
	if isSymbolNamed(v, "QUOTE") {
		// bare QUOTE the symbol (not a (quote ...) form) passes through.
		return v
	}
	if v.Type() != TypePair {
		return v
	}

	switch opName(v) {
	case "QUOTE":
		if Length(v) != 2 {
			raise(ErrBadQuote)
		}
		return v
	case "DEFINE":
		return ctx.expandDefine(v)
	case "SET!":
		return ctx.expandSet(v)
	case "COND":
		return ctx.expandCond(v)
	case "AND":
		return ctx.expandAnd(v)
	case "OR":
		return ctx.expandOr(v)
	case "LET":
		return ctx.expandLet(v)
	case "LAMBDA":
		return ctx.expandLambda(v)
	case "ASSERT":
		return ctx.expandAssert(v)
	default:
		for it := v; !it.IsNull(); it = Cdr(it) {
			SetCar(it, ctx.expand(Car(it)))
		}
		return v
	}
}

// expandDefine lowers both forms of define:
//
//	(define (f a...) body...) -> (define f (lambda (a...) body...))
//	(define sym expr)         -> (define sym expr'), expr' = expand(expr)
func (ctx *Context) expandDefine(v Value) Value {
	if Length(v) < 3 {
		raise(ErrBadDefine)
	}
	rest := Cdr(v)
	sig := Car(rest)

	switch sig.Type() {
	case TypePair:
		name := AtIndex(sig, 0)
		if name.Type() != TypeSymbol {
			raise(ErrBadDefine)
		}
		body := Cdr(Cdr(v))
		lambda := ctx.MakeListV(ctx.MakeSymbol("LAMBDA"), Cdr(sig), Null())
		setCdr(Cdr(lambda), body)

		setCdr(v, ctx.MakeListV(name, ctx.expand(lambda), Null()))
		return v
	case TypeSymbol:
		setCdr(rest, ctx.expand(Cdr(rest)))
		return v
	default:
		raise(ErrBadDefine)
		panic("unreachable")
	}
}

func (ctx *Context) expandSet(v Value) Value {
	if Length(v) != 3 {
		raise(ErrBadSet)
	}
	variable := AtIndex(v, 1)
	if variable.Type() != TypeSymbol {
		raise(ErrBadSet)
	}
	expr := ctx.expand(AtIndex(v, 2))
	return ctx.MakeListV(AtIndex(v, 0), variable, expr, Null())
}

// expandCond right-folds (cond (p1 e1) ... (pn en) [(else ee)]) into nested
// ifs; an absent else clause leaves the innermost if with no alternative
// arm (evaluated as Null if every predicate is false), per spec.md §9's
// documented resolution of that Open Question.
func (ctx *Context) expandCond(v Value) Value {
	conds := ReverseInPlace(Cdr(v))
	var outer Value

	condPair := Car(conds)
	if condPair.Type() != TypePair || Length(condPair) != 2 {
		raise(ErrBadCond)
	}

	condPred := Car(condPair)
	if isSymbolNamed(condPred, "ELSE") {
		outer = ctx.expand(Car(Cdr(condPair)))
		conds = Cdr(conds)
	}

	ifSymbol := ctx.MakeSymbol("IF")
	for !conds.IsNull() {
		condPair = Car(conds)
		if condPair.Type() != TypePair || Length(condPair) != 2 {
			raise(ErrBadCond)
		}
		pred := ctx.expand(Car(condPair))
		expr := ctx.expand(Car(Cdr(condPair)))
		outer = ctx.MakeListV(ifSymbol, pred, expr, outer, Null())
		conds = Cdr(conds)
	}
	return outer
}

// expandAnd right-folds (and e1 ... en) into nested ifs, short-circuiting
// to 0 on the first false and yielding 1/0 from the final test.
func (ctx *Context) expandAnd(v Value) Value {
	if Length(v) < 2 {
		raise(ErrBadAnd)
	}
	ifSymbol := ctx.MakeSymbol("IF")
	preds := ReverseInPlace(Cdr(v))

	p := ctx.expand(Car(preds))
	outer := ctx.MakeListV(ifSymbol, p, MakeInt(1), MakeInt(0), Null())
	preds = Cdr(preds)

	for !preds.IsNull() {
		p = ctx.expand(Car(preds))
		outer = ctx.MakeListV(ifSymbol, p, outer, MakeInt(0), Null())
		preds = Cdr(preds)
	}
	return outer
}

// expandOr right-folds (or e1 ... en) into nested ifs, short-circuiting to
// 1 on the first true.
func (ctx *Context) expandOr(v Value) Value {
	if Length(v) < 2 {
		raise(ErrBadOr)
	}
	ifSymbol := ctx.MakeSymbol("IF")
	preds := ReverseInPlace(Cdr(v))

	p := ctx.expand(Car(preds))
	outer := ctx.MakeListV(ifSymbol, p, MakeInt(1), MakeInt(0), Null())
	preds = Cdr(preds)

	for !preds.IsNull() {
		p = ctx.expand(Car(preds))
		outer = ctx.MakeListV(ifSymbol, p, MakeInt(1), outer, Null())
		preds = Cdr(preds)
	}
	return outer
}

// expandLet lowers (let ((v1 x1) ... (vk xk)) body...) into
// ((lambda (v1 ... vk) body...) x1 ... xk).
func (ctx *Context) expandLet(v Value) Value {
	pairs := AtIndex(v, 1)
	if pairs.Type() != TypePair {
		raise(ErrBadLet)
	}
	body := Cdr(Cdr(v))

	varsFront, varsBack := Null(), Null()
	exprsFront, exprsBack := Null(), Null()

	for !pairs.IsNull() {
		binding := Car(pairs)
		if binding.Type() != TypePair {
			raise(ErrBadLet)
		}
		variable := AtIndex(binding, 0)
		if variable.Type() != TypeSymbol {
			raise(ErrBadLet)
		}
		ctx.backAppend(&varsFront, &varsBack, variable)

		val := ctx.expand(AtIndex(binding, 1))
		ctx.backAppend(&exprsFront, &exprsBack, val)

		pairs = Cdr(pairs)
	}

	lambda := ctx.MakeListV(ctx.MakeSymbol("LAMBDA"), varsFront, Null())
	setCdr(Cdr(lambda), body)

	return ctx.Cons(ctx.expand(lambda), exprsFront)
}

// expandLambda collapses a multi-expression body into a single (begin ...)
// expression; a one-expression body is left alone and just recursed into.
func (ctx *Context) expandLambda(v Value) Value {
	if Length(v) > 3 {
		bodyExprs := ctx.expand(Cdr(Cdr(v)))
		begin := ctx.Cons(ctx.MakeSymbol("BEGIN"), bodyExprs)

		vars := AtIndex(v, 1)
		if vars.Type() != TypePair {
			// Faithful to the source interpreter: a zero-argument lambda
			// with more than one body expression is rejected here, since
			// an empty argument list is Null rather than a pair. A
			// single-expression body (the branch below) has no such
			// restriction.
			raise(ErrBadLambda)
		}
		return ctx.MakeListV(AtIndex(v, 0), vars, begin, Null())
	}
	body := Cdr(Cdr(v))
	setCdr(Cdr(v), ctx.expand(body))
	return v
}

// expandAssert rewrites (assert expr) to (assert expr' 'expr), quoting the
// original source so the assert primitive can report it verbatim.
func (ctx *Context) expandAssert(v Value) Value {
	statement := Car(Cdr(v))
	// expand rewrites forms in place, so quote a copy of the source tree.
	var copyTree func(x Value) Value
	copyTree = func(x Value) Value {
		if x.Type() != TypePair {
			return x
		}
		return ctx.Cons(copyTree(Car(x)), copyTree(Cdr(x)))
	}
	quoted := ctx.MakeListV(ctx.MakeSymbol("QUOTE"), copyTree(statement), Null())
	return ctx.MakeListV(AtIndex(v, 0), ctx.expand(statement), quoted, Null())
}
