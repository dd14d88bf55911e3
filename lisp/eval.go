// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

// Eval evaluates expr in env, fully expanded to core forms (see Expand).
// Tail calls through if, begin, and lambda application are eliminated by
// looping in place rather than recursing — only non-tail subexpressions
// (predicates, non-final begin steps, argument expressions, operator
// position) recurse, so stack depth is bounded by their nesting, not by
// how many tail calls a program makes.
func (ctx *Context) Eval(expr, env Value) (result Value, outErr ErrorCode) {
	defer catch(&outErr)
	result = ctx.eval(expr, env)
	return result, ErrNone
}

func (ctx *Context) eval(x, env Value) Value {
	for {
		switch x.Type() {
		case TypeInt, TypeFloat, TypeString, TypeLambda, TypeNull:
			return x
		case TypeSymbol:
			pair := ctx.EnvLookup(env, x)
			if pair.IsNull() {
				raise(ErrUnknownVar)
			}
			return Cdr(pair)
		case TypePair:
			switch opName(x) {
			case "IF":
				predicate := AtIndex(x, 1)
				conseq := AtIndex(x, 2)
				alt := AtIndex(x, 3)
				if ctx.eval(predicate, env).Int() != 0 {
					x = conseq
				} else {
					x = alt
				}
				continue
			case "BEGIN":
				it := Cdr(x)
				if it.IsNull() {
					return it
				}
				for !Cdr(it).IsNull() {
					ctx.eval(Car(it), env)
					it = Cdr(it)
				}
				x = Car(it)
				continue
			case "QUOTE":
				return AtIndex(x, 1)
			case "DEFINE":
				symbol := AtIndex(x, 1)
				value := ctx.eval(AtIndex(x, 2), env)
				ctx.EnvDefine(env, symbol, value)
				return Null()
			case "SET!":
				symbol := AtIndex(x, 1)
				value := ctx.eval(AtIndex(x, 2), env)
				ctx.EnvSet(env, symbol, value)
				return Null()
			case "LAMBDA":
				args := AtIndex(x, 1)
				body := AtIndex(x, 2)
				return ctx.MakeLambda(args, body, env)
			default:
				operator := ctx.eval(Car(x), env)

				argsFront, argsBack := Null(), Null()
				for argExpr := Cdr(x); !argExpr.IsNull(); argExpr = Cdr(argExpr) {
					ctx.backAppend(&argsFront, &argsBack, ctx.eval(Car(argExpr), env))
				}

				switch operator.Type() {
				case TypeLambda:
					frame := ctx.MakeTable(lambdaFrameCapacity)
					keyIt, valIt := lambdaArgs(operator), argsFront
					for !keyIt.IsNull() {
						ctx.TableSet(frame, Car(keyIt), Car(valIt))
						keyIt, valIt = Cdr(keyIt), Cdr(valIt)
					}
					x = lambdaBody(operator)
					env = ctx.EnvExtend(lambdaEnv(operator), frame)
					continue
				case TypeFunc:
					fn, _ := operator.Primitive()
					result, e := fn(argsFront, ctx)
					if e != ErrNone {
						raise(e)
					}
					return result
				default:
					raise(ErrBadOp)
				}
			}
		default:
			raise(ErrUnknownEval)
		}
	}
}
