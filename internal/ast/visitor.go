package ast

import "lunar/internal/token"

// Visitor receives a callback before (VisitX) and after (VisitXEnd) each
// node's children, and one callback per token, trivia included. Embed
// BaseVisitor to implement only the hooks you need.
type Visitor interface {
	VisitAst(*Ast)
	VisitAstEnd(*Ast)
	VisitBlock(*Block)
	VisitBlockEnd(*Block)
	VisitAssignment(*Assignment)
	VisitAssignmentEnd(*Assignment)
	VisitLocalAssignment(*LocalAssignment)
	VisitLocalAssignmentEnd(*LocalAssignment)
	VisitAttribute(*Attribute)
	VisitAttributeEnd(*Attribute)
	VisitDo(*Do)
	VisitDoEnd(*Do)
	VisitWhile(*While)
	VisitWhileEnd(*While)
	VisitRepeat(*Repeat)
	VisitRepeatEnd(*Repeat)
	VisitIf(*If)
	VisitIfEnd(*If)
	VisitElseIf(*ElseIf)
	VisitElseIfEnd(*ElseIf)
	VisitNumericFor(*NumericFor)
	VisitNumericForEnd(*NumericFor)
	VisitGenericFor(*GenericFor)
	VisitGenericForEnd(*GenericFor)
	VisitFunctionDeclaration(*FunctionDeclaration)
	VisitFunctionDeclarationEnd(*FunctionDeclaration)
	VisitLocalFunction(*LocalFunction)
	VisitLocalFunctionEnd(*LocalFunction)
	VisitFunctionCall(*FunctionCall)
	VisitFunctionCallEnd(*FunctionCall)
	VisitGoto(*Goto)
	VisitGotoEnd(*Goto)
	VisitLabel(*Label)
	VisitLabelEnd(*Label)
	VisitReturn(*Return)
	VisitReturnEnd(*Return)
	VisitBreak(*Break)
	VisitBreakEnd(*Break)
	VisitContinue(*Continue)
	VisitContinueEnd(*Continue)
	VisitBinaryOperator(*BinaryOperator)
	VisitBinaryOperatorEnd(*BinaryOperator)
	VisitUnaryOperator(*UnaryOperator)
	VisitUnaryOperatorEnd(*UnaryOperator)
	VisitParentheses(*Parentheses)
	VisitParenthesesEnd(*Parentheses)
	VisitAnonymousFunction(*AnonymousFunction)
	VisitAnonymousFunctionEnd(*AnonymousFunction)
	VisitNumberLiteral(*NumberLiteral)
	VisitNumberLiteralEnd(*NumberLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitStringLiteralEnd(*StringLiteral)
	VisitSymbolLiteral(*SymbolLiteral)
	VisitSymbolLiteralEnd(*SymbolLiteral)
	VisitName(*Name)
	VisitNameEnd(*Name)
	VisitVarExpression(*VarExpression)
	VisitVarExpressionEnd(*VarExpression)
	VisitBinOp(*BinOp)
	VisitBinOpEnd(*BinOp)
	VisitUnOp(*UnOp)
	VisitUnOpEnd(*UnOp)
	VisitAnonymousCall(*AnonymousCall)
	VisitAnonymousCallEnd(*AnonymousCall)
	VisitMethodCall(*MethodCall)
	VisitMethodCallEnd(*MethodCall)
	VisitIndexBrackets(*IndexBrackets)
	VisitIndexBracketsEnd(*IndexBrackets)
	VisitIndexDot(*IndexDot)
	VisitIndexDotEnd(*IndexDot)
	VisitParenthesesArgs(*ParenthesesArgs)
	VisitParenthesesArgsEnd(*ParenthesesArgs)
	VisitTableConstructor(*TableConstructor)
	VisitTableConstructorEnd(*TableConstructor)
	VisitExpressionKeyField(*ExpressionKeyField)
	VisitExpressionKeyFieldEnd(*ExpressionKeyField)
	VisitNameKeyField(*NameKeyField)
	VisitNameKeyFieldEnd(*NameKeyField)
	VisitNoKeyField(*NoKeyField)
	VisitNoKeyFieldEnd(*NoKeyField)
	VisitFunctionBody(*FunctionBody)
	VisitFunctionBodyEnd(*FunctionBody)
	VisitFunctionName(*FunctionName)
	VisitFunctionNameEnd(*FunctionName)
	VisitIfExpression(*IfExpression)
	VisitIfExpressionEnd(*IfExpression)
	VisitElseIfExpression(*ElseIfExpression)
	VisitElseIfExpressionEnd(*ElseIfExpression)
	VisitInterpolatedString(*InterpolatedString)
	VisitInterpolatedStringEnd(*InterpolatedString)

	// VisitToken runs for every token before its kind-specific hook.
	VisitToken(token.Token)
	VisitIdentifier(token.Token)
	VisitMultiLineComment(token.Token)
	VisitNumber(token.Token)
	VisitShebang(token.Token)
	VisitSingleLineComment(token.Token)
	VisitStringLiteralToken(token.Token)
	VisitSymbol(token.Token)
	VisitWhitespace(token.Token)
	VisitEof(token.Token)
	VisitInterpolatedStringToken(token.Token)
}

// BaseVisitor implements every Visitor hook as a no-op.
type BaseVisitor struct{}

func (BaseVisitor) VisitAst(*Ast)                                    {}
func (BaseVisitor) VisitAstEnd(*Ast)                                 {}
func (BaseVisitor) VisitBlock(*Block)                                {}
func (BaseVisitor) VisitBlockEnd(*Block)                             {}
func (BaseVisitor) VisitAssignment(*Assignment)                      {}
func (BaseVisitor) VisitAssignmentEnd(*Assignment)                   {}
func (BaseVisitor) VisitLocalAssignment(*LocalAssignment)            {}
func (BaseVisitor) VisitLocalAssignmentEnd(*LocalAssignment)         {}
func (BaseVisitor) VisitAttribute(*Attribute)                        {}
func (BaseVisitor) VisitAttributeEnd(*Attribute)                     {}
func (BaseVisitor) VisitDo(*Do)                                      {}
func (BaseVisitor) VisitDoEnd(*Do)                                   {}
func (BaseVisitor) VisitWhile(*While)                                {}
func (BaseVisitor) VisitWhileEnd(*While)                             {}
func (BaseVisitor) VisitRepeat(*Repeat)                              {}
func (BaseVisitor) VisitRepeatEnd(*Repeat)                           {}
func (BaseVisitor) VisitIf(*If)                                      {}
func (BaseVisitor) VisitIfEnd(*If)                                   {}
func (BaseVisitor) VisitElseIf(*ElseIf)                              {}
func (BaseVisitor) VisitElseIfEnd(*ElseIf)                           {}
func (BaseVisitor) VisitNumericFor(*NumericFor)                      {}
func (BaseVisitor) VisitNumericForEnd(*NumericFor)                   {}
func (BaseVisitor) VisitGenericFor(*GenericFor)                      {}
func (BaseVisitor) VisitGenericForEnd(*GenericFor)                   {}
func (BaseVisitor) VisitFunctionDeclaration(*FunctionDeclaration)    {}
func (BaseVisitor) VisitFunctionDeclarationEnd(*FunctionDeclaration) {}
func (BaseVisitor) VisitLocalFunction(*LocalFunction)                {}
func (BaseVisitor) VisitLocalFunctionEnd(*LocalFunction)             {}
func (BaseVisitor) VisitFunctionCall(*FunctionCall)                  {}
func (BaseVisitor) VisitFunctionCallEnd(*FunctionCall)               {}
func (BaseVisitor) VisitGoto(*Goto)                                  {}
func (BaseVisitor) VisitGotoEnd(*Goto)                               {}
func (BaseVisitor) VisitLabel(*Label)                                {}
func (BaseVisitor) VisitLabelEnd(*Label)                             {}
func (BaseVisitor) VisitReturn(*Return)                              {}
func (BaseVisitor) VisitReturnEnd(*Return)                           {}
func (BaseVisitor) VisitBreak(*Break)                                {}
func (BaseVisitor) VisitBreakEnd(*Break)                             {}
func (BaseVisitor) VisitContinue(*Continue)                          {}
func (BaseVisitor) VisitContinueEnd(*Continue)                       {}
func (BaseVisitor) VisitBinaryOperator(*BinaryOperator)              {}
func (BaseVisitor) VisitBinaryOperatorEnd(*BinaryOperator)           {}
func (BaseVisitor) VisitUnaryOperator(*UnaryOperator)                {}
func (BaseVisitor) VisitUnaryOperatorEnd(*UnaryOperator)             {}
func (BaseVisitor) VisitParentheses(*Parentheses)                    {}
func (BaseVisitor) VisitParenthesesEnd(*Parentheses)                 {}
func (BaseVisitor) VisitAnonymousFunction(*AnonymousFunction)        {}
func (BaseVisitor) VisitAnonymousFunctionEnd(*AnonymousFunction)     {}
func (BaseVisitor) VisitNumberLiteral(*NumberLiteral)                {}
func (BaseVisitor) VisitNumberLiteralEnd(*NumberLiteral)             {}
func (BaseVisitor) VisitStringLiteral(*StringLiteral)                {}
func (BaseVisitor) VisitStringLiteralEnd(*StringLiteral)             {}
func (BaseVisitor) VisitSymbolLiteral(*SymbolLiteral)                {}
func (BaseVisitor) VisitSymbolLiteralEnd(*SymbolLiteral)             {}
func (BaseVisitor) VisitName(*Name)                                  {}
func (BaseVisitor) VisitNameEnd(*Name)                               {}
func (BaseVisitor) VisitVarExpression(*VarExpression)                {}
func (BaseVisitor) VisitVarExpressionEnd(*VarExpression)             {}
func (BaseVisitor) VisitBinOp(*BinOp)                                {}
func (BaseVisitor) VisitBinOpEnd(*BinOp)                             {}
func (BaseVisitor) VisitUnOp(*UnOp)                                  {}
func (BaseVisitor) VisitUnOpEnd(*UnOp)                               {}
func (BaseVisitor) VisitAnonymousCall(*AnonymousCall)                {}
func (BaseVisitor) VisitAnonymousCallEnd(*AnonymousCall)             {}
func (BaseVisitor) VisitMethodCall(*MethodCall)                      {}
func (BaseVisitor) VisitMethodCallEnd(*MethodCall)                   {}
func (BaseVisitor) VisitIndexBrackets(*IndexBrackets)                {}
func (BaseVisitor) VisitIndexBracketsEnd(*IndexBrackets)             {}
func (BaseVisitor) VisitIndexDot(*IndexDot)                          {}
func (BaseVisitor) VisitIndexDotEnd(*IndexDot)                       {}
func (BaseVisitor) VisitParenthesesArgs(*ParenthesesArgs)            {}
func (BaseVisitor) VisitParenthesesArgsEnd(*ParenthesesArgs)         {}
func (BaseVisitor) VisitTableConstructor(*TableConstructor)          {}
func (BaseVisitor) VisitTableConstructorEnd(*TableConstructor)       {}
func (BaseVisitor) VisitExpressionKeyField(*ExpressionKeyField)      {}
func (BaseVisitor) VisitExpressionKeyFieldEnd(*ExpressionKeyField)   {}
func (BaseVisitor) VisitNameKeyField(*NameKeyField)                  {}
func (BaseVisitor) VisitNameKeyFieldEnd(*NameKeyField)               {}
func (BaseVisitor) VisitNoKeyField(*NoKeyField)                      {}
func (BaseVisitor) VisitNoKeyFieldEnd(*NoKeyField)                   {}
func (BaseVisitor) VisitFunctionBody(*FunctionBody)                  {}
func (BaseVisitor) VisitFunctionBodyEnd(*FunctionBody)               {}
func (BaseVisitor) VisitFunctionName(*FunctionName)                  {}
func (BaseVisitor) VisitFunctionNameEnd(*FunctionName)               {}
func (BaseVisitor) VisitIfExpression(*IfExpression)                  {}
func (BaseVisitor) VisitIfExpressionEnd(*IfExpression)               {}
func (BaseVisitor) VisitElseIfExpression(*ElseIfExpression)          {}
func (BaseVisitor) VisitElseIfExpressionEnd(*ElseIfExpression)       {}
func (BaseVisitor) VisitInterpolatedString(*InterpolatedString)      {}
func (BaseVisitor) VisitInterpolatedStringEnd(*InterpolatedString)   {}
func (BaseVisitor) VisitToken(token.Token)                           {}
func (BaseVisitor) VisitIdentifier(token.Token)                      {}
func (BaseVisitor) VisitMultiLineComment(token.Token)                {}
func (BaseVisitor) VisitNumber(token.Token)                          {}
func (BaseVisitor) VisitShebang(token.Token)                         {}
func (BaseVisitor) VisitSingleLineComment(token.Token)               {}
func (BaseVisitor) VisitStringLiteralToken(token.Token)              {}
func (BaseVisitor) VisitSymbol(token.Token)                          {}
func (BaseVisitor) VisitWhitespace(token.Token)                      {}
func (BaseVisitor) VisitEof(token.Token)                             {}
func (BaseVisitor) VisitInterpolatedStringToken(token.Token)         {}

// Walk traverses n depth-first in document order.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	enter(v, n)
	for _, it := range n.items() {
		if it.ref != nil {
			walkReference(v, it.ref)
		} else {
			Walk(v, it.node)
		}
	}
	leave(v, n)
}

func walkReference(v Visitor, ref *token.Reference) {
	for _, t := range ref.Leading {
		visitToken(v, t)
	}
	visitToken(v, ref.Token)
	for _, t := range ref.Trailing {
		visitToken(v, t)
	}
}

func visitToken(v Visitor, t token.Token) {
	v.VisitToken(t)
	switch t.Kind {
	case token.KindIdentifier:
		v.VisitIdentifier(t)
	case token.KindMultiLineComment:
		v.VisitMultiLineComment(t)
	case token.KindNumber:
		v.VisitNumber(t)
	case token.KindShebang:
		v.VisitShebang(t)
	case token.KindSingleLineComment:
		v.VisitSingleLineComment(t)
	case token.KindStringLiteral:
		v.VisitStringLiteralToken(t)
	case token.KindSymbol:
		v.VisitSymbol(t)
	case token.KindWhitespace:
		v.VisitWhitespace(t)
	case token.KindEof:
		v.VisitEof(t)
	case token.KindInterpolatedString:
		v.VisitInterpolatedStringToken(t)
	}
}

func enter(v Visitor, n Node) {
	switch n := n.(type) {
	case *Ast:
		v.VisitAst(n)
	case *Block:
		v.VisitBlock(n)
	case *Assignment:
		v.VisitAssignment(n)
	case *LocalAssignment:
		v.VisitLocalAssignment(n)
	case *Attribute:
		v.VisitAttribute(n)
	case *Do:
		v.VisitDo(n)
	case *While:
		v.VisitWhile(n)
	case *Repeat:
		v.VisitRepeat(n)
	case *If:
		v.VisitIf(n)
	case *ElseIf:
		v.VisitElseIf(n)
	case *NumericFor:
		v.VisitNumericFor(n)
	case *GenericFor:
		v.VisitGenericFor(n)
	case *FunctionDeclaration:
		v.VisitFunctionDeclaration(n)
	case *LocalFunction:
		v.VisitLocalFunction(n)
	case *FunctionCall:
		v.VisitFunctionCall(n)
	case *Goto:
		v.VisitGoto(n)
	case *Label:
		v.VisitLabel(n)
	case *Return:
		v.VisitReturn(n)
	case *Break:
		v.VisitBreak(n)
	case *Continue:
		v.VisitContinue(n)
	case *BinaryOperator:
		v.VisitBinaryOperator(n)
	case *UnaryOperator:
		v.VisitUnaryOperator(n)
	case *Parentheses:
		v.VisitParentheses(n)
	case *AnonymousFunction:
		v.VisitAnonymousFunction(n)
	case *NumberLiteral:
		v.VisitNumberLiteral(n)
	case *StringLiteral:
		v.VisitStringLiteral(n)
	case *SymbolLiteral:
		v.VisitSymbolLiteral(n)
	case *Name:
		v.VisitName(n)
	case *VarExpression:
		v.VisitVarExpression(n)
	case *BinOp:
		v.VisitBinOp(n)
	case *UnOp:
		v.VisitUnOp(n)
	case *AnonymousCall:
		v.VisitAnonymousCall(n)
	case *MethodCall:
		v.VisitMethodCall(n)
	case *IndexBrackets:
		v.VisitIndexBrackets(n)
	case *IndexDot:
		v.VisitIndexDot(n)
	case *ParenthesesArgs:
		v.VisitParenthesesArgs(n)
	case *TableConstructor:
		v.VisitTableConstructor(n)
	case *ExpressionKeyField:
		v.VisitExpressionKeyField(n)
	case *NameKeyField:
		v.VisitNameKeyField(n)
	case *NoKeyField:
		v.VisitNoKeyField(n)
	case *FunctionBody:
		v.VisitFunctionBody(n)
	case *FunctionName:
		v.VisitFunctionName(n)
	case *IfExpression:
		v.VisitIfExpression(n)
	case *ElseIfExpression:
		v.VisitElseIfExpression(n)
	case *InterpolatedString:
		v.VisitInterpolatedString(n)
	}
}

func leave(v Visitor, n Node) {
	switch n := n.(type) {
	case *Ast:
		v.VisitAstEnd(n)
	case *Block:
		v.VisitBlockEnd(n)
	case *Assignment:
		v.VisitAssignmentEnd(n)
	case *LocalAssignment:
		v.VisitLocalAssignmentEnd(n)
	case *Attribute:
		v.VisitAttributeEnd(n)
	case *Do:
		v.VisitDoEnd(n)
	case *While:
		v.VisitWhileEnd(n)
	case *Repeat:
		v.VisitRepeatEnd(n)
	case *If:
		v.VisitIfEnd(n)
	case *ElseIf:
		v.VisitElseIfEnd(n)
	case *NumericFor:
		v.VisitNumericForEnd(n)
	case *GenericFor:
		v.VisitGenericForEnd(n)
	case *FunctionDeclaration:
		v.VisitFunctionDeclarationEnd(n)
	case *LocalFunction:
		v.VisitLocalFunctionEnd(n)
	case *FunctionCall:
		v.VisitFunctionCallEnd(n)
	case *Goto:
		v.VisitGotoEnd(n)
	case *Label:
		v.VisitLabelEnd(n)
	case *Return:
		v.VisitReturnEnd(n)
	case *Break:
		v.VisitBreakEnd(n)
	case *Continue:
		v.VisitContinueEnd(n)
	case *BinaryOperator:
		v.VisitBinaryOperatorEnd(n)
	case *UnaryOperator:
		v.VisitUnaryOperatorEnd(n)
	case *Parentheses:
		v.VisitParenthesesEnd(n)
	case *AnonymousFunction:
		v.VisitAnonymousFunctionEnd(n)
	case *NumberLiteral:
		v.VisitNumberLiteralEnd(n)
	case *StringLiteral:
		v.VisitStringLiteralEnd(n)
	case *SymbolLiteral:
		v.VisitSymbolLiteralEnd(n)
	case *Name:
		v.VisitNameEnd(n)
	case *VarExpression:
		v.VisitVarExpressionEnd(n)
	case *BinOp:
		v.VisitBinOpEnd(n)
	case *UnOp:
		v.VisitUnOpEnd(n)
	case *AnonymousCall:
		v.VisitAnonymousCallEnd(n)
	case *MethodCall:
		v.VisitMethodCallEnd(n)
	case *IndexBrackets:
		v.VisitIndexBracketsEnd(n)
	case *IndexDot:
		v.VisitIndexDotEnd(n)
	case *ParenthesesArgs:
		v.VisitParenthesesArgsEnd(n)
	case *TableConstructor:
		v.VisitTableConstructorEnd(n)
	case *ExpressionKeyField:
		v.VisitExpressionKeyFieldEnd(n)
	case *NameKeyField:
		v.VisitNameKeyFieldEnd(n)
	case *NoKeyField:
		v.VisitNoKeyFieldEnd(n)
	case *FunctionBody:
		v.VisitFunctionBodyEnd(n)
	case *FunctionName:
		v.VisitFunctionNameEnd(n)
	case *IfExpression:
		v.VisitIfExpressionEnd(n)
	case *ElseIfExpression:
		v.VisitElseIfExpressionEnd(n)
	case *InterpolatedString:
		v.VisitInterpolatedStringEnd(n)
	}
}
