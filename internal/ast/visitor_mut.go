package ast

import "lunar/internal/token"

// VisitorMut is the rewriting counterpart of Visitor. Every hook returns
// the value to continue with: VisitX may replace a node before its
// children are rewritten, VisitXEnd after. Rewrite threads the results
// into a new tree and never modifies the input.
type VisitorMut interface {
	VisitAst(*Ast) *Ast
	VisitAstEnd(*Ast) *Ast
	VisitBlock(*Block) *Block
	VisitBlockEnd(*Block) *Block
	VisitAssignment(*Assignment) *Assignment
	VisitAssignmentEnd(*Assignment) *Assignment
	VisitLocalAssignment(*LocalAssignment) *LocalAssignment
	VisitLocalAssignmentEnd(*LocalAssignment) *LocalAssignment
	VisitAttribute(*Attribute) *Attribute
	VisitAttributeEnd(*Attribute) *Attribute
	VisitDo(*Do) *Do
	VisitDoEnd(*Do) *Do
	VisitWhile(*While) *While
	VisitWhileEnd(*While) *While
	VisitRepeat(*Repeat) *Repeat
	VisitRepeatEnd(*Repeat) *Repeat
	VisitIf(*If) *If
	VisitIfEnd(*If) *If
	VisitElseIf(*ElseIf) *ElseIf
	VisitElseIfEnd(*ElseIf) *ElseIf
	VisitNumericFor(*NumericFor) *NumericFor
	VisitNumericForEnd(*NumericFor) *NumericFor
	VisitGenericFor(*GenericFor) *GenericFor
	VisitGenericForEnd(*GenericFor) *GenericFor
	VisitFunctionDeclaration(*FunctionDeclaration) *FunctionDeclaration
	VisitFunctionDeclarationEnd(*FunctionDeclaration) *FunctionDeclaration
	VisitLocalFunction(*LocalFunction) *LocalFunction
	VisitLocalFunctionEnd(*LocalFunction) *LocalFunction
	VisitFunctionCall(*FunctionCall) *FunctionCall
	VisitFunctionCallEnd(*FunctionCall) *FunctionCall
	VisitGoto(*Goto) *Goto
	VisitGotoEnd(*Goto) *Goto
	VisitLabel(*Label) *Label
	VisitLabelEnd(*Label) *Label
	VisitReturn(*Return) *Return
	VisitReturnEnd(*Return) *Return
	VisitBreak(*Break) *Break
	VisitBreakEnd(*Break) *Break
	VisitContinue(*Continue) *Continue
	VisitContinueEnd(*Continue) *Continue
	VisitBinaryOperator(*BinaryOperator) *BinaryOperator
	VisitBinaryOperatorEnd(*BinaryOperator) *BinaryOperator
	VisitUnaryOperator(*UnaryOperator) *UnaryOperator
	VisitUnaryOperatorEnd(*UnaryOperator) *UnaryOperator
	VisitParentheses(*Parentheses) *Parentheses
	VisitParenthesesEnd(*Parentheses) *Parentheses
	VisitAnonymousFunction(*AnonymousFunction) *AnonymousFunction
	VisitAnonymousFunctionEnd(*AnonymousFunction) *AnonymousFunction
	VisitNumberLiteral(*NumberLiteral) *NumberLiteral
	VisitNumberLiteralEnd(*NumberLiteral) *NumberLiteral
	VisitStringLiteral(*StringLiteral) *StringLiteral
	VisitStringLiteralEnd(*StringLiteral) *StringLiteral
	VisitSymbolLiteral(*SymbolLiteral) *SymbolLiteral
	VisitSymbolLiteralEnd(*SymbolLiteral) *SymbolLiteral
	VisitName(*Name) *Name
	VisitNameEnd(*Name) *Name
	VisitVarExpression(*VarExpression) *VarExpression
	VisitVarExpressionEnd(*VarExpression) *VarExpression
	VisitBinOp(*BinOp) *BinOp
	VisitBinOpEnd(*BinOp) *BinOp
	VisitUnOp(*UnOp) *UnOp
	VisitUnOpEnd(*UnOp) *UnOp
	VisitAnonymousCall(*AnonymousCall) *AnonymousCall
	VisitAnonymousCallEnd(*AnonymousCall) *AnonymousCall
	VisitMethodCall(*MethodCall) *MethodCall
	VisitMethodCallEnd(*MethodCall) *MethodCall
	VisitIndexBrackets(*IndexBrackets) *IndexBrackets
	VisitIndexBracketsEnd(*IndexBrackets) *IndexBrackets
	VisitIndexDot(*IndexDot) *IndexDot
	VisitIndexDotEnd(*IndexDot) *IndexDot
	VisitParenthesesArgs(*ParenthesesArgs) *ParenthesesArgs
	VisitParenthesesArgsEnd(*ParenthesesArgs) *ParenthesesArgs
	VisitTableConstructor(*TableConstructor) *TableConstructor
	VisitTableConstructorEnd(*TableConstructor) *TableConstructor
	VisitExpressionKeyField(*ExpressionKeyField) *ExpressionKeyField
	VisitExpressionKeyFieldEnd(*ExpressionKeyField) *ExpressionKeyField
	VisitNameKeyField(*NameKeyField) *NameKeyField
	VisitNameKeyFieldEnd(*NameKeyField) *NameKeyField
	VisitNoKeyField(*NoKeyField) *NoKeyField
	VisitNoKeyFieldEnd(*NoKeyField) *NoKeyField
	VisitFunctionBody(*FunctionBody) *FunctionBody
	VisitFunctionBodyEnd(*FunctionBody) *FunctionBody
	VisitFunctionName(*FunctionName) *FunctionName
	VisitFunctionNameEnd(*FunctionName) *FunctionName
	VisitIfExpression(*IfExpression) *IfExpression
	VisitIfExpressionEnd(*IfExpression) *IfExpression
	VisitElseIfExpression(*ElseIfExpression) *ElseIfExpression
	VisitElseIfExpressionEnd(*ElseIfExpression) *ElseIfExpression
	VisitInterpolatedString(*InterpolatedString) *InterpolatedString
	VisitInterpolatedStringEnd(*InterpolatedString) *InterpolatedString

	VisitToken(token.Token) token.Token
	VisitIdentifier(token.Token) token.Token
	VisitMultiLineComment(token.Token) token.Token
	VisitNumber(token.Token) token.Token
	VisitShebang(token.Token) token.Token
	VisitSingleLineComment(token.Token) token.Token
	VisitStringLiteralToken(token.Token) token.Token
	VisitSymbol(token.Token) token.Token
	VisitWhitespace(token.Token) token.Token
	VisitEof(token.Token) token.Token
	VisitInterpolatedStringToken(token.Token) token.Token
}

// BaseVisitorMut returns every node and token unchanged.
type BaseVisitorMut struct{}

func (BaseVisitorMut) VisitAst(n *Ast) *Ast                                                 { return n }
func (BaseVisitorMut) VisitAstEnd(n *Ast) *Ast                                              { return n }
func (BaseVisitorMut) VisitBlock(n *Block) *Block                                           { return n }
func (BaseVisitorMut) VisitBlockEnd(n *Block) *Block                                        { return n }
func (BaseVisitorMut) VisitAssignment(n *Assignment) *Assignment                            { return n }
func (BaseVisitorMut) VisitAssignmentEnd(n *Assignment) *Assignment                         { return n }
func (BaseVisitorMut) VisitLocalAssignment(n *LocalAssignment) *LocalAssignment             { return n }
func (BaseVisitorMut) VisitLocalAssignmentEnd(n *LocalAssignment) *LocalAssignment          { return n }
func (BaseVisitorMut) VisitAttribute(n *Attribute) *Attribute                               { return n }
func (BaseVisitorMut) VisitAttributeEnd(n *Attribute) *Attribute                            { return n }
func (BaseVisitorMut) VisitDo(n *Do) *Do                                                    { return n }
func (BaseVisitorMut) VisitDoEnd(n *Do) *Do                                                 { return n }
func (BaseVisitorMut) VisitWhile(n *While) *While                                           { return n }
func (BaseVisitorMut) VisitWhileEnd(n *While) *While                                        { return n }
func (BaseVisitorMut) VisitRepeat(n *Repeat) *Repeat                                        { return n }
func (BaseVisitorMut) VisitRepeatEnd(n *Repeat) *Repeat                                     { return n }
func (BaseVisitorMut) VisitIf(n *If) *If                                                    { return n }
func (BaseVisitorMut) VisitIfEnd(n *If) *If                                                 { return n }
func (BaseVisitorMut) VisitElseIf(n *ElseIf) *ElseIf                                        { return n }
func (BaseVisitorMut) VisitElseIfEnd(n *ElseIf) *ElseIf                                     { return n }
func (BaseVisitorMut) VisitNumericFor(n *NumericFor) *NumericFor                            { return n }
func (BaseVisitorMut) VisitNumericForEnd(n *NumericFor) *NumericFor                         { return n }
func (BaseVisitorMut) VisitGenericFor(n *GenericFor) *GenericFor                            { return n }
func (BaseVisitorMut) VisitGenericForEnd(n *GenericFor) *GenericFor                         { return n }
func (BaseVisitorMut) VisitFunctionDeclaration(n *FunctionDeclaration) *FunctionDeclaration { return n }
func (BaseVisitorMut) VisitFunctionDeclarationEnd(n *FunctionDeclaration) *FunctionDeclaration {
	return n
}
func (BaseVisitorMut) VisitLocalFunction(n *LocalFunction) *LocalFunction                   { return n }
func (BaseVisitorMut) VisitLocalFunctionEnd(n *LocalFunction) *LocalFunction                { return n }
func (BaseVisitorMut) VisitFunctionCall(n *FunctionCall) *FunctionCall                      { return n }
func (BaseVisitorMut) VisitFunctionCallEnd(n *FunctionCall) *FunctionCall                   { return n }
func (BaseVisitorMut) VisitGoto(n *Goto) *Goto                                              { return n }
func (BaseVisitorMut) VisitGotoEnd(n *Goto) *Goto                                           { return n }
func (BaseVisitorMut) VisitLabel(n *Label) *Label                                           { return n }
func (BaseVisitorMut) VisitLabelEnd(n *Label) *Label                                        { return n }
func (BaseVisitorMut) VisitReturn(n *Return) *Return                                        { return n }
func (BaseVisitorMut) VisitReturnEnd(n *Return) *Return                                     { return n }
func (BaseVisitorMut) VisitBreak(n *Break) *Break                                           { return n }
func (BaseVisitorMut) VisitBreakEnd(n *Break) *Break                                        { return n }
func (BaseVisitorMut) VisitContinue(n *Continue) *Continue                                  { return n }
func (BaseVisitorMut) VisitContinueEnd(n *Continue) *Continue                               { return n }
func (BaseVisitorMut) VisitBinaryOperator(n *BinaryOperator) *BinaryOperator                { return n }
func (BaseVisitorMut) VisitBinaryOperatorEnd(n *BinaryOperator) *BinaryOperator             { return n }
func (BaseVisitorMut) VisitUnaryOperator(n *UnaryOperator) *UnaryOperator                   { return n }
func (BaseVisitorMut) VisitUnaryOperatorEnd(n *UnaryOperator) *UnaryOperator                { return n }
func (BaseVisitorMut) VisitParentheses(n *Parentheses) *Parentheses                         { return n }
func (BaseVisitorMut) VisitParenthesesEnd(n *Parentheses) *Parentheses                      { return n }
func (BaseVisitorMut) VisitAnonymousFunction(n *AnonymousFunction) *AnonymousFunction       { return n }
func (BaseVisitorMut) VisitAnonymousFunctionEnd(n *AnonymousFunction) *AnonymousFunction    { return n }
func (BaseVisitorMut) VisitNumberLiteral(n *NumberLiteral) *NumberLiteral                   { return n }
func (BaseVisitorMut) VisitNumberLiteralEnd(n *NumberLiteral) *NumberLiteral                { return n }
func (BaseVisitorMut) VisitStringLiteral(n *StringLiteral) *StringLiteral                   { return n }
func (BaseVisitorMut) VisitStringLiteralEnd(n *StringLiteral) *StringLiteral                { return n }
func (BaseVisitorMut) VisitSymbolLiteral(n *SymbolLiteral) *SymbolLiteral                   { return n }
func (BaseVisitorMut) VisitSymbolLiteralEnd(n *SymbolLiteral) *SymbolLiteral                { return n }
func (BaseVisitorMut) VisitName(n *Name) *Name                                              { return n }
func (BaseVisitorMut) VisitNameEnd(n *Name) *Name                                           { return n }
func (BaseVisitorMut) VisitVarExpression(n *VarExpression) *VarExpression                   { return n }
func (BaseVisitorMut) VisitVarExpressionEnd(n *VarExpression) *VarExpression                { return n }
func (BaseVisitorMut) VisitBinOp(n *BinOp) *BinOp                                           { return n }
func (BaseVisitorMut) VisitBinOpEnd(n *BinOp) *BinOp                                        { return n }
func (BaseVisitorMut) VisitUnOp(n *UnOp) *UnOp                                              { return n }
func (BaseVisitorMut) VisitUnOpEnd(n *UnOp) *UnOp                                           { return n }
func (BaseVisitorMut) VisitAnonymousCall(n *AnonymousCall) *AnonymousCall                   { return n }
func (BaseVisitorMut) VisitAnonymousCallEnd(n *AnonymousCall) *AnonymousCall                { return n }
func (BaseVisitorMut) VisitMethodCall(n *MethodCall) *MethodCall                            { return n }
func (BaseVisitorMut) VisitMethodCallEnd(n *MethodCall) *MethodCall                         { return n }
func (BaseVisitorMut) VisitIndexBrackets(n *IndexBrackets) *IndexBrackets                   { return n }
func (BaseVisitorMut) VisitIndexBracketsEnd(n *IndexBrackets) *IndexBrackets                { return n }
func (BaseVisitorMut) VisitIndexDot(n *IndexDot) *IndexDot                                  { return n }
func (BaseVisitorMut) VisitIndexDotEnd(n *IndexDot) *IndexDot                               { return n }
func (BaseVisitorMut) VisitParenthesesArgs(n *ParenthesesArgs) *ParenthesesArgs             { return n }
func (BaseVisitorMut) VisitParenthesesArgsEnd(n *ParenthesesArgs) *ParenthesesArgs          { return n }
func (BaseVisitorMut) VisitTableConstructor(n *TableConstructor) *TableConstructor          { return n }
func (BaseVisitorMut) VisitTableConstructorEnd(n *TableConstructor) *TableConstructor       { return n }
func (BaseVisitorMut) VisitExpressionKeyField(n *ExpressionKeyField) *ExpressionKeyField    { return n }
func (BaseVisitorMut) VisitExpressionKeyFieldEnd(n *ExpressionKeyField) *ExpressionKeyField { return n }
func (BaseVisitorMut) VisitNameKeyField(n *NameKeyField) *NameKeyField                      { return n }
func (BaseVisitorMut) VisitNameKeyFieldEnd(n *NameKeyField) *NameKeyField                   { return n }
func (BaseVisitorMut) VisitNoKeyField(n *NoKeyField) *NoKeyField                            { return n }
func (BaseVisitorMut) VisitNoKeyFieldEnd(n *NoKeyField) *NoKeyField                         { return n }
func (BaseVisitorMut) VisitFunctionBody(n *FunctionBody) *FunctionBody                      { return n }
func (BaseVisitorMut) VisitFunctionBodyEnd(n *FunctionBody) *FunctionBody                   { return n }
func (BaseVisitorMut) VisitFunctionName(n *FunctionName) *FunctionName                      { return n }
func (BaseVisitorMut) VisitFunctionNameEnd(n *FunctionName) *FunctionName                   { return n }
func (BaseVisitorMut) VisitIfExpression(n *IfExpression) *IfExpression                      { return n }
func (BaseVisitorMut) VisitIfExpressionEnd(n *IfExpression) *IfExpression                   { return n }
func (BaseVisitorMut) VisitElseIfExpression(n *ElseIfExpression) *ElseIfExpression          { return n }
func (BaseVisitorMut) VisitElseIfExpressionEnd(n *ElseIfExpression) *ElseIfExpression       { return n }
func (BaseVisitorMut) VisitInterpolatedString(n *InterpolatedString) *InterpolatedString    { return n }
func (BaseVisitorMut) VisitInterpolatedStringEnd(n *InterpolatedString) *InterpolatedString { return n }
func (BaseVisitorMut) VisitToken(t token.Token) token.Token                                 { return t }
func (BaseVisitorMut) VisitIdentifier(t token.Token) token.Token                            { return t }
func (BaseVisitorMut) VisitMultiLineComment(t token.Token) token.Token                      { return t }
func (BaseVisitorMut) VisitNumber(t token.Token) token.Token                                { return t }
func (BaseVisitorMut) VisitShebang(t token.Token) token.Token                               { return t }
func (BaseVisitorMut) VisitSingleLineComment(t token.Token) token.Token                     { return t }
func (BaseVisitorMut) VisitStringLiteralToken(t token.Token) token.Token                    { return t }
func (BaseVisitorMut) VisitSymbol(t token.Token) token.Token                                { return t }
func (BaseVisitorMut) VisitWhitespace(t token.Token) token.Token                            { return t }
func (BaseVisitorMut) VisitEof(t token.Token) token.Token                                   { return t }
func (BaseVisitorMut) VisitInterpolatedStringToken(t token.Token) token.Token               { return t }
