package token

const (
	Undetermined Token = iota

	Illegal
	Eof
	LineTerminator // internal: never returned by the scanner's Next
	Comment        // internal
	SGMLComment    // <!--

	Identifier
	Number
	String
	RegExp
	Reserved

	Plus      // +
	Minus     // -
	Multiply  // *
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	QuotientAssign  // /=
	RemainderAssign // %=

	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=

	LogicalAnd // &&
	LogicalOr  // ||
	Increment  // ++
	Decrement  // --

	Equal       // ==
	StrictEqual // ===
	Less        // <
	Greater     // >
	Assign      // =
	Not         // !

	BitwiseNot // ~

	NotEqual       // !=
	StrictNotEqual // !==
	LessOrEqual    // <=
	GreaterOrEqual // >=

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?

	firstKeyword
	Break
	Case
	Catch
	Continue
	Default
	Delete
	Do
	Else
	False
	Finally
	For
	Function
	If
	In
	InstanceOf
	New
	Null
	Return
	Switch
	This
	Throw
	True
	Try
	TypeOf
	Var
	Void
	While
	With
	lastKeyword
)

var token2string = [...]string{
	Illegal:                  "ILLEGAL",
	Eof:                      "EOF",
	LineTerminator:           "LINETERMINATOR",
	Comment:                  "COMMENT",
	SGMLComment:              "<!--",
	Identifier:               "IDENTIFIER",
	Number:                   "NUMBER",
	String:                   "STRING",
	RegExp:                   "REGEXP",
	Reserved:                 "RESERVED",
	Plus:                     "+",
	Minus:                    "-",
	Multiply:                 "*",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	Less:                     "<",
	Greater:                  ">",
	Assign:                   "=",
	Not:                      "!",
	BitwiseNot:               "~",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	Break:                    "break",
	Case:                     "case",
	Catch:                    "catch",
	Continue:                 "continue",
	Default:                  "default",
	Delete:                   "delete",
	Do:                       "do",
	Else:                     "else",
	False:                    "false",
	Finally:                  "finally",
	For:                      "for",
	Function:                 "function",
	If:                       "if",
	In:                       "in",
	InstanceOf:               "instanceof",
	New:                      "new",
	Null:                     "null",
	Return:                   "return",
	Switch:                   "switch",
	This:                     "this",
	Throw:                    "throw",
	True:                     "true",
	Try:                      "try",
	TypeOf:                   "typeof",
	Var:                      "var",
	Void:                     "void",
	While:                    "while",
	With:                     "with",
}

var keywordTable = map[string]keyword{
	"break":      {token: Break},
	"case":       {token: Case},
	"catch":      {token: Catch},
	"continue":   {token: Continue},
	"default":    {token: Default},
	"delete":     {token: Delete},
	"do":         {token: Do},
	"else":       {token: Else},
	"false":      {token: False},
	"finally":    {token: Finally},
	"for":        {token: For},
	"function":   {token: Function},
	"if":         {token: If},
	"in":         {token: In},
	"instanceof": {token: InstanceOf},
	"new":        {token: New},
	"null":       {token: Null},
	"return":     {token: Return},
	"switch":     {token: Switch},
	"this":       {token: This},
	"throw":      {token: Throw},
	"true":       {token: True},
	"try":        {token: Try},
	"typeof":     {token: TypeOf},
	"var":        {token: Var},
	"void":       {token: Void},
	"while":      {token: While},
	"with":       {token: With},

	// ECMA-262 3rd edition, 7.5.3
	"abstract":     {futureKeyword: true},
	"boolean":      {futureKeyword: true},
	"byte":         {futureKeyword: true},
	"char":         {futureKeyword: true},
	"class":        {futureKeyword: true},
	"const":        {futureKeyword: true},
	"debugger":     {futureKeyword: true},
	"double":       {futureKeyword: true},
	"enum":         {futureKeyword: true},
	"export":       {futureKeyword: true},
	"extends":      {futureKeyword: true},
	"final":        {futureKeyword: true},
	"float":        {futureKeyword: true},
	"goto":         {futureKeyword: true},
	"implements":   {futureKeyword: true},
	"import":       {futureKeyword: true},
	"int":          {futureKeyword: true},
	"interface":    {futureKeyword: true},
	"long":         {futureKeyword: true},
	"native":       {futureKeyword: true},
	"package":      {futureKeyword: true},
	"private":      {futureKeyword: true},
	"protected":    {futureKeyword: true},
	"public":       {futureKeyword: true},
	"short":        {futureKeyword: true},
	"static":       {futureKeyword: true},
	"super":        {futureKeyword: true},
	"synchronized": {futureKeyword: true},
	"throws":       {futureKeyword: true},
	"transient":    {futureKeyword: true},
	"volatile":     {futureKeyword: true},
}
