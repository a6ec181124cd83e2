package bytecode

// Opcode identifies one v93 instruction. The numeric value is the
// opcode byte itself: the v93 set assigns opcodes densely in table
// order.
type Opcode uint8

// The complete Hermes bytecode v93 instruction set, in opcode order.
const (
	OpUnreachable Opcode = iota
	OpNewObjectWithBuffer
	OpNewObjectWithBufferLong
	OpNewObject
	OpNewObjectWithParent
	OpNewArrayWithBuffer
	OpNewArrayWithBufferLong
	OpNewArray
	OpMov
	OpMovLong
	OpNegate
	OpNot
	OpBitNot
	OpTypeOf
	OpEq
	OpStrictEq
	OpNeq
	OpStrictNeq
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpAdd
	OpAddN
	OpMul
	OpMulN
	OpDiv
	OpDivN
	OpMod
	OpSub
	OpSubN
	OpLShift
	OpRShift
	OpURshift
	OpBitAnd
	OpBitXor
	OpBitOr
	OpInc
	OpDec
	OpInstanceOf
	OpIsIn
	OpGetEnvironment
	OpStoreToEnvironment
	OpStoreToEnvironmentL
	OpStoreNPToEnvironment
	OpStoreNPToEnvironmentL
	OpLoadFromEnvironment
	OpLoadFromEnvironmentL
	OpGetGlobalObject
	OpGetNewTarget
	OpCreateEnvironment
	OpDeclareGlobalVar
	OpGetByIdShort
	OpGetById
	OpGetByIdLong
	OpTryGetById
	OpTryGetByIdLong
	OpPutById
	OpPutByIdLong
	OpTryPutById
	OpTryPutByIdLong
	OpPutNewOwnByIdShort
	OpPutNewOwnById
	OpPutNewOwnByIdLong
	OpPutNewOwnNEById
	OpPutNewOwnNEByIdLong
	OpPutOwnByIndex
	OpPutOwnByIndexL
	OpPutOwnByVal
	OpDelById
	OpDelByIdLong
	OpGetByVal
	OpPutByVal
	OpDelByVal
	OpPutOwnGetterSetterByVal
	OpGetPNameList
	OpGetNextPName
	OpCall
	OpConstruct
	OpCall1
	OpCallDirect
	OpCall2
	OpCall3
	OpCall4
	OpCallLong
	OpConstructLong
	OpCallDirectLongIndex
	OpCallBuiltin
	OpCallBuiltinLong
	OpGetBuiltinClosure
	OpRet
	OpCatch
	OpDirectEval
	OpThrow
	OpThrowIfEmpty
	OpDebugger
	OpAsyncBreakCheck
	OpProfilePoint
	OpCreateClosure
	OpCreateClosureLongIndex
	OpCreateGeneratorClosure
	OpCreateGeneratorClosureLongIndex
	OpCreateAsyncClosure
	OpCreateAsyncClosureLongIndex
	OpCreateThis
	OpSelectObject
	OpLoadParam
	OpLoadParamLong
	OpLoadConstUInt8
	OpLoadConstInt
	OpLoadConstDouble
	OpLoadConstBigInt
	OpLoadConstBigIntLongIndex
	OpLoadConstString
	OpLoadConstStringLongIndex
	OpLoadConstEmpty
	OpLoadConstUndefined
	OpLoadConstNull
	OpLoadConstTrue
	OpLoadConstFalse
	OpLoadConstZero
	OpCoerceThisNS
	OpLoadThisNS
	OpToNumber
	OpToNumeric
	OpToInt32
	OpAddEmptyString
	OpGetArgumentsPropByVal
	OpGetArgumentsLength
	OpReifyArguments
	OpCreateRegExp
	OpSwitchImm
	OpStartGenerator
	OpResumeGenerator
	OpCompleteGenerator
	OpCreateGenerator
	OpCreateGeneratorLongIndex
	OpIteratorBegin
	OpIteratorNext
	OpIteratorClose
	OpJmp
	OpJmpLong
	OpJmpTrue
	OpJmpTrueLong
	OpJmpFalse
	OpJmpFalseLong
	OpJmpUndefined
	OpJmpUndefinedLong
	OpSaveGenerator
	OpSaveGeneratorLong
	OpJLess
	OpJLessLong
	OpJNotLess
	OpJNotLessLong
	OpJLessN
	OpJLessNLong
	OpJNotLessN
	OpJNotLessNLong
	OpJLessEqual
	OpJLessEqualLong
	OpJNotLessEqual
	OpJNotLessEqualLong
	OpJLessEqualN
	OpJLessEqualNLong
	OpJNotLessEqualN
	OpJNotLessEqualNLong
	OpJGreater
	OpJGreaterLong
	OpJNotGreater
	OpJNotGreaterLong
	OpJGreaterN
	OpJGreaterNLong
	OpJNotGreaterN
	OpJNotGreaterNLong
	OpJGreaterEqual
	OpJGreaterEqualLong
	OpJNotGreaterEqual
	OpJNotGreaterEqualLong
	OpJGreaterEqualN
	OpJGreaterEqualNLong
	OpJNotGreaterEqualN
	OpJNotGreaterEqualNLong
	OpJEqual
	OpJEqualLong
	OpJNotEqual
	OpJNotEqualLong
	OpJStrictEqual
	OpJStrictEqualLong
	OpJStrictNotEqual
	OpJStrictNotEqualLong
	OpAdd32
	OpSub32
	OpMul32
	OpDivi32
	OpDivu32
	OpLoadi8
	OpLoadu8
	OpLoadi16
	OpLoadu16
	OpLoadi32
	OpLoadu32
	OpStore8
	OpStore16
	OpStore32
)

// NumOpcodes is the number of defined v93 opcodes.
const NumOpcodes = 204

// opcodeSpec describes one opcode: its name and ordered operand layout.
type opcodeSpec struct {
	Name     string
	Operands []Operand
}

var opcodeTable = [NumOpcodes]opcodeSpec{
	OpUnreachable: {Name: "Unreachable"},
	OpNewObjectWithBuffer: {Name: "NewObjectWithBuffer", Operands: []Operand{{Kind: Reg8}, {Kind: UInt16}, {Kind: UInt16}, {Kind: UInt16}, {Kind: UInt16}}},
	OpNewObjectWithBufferLong: {Name: "NewObjectWithBufferLong", Operands: []Operand{{Kind: Reg8}, {Kind: UInt16}, {Kind: UInt16}, {Kind: UInt32}, {Kind: UInt32}}},
	OpNewObject: {Name: "NewObject", Operands: []Operand{{Kind: Reg8}}},
	OpNewObjectWithParent: {Name: "NewObjectWithParent", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpNewArrayWithBuffer: {Name: "NewArrayWithBuffer", Operands: []Operand{{Kind: Reg8}, {Kind: UInt16}, {Kind: UInt16}, {Kind: UInt16}}},
	OpNewArrayWithBufferLong: {Name: "NewArrayWithBufferLong", Operands: []Operand{{Kind: Reg8}, {Kind: UInt16}, {Kind: UInt16}, {Kind: UInt32}}},
	OpNewArray: {Name: "NewArray", Operands: []Operand{{Kind: Reg8}, {Kind: UInt16}}},
	OpMov: {Name: "Mov", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpMovLong: {Name: "MovLong", Operands: []Operand{{Kind: Reg32}, {Kind: Reg32}}},
	OpNegate: {Name: "Negate", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpNot: {Name: "Not", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpBitNot: {Name: "BitNot", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpTypeOf: {Name: "TypeOf", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpEq: {Name: "Eq", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpStrictEq: {Name: "StrictEq", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpNeq: {Name: "Neq", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpStrictNeq: {Name: "StrictNeq", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpLess: {Name: "Less", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpLessEq: {Name: "LessEq", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpGreater: {Name: "Greater", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpGreaterEq: {Name: "GreaterEq", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpAdd: {Name: "Add", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpAddN: {Name: "AddN", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpMul: {Name: "Mul", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpMulN: {Name: "MulN", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpDiv: {Name: "Div", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpDivN: {Name: "DivN", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpMod: {Name: "Mod", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpSub: {Name: "Sub", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpSubN: {Name: "SubN", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpLShift: {Name: "LShift", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpRShift: {Name: "RShift", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpURshift: {Name: "URshift", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpBitAnd: {Name: "BitAnd", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpBitXor: {Name: "BitXor", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpBitOr: {Name: "BitOr", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpInc: {Name: "Inc", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpDec: {Name: "Dec", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpInstanceOf: {Name: "InstanceOf", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpIsIn: {Name: "IsIn", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpGetEnvironment: {Name: "GetEnvironment", Operands: []Operand{{Kind: Reg8}, {Kind: UInt8}}},
	OpStoreToEnvironment: {Name: "StoreToEnvironment", Operands: []Operand{{Kind: Reg8}, {Kind: UInt8}, {Kind: Reg8}}},
	OpStoreToEnvironmentL: {Name: "StoreToEnvironmentL", Operands: []Operand{{Kind: Reg8}, {Kind: UInt16}, {Kind: Reg8}}},
	OpStoreNPToEnvironment: {Name: "StoreNPToEnvironment", Operands: []Operand{{Kind: Reg8}, {Kind: UInt8}, {Kind: Reg8}}},
	OpStoreNPToEnvironmentL: {Name: "StoreNPToEnvironmentL", Operands: []Operand{{Kind: Reg8}, {Kind: UInt16}, {Kind: Reg8}}},
	OpLoadFromEnvironment: {Name: "LoadFromEnvironment", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}}},
	OpLoadFromEnvironmentL: {Name: "LoadFromEnvironmentL", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt16}}},
	OpGetGlobalObject: {Name: "GetGlobalObject", Operands: []Operand{{Kind: Reg8}}},
	OpGetNewTarget: {Name: "GetNewTarget", Operands: []Operand{{Kind: Reg8}}},
	OpCreateEnvironment: {Name: "CreateEnvironment", Operands: []Operand{{Kind: Reg8}}},
	OpDeclareGlobalVar: {Name: "DeclareGlobalVar", Operands: []Operand{{Kind: UInt32, Ref: RefString}}},
	OpGetByIdShort: {Name: "GetByIdShort", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}, {Kind: UInt8, Ref: RefString}}},
	OpGetById: {Name: "GetById", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}, {Kind: UInt16, Ref: RefString}}},
	OpGetByIdLong: {Name: "GetByIdLong", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}, {Kind: UInt32, Ref: RefString}}},
	OpTryGetById: {Name: "TryGetById", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}, {Kind: UInt16, Ref: RefString}}},
	OpTryGetByIdLong: {Name: "TryGetByIdLong", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}, {Kind: UInt32, Ref: RefString}}},
	OpPutById: {Name: "PutById", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}, {Kind: UInt16, Ref: RefString}}},
	OpPutByIdLong: {Name: "PutByIdLong", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}, {Kind: UInt32, Ref: RefString}}},
	OpTryPutById: {Name: "TryPutById", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}, {Kind: UInt16, Ref: RefString}}},
	OpTryPutByIdLong: {Name: "TryPutByIdLong", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}, {Kind: UInt32, Ref: RefString}}},
	OpPutNewOwnByIdShort: {Name: "PutNewOwnByIdShort", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8, Ref: RefString}}},
	OpPutNewOwnById: {Name: "PutNewOwnById", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt16, Ref: RefString}}},
	OpPutNewOwnByIdLong: {Name: "PutNewOwnByIdLong", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt32, Ref: RefString}}},
	OpPutNewOwnNEById: {Name: "PutNewOwnNEById", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt16, Ref: RefString}}},
	OpPutNewOwnNEByIdLong: {Name: "PutNewOwnNEByIdLong", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt32, Ref: RefString}}},
	OpPutOwnByIndex: {Name: "PutOwnByIndex", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}}},
	OpPutOwnByIndexL: {Name: "PutOwnByIndexL", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt32}}},
	OpPutOwnByVal: {Name: "PutOwnByVal", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Flag8}}},
	OpDelById: {Name: "DelById", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt16, Ref: RefString}}},
	OpDelByIdLong: {Name: "DelByIdLong", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt32, Ref: RefString}}},
	OpGetByVal: {Name: "GetByVal", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpPutByVal: {Name: "PutByVal", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpDelByVal: {Name: "DelByVal", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpPutOwnGetterSetterByVal: {Name: "PutOwnGetterSetterByVal", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Flag8}}},
	OpGetPNameList: {Name: "GetPNameList", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpGetNextPName: {Name: "GetNextPName", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpCall: {Name: "Call", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}}},
	OpConstruct: {Name: "Construct", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt8}}},
	OpCall1: {Name: "Call1", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpCallDirect: {Name: "CallDirect", Operands: []Operand{{Kind: Reg8}, {Kind: UInt8}, {Kind: UInt16, Ref: RefFunction}}},
	OpCall2: {Name: "Call2", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpCall3: {Name: "Call3", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpCall4: {Name: "Call4", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpCallLong: {Name: "CallLong", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt32}}},
	OpConstructLong: {Name: "ConstructLong", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt32}}},
	OpCallDirectLongIndex: {Name: "CallDirectLongIndex", Operands: []Operand{{Kind: Reg8}, {Kind: UInt8}, {Kind: UInt32, Ref: RefFunction}}},
	OpCallBuiltin: {Name: "CallBuiltin", Operands: []Operand{{Kind: Reg8}, {Kind: UInt8}, {Kind: UInt8}}},
	OpCallBuiltinLong: {Name: "CallBuiltinLong", Operands: []Operand{{Kind: Reg8}, {Kind: UInt8}, {Kind: UInt32}}},
	OpGetBuiltinClosure: {Name: "GetBuiltinClosure", Operands: []Operand{{Kind: Reg8}, {Kind: UInt8}}},
	OpRet: {Name: "Ret", Operands: []Operand{{Kind: Reg8}}},
	OpCatch: {Name: "Catch", Operands: []Operand{{Kind: Reg8}}},
	OpDirectEval: {Name: "DirectEval", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpThrow: {Name: "Throw", Operands: []Operand{{Kind: Reg8}}},
	OpThrowIfEmpty: {Name: "ThrowIfEmpty", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpDebugger: {Name: "Debugger"},
	OpAsyncBreakCheck: {Name: "AsyncBreakCheck"},
	OpProfilePoint: {Name: "ProfilePoint", Operands: []Operand{{Kind: UInt16}}},
	OpCreateClosure: {Name: "CreateClosure", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt16, Ref: RefFunction}}},
	OpCreateClosureLongIndex: {Name: "CreateClosureLongIndex", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt32, Ref: RefFunction}}},
	OpCreateGeneratorClosure: {Name: "CreateGeneratorClosure", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt16, Ref: RefFunction}}},
	OpCreateGeneratorClosureLongIndex: {Name: "CreateGeneratorClosureLongIndex", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt32, Ref: RefFunction}}},
	OpCreateAsyncClosure: {Name: "CreateAsyncClosure", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt16, Ref: RefFunction}}},
	OpCreateAsyncClosureLongIndex: {Name: "CreateAsyncClosureLongIndex", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt32, Ref: RefFunction}}},
	OpCreateThis: {Name: "CreateThis", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpSelectObject: {Name: "SelectObject", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpLoadParam: {Name: "LoadParam", Operands: []Operand{{Kind: Reg8}, {Kind: UInt8}}},
	OpLoadParamLong: {Name: "LoadParamLong", Operands: []Operand{{Kind: Reg8}, {Kind: UInt32}}},
	OpLoadConstUInt8: {Name: "LoadConstUInt8", Operands: []Operand{{Kind: Reg8}, {Kind: UInt8}}},
	OpLoadConstInt: {Name: "LoadConstInt", Operands: []Operand{{Kind: Reg8}, {Kind: Imm32}}},
	OpLoadConstDouble: {Name: "LoadConstDouble", Operands: []Operand{{Kind: Reg8}, {Kind: Double}}},
	OpLoadConstBigInt: {Name: "LoadConstBigInt", Operands: []Operand{{Kind: Reg8}, {Kind: UInt16, Ref: RefBigInt}}},
	OpLoadConstBigIntLongIndex: {Name: "LoadConstBigIntLongIndex", Operands: []Operand{{Kind: Reg8}, {Kind: UInt32, Ref: RefBigInt}}},
	OpLoadConstString: {Name: "LoadConstString", Operands: []Operand{{Kind: Reg8}, {Kind: UInt16, Ref: RefString}}},
	OpLoadConstStringLongIndex: {Name: "LoadConstStringLongIndex", Operands: []Operand{{Kind: Reg8}, {Kind: UInt32, Ref: RefString}}},
	OpLoadConstEmpty: {Name: "LoadConstEmpty", Operands: []Operand{{Kind: Reg8}}},
	OpLoadConstUndefined: {Name: "LoadConstUndefined", Operands: []Operand{{Kind: Reg8}}},
	OpLoadConstNull: {Name: "LoadConstNull", Operands: []Operand{{Kind: Reg8}}},
	OpLoadConstTrue: {Name: "LoadConstTrue", Operands: []Operand{{Kind: Reg8}}},
	OpLoadConstFalse: {Name: "LoadConstFalse", Operands: []Operand{{Kind: Reg8}}},
	OpLoadConstZero: {Name: "LoadConstZero", Operands: []Operand{{Kind: Reg8}}},
	OpCoerceThisNS: {Name: "CoerceThisNS", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpLoadThisNS: {Name: "LoadThisNS", Operands: []Operand{{Kind: Reg8}}},
	OpToNumber: {Name: "ToNumber", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpToNumeric: {Name: "ToNumeric", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpToInt32: {Name: "ToInt32", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpAddEmptyString: {Name: "AddEmptyString", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpGetArgumentsPropByVal: {Name: "GetArgumentsPropByVal", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpGetArgumentsLength: {Name: "GetArgumentsLength", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpReifyArguments: {Name: "ReifyArguments", Operands: []Operand{{Kind: Reg8}}},
	OpCreateRegExp: {Name: "CreateRegExp", Operands: []Operand{{Kind: Reg8}, {Kind: UInt32, Ref: RefString}, {Kind: UInt32, Ref: RefString}, {Kind: UInt32}}},
	OpSwitchImm: {Name: "SwitchImm", Operands: []Operand{{Kind: Reg8}, {Kind: UInt32}, {Kind: Addr32}, {Kind: UInt32}, {Kind: UInt32}}},
	OpStartGenerator: {Name: "StartGenerator"},
	OpResumeGenerator: {Name: "ResumeGenerator", Operands: []Operand{{Kind: Reg8}, {Kind: Flag8}}},
	OpCompleteGenerator: {Name: "CompleteGenerator"},
	OpCreateGenerator: {Name: "CreateGenerator", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt16, Ref: RefFunction}}},
	OpCreateGeneratorLongIndex: {Name: "CreateGeneratorLongIndex", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: UInt32, Ref: RefFunction}}},
	OpIteratorBegin: {Name: "IteratorBegin", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}}},
	OpIteratorNext: {Name: "IteratorNext", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpIteratorClose: {Name: "IteratorClose", Operands: []Operand{{Kind: Reg8}, {Kind: Flag8}}},
	OpJmp: {Name: "Jmp", Operands: []Operand{{Kind: Addr8}}},
	OpJmpLong: {Name: "JmpLong", Operands: []Operand{{Kind: Addr32}}},
	OpJmpTrue: {Name: "JmpTrue", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}}},
	OpJmpTrueLong: {Name: "JmpTrueLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}}},
	OpJmpFalse: {Name: "JmpFalse", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}}},
	OpJmpFalseLong: {Name: "JmpFalseLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}}},
	OpJmpUndefined: {Name: "JmpUndefined", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}}},
	OpJmpUndefinedLong: {Name: "JmpUndefinedLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}}},
	OpSaveGenerator: {Name: "SaveGenerator", Operands: []Operand{{Kind: Addr8}}},
	OpSaveGeneratorLong: {Name: "SaveGeneratorLong", Operands: []Operand{{Kind: Addr32}}},
	OpJLess: {Name: "JLess", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJLessLong: {Name: "JLessLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotLess: {Name: "JNotLess", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotLessLong: {Name: "JNotLessLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJLessN: {Name: "JLessN", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJLessNLong: {Name: "JLessNLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotLessN: {Name: "JNotLessN", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotLessNLong: {Name: "JNotLessNLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJLessEqual: {Name: "JLessEqual", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJLessEqualLong: {Name: "JLessEqualLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotLessEqual: {Name: "JNotLessEqual", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotLessEqualLong: {Name: "JNotLessEqualLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJLessEqualN: {Name: "JLessEqualN", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJLessEqualNLong: {Name: "JLessEqualNLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotLessEqualN: {Name: "JNotLessEqualN", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotLessEqualNLong: {Name: "JNotLessEqualNLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJGreater: {Name: "JGreater", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJGreaterLong: {Name: "JGreaterLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotGreater: {Name: "JNotGreater", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotGreaterLong: {Name: "JNotGreaterLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJGreaterN: {Name: "JGreaterN", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJGreaterNLong: {Name: "JGreaterNLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotGreaterN: {Name: "JNotGreaterN", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotGreaterNLong: {Name: "JNotGreaterNLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJGreaterEqual: {Name: "JGreaterEqual", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJGreaterEqualLong: {Name: "JGreaterEqualLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotGreaterEqual: {Name: "JNotGreaterEqual", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotGreaterEqualLong: {Name: "JNotGreaterEqualLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJGreaterEqualN: {Name: "JGreaterEqualN", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJGreaterEqualNLong: {Name: "JGreaterEqualNLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotGreaterEqualN: {Name: "JNotGreaterEqualN", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotGreaterEqualNLong: {Name: "JNotGreaterEqualNLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJEqual: {Name: "JEqual", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJEqualLong: {Name: "JEqualLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotEqual: {Name: "JNotEqual", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJNotEqualLong: {Name: "JNotEqualLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJStrictEqual: {Name: "JStrictEqual", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJStrictEqualLong: {Name: "JStrictEqualLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJStrictNotEqual: {Name: "JStrictNotEqual", Operands: []Operand{{Kind: Addr8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpJStrictNotEqualLong: {Name: "JStrictNotEqualLong", Operands: []Operand{{Kind: Addr32}, {Kind: Reg8}, {Kind: Reg8}}},
	OpAdd32: {Name: "Add32", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpSub32: {Name: "Sub32", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpMul32: {Name: "Mul32", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpDivi32: {Name: "Divi32", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpDivu32: {Name: "Divu32", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpLoadi8: {Name: "Loadi8", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpLoadu8: {Name: "Loadu8", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpLoadi16: {Name: "Loadi16", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpLoadu16: {Name: "Loadu16", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpLoadi32: {Name: "Loadi32", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpLoadu32: {Name: "Loadu32", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpStore8: {Name: "Store8", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpStore16: {Name: "Store16", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
	OpStore32: {Name: "Store32", Operands: []Operand{{Kind: Reg8}, {Kind: Reg8}, {Kind: Reg8}}},
}
