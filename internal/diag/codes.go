package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Ввод-вывод
	IOInfo          Code = 1000
	IOLoadFileError Code = 1001
	IOCacheError    Code = 1002

	// Декодирование ESTree
	DecInfo          Code = 2000
	DecMalformedJSON Code = 2001
	DecUnknownNode   Code = 2002
	DecMissingField  Code = 2003
	DecUnsupported   Code = 2004

	// Связывание имён
	SemaInfo                 Code = 3000
	SemaRedeclaration        Code = 3001
	SemaUndefinedExport      Code = 3002
	SemaDuplicateExport      Code = 3003
	SemaUndeclaredPrivate    Code = 3004
	SemaDuplicateDefault     Code = 3005
	SemaDuplicatePrivate     Code = 3006
	SemaInvalidPrivateDelete Code = 3007

	// Ранние ошибки ECMAScript
	SynInfo                     Code = 4000
	SynWithInStrict             Code = 4001
	SynDeleteIdentifier         Code = 4002
	SynStrictBindingName        Code = 4003
	SynStrictReservedWord       Code = 4004
	SynAwaitInModule            Code = 4005
	SynDuplicateLabel           Code = 4006
	SynUndefinedLabel           Code = 4007
	SynIllegalBreak             Code = 4008
	SynIllegalContinue          Code = 4009
	SynContinueNonLoop          Code = 4010
	SynForHeadMultipleDecls     Code = 4011
	SynForHeadInitializer       Code = 4012
	SynIllegalUseStrict         Code = 4013
	SynReturnOutsideFunction    Code = 4014
	SynDuplicateConstructor     Code = 4015
	SynNewTargetOutsideFunction Code = 4016
	SynImportMetaOutsideModule  Code = 4017
	SynLegacyOctal              Code = 4018
	SynAwaitInParameters        Code = 4019
	SynYieldInParameters        Code = 4020

	// Ранние ошибки TypeScript
	TSInfo                    Code = 5000
	TSInterfaceExtends        Code = 5001
	TSEnumMemberInitializer   Code = 5002
	TSNamespacePlacement      Code = 5003
	TSOptionalWithInitializer Code = 5004
	TSRequiredAfterOptional   Code = 5005
	TSAbstractMethodBody      Code = 5006
	TSAbstractPropertyInit    Code = 5007
	TSAbstractOutsideAbstract Code = 5008
	TSForInAnnotation         Code = 5009
	TSForOfAnnotation         Code = 5010
	TSDefiniteWithInitializer Code = 5011
	TSDefiniteWithoutType     Code = 5012
	TSDefiniteNotPermitted    Code = 5013
	TSOptionalNotAllowed      Code = 5014

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001

	// Внутренние сбои
	InternalInfo      Code = 9000
	InternalInvariant Code = 9001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		IOInfo:                      "I/O information",
		IOLoadFileError:             "I/O load file error",
		IOCacheError:                "Result cache error",
		DecInfo:                     "AST decoding information",
		DecMalformedJSON:            "Malformed ESTree JSON",
		DecUnknownNode:              "Unknown ESTree node type",
		DecMissingField:             "Missing required ESTree field",
		DecUnsupported:              "Unsupported syntax",
		SemaInfo:                    "Binding information",
		SemaRedeclaration:           "Identifier has already been declared",
		SemaUndefinedExport:         "Export of undeclared name",
		SemaDuplicateExport:         "Duplicated export",
		SemaUndeclaredPrivate:       "Private name not declared in enclosing class",
		SemaDuplicateDefault:        "Duplicated default export",
		SemaDuplicatePrivate:        "Private name declared twice",
		SemaInvalidPrivateDelete:    "Private field cannot be deleted",
		SynInfo:                     "Early error information",
		SynWithInStrict:             "'with' statement in strict mode",
		SynDeleteIdentifier:         "Delete of an unqualified identifier in strict mode",
		SynStrictBindingName:        "Invalid binding name in strict mode",
		SynStrictReservedWord:       "Reserved word in strict mode",
		SynAwaitInModule:            "'await' used as identifier in module",
		SynDuplicateLabel:           "Label has already been declared",
		SynUndefinedLabel:           "Use of undefined label",
		SynIllegalBreak:             "Illegal break statement",
		SynIllegalContinue:          "Illegal continue statement",
		SynContinueNonLoop:          "Continue target is not an iteration statement",
		SynForHeadMultipleDecls:     "Only a single declaration is allowed in a for-in/of head",
		SynForHeadInitializer:       "for-in/of variable may not have an initializer",
		SynIllegalUseStrict:         "\"use strict\" not allowed with non-simple parameters",
		SynReturnOutsideFunction:    "Illegal return statement",
		SynDuplicateConstructor:     "Multiple constructor implementations",
		SynNewTargetOutsideFunction: "new.target outside function",
		SynImportMetaOutsideModule:  "import.meta outside module",
		SynLegacyOctal:              "Legacy octal literal in strict mode",
		SynAwaitInParameters:        "'await' expression in formal parameters",
		SynYieldInParameters:        "'yield' expression in formal parameters",
		TSInfo:                      "TypeScript information",
		TSInterfaceExtends:          "Interface may only extend an identifier or qualified name",
		TSEnumMemberInitializer:     "Enum member must have initializer",
		TSNamespacePlacement:        "Namespace declaration not allowed here",
		TSOptionalWithInitializer:   "Parameter cannot have question mark and initializer",
		TSRequiredAfterOptional:     "A required parameter cannot follow an optional parameter",
		TSAbstractMethodBody:        "Abstract method cannot have an implementation",
		TSAbstractPropertyInit:      "Abstract property cannot have an initializer",
		TSAbstractOutsideAbstract:   "Abstract member outside abstract class",
		TSForInAnnotation:           "Type annotation on for-in variable",
		TSForOfAnnotation:           "Type annotation on for-of variable",
		TSDefiniteWithInitializer:   "Definite assignment assertion with initializer",
		TSDefiniteWithoutType:       "Definite assignment assertion without type annotation",
		TSDefiniteNotPermitted:      "Definite assignment assertion not permitted here",
		TSOptionalNotAllowed:        "Optional marker not allowed here",
		ObsInfo:                     "Observability information",
		ObsTimings:                  "Pipeline timings",
		InternalInfo:                "Internal information",
		InternalInvariant:           "Internal invariant violated",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("DEC%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("TS%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("INT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
