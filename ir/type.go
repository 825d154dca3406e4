package ir

import "fmt"

type Type int

const (
	InvalidType Type = iota
	NullType
	FalseType
	TrueType
	NumberType
	StringType
	ArrayType
	ObjectType
	RawType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		InvalidType: "Invalid",
		NullType:    "Null",
		FalseType:   "False",
		TrueType:    "True",
		NumberType:  "Number",
		StringType:  "String",
		ArrayType:   "Array",
		ObjectType:  "Object",
		RawType:     "Raw",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Invalid": InvalidType,
		"Null":    NullType,
		"False":   FalseType,
		"True":    TrueType,
		"Number":  NumberType,
		"String":  StringType,
		"Array":   ArrayType,
		"Object":  ObjectType,
		"Raw":     RawType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		InvalidType,
		NullType,
		FalseType,
		TrueType,
		NumberType,
		StringType,
		ArrayType,
		ObjectType,
		RawType,
	}
}

func (t Type) IsBool() bool {
	return t == TrueType || t == FalseType
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
