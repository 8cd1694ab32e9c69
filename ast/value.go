// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import (
	"fmt"
	"math/big"
)

// ValueKind discriminates the kind a Value holds.
type ValueKind int

const (
	// KindNull is the KDL `#null` keyword value.
	KindNull ValueKind = iota
	// KindBool is a `#true`/`#false` keyword value.
	KindBool
	// KindInteger is a signed 128-bit-range integer literal.
	KindInteger
	// KindFloat is an IEEE-754 double, including the `#nan`/`#inf`/`#-inf`
	// keyword forms.
	KindFloat
	// KindString is a quoted or raw string value.
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// i128Min and i128Max bound the signed 128-bit range a KDL integer literal
// must fit within. IntegerValue rejects values outside this range; the
// parser reports them as an overflow diagnostic alongside the value.
var (
	i128Min = new(big.Int).Lsh(big.NewInt(-1), 127)
	i128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// Value is a KDL leaf value: the discriminant in Kind selects which field
// is meaningful. Integer uses math/big.Int to hold the full signed 128-bit
// range losslessly.
type Value struct {
	Kind   ValueKind
	String string
	Int    *big.Int
	Float  float64
	Bool   bool
}

// Null returns the KDL null value.
func Null() Value {
	return Value{Kind: KindNull}
}

// BoolValue returns a KDL boolean value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// StringValue returns a KDL string value.
func StringValue(s string) Value {
	return Value{Kind: KindString, String: s}
}

// FloatValue returns a KDL float value.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// IntegerValue returns a KDL integer value, or an error if i does not fit
// in the signed 128-bit range KDL integers are defined over.
func IntegerValue(i *big.Int) (Value, error) {
	if i.Cmp(i128Min) < 0 || i.Cmp(i128Max) > 0 {
		return Value{}, fmt.Errorf("integer %s out of signed 128-bit range", i.String())
	}
	return Value{Kind: KindInteger, Int: i}, nil
}

// FitsI128 reports whether i is within the signed 128-bit range.
func FitsI128(i *big.Int) bool {
	return i.Cmp(i128Min) >= 0 && i.Cmp(i128Max) <= 0
}
