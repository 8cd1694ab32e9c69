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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitsI128(t *testing.T) {
	require.True(t, FitsI128(big.NewInt(0)))
	require.True(t, FitsI128(i128Min))
	require.True(t, FitsI128(i128Max))

	tooSmall := new(big.Int).Sub(i128Min, big.NewInt(1))
	require.False(t, FitsI128(tooSmall))

	tooBig := new(big.Int).Add(i128Max, big.NewInt(1))
	require.False(t, FitsI128(tooBig))
}

func TestIntegerValue(t *testing.T) {
	v, err := IntegerValue(big.NewInt(42))
	require.NoError(t, err)
	require.Equal(t, KindInteger, v.Kind)
	require.Equal(t, int64(42), v.Int.Int64())

	_, err = IntegerValue(new(big.Int).Add(i128Max, big.NewInt(1)))
	require.Error(t, err)
}

func TestIdentifierEqualityIgnoresRepr(t *testing.T) {
	a := Identifier{Value: "foo", Repr: "foo"}
	b := Identifier{Value: "foo", Repr: `"foo"`}
	require.True(t, a.Equal(b))

	c := Identifier{Value: "bar"}
	require.False(t, a.Equal(c))
}

func TestIdentifierStringPrefersRepr(t *testing.T) {
	id := Identifier{Value: "foo", Repr: `"foo"`}
	require.Equal(t, `"foo"`, id.String())

	synthesized := Identifier{Value: "bar"}
	require.Equal(t, "bar", synthesized.String())
}
