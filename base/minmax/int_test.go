// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	r := Int{-324, 308}
	assert.True(t, r.IsValid())
	assert.Equal(t, 633, r.Len())
	assert.Equal(t, 324, r.MaxAbs())
	assert.Equal(t, 0, r.Index(-324))
	assert.Equal(t, 632, r.Index(308))

	assert.True(t, r.InRange(-324))
	assert.True(t, r.InRange(308))
	assert.False(t, r.InRange(309))
	assert.True(t, r.IsLow(-325))
	assert.True(t, r.IsHigh(309))
	assert.False(t, r.IsHigh(0))

	assert.Equal(t, 308, r.Clamp(1000))
	assert.Equal(t, -324, r.Clamp(-1000))
	assert.Equal(t, 7, r.Clamp(7))
}

func TestIntFit(t *testing.T) {
	var r Int
	r.Set(0, 0)
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.FitValInRange(-45))
	assert.True(t, r.FitValInRange(38))
	assert.False(t, r.FitValInRange(10))
	assert.Equal(t, Int{-45, 38}, r)

	r.Set(5, 1)
	assert.False(t, r.IsValid())
	assert.Equal(t, 0, r.Len())
}
