// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ycinema/pkg/convert"
)

/*
TestInt accepts whole numbers in number or string form.
*/
func TestInt(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int
		ok       bool
	}{
		{"number", float64(2024), 2024, true},
		{"string", " 2024 ", 2024, true},
		{"fraction", 8.5, 0, false},
		{"garbage", "soon", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := convert.Int(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

/*
TestFloat accepts ratings in number or string form.
*/
func TestFloat(t *testing.T) {
	value, ok := convert.Float("8.6")
	assert.True(t, ok)
	assert.InDelta(t, 8.6, value, 1e-9)

	value, ok = convert.Float(float64(7))
	assert.True(t, ok)
	assert.InDelta(t, 7.0, value, 1e-9)

	_, ok = convert.Float("NaN")
	assert.False(t, ok)
}

/*
TestBool accepts flags in bool, number or string form.
*/
func TestBool(t *testing.T) {
	for _, value := range []any{true, "true", "1", float64(1)} {
		b, ok := convert.Bool(value)
		assert.True(t, ok)
		assert.True(t, b)
	}

	_, ok := convert.Bool("yes please")
	assert.False(t, ok)
}

/*
TestString formats scalars.
*/
func TestString(t *testing.T) {
	s, ok := convert.String(float64(2024))
	assert.True(t, ok)
	assert.Equal(t, "2024", s)

	_, ok = convert.String([]any{"a"})
	assert.False(t, ok)

	assert.Equal(t, 12, convert.ToInt(" 12"))
	assert.Equal(t, 0, convert.ToInt("x"))
}
