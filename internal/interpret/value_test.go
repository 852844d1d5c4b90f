package interpret_test

import (
	"math"
	"testing"

	"github.com/ian-shakespeare/liblox/internal/interpret"
	"github.com/stretchr/testify/assert"
)

func TestValueTruthiness(t *testing.T) {
	t.Parallel()

	values := []struct {
		name   string
		value  interpret.Value
		expect bool
	}{
		{"nil", interpret.NilValue(), false},
		{"false", interpret.BooleanValue(false), false},
		{"true", interpret.BooleanValue(true), true},
		{"zero", interpret.NumberValue(0), true},
		{"number", interpret.NumberValue(-3.5), true},
		{"emptyString", interpret.StringValue(""), true},
		{"string", interpret.StringValue("lox"), true},
	}

	for _, input := range values {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, input.expect, input.value.IsTruthy())
		})
	}
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		name   string
		left   interpret.Value
		right  interpret.Value
		expect bool
	}{
		{"nilNil", interpret.NilValue(), interpret.NilValue(), true},
		{"zeroFalse", interpret.NumberValue(0), interpret.BooleanValue(false), false},
		{"nilFalse", interpret.NilValue(), interpret.BooleanValue(false), false},
		{"numberString", interpret.NumberValue(1), interpret.StringValue("1"), false},
		{"sameNumber", interpret.NumberValue(2.5), interpret.NumberValue(2.5), true},
		{"differentNumber", interpret.NumberValue(2.5), interpret.NumberValue(2), false},
		{"sameString", interpret.StringValue("ab"), interpret.StringValue("ab"), true},
		{"differentString", interpret.StringValue("ab"), interpret.StringValue("ba"), false},
		{"sameBoolean", interpret.BooleanValue(true), interpret.BooleanValue(true), true},
		{"nan", interpret.NumberValue(math.NaN()), interpret.NumberValue(math.NaN()), false},
	}

	for _, input := range pairs {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, input.expect, input.left.Equal(input.right))
			assert.Equal(t, input.expect, input.right.Equal(input.left))
		})
	}
}

func TestValueString(t *testing.T) {
	t.Parallel()

	values := []struct {
		value  interpret.Value
		expect string
	}{
		{interpret.NilValue(), "nil"},
		{interpret.BooleanValue(true), "true"},
		{interpret.BooleanValue(false), "false"},
		{interpret.NumberValue(7), "7"},
		{interpret.NumberValue(0.5), "0.5"},
		{interpret.NumberValue(-12.25), "-12.25"},
		{interpret.NumberValue(math.Copysign(0, -1)), "-0"},
		{interpret.NumberValue(1e21), "1000000000000000000000"},
		{interpret.NumberValue(math.Inf(1)), "Infinity"},
		{interpret.NumberValue(math.Inf(-1)), "-Infinity"},
		{interpret.NumberValue(math.NaN()), "NaN"},
		{interpret.StringValue("hello\nworld"), "hello\nworld"},
	}

	for _, input := range values {
		assert.Equal(t, input.expect, input.value.String())
	}
}

func TestValueAccessors(t *testing.T) {
	t.Parallel()

	n, ok := interpret.NumberValue(3).Number()
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)

	_, ok = interpret.StringValue("3").Number()
	assert.False(t, ok)

	s, ok := interpret.StringValue("3").Str()
	assert.True(t, ok)
	assert.Equal(t, "3", s)

	b, ok := interpret.BooleanValue(true).Boolean()
	assert.True(t, ok)
	assert.True(t, b)

	assert.Equal(t, interpret.NIL_VALUE, interpret.Value{}.Type)
}
