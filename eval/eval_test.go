package eval

import (
	"errors"
	"math/big"
	"testing"
)

type values map[string]*big.Int

func (v values) Lookup(name string) (*big.Int, bool) {
	val, ok := v[name]
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(val), true
}

func operand(v int64) Term {
	return Term{Type: Operand, Value: big.NewInt(v)}
}

func variable(name string) Term {
	return Term{Type: Operand, Identifier: name}
}

func operator(op OperatorType) Term {
	return Term{Type: Operator, Operator: op}
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid test number %q", s)
	}
	return v
}

func Test_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		postfix []Term
		values  values
		want    string
		wantErr error
	}{
		{
			name:    "addition",
			postfix: []Term{operand(3), operand(4), operator(Add)},
			want:    "7",
		},
		{
			name:    "left associative subtraction",
			postfix: []Term{operand(8), operand(3), operator(Subtract), operand(2), operator(Subtract)},
			want:    "3",
		},
		{
			name:    "left associative power chain",
			postfix: []Term{operand(2), operand(3), operator(Power), operand(2), operator(Power)},
			want:    "64",
		},
		{
			name:    "truncated division",
			postfix: []Term{operand(7), operand(2), operator(Divide)},
			want:    "3",
		},
		{
			name:    "arbitrary precision result",
			postfix: []Term{operand(10), operand(30), operator(Power), operand(1), operator(Add)},
			want:    "1000000000000000000000000000001",
		},
		{
			name:    "variable lookup",
			postfix: []Term{variable("x"), operand(1), operator(Add)},
			values:  values{"x": big.NewInt(5)},
			want:    "6",
		},
		{
			name:    "unknown variable",
			postfix: []Term{variable("zz"), operand(1), operator(Add)},
			wantErr: ErrUnknownVariable,
		},
		{
			name:    "division by zero",
			postfix: []Term{operand(1), operand(0), operator(Divide)},
			wantErr: ErrDivisionByZero,
		},
		{
			name:    "negative exponent",
			postfix: []Term{operand(2), operand(-1), operator(Power)},
			wantErr: ErrInvalidExponent,
		},
		{
			name:    "missing operand",
			postfix: []Term{operand(1), operator(Add)},
			wantErr: ErrInvalidExpression,
		},
		{
			name:    "leftover operands",
			postfix: []Term{operand(1), operand(2)},
			wantErr: ErrInvalidExpression,
		},
		{
			name:    "empty sequence",
			postfix: nil,
			wantErr: ErrInvalidExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.postfix, tt.values)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Evaluate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Error(err)
				return
			}
			if want := mustBig(t, tt.want); got.Cmp(want) != 0 {
				t.Errorf("Evaluate() = %s, want %s", got, want)
			}
		})
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	vals := values{"x": big.NewInt(5)}
	postfix := []Term{variable("x"), operand(3), operator(Multiply)}

	first, err := Evaluate(postfix, vals)
	if err != nil {
		t.Error(err)
		return
	}

	second, err := Evaluate(postfix, vals)
	if err != nil {
		t.Error(err)
		return
	}

	if first.Cmp(second) != 0 {
		t.Errorf("results differ between runs: %s then %s", first, second)
	}

	if vals["x"].Cmp(big.NewInt(5)) != 0 {
		t.Errorf("evaluation modified the environment value: %s", vals["x"])
	}
}

func Test_Resolve(t *testing.T) {
	vals := values{"x": big.NewInt(5)}

	tests := []struct {
		text    string
		want    string
		wantErr error
	}{
		{text: "42", want: "42"},
		{text: "-5", want: "-5"},
		{text: "+7", want: "7"},
		{text: "x", want: "5"},
		{text: "y", wantErr: ErrUnknownVariable},
		{text: "2x", wantErr: ErrInvalidOperand},
		{text: "a1", wantErr: ErrInvalidOperand},
		{text: "1 + 2", wantErr: ErrInvalidOperand},
		{text: "", wantErr: ErrInvalidOperand},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Resolve(tt.text, vals)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Error(err)
				return
			}
			if want := mustBig(t, tt.want); got.Cmp(want) != 0 {
				t.Errorf("Resolve(%q) = %s, want %s", tt.text, got, want)
			}
		})
	}
}
