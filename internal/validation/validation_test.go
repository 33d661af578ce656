package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type upload struct {
	BankName  string `json:"bank_name" validate:"required,max=10"`
	Mode      string `json:"mode,omitempty" validate:"omitempty,oneof=weighted uniform"`
	Questions []item `json:"questions" validate:"required,min=1,dive"`
}

func TestDescribe(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		in   upload
		want string
	}{
		{
			name: "missing bank name",
			in:   upload{Questions: []item{{"q", "a"}}},
			want: "bank_name is required",
		},
		{
			name: "nested field",
			in:   upload{BankName: "b", Questions: []item{{"q", "a"}, {"q", ""}}},
			want: "questions[1].answer is required",
		},
		{
			name: "empty slice",
			in:   upload{BankName: "b", Questions: []item{}},
			want: "questions must contain at least 1 item(s)",
		},
		{
			name: "oneof",
			in:   upload{BankName: "b", Mode: "random", Questions: []item{{"q", "a"}}},
			want: "mode must be one of [weighted uniform]",
		},
		{
			name: "max",
			in:   upload{BankName: "a very long bank name", Questions: []item{{"q", "a"}}},
			want: "bank_name must be at most 10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.want, Describe(err))
		})
	}
}

func TestDescribe_PlainError(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
