package questionbank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickreview/backend/internal/domain/questionbank"
)

func TestNewBank(t *testing.T) {
	bank, err := questionbank.New("  Architecture ", "patterns")
	require.NoError(t, err)

	assert.Equal(t, "Architecture", bank.Name)
	assert.Equal(t, "patterns", bank.Description)
	assert.NotEmpty(t, bank.ID)
	assert.False(t, bank.CreatedAt.IsZero())
	assert.Empty(t, bank.Questions)
}

func TestNewBank_EmptyName(t *testing.T) {
	_, err := questionbank.New("   ", "")
	assert.ErrorIs(t, err, questionbank.ErrEmptyName)
}

func TestAddQuestion(t *testing.T) {
	bank, err := questionbank.New("Architecture", "")
	require.NoError(t, err)

	q, err := bank.AddQuestion("What is DDD?", "Domain-Driven Design")
	require.NoError(t, err)

	require.Len(t, bank.Questions, 1)
	assert.Equal(t, q, bank.Questions[0])
	assert.Equal(t, bank.ID, q.BankID)
	assert.Equal(t, "What is DDD?", q.Prompt)
	assert.Equal(t, "Domain-Driven Design", q.Answer)
}

func TestAddQuestion_Invalid(t *testing.T) {
	bank, err := questionbank.New("Architecture", "")
	require.NoError(t, err)

	tests := []struct {
		name    string
		prompt  string
		answer  string
		wantErr error
	}{
		{"empty prompt", "", "answer", questionbank.ErrEmptyPrompt},
		{"blank prompt", "  ", "answer", questionbank.ErrEmptyPrompt},
		{"empty answer", "prompt", "", questionbank.ErrEmptyAnswer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bank.AddQuestion(tt.prompt, tt.answer)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, bank.Questions, "failed adds must not modify the bank")
}

func TestNewRecord(t *testing.T) {
	r := questionbank.NewRecord("q1", true)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "q1", r.QuestionID)
	assert.True(t, r.Correct)
	assert.False(t, r.CreatedAt.IsZero())
}
