package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortField(t *testing.T) {
	tests := []struct {
		in   string
		want SortField
	}{
		{"term", SortByTerm},
		{"TERM", SortByTerm},
		{"minamount", SortByMinAmount},
		{"MinAmount", SortByMinAmount},
		{"bank", SortByBank},
		{"", SortByInterestRate},
		{"rate", SortByInterestRate},
		{"unknown", SortByInterestRate},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortField(tt.in))
		})
	}
}

func TestSortFieldStringParsesBack(t *testing.T) {
	for _, f := range []SortField{SortByInterestRate, SortByTerm, SortByMinAmount, SortByBank} {
		assert.Equal(t, f, ParseSortField(f.String()), f.String())
	}
	assert.Equal(t, "interestrate", SortByInterestRate.String())
}

func TestDepositFilterOrdering(t *testing.T) {
	tests := []struct {
		name     string
		filter   DepositFilter
		wantBy   SortField
		wantDesc bool
	}{
		{"default is rate descending", DepositFilter{}, SortByInterestRate, true},
		{"default with descending flag is ascending", DepositFilter{SortDescending: true}, SortByInterestRate, false},
		{"term ascending", DepositFilter{SortBy: SortByTerm}, SortByTerm, false},
		{"term descending", DepositFilter{SortBy: SortByTerm, SortDescending: true}, SortByTerm, true},
		{"min amount descending", DepositFilter{SortBy: SortByMinAmount, SortDescending: true}, SortByMinAmount, true},
		{"bank ascending", DepositFilter{SortBy: SortByBank}, SortByBank, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			by, desc := tt.filter.Ordering()
			assert.Equal(t, tt.wantBy, by)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

func TestParseCurrency(t *testing.T) {
	for _, in := range []string{"BGN", "eur", " Usd "} {
		c, err := ParseCurrency(in)
		require.NoError(t, err, in)
		assert.Contains(t, Currencies, c)
	}

	_, err := ParseCurrency("GBP")
	assert.ErrorIs(t, err, ErrInvalidCurrency)

	_, err = ParseCurrency("")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}
