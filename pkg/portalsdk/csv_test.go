package portalsdk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRecipientsCSV(t *testing.T) {
	t.Run("header skipped and ids assigned", func(t *testing.T) {
		input := "name,phone\nAmy,+911\nRaj,+912\n"
		got := ParseRecipientsCSV(strings.NewReader(input))

		require.Len(t, got, 2)
		require.Equal(t, Recipient{ID: "csv_0", Name: "Amy", Phone: "+911"}, got[0])
		require.Equal(t, Recipient{ID: "csv_1", Name: "Raj", Phone: "+912"}, got[1])
	})

	t.Run("malformed and short rows dropped", func(t *testing.T) {
		input := "name,phone\nAmy,+911\nno-phone-column\nRaj,\n,+913\n"
		got := ParseRecipientsCSV(strings.NewReader(input))

		require.Len(t, got, 2)
		require.Equal(t, "+911", got[0].Phone)
		require.Equal(t, "+913", got[1].Phone)
		require.Equal(t, "csv_1", got[1].ID, "ids follow accepted order, not row order")
	})

	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, ParseRecipientsCSV(strings.NewReader("")))
	})

	t.Run("header only", func(t *testing.T) {
		require.Empty(t, ParseRecipientsCSV(strings.NewReader("name,phone\n")))
	})

	t.Run("values trimmed", func(t *testing.T) {
		got := ParseRecipientsCSV(strings.NewReader("name,phone\n Amy , +911 \n"))
		require.Len(t, got, 1)
		require.Equal(t, "Amy", got[0].Name)
		require.Equal(t, "+911", got[0].Phone)
	})
}

func TestRecipientsFromLeads(t *testing.T) {
	leads := []Lead{
		{ID: "lead_1", Name: "Amy", Phone: "+911", Property: "Sunrise Villa", Budget: "50L"},
		{ID: "lead_2", Name: "Raj"},
		{ID: "lead_3", Name: "Priya", Phone: "  "},
		{ID: "lead_4", Name: "Vik", Phone: "+914"},
	}

	got := RecipientsFromLeads(leads)
	require.Len(t, got, 2, "leads without a phone are dropped")
	require.Equal(t, "lead_1", got[0].ID)
	require.Equal(t, "Sunrise Villa", got[0].Property)
	require.Equal(t, "lead_4", got[1].ID)
}
