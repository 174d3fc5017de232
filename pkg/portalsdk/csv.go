package portalsdk

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Recipient is one target of a bulk dispatch run.
type Recipient struct {
	ID       string
	Name     string
	Phone    string
	Property string
	Budget   string
}

// RecipientsFromLeads converts leads into dispatch recipients, dropping any
// lead without a phone number.
func RecipientsFromLeads(leads []Lead) []Recipient {
	recipients := make([]Recipient, 0, len(leads))
	for _, lead := range leads {
		if strings.TrimSpace(lead.Phone) == "" {
			continue
		}
		recipients = append(recipients, Recipient{
			ID:       lead.ID,
			Name:     lead.Name,
			Phone:    lead.Phone,
			Property: lead.Property,
			Budget:   lead.Budget,
		})
	}
	return recipients
}

// ParseRecipientsCSV reads a two-column name,phone CSV. The first row is
// assumed to be a header and skipped. Rows that are malformed, short or
// missing a phone number are dropped rather than failing the whole file.
// Recipients get synthetic ids csv_0, csv_1, ... in accepted order.
func ParseRecipientsCSV(r io.Reader) []Recipient {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var recipients []Recipient
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Quoting errors and the like drop the row, not the file.
			continue
		}

		row++
		if row == 1 {
			continue
		}
		if len(record) < 2 {
			continue
		}

		name := strings.TrimSpace(record[0])
		phone := strings.TrimSpace(record[1])
		if phone == "" {
			continue
		}

		recipients = append(recipients, Recipient{
			ID:    fmt.Sprintf("csv_%d", len(recipients)),
			Name:  name,
			Phone: phone,
		})
	}
	return recipients
}
