package projection

import (
	"io"
	"quickchat/domain"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders messages as an aligned borderless table.
func WriteTable(w io.Writer, messages []*domain.Message) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Message ID", "Hash", "Recipient", "Status", "Message"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, msg := range messages {
		table.Append([]string{
			strconv.Itoa(msg.Sequence()),
			msg.ID(),
			msg.Hash(),
			msg.Recipient(),
			string(msg.Status()),
			msg.Content(),
		})
	}
	table.Render()
}
