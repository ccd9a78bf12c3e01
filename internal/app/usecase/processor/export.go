package processor

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/avGenie/go-order-processing/internal/app/entity"
)

const (
	exportHeader   = "ID,Type,Amount,Flag,Status,Priority\n"
	exportNoteLine = ",,,,Note,High value order\n"

	exportNoteAmount = 150
)

func exportName(userID entity.UserID, now time.Time) string {
	return fmt.Sprintf("orders_type_A_%s_%d.csv", userID, now.UnixMilli())
}

// writeExportRecord writes the order as it is at call time, so status and
// priority are blank for a fresh order.
func writeExportRecord(w io.Writer, order *entity.Order) error {
	_, err := io.WriteString(w, exportHeader)
	if err != nil {
		return fmt.Errorf("error while writing export header: %w", err)
	}

	_, err = io.WriteString(w, exportLine(order))
	if err != nil {
		return fmt.Errorf("error while writing export line: %w", err)
	}

	if order.Amount > exportNoteAmount {
		_, err = io.WriteString(w, exportNoteLine)
		if err != nil {
			return fmt.Errorf("error while writing export note: %w", err)
		}
	}

	return nil
}

func exportLine(order *entity.Order) string {
	return fmt.Sprintf("%d,%s,%s,%s,%s,%s\n",
		order.ID,
		order.Type,
		strconv.FormatFloat(order.Amount, 'f', -1, 64),
		strconv.FormatBool(order.Flag),
		order.Status,
		order.Priority,
	)
}
