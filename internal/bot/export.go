package bot

import (
	"bytes"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"
)

// sendPriceList выгружает каталог в .xlsx и отправляет документом.
func (b *Bot) sendPriceList(chatID int64) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	headers := []string{"id", "Название", "Цена, сум", "Описание"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, p := range b.catalog.List() {
		values := []any{p.ID, p.Name, p.Price, p.Description}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return err
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  "price_list.xlsx",
		Bytes: buf.Bytes(),
	})
	doc.Caption = fmt.Sprintf("Прайс-лист: %d позиций", b.catalog.Len())
	b.send(doc)
	return nil
}
