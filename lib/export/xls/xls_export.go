package xlsexport

import (
	"bytes"
	"strings"

	kanbanapimodels "freelance-tracker-backend/models/api/kanban"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportBoard(board kanbanapimodels.Board) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var boardHeaders = []string{"Stage", "Role", "Client", "Daily rate", "Work mode", "Tech stack", "Step status", "Date", "Validated", "Failed"}

// ExportBoard writes one row per card, columns in stage-sequence order so
// the sheet reads like the board left to right.
func (i impl) ExportBoard(board kanbanapimodels.Board) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, boardHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	row, err = writeBoardData(f, sheet, board, row)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx data")
	}
	f.SetSheetName(sheet, "Pipeline")
	return f.WriteToBuffer()
}

func writeBoardData(f *excelize.File, sheet string, board kanbanapimodels.Board, row int) (int, error) {
	total := 0
	for _, stage := range board.StageOrder {
		total += len(board.Columns[stage])
	}
	if total == 0 {
		return row, nil
	}
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(boardHeaders), total+1); err != nil {
		return row, err
	}
	for _, stage := range board.StageOrder {
		for _, card := range board.Columns[stage] {
			row++
			col := 1
			if err := writeColumn(f, sheet, col, row, stage); err != nil {
				return row, err
			}

			col++
			if err := writeColumn(f, sheet, col, row, card.Role); err != nil {
				return row, err
			}

			col++
			if err := writeColumn(f, sheet, col, row, card.ClientName); err != nil {
				return row, err
			}

			col++
			if err := writeColumn(f, sheet, col, row, card.DailyRate); err != nil {
				return row, err
			}

			col++
			if err := writeColumn(f, sheet, col, row, string(card.WorkMode)); err != nil {
				return row, err
			}

			col++
			if err := writeColumn(f, sheet, col, row, strings.Join(card.TechStack, ", ")); err != nil {
				return row, err
			}

			col++
			if err := writeColumn(f, sheet, col, row, string(card.StepStatus)); err != nil {
				return row, err
			}

			col++
			if card.StepDate != nil {
				if err := writeColumn(f, sheet, col, row, card.StepDate.Format("02.01.2006 15:04")); err != nil {
					return row, err
				}
			}

			col++
			if err := writeColumn(f, sheet, col, row, card.StepsValidated); err != nil {
				return row, err
			}

			col++
			if err := writeColumn(f, sheet, col, row, card.StepsFailed); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
