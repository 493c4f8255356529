package documents

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/kokito32rios/horas-cole/app/models"
)

const plannerSheet = "Planeador"

// PlannerFileName builds the attachment name for a planner export.
func PlannerFileName(instructorDocument string) string {
	return fmt.Sprintf("Planeador_%s.xlsx", instructorDocument)
}

// RenderPlannerXLSX writes an instructor's sessions for a period into a
// spreadsheet: one row per hour record plus a totals row.
func RenderPlannerXLSX(instructorName string, records []*models.HourRecordDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(plannerSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	f.SetCellValue(plannerSheet, "A1", "Planeador de clases")
	f.SetCellValue(plannerSheet, "A2", "Docente: "+instructorName)
	f.SetCellStyle(plannerSheet, "A1", "A2", headerStyle)

	headers := []string{
		"Fecha", "Grupo", "Nombre del grupo", "Programa", "Módulo",
		"Hora ingreso", "Hora salida", "Horas", "Tema desarrollado", "Observaciones", "Valor",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(plannerSheet, cell, h)
		f.SetCellStyle(plannerSheet, cell, cell, headerStyle)
	}

	totalHours := decimal.Zero
	totalValue := decimal.Zero
	row := 5
	for _, record := range records {
		values := []interface{}{
			record.Date.Format("2006-01-02"),
			record.GroupCode,
			record.GroupName,
			record.Program,
			record.Module,
			record.ClockIn,
			record.ClockOut,
			record.Hours.InexactFloat64(),
			record.Topic,
			record.Notes,
			record.Value.InexactFloat64(),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(plannerSheet, cell, v)
		}
		totalHours = totalHours.Add(record.Hours)
		totalValue = totalValue.Add(record.Value)
		row++
	}

	totalLabelCell, _ := excelize.CoordinatesToCellName(7, row)
	totalHoursCell, _ := excelize.CoordinatesToCellName(8, row)
	totalValueCell, _ := excelize.CoordinatesToCellName(11, row)
	f.SetCellValue(plannerSheet, totalLabelCell, "Total")
	f.SetCellValue(plannerSheet, totalHoursCell, totalHours.InexactFloat64())
	f.SetCellValue(plannerSheet, totalValueCell, totalValue.InexactFloat64())
	f.SetCellStyle(plannerSheet, totalLabelCell, totalValueCell, headerStyle)

	f.SetColWidth(plannerSheet, "A", "A", 12)
	f.SetColWidth(plannerSheet, "C", "C", 28)
	f.SetColWidth(plannerSheet, "I", "J", 36)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
