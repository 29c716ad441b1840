// Package export writes registration listings as xlsx workbooks.
package export

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
)

const (
	SheetName   = "Inscricoes"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FileName    = "inscricoes.xlsx"
)

var headers = []interface{}{
	"ID", "Data", "Nome", "CPF", "Telefone", "IAP", "Transporte", "Lote", "Valor",
	"Pagamento", "Parcelas", "Status", "Comprovante", "Revisado em", "Observação",
}

// XLSXExporter renders one header row plus one row per registration.
type XLSXExporter struct{}

var _ interfaces.IRegistrationExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (XLSXExporter) Export(rows []entities.RegistrationExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return nil, errors.Wrap(err, "write header")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "header style")
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return nil, errors.Wrap(err, "apply header style")
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			r.ID, r.CreatedAt, r.FullName, r.CPF, r.Phone, r.IAPLocal, r.Transport, r.LotName,
			r.Value, r.PaymentType, r.Installments, r.Status, r.ProofURL, r.ReviewedAt, r.ReviewNote,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, errors.Wrapf(err, "write row %d", i+2)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 38); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "C", "C", 32); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}
