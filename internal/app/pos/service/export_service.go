package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"rostipos/internal/app/pos/entity"
	"rostipos/internal/app/pos/repository"
	"rostipos/pkg/metrics"
)

// ErrSinDatos signals that the export filters matched no rows.
var ErrSinDatos = errors.New("no data matches the export filters")

const exportFilename = "reporte_pedidos.csv"

var exportHeader = []string{
	"ID_Pedido",
	"Fecha",
	"Mesa_Asignada",
	"Plato_Producto",
	"Cantidad",
	"Precio_Unitario",
	"Subtotal_Item",
	"Total_Pedido",
	"Estado",
}

// ExportService renders the flattened pedido rows as a CSV document.
type ExportService struct {
	reporteRepo repository.ReporteRepository
}

func NewExportService(reporteRepo repository.ReporteRepository) *ExportService {
	return &ExportService{reporteRepo: reporteRepo}
}

// ExportPedidosCSV returns the CSV bytes and the download filename.
// One row per pedido item; pedido-level fields repeat on every row.
func (s *ExportService) ExportPedidosCSV(ctx context.Context, filtro entity.ExportFilter) ([]byte, string, error) {
	filas, err := s.reporteRepo.FilasExportPedidos(ctx, filtro)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query export rows: %w", err)
	}
	if len(filas) == 0 {
		return nil, "", ErrSinDatos
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, fila := range filas {
		record := []string{
			strconv.FormatUint(uint64(fila.IDPedido), 10),
			fila.Fecha,
			fila.MesaAsignada,
			fila.PlatoProducto,
			strconv.Itoa(fila.Cantidad),
			strconv.FormatFloat(fila.PrecioUnitario, 'f', 2, 64),
			strconv.FormatFloat(fila.SubtotalItem, 'f', 2, 64),
			strconv.FormatFloat(fila.TotalPedido, 'f', 2, 64),
			fila.Estado,
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush csv: %w", err)
	}

	metrics.CsvExportsTotal.Inc()
	return buf.Bytes(), exportFilename, nil
}
