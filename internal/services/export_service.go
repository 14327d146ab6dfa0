package services

import (
	"fmt"
	"strings"

	"github.com/tealeg/xlsx"

	"github.com/XenomaCode/milla13-api/internal/repositories"
)

const timeLayout = "2006-01-02 15:04:05"

// ExportService builds spreadsheet downloads for the admin panel.
type ExportService struct {
	products repositories.ProductRepository
	orders   repositories.OrderRepository
}

// NewExportService creates a new ExportService.
func NewExportService(products repositories.ProductRepository, orders repositories.OrderRepository) *ExportService {
	return &ExportService{
		products: products,
		orders:   orders,
	}
}

// ProductsWorkbook exports the full catalog, retired products included.
func (s *ExportService) ProductsWorkbook() (*xlsx.File, error) {
	products, err := s.products.ListAdmin()
	if err != nil {
		return nil, err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, fmt.Errorf("failed to create products sheet: %w", err)
	}

	headers := []string{"ID", "Name", "Description", "Price", "Stock", "Category", "Status", "ImageURL", "CreatedAt", "UpdatedAt"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.Price.StringFixed(2))
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(string(p.Category))
		row.AddCell().SetValue(string(p.Status))
		row.AddCell().SetValue(p.ImageURL)
		row.AddCell().SetValue(p.CreatedAt.Format(timeLayout))
		row.AddCell().SetValue(p.UpdatedAt.Format(timeLayout))
	}

	return file, nil
}

// OrdersWorkbook exports all orders with flattened line summaries.
func (s *ExportService) OrdersWorkbook() (*xlsx.File, error) {
	orders, err := s.orders.GetAll("")
	if err != nil {
		return nil, err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, fmt.Errorf("failed to create orders sheet: %w", err)
	}

	headers := []string{"ID", "Customer", "Phone", "Email", "PickupTime", "Items", "Total", "Status", "CreatedAt"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		items := make([]string, 0, len(o.Lines))
		for _, line := range o.Lines {
			items = append(items, fmt.Sprintf("%dx %s", line.Quantity, line.Name))
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.Customer.Name)
		row.AddCell().SetValue(o.Customer.Phone)
		row.AddCell().SetValue(o.Customer.Email)
		row.AddCell().SetValue(o.Customer.PickupTime)
		row.AddCell().SetValue(strings.Join(items, ", "))
		row.AddCell().SetValue(o.Total.StringFixed(2))
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(o.CreatedAt.Format(timeLayout))
	}

	return file, nil
}
