package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/oficinadigital/workshop_backend/config"
	"github.com/oficinadigital/workshop_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type ServiceDetailRow struct {
	ServiceId    int             `json:"service_id"`
	ServiceDate  time.Time       `json:"service_date"`
	Plate        string          `json:"plate"`
	VehicleMake  string          `json:"vehicle_make"`
	VehicleModel string          `json:"vehicle_model"`
	ClientName   *string         `json:"client_name"`
	ServiceTypes string          `json:"service_types"`
	Status       string          `json:"status"`
	Mechanic     string          `json:"mechanic"`
	LaborHours   decimal.Decimal `json:"labor_hours"`
	Cost         decimal.Decimal `json:"cost"`
}

func getServiceDetailReport(ctx context.Context) ([]*ServiceDetailRow, error) {

	sql := `
SELECT
    services.id AS service_id,
    services.service_date,
    vehicles.plate,
    vehicles.make AS vehicle_make,
    vehicles.model AS vehicle_model,
    clients.name AS client_name,
    services.service_types,
    services.status,
    services.mechanic,
    services.labor_hours,
    services.cost
FROM
    services
    LEFT JOIN vehicles ON vehicles.id = services.vehicle_id
    LEFT JOIN clients ON clients.id = services.client_id
ORDER BY
    services.service_date DESC, services.id DESC;
`

	var records []*ServiceDetailRow
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql).Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// BuildServicesExcel renders the service detail report as a spreadsheet.
func BuildServicesExcel(ctx context.Context) (*excelize.File, error) {

	data, err := getServiceDetailReport(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if _, err := f.NewSheet("Sheet1"); err != nil {
		return nil, err
	}

	// Add headers
	f.SetCellValue("Sheet1", "A1", "ServiceDate")
	f.SetCellValue("Sheet1", "B1", "Plate")
	f.SetCellValue("Sheet1", "C1", "Vehicle")
	f.SetCellValue("Sheet1", "D1", "Client")
	f.SetCellValue("Sheet1", "E1", "ServiceTypes")
	f.SetCellValue("Sheet1", "F1", "Status")
	f.SetCellValue("Sheet1", "G1", "Mechanic")
	f.SetCellValue("Sheet1", "H1", "LaborHours")
	f.SetCellValue("Sheet1", "I1", "Cost")

	// Add data
	for i, d := range data {
		row := fmt.Sprint(i + 2)
		f.SetCellValue("Sheet1", "A"+row, d.ServiceDate.Format("2006-01-02"))
		f.SetCellValue("Sheet1", "B"+row, d.Plate)
		f.SetCellValue("Sheet1", "C"+row, d.VehicleMake+" "+d.VehicleModel)
		f.SetCellValue("Sheet1", "D"+row, utils.DereferencePtr(d.ClientName, ""))
		f.SetCellValue("Sheet1", "E"+row, d.ServiceTypes)
		f.SetCellValue("Sheet1", "F"+row, d.Status)
		f.SetCellValue("Sheet1", "G"+row, d.Mechanic)
		f.SetCellValue("Sheet1", "H"+row, d.LaborHours.InexactFloat64())
		f.SetCellValue("Sheet1", "I"+row, d.Cost.InexactFloat64())
	}

	return f, nil
}
