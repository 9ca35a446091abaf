package models

import (
	"context"
	"errors"
	"time"

	"github.com/oficinadigital/workshop_backend/config"
	"github.com/oficinadigital/workshop_backend/utils"
)

type Vehicle struct {
	ID        int           `gorm:"primary_key" json:"id"`
	ClientId  *int          `gorm:"index" json:"client_id"`
	Make      string        `gorm:"size:50;not null" json:"make" binding:"required"`
	Model     string        `gorm:"size:50;not null" json:"model" binding:"required"`
	Year      int           `json:"year"`
	Plate     string        `gorm:"size:20;uniqueIndex;not null" json:"plate" binding:"required"`
	Color     string        `gorm:"size:30" json:"color"`
	FuelType  string        `gorm:"size:20" json:"fuel_type"`
	Odometer  int           `gorm:"default:0" json:"odometer"`
	Status    VehicleStatus `gorm:"type:enum('active','inactive','maintenance');not null;default:'active'" json:"status"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewVehicle struct {
	ClientId *int          `json:"client_id"`
	Make     string        `json:"make" binding:"required"`
	Model    string        `json:"model" binding:"required"`
	Year     int           `json:"year"`
	Plate    string        `json:"plate" binding:"required"`
	Color    string        `json:"color"`
	FuelType string        `json:"fuel_type"`
	Odometer int           `json:"odometer"`
	Status   VehicleStatus `json:"status"`
}

func (input *NewVehicle) validate(ctx context.Context, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Vehicle](ctx, id); err != nil {
			return err
		}
	}
	// validate unique plate
	if err := utils.ValidateUnique[Vehicle](ctx, "plate", input.Plate, id); err != nil {
		return err
	}
	// a vehicle may be unassigned; when assigned, the owner must exist
	if input.ClientId != nil && *input.ClientId > 0 {
		if err := utils.ValidateResourceId[Client](ctx, *input.ClientId); err != nil {
			return errors.New("client not found")
		}
	}
	if input.Odometer < 0 {
		return errors.New("odometer must not be negative")
	}
	if input.Status != "" && !input.Status.IsValid() {
		return errors.New("invalid vehicle status")
	}
	return nil
}

func CreateVehicle(ctx context.Context, input *NewVehicle) (*Vehicle, error) {
	db := config.GetDB()

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = VehicleStatusActive
	}

	vehicle := Vehicle{
		ClientId: input.ClientId,
		Make:     input.Make,
		Model:    input.Model,
		Year:     input.Year,
		Plate:    input.Plate,
		Color:    input.Color,
		FuelType: input.FuelType,
		Odometer: input.Odometer,
		Status:   status,
	}
	if err := db.WithContext(ctx).Create(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func UpdateVehicle(ctx context.Context, id int, input *NewVehicle) (*Vehicle, error) {
	db := config.GetDB()

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	vehicle, err := utils.FetchModel[Vehicle](ctx, id)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = vehicle.Status
	}

	vehicle.ClientId = input.ClientId
	vehicle.Make = input.Make
	vehicle.Model = input.Model
	vehicle.Year = input.Year
	vehicle.Plate = input.Plate
	vehicle.Color = input.Color
	vehicle.FuelType = input.FuelType
	vehicle.Odometer = input.Odometer
	vehicle.Status = status

	if err := db.WithContext(ctx).Save(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func DeleteVehicle(ctx context.Context, id int) (*Vehicle, error) {
	db := config.GetDB()

	vehicle, err := utils.FetchModel[Vehicle](ctx, id)
	if err != nil {
		return nil, err
	}

	serviceCount, err := utils.ResourceCountWhere[Service](ctx, "vehicle_id = ?", id)
	if err != nil {
		return nil, err
	}
	if serviceCount > 0 {
		return nil, utils.ErrorRecordInUse
	}

	if err := db.WithContext(ctx).Delete(&Vehicle{}, id).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func GetVehicle(ctx context.Context, id int) (*Vehicle, error) {
	return utils.FetchModel[Vehicle](ctx, id)
}

func ListVehicles(ctx context.Context, clientId int, status VehicleStatus) ([]*Vehicle, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&Vehicle{})
	if clientId > 0 {
		dbCtx = dbCtx.Where("client_id = ?", clientId)
	}
	if status != "" {
		dbCtx = dbCtx.Where("status = ?", status)
	}
	var vehicles []*Vehicle
	if err := dbCtx.Order("id ASC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// SyncVehicleStatus recomputes a vehicle's derived status from the full,
// current set of its services' raw status strings and persists the result.
// Must be called AFTER the triggering service write has committed, so the
// read includes the row just written. A vehicle with zero services is left
// untouched. The read and the write are intentionally not wrapped in one
// transaction: two concurrent service writes on the same vehicle can both
// read a stale set and the last write wins. The service write paths hold an
// optional advisory lock around the whole sequence when
// VEHICLE_STATUS_LOCK_ENABLED is set.
func SyncVehicleStatus(ctx context.Context, vehicleId int) error {
	db := config.GetDB()

	var statuses []string
	if err := db.WithContext(ctx).Model(&Service{}).
		Where("vehicle_id = ?", vehicleId).
		Pluck("status", &statuses).Error; err != nil {
		return err
	}

	newStatus, ok := vehicleStatusAfterServiceWrite(statuses)
	if !ok {
		return nil
	}

	return db.WithContext(ctx).Model(&Vehicle{}).
		Where("id = ?", vehicleId).
		Update("status", newStatus).Error
}
