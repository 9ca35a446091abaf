package models

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bsm/redislock"
	"github.com/oficinadigital/workshop_backend/config"
	"github.com/oficinadigital/workshop_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Service struct {
	ID           int             `gorm:"primary_key" json:"id"`
	VehicleId    int             `gorm:"index;not null" json:"vehicle_id" binding:"required"`
	ClientId     *int            `gorm:"index" json:"client_id"`
	ServiceTypes ServiceTypeList `gorm:"type:varchar(500)" json:"service_types"`
	Description  string          `gorm:"type:text" json:"description"`
	Cost         decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"cost"`
	ServiceDate  time.Time       `gorm:"type:date;not null" json:"service_date"`
	ExitDate     *time.Time      `gorm:"type:date" json:"exit_date"`
	Odometer     *int            `json:"odometer"`
	Status       string          `gorm:"size:50;not null;default:'Pendente'" json:"status"`
	Mechanic     string          `gorm:"size:100" json:"mechanic"`
	PartsUsed    string          `gorm:"type:text" json:"parts_used"`
	LaborHours   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"labor_hours"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// canonical view of Status, filled on the way out
	PaymentStatus CanonicalStatus `gorm:"-" json:"paymentStatus"`
}

type NewService struct {
	VehicleId     int             `json:"vehicle_id" binding:"required"`
	ClientId      *int            `json:"client_id"`
	ServiceTypes  []string        `json:"service_types" binding:"required,min=1"`
	Description   string          `json:"description"`
	Cost          decimal.Decimal `json:"cost"`
	ServiceDate   string          `json:"service_date" binding:"required"`
	ExitDate      string          `json:"exit_date"`
	Odometer      *int            `json:"odometer"`
	PaymentStatus string          `json:"paymentStatus"`
	Mechanic      string          `json:"mechanic"`
	PartsUsed     string          `json:"parts_used"`
	LaborHours    decimal.Decimal `json:"labor_hours"`
}

const serviceDateLayout = "2006-01-02"

func (s *Service) fillPaymentStatus() *Service {
	s.PaymentStatus = NormalizeServiceStatus(s.Status)
	return s
}

func (input *NewService) validate(ctx context.Context, id int) (serviceDate time.Time, exitDate *time.Time, err error) {
	if id > 0 {
		if err = utils.ValidateResourceId[Service](ctx, id); err != nil {
			return
		}
	}
	if err = utils.ValidateResourceId[Vehicle](ctx, input.VehicleId); err != nil {
		err = errors.New("vehicle not found")
		return
	}
	if input.ClientId != nil && *input.ClientId > 0 {
		if err = utils.ValidateResourceId[Client](ctx, *input.ClientId); err != nil {
			err = errors.New("client not found")
			return
		}
	}
	if err = ServiceTypeList(input.ServiceTypes).Validate(); err != nil {
		return
	}
	if input.Cost.IsNegative() {
		err = errors.New("cost must not be negative")
		return
	}
	if input.LaborHours.IsNegative() {
		err = errors.New("labor hours must not be negative")
		return
	}
	if input.Odometer != nil && *input.Odometer < 0 {
		err = errors.New("odometer must not be negative")
		return
	}

	serviceDate, err = time.Parse(serviceDateLayout, input.ServiceDate)
	if err != nil {
		err = errors.New("service_date must be formatted as " + serviceDateLayout)
		return
	}
	if strings.TrimSpace(input.ExitDate) != "" {
		var exit time.Time
		exit, err = time.Parse(serviceDateLayout, input.ExitDate)
		if err != nil {
			err = errors.New("exit_date must be formatted as " + serviceDateLayout)
			return
		}
		if exit.Before(serviceDate) {
			err = errors.New("exit_date must not precede service_date")
			return
		}
		exitDate = &exit
	}
	return
}

// CreateService persists the service, logs the activity entry, and then
// re-derives the owning vehicle's status from a fresh read.
func CreateService(ctx context.Context, input *NewService) (*Service, error) {
	db := config.GetDB()

	serviceDate, exitDate, err := input.validate(ctx, 0)
	if err != nil {
		return nil, err
	}

	service := Service{
		VehicleId:    input.VehicleId,
		ClientId:     input.ClientId,
		ServiceTypes: ServiceTypeList(input.ServiceTypes),
		Description:  input.Description,
		Cost:         input.Cost,
		ServiceDate:  serviceDate,
		ExitDate:     exitDate,
		Odometer:     input.Odometer,
		Status:       string(CanonicalStatusOf("", input.PaymentStatus).Persisted()),
		Mechanic:     input.Mechanic,
		PartsUsed:    input.PartsUsed,
		LaborHours:   input.LaborHours,
	}

	lock := acquireVehicleStatusLock(ctx, input.VehicleId)
	defer releaseVehicleStatusLock(ctx, lock)

	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&service).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := createActivity(tx.WithContext(ctx), ActivityLog{
		EntityType:  ActivityEntityService,
		Action:      ActivityActionCreate,
		EntityId:    service.ID,
		Title:       service.ServiceTypes.Format(),
		Description: service.Description,
		Amount:      service.Cost,
		Status:      service.Status,
	}); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	// service write is committed; reconcile from a fresh read
	if err := SyncVehicleStatus(ctx, service.VehicleId); err != nil {
		return nil, err
	}

	return service.fillPaymentStatus(), nil
}

func UpdateService(ctx context.Context, id int, input *NewService) (*Service, error) {
	db := config.GetDB()

	serviceDate, exitDate, err := input.validate(ctx, id)
	if err != nil {
		return nil, err
	}

	service, err := utils.FetchModel[Service](ctx, id)
	if err != nil {
		return nil, err
	}

	// override wins; otherwise the previous persisted status (legacy synonyms
	// included) funnels through the canonical labels
	service.Status = string(CanonicalStatusOf(service.Status, input.PaymentStatus).Persisted())

	service.VehicleId = input.VehicleId
	service.ClientId = input.ClientId
	service.ServiceTypes = ServiceTypeList(input.ServiceTypes)
	service.Description = input.Description
	service.Cost = input.Cost
	service.ServiceDate = serviceDate
	service.ExitDate = exitDate
	service.Odometer = input.Odometer
	service.Mechanic = input.Mechanic
	service.PartsUsed = input.PartsUsed
	service.LaborHours = input.LaborHours

	lock := acquireVehicleStatusLock(ctx, service.VehicleId)
	defer releaseVehicleStatusLock(ctx, lock)

	tx := db.Begin()
	if err := tx.WithContext(ctx).Save(service).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := createActivity(tx.WithContext(ctx), ActivityLog{
		EntityType:  ActivityEntityService,
		Action:      ActivityActionUpdate,
		EntityId:    service.ID,
		Title:       service.ServiceTypes.Format(),
		Description: service.Description,
		Amount:      service.Cost,
		Status:      service.Status,
	}); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if err := SyncVehicleStatus(ctx, service.VehicleId); err != nil {
		return nil, err
	}

	return service.fillPaymentStatus(), nil
}

// UpdateServiceStatus patches the status alone. paymentStatus carries a
// canonical value from the API; anything else still normalizes (pending).
func UpdateServiceStatus(ctx context.Context, id int, paymentStatus string) (*Service, error) {
	db := config.GetDB()

	service, err := utils.FetchModel[Service](ctx, id)
	if err != nil {
		return nil, err
	}

	service.Status = string(NormalizeServiceStatus(paymentStatus).Persisted())

	lock := acquireVehicleStatusLock(ctx, service.VehicleId)
	defer releaseVehicleStatusLock(ctx, lock)

	tx := db.Begin()
	if err := tx.WithContext(ctx).Model(&Service{}).
		Where("id = ?", id).
		Update("status", service.Status).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := createActivity(tx.WithContext(ctx), ActivityLog{
		EntityType:  ActivityEntityService,
		Action:      ActivityActionUpdate,
		EntityId:    service.ID,
		Title:       service.ServiceTypes.Format(),
		Description: fmt.Sprintf("Status changed to %s", service.Status),
		Amount:      service.Cost,
		Status:      service.Status,
	}); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if err := SyncVehicleStatus(ctx, service.VehicleId); err != nil {
		return nil, err
	}

	return service.fillPaymentStatus(), nil
}

func DeleteService(ctx context.Context, id int) (*Service, error) {
	db := config.GetDB()

	service, err := utils.FetchModel[Service](ctx, id)
	if err != nil {
		return nil, err
	}

	tx := db.Begin()
	if err := tx.WithContext(ctx).Delete(&Service{}, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := createActivity(tx.WithContext(ctx), ActivityLog{
		EntityType:  ActivityEntityService,
		Action:      ActivityActionDelete,
		EntityId:    service.ID,
		Title:       service.ServiceTypes.Format(),
		Description: service.Description,
		Amount:      service.Cost,
		Status:      service.Status,
	}); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return service.fillPaymentStatus(), nil
}

func GetService(ctx context.Context, id int) (*Service, error) {
	service, err := utils.FetchModel[Service](ctx, id)
	if err != nil {
		return nil, err
	}
	return service.fillPaymentStatus(), nil
}

func ListServices(ctx context.Context, vehicleId int, clientId int) ([]*Service, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&Service{})
	if vehicleId > 0 {
		dbCtx = dbCtx.Where("vehicle_id = ?", vehicleId)
	}
	if clientId > 0 {
		dbCtx = dbCtx.Where("client_id = ?", clientId)
	}
	var services []*Service
	if err := dbCtx.Order("service_date DESC, id DESC").Find(&services).Error; err != nil {
		return nil, err
	}
	for _, s := range services {
		s.fillPaymentStatus()
	}
	return services, nil
}

// acquireVehicleStatusLock is the opt-in serialization point around the
// write-then-reconcile sequence (VEHICLE_STATUS_LOCK_ENABLED=true). Default
// behavior runs without it and accepts the stale-read race. Best-effort in
// either case: when redis is down or the lock cannot be obtained we proceed
// unlocked rather than failing the request.
func acquireVehicleStatusLock(ctx context.Context, vehicleId int) *redislock.Lock {
	if !strings.EqualFold(strings.TrimSpace(os.Getenv("VEHICLE_STATUS_LOCK_ENABLED")), "true") {
		return nil
	}
	locker := config.GetRedisLock()
	if locker == nil {
		return nil
	}
	lock, err := locker.Obtain(ctx, fmt.Sprintf("lock:vehicle:%d", vehicleId), 10*time.Second, nil)
	if err != nil {
		config.GetLogger().WithFields(logrus.Fields{
			"field":      "acquireVehicleStatusLock",
			"vehicle_id": vehicleId,
		}).Warn("could not obtain vehicle status lock; proceeding without it: " + err.Error())
		return nil
	}
	return lock
}

func releaseVehicleStatusLock(ctx context.Context, lock *redislock.Lock) {
	if lock == nil {
		return
	}
	if err := lock.Release(ctx); err != nil {
		config.GetLogger().WithFields(logrus.Fields{
			"field": "releaseVehicleStatusLock",
		}).Warn("failed to release vehicle status lock: " + err.Error())
	}
}
