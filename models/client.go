package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oficinadigital/workshop_backend/config"
	"github.com/oficinadigital/workshop_backend/utils"
)

type Client struct {
	ID        int          `gorm:"primary_key" json:"id"`
	Name      string       `gorm:"size:100;not null" json:"name" binding:"required"`
	Email     string       `gorm:"size:100" json:"email"`
	Phone     string       `gorm:"size:20" json:"phone"`
	Mobile    string       `gorm:"size:20" json:"mobile"`
	Street    string       `gorm:"size:255" json:"street"`
	City      string       `gorm:"size:100" json:"city"`
	State     string       `gorm:"size:50" json:"state"`
	ZipCode   string       `gorm:"size:20" json:"zip_code"`
	Status    ClientStatus `gorm:"type:enum('active','inactive');not null;default:'active'" json:"status"`
	Notes     string       `gorm:"type:text" json:"notes"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewClient struct {
	Name    string       `json:"name" binding:"required"`
	Email   string       `json:"email"`
	Phone   string       `json:"phone"`
	Mobile  string       `json:"mobile"`
	Street  string       `json:"street"`
	City    string       `json:"city"`
	State   string       `json:"state"`
	ZipCode string       `json:"zip_code"`
	Status  ClientStatus `json:"status"`
	Notes   string       `json:"notes"`
}

// CreateClient(newClient) (Client,error)
// UpdateClient(id, newClient) (Client,error)
// DeleteClient(id) (Client,error)       <blocked while vehicles reference it>
// GetClient(id) (Client,error)
// ListClients(name, status) ([]Client,error)

func (input *NewClient) validate(ctx context.Context, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Client](ctx, id); err != nil {
			return err
		}
	}
	// validate unique name
	if err := utils.ValidateUnique[Client](ctx, "name", input.Name, id); err != nil {
		return err
	}
	// validate email
	if input.Email != "" {
		if !utils.IsValidEmail(input.Email) {
			return errors.New("invalid email")
		}
		if err := utils.ValidateUnique[Client](ctx, "email", input.Email, id); err != nil {
			return err
		}
	}
	// validate phone
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return errors.New("invalid phone number")
		}
	}
	if input.Mobile != "" {
		if err := utils.ValidatePhoneNumber(input.Mobile, utils.CountryCode); err != nil {
			return errors.New("invalid mobile number")
		}
	}
	if input.Status != "" && !input.Status.IsValid() {
		return errors.New("invalid client status")
	}
	return nil
}

func CreateClient(ctx context.Context, input *NewClient) (*Client, error) {
	db := config.GetDB()

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = ClientStatusActive
	}

	client := Client{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Mobile:  input.Mobile,
		Street:  input.Street,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
		Status:  status,
		Notes:   input.Notes,
	}

	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&client).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := createActivity(tx.WithContext(ctx), ActivityLog{
		EntityType:  ActivityEntityClient,
		Action:      ActivityActionCreate,
		EntityId:    client.ID,
		Title:       client.Name,
		Description: fmt.Sprintf("Client %s registered", client.Name),
		Status:      string(client.Status),
	}); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func UpdateClient(ctx context.Context, id int, input *NewClient) (*Client, error) {
	db := config.GetDB()

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	client, err := utils.FetchModel[Client](ctx, id)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = client.Status
	}

	client.Name = input.Name
	client.Email = input.Email
	client.Phone = input.Phone
	client.Mobile = input.Mobile
	client.Street = input.Street
	client.City = input.City
	client.State = input.State
	client.ZipCode = input.ZipCode
	client.Status = status
	client.Notes = input.Notes

	tx := db.Begin()
	if err := tx.WithContext(ctx).Save(client).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := createActivity(tx.WithContext(ctx), ActivityLog{
		EntityType:  ActivityEntityClient,
		Action:      ActivityActionUpdate,
		EntityId:    client.ID,
		Title:       client.Name,
		Description: fmt.Sprintf("Client %s updated", client.Name),
		Status:      string(client.Status),
	}); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return client, nil
}

func DeleteClient(ctx context.Context, id int) (*Client, error) {
	db := config.GetDB()

	client, err := utils.FetchModel[Client](ctx, id)
	if err != nil {
		return nil, err
	}

	// a client that still owns vehicles cannot be removed
	vehicleCount, err := utils.ResourceCountWhere[Vehicle](ctx, "client_id = ?", id)
	if err != nil {
		return nil, err
	}
	if vehicleCount > 0 {
		return nil, utils.ErrorRecordInUse
	}

	tx := db.Begin()
	if err := tx.WithContext(ctx).Delete(&Client{}, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := createActivity(tx.WithContext(ctx), ActivityLog{
		EntityType:  ActivityEntityClient,
		Action:      ActivityActionDelete,
		EntityId:    client.ID,
		Title:       client.Name,
		Description: fmt.Sprintf("Client %s removed", client.Name),
		Status:      string(client.Status),
	}); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return client, nil
}

func GetClient(ctx context.Context, id int) (*Client, error) {
	return utils.FetchModel[Client](ctx, id)
}

func ListClients(ctx context.Context, name string, status ClientStatus) ([]*Client, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&Client{})
	if name != "" {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+name+"%")
	}
	if status != "" {
		dbCtx = dbCtx.Where("status = ?", status)
	}
	var clients []*Client
	if err := dbCtx.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}
