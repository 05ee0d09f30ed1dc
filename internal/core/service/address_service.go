package service

import (
	"context"
	"time"

	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

type addressService struct {
	repo ports.AddressRepository
}

// NewAddressService returns an AddressService scoped to the calling account.
func NewAddressService(repo ports.AddressRepository) ports.AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) List(ctx context.Context, accountID string) ([]domain.Address, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *addressService) Create(ctx context.Context, accountID string, in ports.AddressInput) (*domain.Address, error) {
	if err := validateAddress(in); err != nil {
		return nil, err
	}

	if in.IsDefault {
		if err := s.repo.ClearDefault(ctx, accountID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Address{
		AccountID:   accountID,
		Type:        in.Type,
		Name:        in.Name,
		Phone:       in.Phone,
		AddressLine: in.AddressLine,
		City:        in.City,
		State:       in.State,
		Pincode:     in.Pincode,
		IsDefault:   in.IsDefault,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *addressService) Update(ctx context.Context, accountID, id string, in ports.AddressInput) (*domain.Address, error) {
	if err := validateAddress(in); err != nil {
		return nil, err
	}

	addr, err := s.repo.FindByID(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	if in.IsDefault && !addr.IsDefault {
		if err := s.repo.ClearDefault(ctx, accountID); err != nil {
			return nil, err
		}
	}

	addr.Type = in.Type
	addr.Name = in.Name
	addr.Phone = in.Phone
	addr.AddressLine = in.AddressLine
	addr.City = in.City
	addr.State = in.State
	addr.Pincode = in.Pincode
	addr.IsDefault = in.IsDefault
	addr.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *addressService) Delete(ctx context.Context, accountID, id string) error {
	return s.repo.Delete(ctx, accountID, id)
}

func validateAddress(in ports.AddressInput) error {
	switch {
	case in.Name == "":
		return domain.NewValidationError("name", "is required")
	case in.AddressLine == "":
		return domain.NewValidationError("address_line", "is required")
	case in.City == "":
		return domain.NewValidationError("city", "is required")
	case in.State == "":
		return domain.NewValidationError("state", "is required")
	case in.Pincode == "":
		return domain.NewValidationError("pincode", "is required")
	}
	return nil
}
