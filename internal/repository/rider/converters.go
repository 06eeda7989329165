package rider

import (
	"dispatch/internal/entities"
)

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}

	return &entities.Rider{
		ID:              r.ID,
		UserID:          r.UserID,
		VehicleType:     entities.VehicleType(r.VehicleType),
		VehicleNumber:   r.VehicleNumber,
		DriverLicense:   r.DriverLicense,
		BankAccount:     r.BankAccount,
		IsAvailable:     r.IsAvailable,
		CurrentLat:      r.CurrentLat,
		CurrentLng:      r.CurrentLng,
		Rating:          r.Rating,
		TotalDeliveries: r.TotalDeliveries,
		ApprovalStatus:  entities.ApprovalStatusType(r.ApprovalStatus),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromDomainModify(riderModify *entities.RiderModify) *RiderModifyDB {
	if riderModify == nil {
		return nil
	}
	riderDB := &RiderModifyDB{
		ID:              riderModify.ID,
		UserID:          riderModify.UserID,
		VehicleNumber:   riderModify.VehicleNumber,
		DriverLicense:   riderModify.DriverLicense,
		BankAccount:     riderModify.BankAccount,
		IsAvailable:     riderModify.IsAvailable,
		CurrentLat:      riderModify.CurrentLat,
		CurrentLng:      riderModify.CurrentLng,
		Rating:          riderModify.Rating,
		TotalDeliveries: riderModify.TotalDeliveries,
	}

	if riderModify.VehicleType != nil {
		vehicleType := riderModify.VehicleType.String()
		riderDB.VehicleType = &vehicleType
	}
	if riderModify.ApprovalStatus != nil {
		approvalStatus := riderModify.ApprovalStatus.String()
		riderDB.ApprovalStatus = &approvalStatus
	}

	return riderDB
}

func ToDomainList(ridersDB []RiderDB) []entities.Rider {
	if len(ridersDB) == 0 {
		return []entities.Rider{}
	}

	result := make([]entities.Rider, len(ridersDB))
	for i, riderDB := range ridersDB {
		result[i] = *ToDomain(&riderDB)
	}
	return result
}
