package profile

import (
	"dispatch/internal/entities"
)

func ToDomain(p *ProfileDB) *entities.Profile {
	if p == nil {
		return nil
	}

	return &entities.Profile{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Role:      entities.RoleType(p.Role),
		Status:    entities.ProfileStatusType(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromDomainModify(profileModify *entities.ProfileModify) *ProfileModifyDB {
	if profileModify == nil {
		return nil
	}
	profileDB := &ProfileModifyDB{
		ID:       profileModify.ID,
		Email:    profileModify.Email,
		FullName: profileModify.FullName,
		Phone:    profileModify.Phone,
	}

	if profileModify.Role != nil {
		role := profileModify.Role.String()
		profileDB.Role = &role
	}
	if profileModify.Status != nil {
		status := profileModify.Status.String()
		profileDB.Status = &status
	}

	return profileDB
}

func ToDomainList(profilesDB []ProfileDB) []entities.Profile {
	if len(profilesDB) == 0 {
		return []entities.Profile{}
	}

	result := make([]entities.Profile, len(profilesDB))
	for i, profileDB := range profilesDB {
		result[i] = *ToDomain(&profileDB)
	}
	return result
}
