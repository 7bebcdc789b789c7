package handler

import (
	"github.com/nujjum/accessibility-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateProfileInput(req createProfileRequest) ports.CreateProfileInput {
	return ports.CreateProfileInput{
		Name:    req.User.Name,
		Email:   req.User.Email,
		Phone:   req.User.Phone,
		Country: req.User.Country,
		City:    req.User.City,
		Profile: ports.DisabilityProfileInput{
			DisabilityType: req.User.Profile.DisabilityType,
			PreferredMode:  req.User.Profile.PreferredMode,
			Language:       req.User.Profile.Language,
			HighContrast:   req.User.Profile.HighContrast,
			LargeText:      req.User.Profile.LargeText,
		},
		DocumentsSubmitted: req.User.DocumentsSubmitted,
	}
}

// --- Service result → HTTP response ---

func toListProfilesResponse(r *ports.ListProfilesResult) listProfilesResponse {
	items := make([]profileItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = toProfileItemResponse(item)
	}
	return listProfilesResponse{Items: items}
}

func toProfileItemResponse(item ports.ProfileItem) profileItemResponse {
	docs := item.DocumentsSubmitted
	if docs == nil {
		docs = []string{}
	}
	return profileItemResponse{
		ID:      item.ID,
		Name:    item.Name,
		Email:   item.Email,
		Phone:   item.Phone,
		Country: item.Country,
		City:    item.City,
		Profile: disabilityProfileResponse{
			DisabilityType: item.Profile.DisabilityType,
			PreferredMode:  item.Profile.PreferredMode,
			Language:       item.Profile.Language,
			HighContrast:   item.Profile.HighContrast,
			LargeText:      item.Profile.LargeText,
		},
		DocumentsSubmitted: docs,
	}
}
