package response

import "permit_tracker/internal/domain/entities"

// Catalog entities already carry their JSON shape; these wrappers add display fields.

type DepartmentResponse struct {
	entities.Department
	DisplayName string `json:"display_name"`
}

func FromDepartments(list []entities.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, DepartmentResponse{Department: d, DisplayName: d.DisplayName()})
	}
	return out
}

type PropertyResponse struct {
	entities.Property
	FullAddress string `json:"full_address"`
}

func FromProperty(p entities.Property) PropertyResponse {
	return PropertyResponse{Property: p, FullAddress: p.FullAddress()}
}

func FromProperties(list []entities.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProperty(p))
	}
	return out
}

type UserResponse struct {
	entities.User
	FullName string `json:"full_name"`
}

func FromUsers(list []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, UserResponse{User: u, FullName: u.FullName()})
	}
	return out
}
