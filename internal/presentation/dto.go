package presentation

import (
	"github.com/zjrosen/enumium/enum"
)

// SetDTO represents an enum set for presentation
type SetDTO struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	AccessLevel string         `json:"access_level"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Values      []ValueDTO     `json:"values"`
}

// ValueDTO represents one enum member
type ValueDTO struct {
	Name     string         `json:"name"`
	Value    any            `json:"value"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// FromSet converts an enum set to a DTO, preserving member order.
func FromSet(s *enum.Set) SetDTO {
	values := make([]ValueDTO, 0)
	for _, v := range s.Values() {
		dto := ValueDTO{
			Name:  v.Name(),
			Value: v.Payload(),
		}
		if md := v.MetadataMap(); len(md) > 0 {
			dto.Metadata = md
		}
		values = append(values, dto)
	}

	out := SetDTO{
		Name:        s.Name(),
		Version:     s.Version(),
		AccessLevel: s.AccessLevel().String(),
		Values:      values,
	}
	if md := s.MetadataMap(); len(md) > 0 {
		out.Metadata = md
	}
	return out
}

// FromSets converts a list of enum sets to DTOs
func FromSets(sets []*enum.Set) []SetDTO {
	dtos := make([]SetDTO, 0, len(sets))
	for _, s := range sets {
		dtos = append(dtos, FromSet(s))
	}
	return dtos
}
