package dto

import (
	"gym-admin/pkg/listview"
)

// ListQueryDTO carries the list-screen controls common to every screen.
// Empty values mean "no constraint"; Page defaults to 1.
type ListQueryDTO struct {
	Search string `query:"search"`
	Status string `query:"status"`
	SortBy string `query:"sortBy"`
	Order  string `query:"order"`
	Page   int    `query:"page"`
}

// ListViewDTO is the renderable state of one list screen after the full
// filter, search, sort and paginate pipeline has run.
type ListViewDTO[T any] struct {
	Page         listview.Page[T]       `json:"page"`
	PageNumbers  []int                  `json:"pageNumbers"`
	RangeLabel   string                 `json:"rangeLabel"`
	Sort         listview.SortState     `json:"sort"`
	Edit         listview.EditState     `json:"edit"`
	Toast        *listview.Toast        `json:"toast,omitempty"`
	Confirmation *listview.Confirmation `json:"confirmation,omitempty"`
}

// SortDTO is a column-header click.
type SortDTO struct {
	Field string `json:"field" validate:"required"`
}

type BeginEditDTO struct {
	RowID int64  `json:"rowId" validate:"required,gt=0"`
	Field string `json:"field" validate:"required"`
}

type StageEditDTO struct {
	Value string `json:"value"`
}

type ConfirmDTO struct {
	ID string `json:"id" validate:"required,uuid"`
}
