// Package admin contiene los DTOs de la consola: usuarios, roles, menús,
// departamentos y permisos.
package admin

import "github.com/dropDatabas3/rbac-admin/internal/domain/repository"

// FilterParam es el body de todo endpoint /list.
type FilterParam[T any] struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Filters   *T  `json:"filters,omitempty"`
}

// Page devuelve la página normalizada (1-based, tamaño acotado).
func (f FilterParam[T]) Page() repository.Page {
	return repository.Page{Index: f.PageIndex, Size: f.PageSize}.Normalize()
}

type PageResult[T any] struct {
	PageIndex int   `json:"pageIndex"`
	PageSize  int   `json:"pageSize"`
	List      []T   `json:"list"`
	Total     int64 `json:"total"`
}

func NewPageResult[T any](p repository.Page, list []T, total int64) PageResult[T] {
	if list == nil {
		list = []T{}
	}
	return PageResult[T]{PageIndex: p.Index, PageSize: p.Size, List: list, Total: total}
}

// DeleteRequest body de los endpoints /del.
type DeleteRequest struct {
	IDs []int64 `json:"ids"`
}
