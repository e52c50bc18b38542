// Package repository define los contratos de persistencia del panel RBAC.
//
// Los services dependen de estas interfaces; la implementación con gorm
// vive en internal/store/gormstore.
//
// Convenciones:
//   - Context siempre es el primer parámetro.
//   - Los registros inexistentes devuelven ErrNotFound (envuelto).
//   - Las operaciones que reemplazan filas de tablas join (user_role,
//     role_perm) son atómicas: borran e insertan dentro de una sola
//     transacción.
//   - Las filas con deleted_at no nulo no se devuelven nunca.
package repository
