package admin

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/rbac-admin/internal/audit"
	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
	authsvc "github.com/dropDatabas3/rbac-admin/internal/http/services/auth"
	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
	"github.com/dropDatabas3/rbac-admin/internal/security/password"
)

// ErrOldPasswordMismatch se devuelve cuando el password actual no coincide.
var ErrOldPasswordMismatch = fmt.Errorf("%w: old password is invalid", authsvc.ErrAuthentication)

// UserService maneja las operaciones CRUD de usuarios.
type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context, req dto.FilterParam[dto.UserSearch]) (dto.PageResult[dto.UserResponse], error)
	Get(ctx context.Context, id int64) (*dto.UserDetail, error)
	AuthCodes(ctx context.Context, id int64) ([]string, error)
	Update(ctx context.Context, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	Delete(ctx context.Context, ids []int64) (int64, error)
}

type userService struct {
	deps Deps
}

func NewUserService(d Deps) UserService {
	return &userService{deps: d}
}

func (s *userService) log(ctx context.Context, op string) *zap.Logger {
	return logger.From(ctx).With(logger.Layer("service"), logger.Component("admin.users"), logger.Op(op))
}

func (s *userService) checkPassword(plain string) error {
	if ok, reasons := s.deps.Policy.Validate(plain); !ok {
		return fmt.Errorf("%w: password policy violation: %s", repository.ErrInvalidInput, strings.Join(reasons, ","))
	}
	return nil
}

// Create valida, hashea el password e inserta usuario + roles en una transacción.
func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	log := s.log(ctx, "Create")

	req.UserName = strings.TrimSpace(req.UserName)
	if req.UserName == "" {
		return nil, fmt.Errorf("%w: userName is required", repository.ErrInvalidInput)
	}
	if req.Password == nil || *req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", repository.ErrInvalidInput)
	}
	if err := s.checkPassword(*req.Password); err != nil {
		return nil, err
	}

	hash, err := password.Hash(s.deps.HashParams, *req.Password)
	if err != nil {
		log.Error("failed to hash password", logger.Err(err))
		return nil, err
	}

	u := &repository.User{
		UserName:     req.UserName,
		PasswordHash: hash,
		Sex:          req.Sex,
		Available:    req.Available,
		Telephone:    req.Telephone,
		Mobile:       req.Mobile,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
	}
	if err := s.deps.Users.Create(ctx, u, req.RoleID); err != nil {
		return nil, err
	}

	log.Info("user created", logger.UserID(u.ID), logger.UserName(u.UserName), logger.RoleIDs(req.RoleID))
	out := dto.UserFromDomain(*u)
	return &out, nil
}

func (s *userService) List(ctx context.Context, req dto.FilterParam[dto.UserSearch]) (dto.PageResult[dto.UserResponse], error) {
	page := req.Page()
	var f repository.UserFilter
	if req.Filters != nil {
		f.UserName = strings.TrimSpace(deref(req.Filters.UserName))
		f.DepartmentID = req.Filters.DepartmentID
	}

	rows, total, err := s.deps.Users.List(ctx, f, page)
	if err != nil {
		return dto.PageResult[dto.UserResponse]{}, err
	}
	list := make([]dto.UserResponse, 0, len(rows))
	for _, u := range rows {
		list = append(list, dto.UserFromDomain(u))
	}
	return dto.NewPageResult(page, list, total), nil
}

// Get carga el usuario y sus roles en paralelo.
func (s *userService) Get(ctx context.Context, id int64) (*dto.UserDetail, error) {
	var (
		user  *repository.User
		roles []int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.deps.Users.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		roles, err = s.deps.Resolver.ResolveUserRoles(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []int64{}
	}
	return &dto.UserDetail{RoleID: roles, UserResponse: dto.UserFromDomain(*user)}, nil
}

// AuthCodes resuelve usuario -> roles -> códigos de permiso.
func (s *userService) AuthCodes(ctx context.Context, id int64) ([]string, error) {
	return s.deps.Resolver.UserPermissionCodes(ctx, id)
}

// Update reescribe el perfil y reemplaza los roles. Nunca toca el password.
func (s *userService) Update(ctx context.Context, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	req.UserName = strings.TrimSpace(req.UserName)
	if req.ID <= 0 || req.UserName == "" {
		return nil, fmt.Errorf("%w: id and userName are required", repository.ErrInvalidInput)
	}

	u := &repository.User{
		ID:           req.ID,
		UserName:     req.UserName,
		Sex:          req.Sex,
		Available:    req.Available,
		Telephone:    req.Telephone,
		Mobile:       req.Mobile,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
	}
	if err := s.deps.Users.Update(ctx, u, req.RoleID); err != nil {
		return nil, err
	}
	s.log(ctx, "Update").Info("user updated", logger.UserID(u.ID), logger.RoleIDs(req.RoleID))

	fresh, err := s.deps.Users.GetByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	out := dto.UserFromDomain(*fresh)
	return &out, nil
}

func (s *userService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	log := s.log(ctx, "ChangePassword").With(logger.UserID(req.ID))

	if req.ID <= 0 || req.OldPassword == "" || req.NewPassword == "" {
		return fmt.Errorf("%w: id, oldPassword and newPassword are required", repository.ErrInvalidInput)
	}
	if err := s.checkPassword(req.NewPassword); err != nil {
		return err
	}

	u, err := s.deps.Users.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if !password.Verify(req.OldPassword, u.PasswordHash) {
		log.Info("old password mismatch")
		return ErrOldPasswordMismatch
	}

	hash, err := password.Hash(s.deps.HashParams, req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.deps.Users.UpdatePassword(ctx, req.ID, hash); err != nil {
		return err
	}
	log.Info("password changed")
	audit.Log(ctx, audit.EventPasswordChange, logger.UserID(req.ID))
	return nil
}

func (s *userService) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: ids is empty", repository.ErrInvalidInput)
	}
	n, err := s.deps.Users.Delete(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.log(ctx, "Delete").Info("users deleted", logger.IDs(ids), logger.Count(int(n)))
	audit.Log(ctx, audit.EventUserDelete, logger.IDs(ids), logger.Count(int(n)))
	return n, nil
}
