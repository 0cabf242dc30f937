package usecase

import (
	"context"
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

var (
	ErrInvalidStatus       = categorized(ErrValidation, "invalid status")
	ErrInvalidPermitType   = categorized(ErrValidation, "invalid permit type")
	ErrInvalidDepartment   = categorized(ErrValidation, "invalid department")
	ErrInvalidProperty     = categorized(ErrValidation, "invalid property")
	ErrInvalidUser         = categorized(ErrValidation, "invalid user")
	ErrInvalidRole         = categorized(ErrValidation, "invalid role")
	ErrCatalogItemNotFound = categorized(ErrNotFound, "catalog item not found")
	ErrCatalogItemExists   = categorized(ErrConflict, "catalog item already exists")
	ErrEmailAlreadyUsed    = categorized(ErrConflict, "email already in use")
	ErrRoleNotFound        = categorized(ErrReference, "role not found")
)

var colorCodePattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ICatalogUseCase manages the reference data applications point to.
type ICatalogUseCase interface {
	CreateStatus(ctx context.Context, s entities.Status) (entities.Status, error)
	GetStatus(ctx context.Context, code string) (entities.Status, error)
	ListStatuses(ctx context.Context) ([]entities.Status, error)

	CreatePermitType(ctx context.Context, p entities.PermitType) (entities.PermitType, error)
	GetPermitType(ctx context.Context, id string) (entities.PermitType, error)
	ListPermitTypes(ctx context.Context) ([]entities.PermitType, error)

	CreateDepartment(ctx context.Context, d entities.Department) (entities.Department, error)
	GetDepartment(ctx context.Context, code string) (entities.Department, error)
	ListDepartments(ctx context.Context) ([]entities.Department, error)

	CreateProperty(ctx context.Context, p entities.Property) (entities.Property, error)
	GetProperty(ctx context.Context, id string) (entities.Property, error)
	ListProperties(ctx context.Context) ([]entities.Property, error)
	UpdateProperty(ctx context.Context, p entities.Property) (entities.Property, error)

	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
	GetUser(ctx context.Context, id string) (entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)

	CreateRole(ctx context.Context, r entities.Role) (entities.Role, error)
	GetRole(ctx context.Context, name string) (entities.Role, error)
	ListRoles(ctx context.Context) ([]entities.Role, error)

	SeedStatuses(ctx context.Context) (int, error)
}

type CatalogRepositories struct {
	Statuses    interfaces.IStatusRepository
	PermitTypes interfaces.IPermitTypeRepository
	Departments interfaces.IDepartmentRepository
	Properties  interfaces.IPropertyRepository
	Users       interfaces.IUserRepository
	Roles       interfaces.IRoleRepository
}

type CatalogUseCase struct {
	repos CatalogRepositories
	now   func() time.Time
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repos CatalogRepositories) *CatalogUseCase {
	return &CatalogUseCase{repos: repos, now: time.Now}
}

func (u *CatalogUseCase) CreateStatus(ctx context.Context, s entities.Status) (entities.Status, error) {
	s.Code = entities.NormalizeStatusCode(s.Code)
	s.Name = strings.TrimSpace(s.Name)
	if s.Code == "" || s.Name == "" || !s.Category.Valid() {
		return entities.Status{}, ErrInvalidStatus
	}
	if s.ColorCode == "" {
		s.ColorCode = "#6c757d"
	}
	if !colorCodePattern.MatchString(s.ColorCode) {
		return entities.Status{}, ErrInvalidStatus
	}
	created, err := u.repos.Statuses.Create(ctx, s)
	if err != nil {
		return entities.Status{}, mapRepositoryError(err, ErrCatalogItemExists)
	}
	return created, nil
}

func (u *CatalogUseCase) GetStatus(ctx context.Context, code string) (entities.Status, error) {
	s, err := u.repos.Statuses.GetByCode(ctx, entities.NormalizeStatusCode(code))
	if err != nil {
		return entities.Status{}, err
	}
	if s.Code == "" {
		return entities.Status{}, ErrCatalogItemNotFound
	}
	return s, nil
}

func (u *CatalogUseCase) ListStatuses(ctx context.Context) ([]entities.Status, error) {
	return u.repos.Statuses.List(ctx)
}

// SeedStatuses inserts the default workflow statuses that are missing and reports how many were added.
func (u *CatalogUseCase) SeedStatuses(ctx context.Context) (int, error) {
	added := 0
	for _, s := range entities.DefaultStatuses() {
		_, err := u.repos.Statuses.Create(ctx, s)
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return added, err
		}
		added++
	}
	log.Info().Int("added", added).Msg("[catalog][usecase] status seed done")
	return added, nil
}

func (u *CatalogUseCase) CreatePermitType(ctx context.Context, p entities.PermitType) (entities.PermitType, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || !p.Category.Valid() || p.StandardProcessingDays < 0 {
		return entities.PermitType{}, ErrInvalidPermitType
	}
	if p.StandardProcessingDays == 0 {
		p.StandardProcessingDays = entities.DefaultProcessingDays
	}
	codes := make([]string, 0, len(p.DepartmentCodes))
	for _, code := range p.DepartmentCodes {
		code = strings.ToUpper(strings.TrimSpace(code))
		d, err := u.repos.Departments.GetByCode(ctx, code)
		if err != nil {
			return entities.PermitType{}, err
		}
		if d.Code == "" {
			return entities.PermitType{}, ErrDepartmentNotFound
		}
		codes = append(codes, code)
	}
	p.DepartmentCodes = codes
	p.RequiresMultipleDepartments = p.RequiresMultipleDepartments || len(p.DepartmentCodes) > 1

	now := u.now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	created, err := u.repos.PermitTypes.Create(ctx, p)
	if err != nil {
		return entities.PermitType{}, mapRepositoryError(err, ErrCatalogItemExists)
	}
	return created, nil
}

func (u *CatalogUseCase) GetPermitType(ctx context.Context, id string) (entities.PermitType, error) {
	p, err := u.repos.PermitTypes.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.PermitType{}, err
	}
	if p.ID == "" {
		return entities.PermitType{}, ErrCatalogItemNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListPermitTypes(ctx context.Context) ([]entities.PermitType, error) {
	return u.repos.PermitTypes.List(ctx)
}

func (u *CatalogUseCase) CreateDepartment(ctx context.Context, d entities.Department) (entities.Department, error) {
	d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	d.Name = strings.TrimSpace(d.Name)
	d.ContactEmail = strings.TrimSpace(d.ContactEmail)
	if d.Code == "" || d.Name == "" {
		return entities.Department{}, ErrInvalidDepartment
	}
	if _, err := mail.ParseAddress(d.ContactEmail); err != nil {
		return entities.Department{}, ErrInvalidDepartment
	}
	d.CreatedAt = u.now().UTC()
	created, err := u.repos.Departments.Create(ctx, d)
	if err != nil {
		return entities.Department{}, mapRepositoryError(err, ErrCatalogItemExists)
	}
	return created, nil
}

func (u *CatalogUseCase) GetDepartment(ctx context.Context, code string) (entities.Department, error) {
	d, err := u.repos.Departments.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return entities.Department{}, err
	}
	if d.Code == "" {
		return entities.Department{}, ErrCatalogItemNotFound
	}
	return d, nil
}

func (u *CatalogUseCase) ListDepartments(ctx context.Context) ([]entities.Department, error) {
	return u.repos.Departments.List(ctx)
}

func (u *CatalogUseCase) CreateProperty(ctx context.Context, p entities.Property) (entities.Property, error) {
	if err := normalizeProperty(&p); err != nil {
		return entities.Property{}, err
	}
	now := u.now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	created, err := u.repos.Properties.Create(ctx, p)
	if err != nil {
		return entities.Property{}, mapRepositoryError(err, ErrCatalogItemExists)
	}
	return created, nil
}

func (u *CatalogUseCase) GetProperty(ctx context.Context, id string) (entities.Property, error) {
	p, err := u.repos.Properties.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrCatalogItemNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProperties(ctx context.Context) ([]entities.Property, error) {
	return u.repos.Properties.List(ctx)
}

func (u *CatalogUseCase) UpdateProperty(ctx context.Context, p entities.Property) (entities.Property, error) {
	existing, err := u.GetProperty(ctx, p.ID)
	if err != nil {
		return entities.Property{}, err
	}
	if err := normalizeProperty(&p); err != nil {
		return entities.Property{}, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = u.now().UTC()
	updated, err := u.repos.Properties.Update(ctx, p)
	if err != nil {
		return entities.Property{}, err
	}
	if updated.ID == "" {
		return entities.Property{}, ErrCatalogItemNotFound
	}
	return updated, nil
}

func normalizeProperty(p *entities.Property) error {
	p.StreetNumber = strings.TrimSpace(p.StreetNumber)
	p.StreetName = strings.TrimSpace(p.StreetName)
	p.UnitNumber = strings.TrimSpace(p.UnitNumber)
	p.PostalCode = strings.ToUpper(strings.TrimSpace(p.PostalCode))
	if p.City = strings.TrimSpace(p.City); p.City == "" {
		p.City = entities.DefaultCity
	}
	if p.Province = strings.ToUpper(strings.TrimSpace(p.Province)); p.Province == "" {
		p.Province = entities.DefaultProvince
	}
	if p.StreetNumber == "" || p.StreetName == "" || p.PostalCode == "" || p.LotSize < 0 {
		return ErrInvalidProperty
	}
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		return ErrInvalidProperty
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		return ErrInvalidProperty
	}
	return nil
}

func (u *CatalogUseCase) CreateUser(ctx context.Context, usr entities.User) (entities.User, error) {
	usr.Email = strings.ToLower(strings.TrimSpace(usr.Email))
	usr.Username = strings.TrimSpace(usr.Username)
	usr.FirstName = strings.TrimSpace(usr.FirstName)
	usr.LastName = strings.TrimSpace(usr.LastName)
	if usr.Username == "" {
		return entities.User{}, ErrInvalidUser
	}
	if _, err := mail.ParseAddress(usr.Email); err != nil {
		return entities.User{}, ErrInvalidUser
	}
	if usr.AccountType == "" {
		usr.AccountType = entities.AccountTypeApplicant
	}
	if usr.AccountStatus == "" {
		usr.AccountStatus = entities.AccountStatusPendingActivation
	}
	if !usr.AccountType.Valid() || !usr.AccountStatus.Valid() {
		return entities.User{}, ErrInvalidUser
	}

	existing, err := u.repos.Users.GetByEmail(ctx, usr.Email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyUsed
	}
	if usr.DepartmentCode = strings.ToUpper(strings.TrimSpace(usr.DepartmentCode)); usr.DepartmentCode != "" {
		d, err := u.repos.Departments.GetByCode(ctx, usr.DepartmentCode)
		if err != nil {
			return entities.User{}, err
		}
		if d.Code == "" {
			return entities.User{}, ErrDepartmentNotFound
		}
	}
	if usr.RoleName = strings.TrimSpace(usr.RoleName); usr.RoleName != "" {
		r, err := u.repos.Roles.GetByName(ctx, usr.RoleName)
		if err != nil {
			return entities.User{}, err
		}
		if r.Name == "" {
			return entities.User{}, ErrRoleNotFound
		}
	}

	now := u.now().UTC()
	usr.ID = uuid.NewString()
	usr.FailedLoginAttempts = 0
	usr.CreatedAt = now
	usr.UpdatedAt = now
	created, err := u.repos.Users.Create(ctx, usr)
	if err != nil {
		return entities.User{}, mapRepositoryError(err, ErrCatalogItemExists)
	}
	log.Info().Str("user_id", created.ID).Str("account_type", string(created.AccountType)).Msg("[catalog][usecase] user created")
	return created, nil
}

func (u *CatalogUseCase) GetUser(ctx context.Context, id string) (entities.User, error) {
	usr, err := u.repos.Users.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrCatalogItemNotFound
	}
	return usr, nil
}

func (u *CatalogUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	return u.repos.Users.List(ctx)
}

func (u *CatalogUseCase) CreateRole(ctx context.Context, r entities.Role) (entities.Role, error) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" || r.PermissionLevel < 0 {
		return entities.Role{}, ErrInvalidRole
	}
	created, err := u.repos.Roles.Create(ctx, r)
	if err != nil {
		return entities.Role{}, mapRepositoryError(err, ErrCatalogItemExists)
	}
	return created, nil
}

func (u *CatalogUseCase) GetRole(ctx context.Context, name string) (entities.Role, error) {
	r, err := u.repos.Roles.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return entities.Role{}, err
	}
	if r.Name == "" {
		return entities.Role{}, ErrCatalogItemNotFound
	}
	return r, nil
}

func (u *CatalogUseCase) ListRoles(ctx context.Context) ([]entities.Role, error) {
	return u.repos.Roles.List(ctx)
}
