package repository

import (
	"context"
	"sort"
	"strings"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

// Reference data tables. Each is keyed by a single string attribute and is small enough to scan.

type statusItem struct {
	Code         string `dynamodbav:"status_code"`
	Name         string `dynamodbav:"status_name"`
	Description  string `dynamodbav:"description,omitempty"`
	Category     string `dynamodbav:"status_category"`
	IsOpen       bool   `dynamodbav:"is_open"`
	DisplayOrder int    `dynamodbav:"display_order"`
	ColorCode    string `dynamodbav:"color_code,omitempty"`
}

// StatusDynamoRepository persists the status catalog. PK: status_code.
type StatusDynamoRepository struct {
	t table
}

var _ interfaces.IStatusRepository = (*StatusDynamoRepository)(nil)

func NewStatusDynamoRepository(ddb DynamoAPI, tableName string) *StatusDynamoRepository {
	return &StatusDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *StatusDynamoRepository) Create(ctx context.Context, s entities.Status) (entities.Status, error) {
	it := statusItem{
		Code:         s.Code,
		Name:         s.Name,
		Description:  s.Description,
		Category:     string(s.Category),
		IsOpen:       s.IsOpen,
		DisplayOrder: s.DisplayOrder,
		ColorCode:    s.ColorCode,
	}
	if err := r.t.create(ctx, it, "status_code"); err != nil {
		return entities.Status{}, err
	}
	return s, nil
}

func (r *StatusDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Status, error) {
	var it statusItem
	found, err := r.t.get(ctx, stringKey("status_code", code), &it)
	if err != nil || !found {
		return entities.Status{}, err
	}
	return fromStatusItem(it), nil
}

// List returns statuses in display order.
func (r *StatusDynamoRepository) List(ctx context.Context) ([]entities.Status, error) {
	raw, err := r.t.scan(ctx)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[statusItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Status, 0, len(items))
	for _, it := range items {
		out = append(out, fromStatusItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

func fromStatusItem(it statusItem) entities.Status {
	return entities.Status{
		Code:         it.Code,
		Name:         it.Name,
		Description:  it.Description,
		Category:     entities.StatusCategory(it.Category),
		IsOpen:       it.IsOpen,
		DisplayOrder: it.DisplayOrder,
		ColorCode:    it.ColorCode,
	}
}

type permitTypeItem struct {
	ID                          string   `dynamodbav:"id"`
	Name                        string   `dynamodbav:"type_name"`
	Category                    string   `dynamodbav:"type_category"`
	Description                 string   `dynamodbav:"description,omitempty"`
	StandardProcessingDays      int      `dynamodbav:"standard_processing_days"`
	RequiresMultipleDepartments bool     `dynamodbav:"requires_multiple_departments"`
	DepartmentCodes             []string `dynamodbav:"department_codes,omitempty"`
	RequiredDocuments           []string `dynamodbav:"required_documents,omitempty"`
	IsActive                    bool     `dynamodbav:"is_active"`
	CreatedAt                   string   `dynamodbav:"created_at"`
	UpdatedAt                   string   `dynamodbav:"updated_at"`
}

// PermitTypeDynamoRepository persists permit types. PK: id.
type PermitTypeDynamoRepository struct {
	t table
}

var _ interfaces.IPermitTypeRepository = (*PermitTypeDynamoRepository)(nil)

func NewPermitTypeDynamoRepository(ddb DynamoAPI, tableName string) *PermitTypeDynamoRepository {
	return &PermitTypeDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *PermitTypeDynamoRepository) Create(ctx context.Context, p entities.PermitType) (entities.PermitType, error) {
	it := permitTypeItem{
		ID:                          p.ID,
		Name:                        p.Name,
		Category:                    string(p.Category),
		Description:                 p.Description,
		StandardProcessingDays:      p.StandardProcessingDays,
		RequiresMultipleDepartments: p.RequiresMultipleDepartments,
		DepartmentCodes:             p.DepartmentCodes,
		RequiredDocuments:           p.RequiredDocuments,
		IsActive:                    p.IsActive,
		CreatedAt:                   formatTime(p.CreatedAt),
		UpdatedAt:                   formatTime(p.UpdatedAt),
	}
	if err := r.t.create(ctx, it, "id"); err != nil {
		return entities.PermitType{}, err
	}
	return p, nil
}

func (r *PermitTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.PermitType, error) {
	var it permitTypeItem
	found, err := r.t.get(ctx, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.PermitType{}, err
	}
	return fromPermitTypeItem(it), nil
}

func (r *PermitTypeDynamoRepository) List(ctx context.Context) ([]entities.PermitType, error) {
	raw, err := r.t.scan(ctx)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[permitTypeItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PermitType, 0, len(items))
	for _, it := range items {
		out = append(out, fromPermitTypeItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func fromPermitTypeItem(it permitTypeItem) entities.PermitType {
	return entities.PermitType{
		ID:                          it.ID,
		Name:                        it.Name,
		Category:                    entities.PermitCategory(it.Category),
		Description:                 it.Description,
		StandardProcessingDays:      it.StandardProcessingDays,
		RequiresMultipleDepartments: it.RequiresMultipleDepartments,
		DepartmentCodes:             it.DepartmentCodes,
		RequiredDocuments:           it.RequiredDocuments,
		IsActive:                    it.IsActive,
		CreatedAt:                   parseTime(it.CreatedAt),
		UpdatedAt:                   parseTime(it.UpdatedAt),
	}
}

type departmentItem struct {
	Code         string `dynamodbav:"department_code"`
	Name         string `dynamodbav:"department_name"`
	ContactEmail string `dynamodbav:"contact_email"`
	Phone        string `dynamodbav:"phone,omitempty"`
	Location     string `dynamodbav:"location,omitempty"`
	IsActive     bool   `dynamodbav:"is_active"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// DepartmentDynamoRepository persists reviewing departments. PK: department_code.
type DepartmentDynamoRepository struct {
	t table
}

var _ interfaces.IDepartmentRepository = (*DepartmentDynamoRepository)(nil)

func NewDepartmentDynamoRepository(ddb DynamoAPI, tableName string) *DepartmentDynamoRepository {
	return &DepartmentDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *DepartmentDynamoRepository) Create(ctx context.Context, d entities.Department) (entities.Department, error) {
	it := departmentItem{
		Code:         d.Code,
		Name:         d.Name,
		ContactEmail: d.ContactEmail,
		Phone:        d.Phone,
		Location:     d.Location,
		IsActive:     d.IsActive,
		CreatedAt:    formatTime(d.CreatedAt),
	}
	if err := r.t.create(ctx, it, "department_code"); err != nil {
		return entities.Department{}, err
	}
	return d, nil
}

func (r *DepartmentDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Department, error) {
	var it departmentItem
	found, err := r.t.get(ctx, stringKey("department_code", code), &it)
	if err != nil || !found {
		return entities.Department{}, err
	}
	return fromDepartmentItem(it), nil
}

func (r *DepartmentDynamoRepository) List(ctx context.Context) ([]entities.Department, error) {
	raw, err := r.t.scan(ctx)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[departmentItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Department, 0, len(items))
	for _, it := range items {
		out = append(out, fromDepartmentItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func fromDepartmentItem(it departmentItem) entities.Department {
	return entities.Department{
		Code:         it.Code,
		Name:         it.Name,
		ContactEmail: it.ContactEmail,
		Phone:        it.Phone,
		Location:     it.Location,
		IsActive:     it.IsActive,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}

type propertyItem struct {
	ID               string   `dynamodbav:"id"`
	StreetNumber     string   `dynamodbav:"street_number"`
	StreetName       string   `dynamodbav:"street_name"`
	UnitNumber       string   `dynamodbav:"unit_number,omitempty"`
	City             string   `dynamodbav:"city"`
	Province         string   `dynamodbav:"province"`
	PostalCode       string   `dynamodbav:"postal_code"`
	LegalDescription string   `dynamodbav:"legal_description,omitempty"`
	Ward             string   `dynamodbav:"ward,omitempty"`
	Zoning           string   `dynamodbav:"zoning,omitempty"`
	LotSize          float64  `dynamodbav:"lot_size,omitempty"`
	Latitude         *float64 `dynamodbav:"latitude,omitempty"`
	Longitude        *float64 `dynamodbav:"longitude,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
}

// PropertyDynamoRepository persists property records. PK: id.
type PropertyDynamoRepository struct {
	t table
}

var _ interfaces.IPropertyRepository = (*PropertyDynamoRepository)(nil)

func NewPropertyDynamoRepository(ddb DynamoAPI, tableName string) *PropertyDynamoRepository {
	return &PropertyDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *PropertyDynamoRepository) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	if err := r.t.create(ctx, toPropertyItem(p), "id"); err != nil {
		return entities.Property{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	var it propertyItem
	found, err := r.t.get(ctx, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

func (r *PropertyDynamoRepository) List(ctx context.Context) ([]entities.Property, error) {
	raw, err := r.t.scan(ctx)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[propertyItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Property, 0, len(items))
	for _, it := range items {
		out = append(out, fromPropertyItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].FullAddress()) < strings.ToLower(out[j].FullAddress())
	})
	return out, nil
}

func (r *PropertyDynamoRepository) Update(ctx context.Context, p entities.Property) (entities.Property, error) {
	ok, err := r.t.replace(ctx, toPropertyItem(p), "id")
	if err != nil || !ok {
		return entities.Property{}, err
	}
	return p, nil
}

func toPropertyItem(p entities.Property) propertyItem {
	return propertyItem{
		ID:               p.ID,
		StreetNumber:     p.StreetNumber,
		StreetName:       p.StreetName,
		UnitNumber:       p.UnitNumber,
		City:             p.City,
		Province:         p.Province,
		PostalCode:       p.PostalCode,
		LegalDescription: p.LegalDescription,
		Ward:             p.Ward,
		Zoning:           p.Zoning,
		LotSize:          p.LotSize,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func fromPropertyItem(it propertyItem) entities.Property {
	return entities.Property{
		ID:               it.ID,
		StreetNumber:     it.StreetNumber,
		StreetName:       it.StreetName,
		UnitNumber:       it.UnitNumber,
		City:             it.City,
		Province:         it.Province,
		PostalCode:       it.PostalCode,
		LegalDescription: it.LegalDescription,
		Ward:             it.Ward,
		Zoning:           it.Zoning,
		LotSize:          it.LotSize,
		Latitude:         it.Latitude,
		Longitude:        it.Longitude,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

const usersEmailIndex = "email-index"

type userItem struct {
	ID                  string `dynamodbav:"id"`
	Email               string `dynamodbav:"email"`
	Username            string `dynamodbav:"username"`
	FirstName           string `dynamodbav:"first_name"`
	LastName            string `dynamodbav:"last_name"`
	Phone               string `dynamodbav:"phone,omitempty"`
	AccountType         string `dynamodbav:"account_type"`
	AccountStatus       string `dynamodbav:"account_status"`
	DepartmentCode      string `dynamodbav:"department_code,omitempty"`
	RoleName            string `dynamodbav:"role_name,omitempty"`
	FailedLoginAttempts int    `dynamodbav:"failed_login_attempts"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists user accounts.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
type UserDynamoRepository struct {
	t table
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	it := userItem{
		ID:                  u.ID,
		Email:               u.Email,
		Username:            u.Username,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Phone:               u.Phone,
		AccountType:         string(u.AccountType),
		AccountStatus:       string(u.AccountStatus),
		DepartmentCode:      u.DepartmentCode,
		RoleName:            u.RoleName,
		FailedLoginAttempts: u.FailedLoginAttempts,
		CreatedAt:           formatTime(u.CreatedAt),
		UpdatedAt:           formatTime(u.UpdatedAt),
	}
	if err := r.t.create(ctx, it, "id"); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var it userItem
	found, err := r.t.get(ctx, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	raw, err := r.t.queryIndex(ctx, usersEmailIndex, "email", email)
	if err != nil {
		return entities.User{}, err
	}
	items, err := unmarshalItems[userItem](raw)
	if err != nil || len(items) == 0 {
		return entities.User{}, err
	}
	return fromUserItem(items[0]), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	raw, err := r.t.scan(ctx)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[userItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(items))
	for _, it := range items {
		out = append(out, fromUserItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:                  it.ID,
		Email:               it.Email,
		Username:            it.Username,
		FirstName:           it.FirstName,
		LastName:            it.LastName,
		Phone:               it.Phone,
		AccountType:         entities.AccountType(it.AccountType),
		AccountStatus:       entities.AccountStatus(it.AccountStatus),
		DepartmentCode:      it.DepartmentCode,
		RoleName:            it.RoleName,
		FailedLoginAttempts: it.FailedLoginAttempts,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}

type roleItem struct {
	Name                  string `dynamodbav:"role_name"`
	Description           string `dynamodbav:"description,omitempty"`
	PermissionLevel       int    `dynamodbav:"permission_level"`
	CanSubmitApplication  bool   `dynamodbav:"can_submit_application"`
	CanReviewApplication  bool   `dynamodbav:"can_review_application"`
	CanApproveApplication bool   `dynamodbav:"can_approve_application"`
	CanConfigureSystem    bool   `dynamodbav:"can_configure_system"`
	CanManageUsers        bool   `dynamodbav:"can_manage_users"`
	CanViewAll            bool   `dynamodbav:"can_view_all"`
	CanGenerateReports    bool   `dynamodbav:"can_generate_reports"`
}

// RoleDynamoRepository persists roles. PK: role_name.
type RoleDynamoRepository struct {
	t table
}

var _ interfaces.IRoleRepository = (*RoleDynamoRepository)(nil)

func NewRoleDynamoRepository(ddb DynamoAPI, tableName string) *RoleDynamoRepository {
	return &RoleDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *RoleDynamoRepository) Create(ctx context.Context, role entities.Role) (entities.Role, error) {
	if err := r.t.create(ctx, roleItem(role), "role_name"); err != nil {
		return entities.Role{}, err
	}
	return role, nil
}

func (r *RoleDynamoRepository) GetByName(ctx context.Context, name string) (entities.Role, error) {
	var it roleItem
	found, err := r.t.get(ctx, stringKey("role_name", name), &it)
	if err != nil || !found {
		return entities.Role{}, err
	}
	return entities.Role(it), nil
}

func (r *RoleDynamoRepository) List(ctx context.Context) ([]entities.Role, error) {
	raw, err := r.t.scan(ctx)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[roleItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Role, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Role(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PermissionLevel > out[j].PermissionLevel })
	return out, nil
}
