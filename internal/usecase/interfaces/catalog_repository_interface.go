package interfaces

import (
	"context"

	"permit_tracker/internal/domain/entities"
)

// Catalog repositories. Get* return a zero entity when nothing matches and
// Create returns ErrAlreadyExists on a duplicate key.

type IStatusRepository interface {
	Create(ctx context.Context, s entities.Status) (entities.Status, error)
	GetByCode(ctx context.Context, code string) (entities.Status, error)
	List(ctx context.Context) ([]entities.Status, error)
}

type IPermitTypeRepository interface {
	Create(ctx context.Context, p entities.PermitType) (entities.PermitType, error)
	GetByID(ctx context.Context, id string) (entities.PermitType, error)
	List(ctx context.Context) ([]entities.PermitType, error)
}

type IDepartmentRepository interface {
	Create(ctx context.Context, d entities.Department) (entities.Department, error)
	GetByCode(ctx context.Context, code string) (entities.Department, error)
	List(ctx context.Context) ([]entities.Department, error)
}

type IPropertyRepository interface {
	Create(ctx context.Context, p entities.Property) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	List(ctx context.Context) ([]entities.Property, error)
	Update(ctx context.Context, p entities.Property) (entities.Property, error)
}

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}

type IRoleRepository interface {
	Create(ctx context.Context, r entities.Role) (entities.Role, error)
	GetByName(ctx context.Context, name string) (entities.Role, error)
	List(ctx context.Context) ([]entities.Role, error)
}
