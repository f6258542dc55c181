package domain

// Authority is an atomic permission tag. The set is closed; authorities
// are never created at runtime.
type Authority string

const (
	AuthorityCreateCategory Authority = "CREATE_CATEGORY"
	AuthorityReadCategory   Authority = "READ_CATEGORY"
	AuthorityUpdateCategory Authority = "UPDATE_CATEGORY"
	AuthorityDeleteCategory Authority = "DELETE_CATEGORY"

	AuthorityCreateProduct Authority = "CREATE_PRODUCT"
	AuthorityReadProduct   Authority = "READ_PRODUCT"
	AuthorityUpdateProduct Authority = "UPDATE_PRODUCT"
	AuthorityDeleteProduct Authority = "DELETE_PRODUCT"

	AuthorityCreateUser Authority = "CREATE_USER"
	AuthorityReadUser   Authority = "READ_USER"
	AuthorityUpdateUser Authority = "UPDATE_USER"
	AuthorityDeleteUser Authority = "DELETE_USER"
)

var knownAuthorities = map[Authority]struct{}{
	AuthorityCreateCategory: {},
	AuthorityReadCategory:   {},
	AuthorityUpdateCategory: {},
	AuthorityDeleteCategory: {},
	AuthorityCreateProduct:  {},
	AuthorityReadProduct:    {},
	AuthorityUpdateProduct:  {},
	AuthorityDeleteProduct:  {},
	AuthorityCreateUser:     {},
	AuthorityReadUser:       {},
	AuthorityUpdateUser:     {},
	AuthorityDeleteUser:     {},
}

// ParseAuthority maps a stored tag back to an Authority. Unknown tags
// are rejected so a corrupted row cannot mint new permissions.
func ParseAuthority(value string) (Authority, error) {
	a := Authority(value)
	if _, ok := knownAuthorities[a]; !ok {
		return "", ErrInvalidArgument
	}
	return a, nil
}

func (a Authority) String() string {
	return string(a)
}
