//go:build unit || e2e

package builder

import (
	"storefront-orders/internal/domain/user"
)

func Shopper(email string) user.Identity {
	e, err := user.NewEmail(email)
	if err != nil {
		panic("builder: invalid email: " + err.Error())
	}
	return user.Identity{ID: "usr_" + e.Value(), Email: e, Role: user.RoleShopper}
}

func Staff() user.Identity {
	e, _ := user.NewEmail("staff@example.com")
	return user.Identity{ID: "usr_staff", Email: e, Role: user.RoleStaff, Staff: true}
}

// Catalog is the product set used across checkout tests.
func Catalog() map[string]int64 {
	return map[string]int64{
		"kurta-01": 2500,
		"shawl-02": 1500,
		"dupatta":  1000,
	}
}
