package permission

import (
	"fmt"

	"intake/internal/shared/constants"
)

// intakePolicies are the grants of the admin role.
var intakePolicies = [][3]string{
	{constants.RoleAdmin, constants.ResourceIntake, constants.ActionRead},
	{constants.RoleAdmin, constants.ResourceIntake, constants.ActionUpdate},
	{constants.RoleAdmin, constants.ResourceIntake, constants.ActionStats},
}

// InitIntakePermissions seeds the admin role and assigns it to the configured
// staff user. It is safe to run on every start.
func InitIntakePermissions(e *Enforcer, adminUsername string) error {
	for _, p := range intakePolicies {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy %v: %w", p, err)
		}
	}

	if err := e.AddRoleForUser(adminUsername, constants.RoleAdmin); err != nil {
		return err
	}

	e.logger.Infow("intake permissions initialized", "subject", adminUsername, "policies", len(intakePolicies))
	return nil
}
