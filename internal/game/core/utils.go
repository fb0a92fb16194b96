package core

import "fmt"

// GetActionType names the concrete type of an action for logging
func GetActionType(action Action) string {
	if action == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", action)
}
